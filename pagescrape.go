// Package pagescrape provides a small web scraper that fetches HTML pages,
// singly or in batch from a URL list file, and extracts their title and
// plain-text content for display.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package pagescrape
