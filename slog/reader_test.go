package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/fwojciec/pagescrape/mock"
	psslog "github.com/fwojciec/pagescrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingURLReader_ReadURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs path and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.URLReader{
			ReadURLsFn: func(path string) ([]string, error) {
				return []string{"https://a.test", "https://b.test"}, nil
			},
		}

		r := psslog.NewLoggingURLReader(inner, logger)
		urls, err := r.ReadURLs("webpages.txt")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, `msg="read urls"`)
		assert.Contains(t, output, "path=webpages.txt")
		assert.Contains(t, output, "count=2")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.URLReader{
			ReadURLsFn: func(path string) ([]string, error) {
				return nil, pagescrape.Errorf(pagescrape.ENOTFOUND, "failed to read file: missing")
			},
		}

		r := psslog.NewLoggingURLReader(inner, logger)
		_, err := r.ReadURLs("missing.txt")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=")
	})
}
