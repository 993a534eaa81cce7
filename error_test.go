package pagescrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagescrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagescrape.Errorf(pagescrape.ENOTFOUND, "file %q not found", "webpages.txt")

	assert.Equal(t, pagescrape.ENOTFOUND, pagescrape.ErrorCode(err))
	assert.Equal(t, "file \"webpages.txt\" not found", pagescrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagescrape.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagescrape.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("batch: %w", pagescrape.Errorf(pagescrape.EINVALID, "URL is required"))

	assert.Equal(t, pagescrape.EINVALID, pagescrape.ErrorCode(err))
	assert.Equal(t, "URL is required", pagescrape.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, pagescrape.EINTERNAL, pagescrape.ErrorCode(err))
	assert.Equal(t, "Internal error.", pagescrape.ErrorMessage(err))
}
