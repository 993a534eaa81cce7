package main_test

import (
	"bytes"
	"strings"
	"testing"

	main "github.com/fwojciec/pagescrape/cmd/pagescrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYAMLLoader(t *testing.T) {
	t.Parallel()

	t.Run("accepts empty file", func(t *testing.T) {
		t.Parallel()

		resolver, err := main.YAMLLoader(strings.NewReader(""))

		require.NoError(t, err)
		assert.NotNil(t, resolver)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := main.YAMLLoader(strings.NewReader("timeout: [unclosed"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid YAML configuration")
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("filters below level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := main.NewLogger(&buf, "warn", "text")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("writes JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := main.NewLogger(&buf, "info", "json")
		require.NoError(t, err)

		logger.Info("hello", "k", "v")

		assert.Contains(t, buf.String(), `"msg":"hello"`)
		assert.Contains(t, buf.String(), `"k":"v"`)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := main.NewLogger(&bytes.Buffer{}, "loud", "text")

		require.Error(t, err)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := main.NewLogger(&bytes.Buffer{}, "info", "xml")

		require.Error(t, err)
	})
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"goquery", "readability", "trafilatura"} {
		ext, err := main.NewExtractor(name)
		require.NoError(t, err, name)
		assert.NotNil(t, ext, name)
	}

	_, err := main.NewExtractor("magic")
	require.Error(t, err)
}
