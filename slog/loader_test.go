package slog_test

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/mock"
	graderslog "github.com/fwojciec/grader/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regexpFind(t *testing.T, pattern, s string) string {
	t.Helper()
	m := regexp.MustCompile(pattern).FindString(s)
	require.NotEmpty(t, m, "pattern %q not found in %q", pattern, s)
	return m
}

func TestLoggingLoader(t *testing.T) {
	t.Parallel()

	inner := &mock.Loader{
		ExistsFn: func(path string) error {
			return grader.Errorf(grader.ENOTFOUND, "%s does not exist. Exiting.", path)
		},
		LoadChecksFn: func(path string) (grader.Checks, error) {
			return grader.Checks{"h1", "title"}, nil
		},
		LoadHTMLFn: func(path string) (string, error) {
			return "<h1>x</h1>", nil
		},
	}

	t.Run("logs checks count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		loader := graderslog.NewLoggingLoader(inner, newTextLogger(&buf))

		checks, err := loader.LoadChecks("checks.json")

		require.NoError(t, err)
		assert.Len(t, checks, 2)
		assert.Contains(t, buf.String(), `msg="load checks"`)
		assert.Contains(t, buf.String(), "path=checks.json")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs html bytes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		loader := graderslog.NewLoggingLoader(inner, newTextLogger(&buf))

		_, err := loader.LoadHTML("index.html")

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `msg="load html"`)
		assert.Contains(t, buf.String(), "bytes=10")
	})

	t.Run("passes existence checks through without logging", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		loader := graderslog.NewLoggingLoader(inner, newTextLogger(&buf))

		err := loader.Exists("missing.html")

		assert.Equal(t, grader.ENOTFOUND, grader.ErrorCode(err))
		assert.Empty(t, buf.String())
	})
}
