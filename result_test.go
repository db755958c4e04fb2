package grader_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/grader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Set(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		r := grader.NewResult()
		r.Set("b", true)
		r.Set("a", false)

		assert.Equal(t, []grader.Entry{
			{Selector: "b", Present: true},
			{Selector: "a", Present: false},
		}, r.Entries())
	})

	t.Run("overwrites existing selector in place", func(t *testing.T) {
		t.Parallel()

		r := grader.NewResult()
		r.Set("a", false)
		r.Set("b", false)
		r.Set("a", true)

		assert.Equal(t, []grader.Entry{
			{Selector: "a", Present: true},
			{Selector: "b", Present: false},
		}, r.Entries())
	})
}

func TestResult_Get(t *testing.T) {
	t.Parallel()

	r := grader.NewResult()
	r.Set("h1", true)

	present, ok := r.Get("h1")
	assert.True(t, ok)
	assert.True(t, present)

	present, ok = r.Get("h2")
	assert.False(t, ok)
	assert.False(t, present)
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("preserves key order", func(t *testing.T) {
		t.Parallel()

		r := grader.NewResult()
		r.Set("title", true)
		r.Set("h1", false)

		out, err := json.Marshal(r)

		require.NoError(t, err)
		assert.Equal(t, `{"title":true,"h1":false}`, string(out))
	})

	t.Run("encodes empty result as empty object", func(t *testing.T) {
		t.Parallel()

		out, err := json.Marshal(grader.NewResult())

		require.NoError(t, err)
		assert.Equal(t, `{}`, string(out))
	})

	t.Run("escapes quotes in selectors", func(t *testing.T) {
		t.Parallel()

		r := grader.NewResult()
		r.Set(`a[title="x"]`, true)

		out, err := r.MarshalJSON()

		require.NoError(t, err)
		assert.Equal(t, `{"a[title=\"x\"]":true}`, string(out))
	})
}
