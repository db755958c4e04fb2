package grader

import (
	"bytes"
	"encoding/json"
)

// Entry is a single selector outcome.
type Entry struct {
	Selector string
	Present  bool
}

// Result maps selectors to their presence in a document.
// Entries keep insertion order; setting an existing selector overwrites its
// value in place.
type Result struct {
	entries []Entry
	index   map[string]int
}

// NewResult returns an empty Result.
func NewResult() *Result {
	return &Result{index: make(map[string]int)}
}

// Set records the presence flag for selector.
func (r *Result) Set(selector string, present bool) {
	if i, ok := r.index[selector]; ok {
		r.entries[i].Present = present
		return
	}
	r.index[selector] = len(r.entries)
	r.entries = append(r.entries, Entry{Selector: selector, Present: present})
}

// Get returns the presence flag for selector and whether it was recorded.
func (r *Result) Get(selector string) (present bool, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.entries[i].Present, true
}

// Len returns the number of distinct selectors.
func (r *Result) Len() int {
	return len(r.entries)
}

// Entries returns the entries in insertion order.
func (r *Result) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// MarshalJSON encodes the result as a JSON object whose keys follow
// insertion order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, e.Selector); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if e.Present {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return err
	}
	// Encode terminates each value with a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
