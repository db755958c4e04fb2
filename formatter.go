package grader

import (
	"encoding/json"
	"io"
)

// WriteResult writes the result to w as JSON indented with four spaces,
// followed by a newline. Selectors are written verbatim, so combinators
// such as ">" are not escaped.
func WriteResult(w io.Writer, r *Result) error {
	if r == nil {
		r = NewResult()
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	return enc.Encode(r)
}
