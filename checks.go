package grader

import (
	"encoding/json"
	"slices"
)

// Checks is a list of CSS selectors to test against a document.
type Checks []string

// ParseChecks decodes a JSON array of selector strings.
// The returned checks are sorted in ascending order.
func ParseChecks(data []byte) (Checks, error) {
	var checks Checks
	if err := json.Unmarshal(data, &checks); err != nil {
		return nil, Errorf(EINVALID, "malformed checks file: %v", err)
	}
	if checks == nil {
		// A JSON null decodes without error but is not a list.
		return nil, Errorf(EINVALID, "malformed checks file: expected a JSON array of selectors")
	}
	return checks.Sorted(), nil
}

// Sorted returns a sorted copy of the checks.
func (c Checks) Sorted() Checks {
	sorted := slices.Clone(c)
	slices.Sort(sorted)
	return sorted
}

// RunChecks evaluates every selector against doc in sorted order and records
// whether each matched at least one element. The input slice is not modified.
func RunChecks(doc Document, checks Checks) (*Result, error) {
	result := NewResult()
	for _, selector := range checks.Sorted() {
		n, err := doc.Count(selector)
		if err != nil {
			return nil, err
		}
		result.Set(selector, n > 0)
	}
	return result, nil
}
