package grader

// Document is a parsed HTML tree that can be queried with CSS selectors.
type Document interface {
	// Count returns the number of elements matching the selector.
	// Returns EINVALID if the selector cannot be compiled.
	Count(selector string) (int, error)
}

// Parser turns raw HTML into a queryable Document.
// Malformed markup is repaired by the parser rather than reported.
type Parser interface {
	Parse(html string) (Document, error)
}
