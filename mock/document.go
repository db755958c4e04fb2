package mock

import "github.com/fwojciec/grader"

var _ grader.Document = (*Document)(nil)

// Document is a mock implementation of grader.Document.
type Document struct {
	CountFn func(selector string) (int, error)
}

func (d *Document) Count(selector string) (int, error) {
	return d.CountFn(selector)
}

var _ grader.Parser = (*Parser)(nil)

// Parser is a mock implementation of grader.Parser.
type Parser struct {
	ParseFn func(html string) (grader.Document, error)
}

func (p *Parser) Parse(html string) (grader.Document, error) {
	return p.ParseFn(html)
}
