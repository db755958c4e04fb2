// Package goquery implements grader.Parser on top of goquery and cascadia.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/grader"
	"golang.org/x/net/html"
)

// Ensure Parser implements grader.Parser at compile time.
var _ grader.Parser = (*Parser)(nil)

// Parser builds selector-queryable documents from HTML.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses s with the HTML5 tree construction algorithm.
// Malformed markup is repaired the way browsers repair it.
func (p *Parser) Parse(s string) (grader.Document, error) {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return nil, grader.Errorf(grader.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Ensure Document implements grader.Document at compile time.
var _ grader.Document = (*Document)(nil)

// Document is a parsed HTML tree.
type Document struct {
	doc *goquery.Document
}

// Count returns the number of elements matching selector.
// Selector groups ("h1, h2") are supported. An empty selector matches nothing.
func (d *Document) Count(selector string) (int, error) {
	// An empty selector selects nothing.
	if strings.TrimSpace(selector) == "" {
		return 0, nil
	}

	// goquery.Find swallows compile errors and matches nothing, so compile
	// the selector first to surface them.
	m, err := cascadia.Compile(selector)
	if err != nil {
		return 0, grader.Errorf(grader.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return d.doc.FindMatcher(m).Length(), nil
}

