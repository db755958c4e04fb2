package mock

import "github.com/fwojciec/grader"

var _ grader.Loader = (*Loader)(nil)

// Loader is a mock implementation of grader.Loader.
type Loader struct {
	ExistsFn     func(path string) error
	LoadChecksFn func(path string) (grader.Checks, error)
	LoadHTMLFn   func(path string) (string, error)
}

func (l *Loader) Exists(path string) error {
	return l.ExistsFn(path)
}

func (l *Loader) LoadChecks(path string) (grader.Checks, error) {
	return l.LoadChecksFn(path)
}

func (l *Loader) LoadHTML(path string) (string, error) {
	return l.LoadHTMLFn(path)
}
