// Package fs provides file-based loading of grader inputs.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/grader"
)

// Ensure Loader implements grader.Loader at compile time.
var _ grader.Loader = (*Loader)(nil)

// Loader reads checks files and HTML documents from the local filesystem.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Exists returns ENOTFOUND if path cannot be stat'ed.
// Directories count as existing; reading them fails later.
func (l *Loader) Exists(path string) error {
	if _, err := os.Stat(path); err != nil {
		return notExist(path)
	}
	return nil
}

// LoadChecks reads path and decodes it as a JSON array of selectors.
func (l *Loader) LoadChecks(path string) (grader.Checks, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	checks, err := grader.ParseChecks(data)
	if err != nil {
		return nil, grader.Errorf(grader.EINVALID, "%s: %s", path, grader.ErrorMessage(err))
	}
	return checks, nil
}

// LoadHTML reads the HTML document at path.
func (l *Loader) LoadHTML(path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notExist(path)
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func notExist(path string) error {
	return grader.Errorf(grader.ENOTFOUND, "%s does not exist. Exiting.", path)
}
