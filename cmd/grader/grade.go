package main

import (
	"fmt"

	"github.com/fwojciec/grader"
)

// conflictMessage is shown when both input modes are requested.
const conflictMessage = "Unable to process both a file and a URL options, choose one!\nPlease use --help"

// Run validates the inputs and grades the selected document.
//
// Missing files and conflicting modes are returned as errors. A failed fetch
// is reported on stderr and ends the run without output or error. With
// neither a file nor a URL, Run does nothing.
func (c *GradeCmd) Run(deps *Dependencies) error {
	if err := deps.Loader.Exists(c.Checks); err != nil {
		return err
	}
	if c.File != "" {
		if err := deps.Loader.Exists(c.File); err != nil {
			return err
		}
	}

	switch {
	case c.File != "" && c.URL != "":
		return grader.Errorf(grader.ECONFLICT, conflictMessage)
	case c.File != "":
		return c.runFile(deps)
	case c.URL != "":
		return c.runURL(deps)
	default:
		return nil
	}
}

func (c *GradeCmd) runFile(deps *Dependencies) error {
	html, err := deps.Loader.LoadHTML(c.File)
	if err != nil {
		return err
	}
	return c.grade(deps, html)
}

func (c *GradeCmd) runURL(deps *Dependencies) error {
	fetcher, err := deps.OpenFetcher()
	if err != nil {
		return err
	}
	defer fetcher.Close()

	html, err := fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", errorText(err))
		return nil
	}
	return c.grade(deps, html)
}

// grade parses html, runs the checks against it and prints the result.
func (c *GradeCmd) grade(deps *Dependencies, html string) error {
	doc, err := deps.Parser.Parse(html)
	if err != nil {
		return err
	}

	checks, err := deps.Loader.LoadChecks(c.Checks)
	if err != nil {
		return err
	}

	result, err := grader.RunChecks(doc, checks)
	if err != nil {
		return err
	}

	return grader.WriteResult(deps.Stdout, result)
}
