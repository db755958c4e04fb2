package main

import (
	"context"
	"io"

	"github.com/fwojciec/grader"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Loader grader.Loader
	Parser grader.Parser

	// OpenFetcher creates the fetcher used in URL mode. It is called at most
	// once per run, and the fetcher is closed before Run returns.
	OpenFetcher func() (grader.Fetcher, error)
}

// GradeCmd checks a single document against a checks file.
type GradeCmd struct {
	Checks string
	File   string
	URL    string
}
