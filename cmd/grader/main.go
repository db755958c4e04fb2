package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/grader"
	"github.com/fwojciec/grader/fs"
	"github.com/fwojciec/grader/goquery"
	graderhttp "github.com/fwojciec/grader/http"
	"github.com/fwojciec/grader/rod"
	graderslog "github.com/fwojciec/grader/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, errorText(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	var exited bool
	parser, err := kong.New(cli,
		kong.Name("grader"),
		kong.Description("Check an HTML file or URL for elements matching CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Help was printed somewhere in the arguments.
	if exited {
		return nil
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Loader: fs.NewLoader(),
		Parser: goquery.NewParser(),
	}

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Loader = graderslog.NewLoggingLoader(deps.Loader, logger)
		deps.Parser = graderslog.NewLoggingParser(deps.Parser, logger)
	}

	// The browser is only launched once URL mode is actually dispatched.
	deps.OpenFetcher = func() (grader.Fetcher, error) {
		fetcher, err := newFetcher(cli.Render, cli.Timeout)
		if err != nil {
			if cli.Render {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			}
			return nil, err
		}
		if logger != nil {
			return graderslog.NewLoggingFetcher(fetcher, logger), nil
		}
		return fetcher, nil
	}

	cmd := &GradeCmd{
		Checks: cli.Checks,
		File:   cli.File,
		URL:    cli.URL,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Checks  string        `short:"c" default:"checks.json" env:"GRADER_CHECKS" placeholder:"CHECKS_FILE" help:"Path to checks.json"`
	File    string        `short:"f" placeholder:"HTML_FILE" help:"Path to index.html"`
	URL     string        `short:"u" name:"url" placeholder:"URL" help:"URL to do checks on"`
	Render  bool          `short:"r" help:"Render the URL in a headless browser before checking"`
	Timeout time.Duration `short:"t" default:"0s" help:"Fetch timeout for --url (0 means none)"`
	Verbose bool          `short:"v" help:"Log load, fetch and parse details to stderr"`
}

func newFetcher(render bool, timeout time.Duration) (grader.Fetcher, error) {
	if render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return f, nil
	}
	return graderhttp.NewFetcher(graderhttp.WithTimeout(timeout)), nil
}

// errorText returns the user-facing text for err. Application errors show
// their message; anything else is shown as is.
func errorText(err error) string {
	if grader.ErrorCode(err) == grader.EINTERNAL {
		return err.Error()
	}
	return grader.ErrorMessage(err)
}
