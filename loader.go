package grader

// Loader reads grader inputs from local storage.
type Loader interface {
	// Exists returns ENOTFOUND if nothing exists at path.
	Exists(path string) error

	// LoadChecks reads and parses a checks file.
	// Returns EINVALID if the file is not a JSON array of strings.
	LoadChecks(path string) (Checks, error)

	// LoadHTML reads a local HTML document.
	LoadHTML(path string) (string, error)
}
