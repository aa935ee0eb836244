package cmd

import "fmt"

// Exit codes for envkit CLI
const (
	// ExitSuccess indicates the command completed
	ExitSuccess = 0

	// ExitFailure indicates a variable was missing or invalid
	ExitFailure = 1

	// ExitParseError indicates a malformed env file
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitFileNotFound indicates the env file does not exist
	ExitFileNotFound = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries an exit code for a failure that has already been
// reported through the formatter.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func exitf(code int, format string, args ...any) error {
	return withExitCode(code, fmt.Errorf(format, args...))
}
