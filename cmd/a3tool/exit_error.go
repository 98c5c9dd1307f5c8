package main

import "fmt"

// Exit codes returned by a3tool.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitNotFound   = 2
	ExitBadRequest = 3
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
	// Silent suppresses the "Error:" line when the failure is already part of
	// the printed report.
	Silent bool
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
