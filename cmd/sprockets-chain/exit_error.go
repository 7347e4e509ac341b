// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	// ExitFailure covers resolution, configuration and usage errors.
	ExitFailure = 1
	// ExitCycles is returned by check when at least one entry has a require cycle.
	ExitCycles = 2
)

// ExitError carries an exit code out of a RunE handler. A nil Err means the
// command already reported the failure itself.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// exitCode maps the error returned by command execution to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
