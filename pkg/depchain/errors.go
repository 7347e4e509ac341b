// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnresolvedPath is the sentinel wrapped by UnresolvedPathError.
	ErrUnresolvedPath = errors.New("unresolved path")
	// ErrInvalidDirectiveArgument is the sentinel wrapped by InvalidDirectiveArgumentError.
	ErrInvalidDirectiveArgument = errors.New("invalid directive argument")
)

type (
	// UnresolvedPathError is returned when no fallback stage finds a file for
	// a logical path.
	UnresolvedPathError struct {
		LogicalPath string
		Extensions  []string
	}

	// InvalidDirectiveArgumentError is returned for a directive whose argument
	// is missing or, for require_directory and require_tree, not relative.
	InvalidDirectiveArgumentError struct {
		Directive Directive
		Argument  string
		// Resource is the logical path of the file declaring the directive.
		Resource string
	}
)

// Error implements the error interface for UnresolvedPathError.
func (e *UnresolvedPathError) Error() string {
	return fmt.Sprintf("logical path %s does not correspond to any file (valid extensions: %s)",
		e.LogicalPath, strings.Join(e.Extensions, ", "))
}

// Unwrap returns ErrUnresolvedPath for errors.Is() compatibility.
func (e *UnresolvedPathError) Unwrap() error { return ErrUnresolvedPath }

// Error implements the error interface for InvalidDirectiveArgumentError.
func (e *InvalidDirectiveArgumentError) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("%s: %s requires a path argument", e.Resource, e.Directive)
	}
	return fmt.Sprintf("%s: %s argument must be a relative path, got %q", e.Resource, e.Directive, e.Argument)
}

// Unwrap returns ErrInvalidDirectiveArgument for errors.Is() compatibility.
func (e *InvalidDirectiveArgumentError) Unwrap() error { return ErrInvalidDirectiveArgument }
