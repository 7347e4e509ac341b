// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "resolve chain"},
			expected: "failed to resolve chain",
		},
		{
			name:     "operation with resource",
			err:      &ActionableError{Operation: "resolve chain", Resource: "application.js"},
			expected: "failed to resolve chain: application.js",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "resolve chain",
				Resource:  "application.js",
				Cause:     errors.New("logical path jquery does not correspond to any file"),
			},
			expected: "failed to resolve chain: application.js: logical path jquery does not correspond to any file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	root := errors.New("permission denied")
	err := NewErrorContext().
		WithOperation("read asset").
		WithResource("app.js").
		WithSuggestions("Check the file permissions", "Retry").
		Wrap(wrapped{root}).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "\n  • Check the file permissions\n  • Retry") {
		t.Errorf("Format(false) = %q, want bulleted suggestions", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) included the error chain")
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:\n  1. wrapped: permission denied\n  2. permission denied") {
		t.Errorf("Format(true) = %q, want the numbered chain", long)
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if NewErrorContext().Build() != nil {
		t.Error("Build() without operation should return nil")
	}
	if NewErrorContext().BuildError() != nil {
		t.Error("BuildError() without operation should return nil")
	}

	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithIssue(ConfigLoadFailedId).
		WithSuggestion("Run 'sprockets-chain config dump'").
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() returned %T, want *ActionableError", err)
	}
	if ae.Issue != ConfigLoadFailedId || !ae.HasSuggestions() {
		t.Errorf("Build() = %+v", ae)
	}
	if !errors.Is(err, cause) {
		t.Error("ActionableError does not unwrap to its cause")
	}
}

type wrapped struct{ err error }

func (w wrapped) Error() string { return "wrapped: " + w.err.Error() }
func (w wrapped) Unwrap() error { return w.err }
