// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/internal/dag"
	"github.com/sprocketschain/sprocketschain/internal/issue"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"unresolved", fmt.Errorf("wrapped: %w", &depchain.UnresolvedPathError{LogicalPath: "x"}), issue.UnresolvedPathId},
		{"invalid argument", &depchain.InvalidDirectiveArgumentError{Directive: depchain.DirectiveRequireTree, Argument: "lib"}, issue.InvalidDirectiveArgumentId},
		{"cycle", &ExitError{Code: 1, Err: &dag.CycleError{Cycle: []string{"a", "a"}}}, issue.DependencyCycleId},
		{"invalid config", &config.InvalidConfigError{}, issue.InvalidConfigId},
		{"actionable wins", issue.NewErrorContext().WithOperation("load").WithIssue(issue.ConfigLoadFailedId).Wrap(&depchain.UnresolvedPathError{}).BuildError(), issue.ConfigLoadFailedId},
		{"unknown", context.Canceled, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	err := actionableResolveError(&depchain.UnresolvedPathError{LogicalPath: "missing", Extensions: []string{".js"}}, "app.js")

	var buf bytes.Buffer
	app.renderError(&buf, err)

	out := buf.String()
	if !strings.Contains(out, "Error: failed to resolve app.js: missing: logical path missing does not correspond to any file") {
		t.Errorf("renderError() = %q", out)
	}
	if !strings.Contains(out, "Add the directory that contains it with --path") {
		t.Errorf("renderError() lacks suggestions: %q", out)
	}
	if strings.Contains(out, "Error chain:") {
		t.Errorf("non-verbose output shows the error chain: %q", out)
	}
}

func TestRenderError_Verbose(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	app.verbose = true

	var buf bytes.Buffer
	app.renderError(&buf, actionableResolveError(&depchain.UnresolvedPathError{LogicalPath: "missing"}, "app.js"))

	out := buf.String()
	if !strings.Contains(out, "Error chain:") {
		t.Errorf("verbose output lacks the error chain: %q", out)
	}
	if !strings.Contains(out, "sprockets") {
		t.Errorf("verbose output lacks the issue guide: %q", out)
	}
}

func TestRenderError_SilentExit(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, nil, nil)
	var buf bytes.Buffer
	app.renderError(&buf, &ExitError{Code: 3})

	if buf.Len() != 0 {
		t.Errorf("renderError() wrote %q for a bare exit code", buf.String())
	}
}

func TestActionableResolveError_PassesThroughOtherErrors(t *testing.T) {
	t.Parallel()

	if err := actionableResolveError(context.Canceled, "app.js"); !errors.Is(err, context.Canceled) {
		t.Errorf("actionableResolveError() = %v", err)
	}
	var ae *issue.ActionableError
	if errors.As(actionableResolveError(context.Canceled, "app.js"), &ae) {
		t.Error("context errors must not become ActionableErrors")
	}
}
