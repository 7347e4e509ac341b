// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/internal/dag"
	"github.com/sprocketschain/sprocketschain/internal/issue"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

// issueStyle is the glamour style used for catalog entries.
var issueStyle = "dark"

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor maps an error to the catalog entry that explains it, or 0.
func issueFor(err error) issue.Id {
	var (
		ae       *issue.ActionableError
		cycleErr *dag.CycleError
	)
	switch {
	case errors.As(err, &ae) && ae.Issue != 0:
		return ae.Issue
	case errors.Is(err, depchain.ErrUnresolvedPath):
		return issue.UnresolvedPathId
	case errors.Is(err, depchain.ErrInvalidDirectiveArgument):
		return issue.InvalidDirectiveArgumentId
	case errors.As(err, &cycleErr):
		return issue.DependencyCycleId
	case errors.Is(err, config.ErrInvalidConfig):
		return issue.InvalidConfigId
	case errors.Is(err, fs.ErrPermission), errors.Is(err, fs.ErrNotExist):
		return issue.AssetReadFailedId
	default:
		return 0
	}
}

// renderError writes err to w. Verbose mode adds the matching issue guide.
// An ExitError without a cause was already reported by its command.
func (a *App) renderError(w io.Writer, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, a.verbose))

	if !a.verbose {
		return
	}
	id := issueFor(err)
	if id == 0 {
		return
	}
	if entry := issue.Get(id); entry != nil {
		rendered, renderErr := entry.Render(issueStyle)
		if renderErr != nil {
			a.logger.Warn("failed to render issue catalog entry", "issue", id, "error", renderErr)
			return
		}
		fmt.Fprint(w, rendered)
	}
}
