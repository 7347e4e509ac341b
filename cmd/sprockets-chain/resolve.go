// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/internal/issue"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

// addResolveFlags registers the search flags shared by chain, tree and check.
func addResolveFlags(cmd *cobra.Command, flags *resolveFlags) {
	cmd.Flags().StringVar(&flags.root, "root", "", "directory relative search paths are resolved against (default: config root or working directory)")
	cmd.Flags().StringArrayVarP(&flags.paths, "path", "I", nil, "append a search path (repeatable)")
	cmd.Flags().StringArrayVar(&flags.prependPaths, "prepend-path", nil, "prepend a search path (repeatable)")
	cmd.Flags().StringSliceVarP(&flags.extensions, "ext", "e", nil, "append recognized extensions, e.g. --ext .es6,.jsx")
	cmd.Flags().StringSliceVar(&flags.manifests, "manifest", nil, "package manifest file names to consult, replacing the configured list")
}

// outputFormat returns the --format flag when it was given and the
// configured format otherwise.
func (a *App) outputFormat(cmd *cobra.Command, flagValue string) (config.OutputFormat, error) {
	format := a.cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format = config.OutputFormat(flagValue)
	}
	if valid, errs := format.IsValid(); !valid {
		return "", errs[0]
	}
	return format, nil
}

// writeStructured encodes v as JSON or TOML.
func writeStructured(w io.Writer, format config.OutputFormat, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputTOML:
		return toml.NewEncoder(w).Encode(v)
	case config.OutputText:
		return fmt.Errorf("%w: text has no structured encoding", config.ErrInvalidOutputFormat)
	default:
		return &config.InvalidOutputFormatError{Value: format}
	}
}

// displayPath returns p relative to root when relative is set and p lies
// inside root, and p unchanged otherwise.
func displayPath(root, p string, relative bool) string {
	if !relative {
		return p
	}
	rel, err := filepath.Rel(root, p)
	if err != nil || !filepath.IsLocal(rel) {
		return p
	}
	return rel
}

// actionableResolveError attaches the operation, the offending resource and
// recovery hints to depchain errors. Other errors pass through.
func actionableResolveError(err error, entry string) error {
	var (
		unresolved *depchain.UnresolvedPathError
		invalid    *depchain.InvalidDirectiveArgumentError
	)

	ec := issue.NewErrorContext().WithOperation("resolve " + entry)
	switch {
	case errors.As(err, &unresolved):
		ec.WithResource(unresolved.LogicalPath).
			WithSuggestion("Check the spelling of the require argument").
			WithSuggestion("Add the directory that contains it with --path").
			WithSuggestion("Register its extension with --ext").
			WithIssue(issue.UnresolvedPathId)
	case errors.As(err, &invalid):
		ec.WithResource(invalid.Resource).
			WithSuggestion("require_tree and require_directory take a path starting with ./ or ../").
			WithIssue(issue.InvalidDirectiveArgumentId)
	default:
		return err
	}
	return ec.Wrap(err).BuildError()
}
