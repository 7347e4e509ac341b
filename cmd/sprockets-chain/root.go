// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for sprockets-chain.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// annotationConfigOptional marks commands that still run, with defaults,
// when the configuration fails to load.
const annotationConfigOptional = "config-optional"

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sprockets-chain",
		Short: "Resolve Sprockets-style asset dependency chains",
		Long: TitleStyle.Render("sprockets-chain") + SubtitleStyle.Render(" - Resolve Sprockets-style asset dependency chains") + `

sprockets-chain reads the //= require, include, stub and require_tree
directives at the top of JavaScript and CoffeeScript files and prints the
ordered list of files a page has to load for an entry point.

` + SubtitleStyle.Render("Examples:") + `
  sprockets-chain chain -I app/assets application.js   Print the load order
  sprockets-chain tree -I app/assets application.js    Show the directive tree
  sprockets-chain check -I app/assets application.js   Report require cycles
  sprockets-chain config show                          Show current configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := app.loadConfig(cmd.Context())
			if err == nil {
				return nil
			}
			if cmd.Annotations[annotationConfigOptional] == "" {
				return err
			}
			fmt.Fprintln(app.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, app.verbose))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output and debug logging")
	rootCmd.PersistentFlags().StringVar(&app.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/sprockets-chain/config.cue)")

	rootCmd.AddCommand(newChainCommand(app))
	rootCmd.AddCommand(newTreeCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the App and runs the root command. This is called by
// main.main().
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(func(w io.Writer, _ fang.Styles, err error) {
			app.renderError(w, err)
		}),
	); err != nil {
		os.Exit(exitCode(err))
	}
}
