// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprocketschain/sprocketschain/internal/config"
)

// newConfigCommand creates the `sprockets-chain config` command tree.
// Subcommands that read configuration use the App's ConfigProvider.
func newConfigCommand(app *App) *cobra.Command {
	optional := map[string]string{annotationConfigOptional: "true"}

	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sprockets-chain configuration",
		Long: `Manage sprockets-chain configuration.

Configuration is read from the first of:
  - the file given with --config
  - Linux: ~/.config/sprockets-chain/config.cue
    macOS: ~/Library/Application Support/sprockets-chain/config.cue
    Windows: %APPDATA%\sprockets-chain\config.cue
  - ./config.cue

SPROCKETS_CHAIN_* environment variables override file values, for example
SPROCKETS_CHAIN_OUTPUT_FORMAT=json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "dump",
		Short:       "Output the effective configuration as CUE",
		Args:        cobra.NoArgs,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(app.stdout, config.GenerateCUE(app.cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "init",
		Short:       "Create default configuration file",
		Args:        cobra.NoArgs,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "path",
		Short:       "Show configuration file path",
		Args:        cobra.NoArgs,
		Annotations: optional,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(app)
		},
	})

	return cfgCmd
}

func showConfig(app *App) error {
	cfg := app.cfg
	w := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	none := SubtitleStyle.Render("(none)")

	fmt.Fprintln(w, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(w)

	source, err := app.Config.Source(app.loadOptions())
	if err != nil {
		return err
	}
	if source == "" {
		source = SubtitleStyle.Render("(using defaults)")
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("Config file"), source)
	fmt.Fprintln(w)

	root := cfg.Root
	if root == "" {
		root = SubtitleStyle.Render("(working directory)")
	}
	fmt.Fprintf(w, "%s: %s\n", keyStyle.Render("root"), valueStyle.Render(root))

	for _, list := range []struct {
		key    string
		values []string
	}{
		{"search_paths", cfg.SearchPaths},
		{"extensions", cfg.Extensions},
		{"manifest_files", cfg.ManifestFiles},
	} {
		fmt.Fprintf(w, "%s:\n", keyStyle.Render(list.key))
		if len(list.values) == 0 {
			fmt.Fprintf(w, "  %s\n", none)
			continue
		}
		for _, v := range list.values {
			fmt.Fprintf(w, "  - %s\n", valueStyle.Render(v))
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("output"))
	fmt.Fprintf(w, "  format: %s\n", valueStyle.Render(cfg.Output.Format.String()))
	fmt.Fprintf(w, "  relative: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Output.Relative)))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("log"))
	fmt.Fprintf(w, "  level: %s\n", valueStyle.Render(cfg.Log.Level.String()))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(w, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(app *App) error {
	path, created, err := config.CreateDefaultConfig(app.loadOptions())
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", WarningStyle.Render("!"), path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", SuccessStyle.Render("✓"), path)
	return nil
}

func showConfigPath(app *App) error {
	opts := app.loadOptions()

	defaultPath, err := config.DefaultFilePath(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "Config file: %s\n", defaultPath)

	source, err := app.Config.Source(opts)
	if err != nil {
		return err
	}
	if source != "" && !strings.EqualFold(source, defaultPath) {
		fmt.Fprintf(app.stdout, "In use: %s\n", source)
	}
	return nil
}
