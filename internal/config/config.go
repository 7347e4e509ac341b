// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/sprocketschain/sprocketschain/internal/issue"
	"github.com/sprocketschain/sprocketschain/pkg/cueutil"
)

const (
	// AppName is the application name.
	AppName = "sprockets-chain"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "cue"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SPROCKETS_CHAIN"
)

//go:embed config_schema.cue
var configSchema string

// ConfigDir returns the configuration directory using platform-specific
// conventions: Windows uses %APPDATA%, macOS uses ~/Library/Application Support,
// and Linux/others use $XDG_CONFIG_HOME (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default:
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// DefaultFilePath returns where `config init` writes the config file.
func DefaultFilePath(opts LoadOptions) (string, error) {
	cfgDir, err := configDirWithOverride(opts.ConfigDirPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt), nil
}

// locate returns the config file Load would read, or "" when only defaults
// apply. An explicit file that does not exist is an error.
func locate(opts LoadOptions) (string, error) {
	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Use 'sprockets-chain config dump' to see the default configuration").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		return opts.ConfigFilePath, nil
	}

	cuePath, err := DefaultFilePath(opts)
	if err != nil {
		return "", err
	}
	if fileExists(cuePath) {
		return cuePath, nil
	}

	localCuePath := filepath.Join(opts.BaseDir, ConfigFileName+"."+ConfigFileExt)
	if fileExists(localCuePath) {
		return localCuePath, nil
	}
	return "", nil
}

// loadWithOptions performs option-driven config loading. Precedence, lowest
// first: defaults, config file, SPROCKETS_CHAIN_* environment variables.
func loadWithOptions(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	select {
	case <-ctx.Done():
		return nil, "", fmt.Errorf("load config canceled: %w", ctx.Err())
	default:
	}

	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("root", defaults.Root)
	v.SetDefault("search_paths", defaults.SearchPaths)
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("manifest_files", defaults.ManifestFiles)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("output.relative", defaults.Output.Relative)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolvedPath, err := locate(opts)
	if err != nil {
		return nil, "", err
	}
	if resolvedPath != "" {
		if err := loadCUEIntoViper(v, resolvedPath); err != nil {
			return nil, "", issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(resolvedPath).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify the configuration values match the expected schema").
				WithIssue(issue.ConfigLoadFailedId).
				Wrap(err).
				BuildError()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}

	// Environment overrides bypass the CUE schema.
	if valid, errs := cfg.IsValid(); !valid {
		return nil, "", issue.NewErrorContext().
			WithOperation("validate configuration").
			WithResource(resolvedPath).
			WithSuggestion("Check SPROCKETS_CHAIN_* environment variables for typos").
			WithIssue(issue.InvalidConfigId).
			Wrap(errors.Join(errs...)).
			BuildError()
	}

	return &cfg, resolvedPath, nil
}

// configDirWithOverride resolves the configuration directory, honoring
// explicit provider options before platform defaults.
func configDirWithOverride(configDirPath string) (string, error) {
	if configDirPath != "" {
		return configDirPath, nil
	}

	return ConfigDir()
}

// loadCUEIntoViper validates a CUE file against #Config and merges its
// contents into Viper. Fields are optional, so the document is decoded to a
// map rather than a struct and merged over the defaults.
func loadCUEIntoViper(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	configMap, err := cueutil.DecodeMap(configSchema, data, "#Config", cueutil.WithFilename(path))
	if err != nil {
		return err
	}

	if err := v.MergeConfigMap(configMap); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false
	}
	return err == nil && !info.IsDir()
}

// CreateDefaultConfig writes the default configuration to DefaultFilePath.
// An existing file is left untouched and reported with created == false.
func CreateDefaultConfig(opts LoadOptions) (path string, created bool, err error) {
	path, err = DefaultFilePath(opts)
	if err != nil {
		return "", false, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.WriteFile(path, []byte(GenerateCUE(DefaultConfig())), 0o644); err != nil {
		return "", false, fmt.Errorf("failed to write config file: %w", err)
	}

	return path, true, nil
}

// GenerateCUE generates a CUE representation of the configuration
func GenerateCUE(cfg *Config) string {
	var sb strings.Builder

	sb.WriteString("// sprockets-chain configuration file\n\n")

	if cfg.Root != "" {
		fmt.Fprintf(&sb, "root: %q\n", cfg.Root)
	}
	writeList(&sb, "search_paths", cfg.SearchPaths)
	writeList(&sb, "extensions", cfg.Extensions)
	writeList(&sb, "manifest_files", cfg.ManifestFiles)

	sb.WriteString("\noutput: {\n")
	fmt.Fprintf(&sb, "\tformat:   %q\n", cfg.Output.Format)
	fmt.Fprintf(&sb, "\trelative: %v\n", cfg.Output.Relative)
	sb.WriteString("}\n")

	sb.WriteString("\nlog: {\n")
	fmt.Fprintf(&sb, "\tlevel: %q\n", cfg.Log.Level)
	sb.WriteString("}\n")

	sb.WriteString("\nui: {\n")
	fmt.Fprintf(&sb, "\tverbose: %v\n", cfg.UI.Verbose)
	sb.WriteString("}\n")

	return sb.String()
}

func writeList(sb *strings.Builder, key string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "%s: []\n", key)
		return
	}
	fmt.Fprintf(sb, "%s: [\n", key)
	for _, item := range items {
		fmt.Fprintf(sb, "\t%q,\n", item)
	}
	sb.WriteString("]\n")
}
