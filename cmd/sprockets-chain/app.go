// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
	"github.com/sprocketschain/sprocketschain/pkg/trail"
)

type (
	// App wires CLI services and shared dependencies. Every Cobra command
	// handler receives an App and resolves through it.
	App struct {
		Config ConfigProvider
		fs     afero.Fs
		getenv func(string) string
		stdout io.Writer
		stderr io.Writer

		// configFile and configDir feed config.LoadOptions.
		configFile string
		configDir  string
		verbose    bool

		// cfg and logger start from defaults and are replaced by the root
		// command's pre-run hook.
		cfg    *config.Config
		logger *slog.Logger
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		// Fs backs asset lookups. Configuration files are always read from disk.
		Fs afero.Fs
		// Getenv resolves $VARS in configured search paths.
		Getenv func(string) string
		// ConfigDir overrides the platform configuration directory.
		ConfigDir string
		Stdout    io.Writer
		Stderr    io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		Source(opts config.LoadOptions) (string, error)
	}

	// resolveFlags are the search settings shared by chain, tree and check.
	// They are layered over the loaded configuration.
	resolveFlags struct {
		root         string
		paths        []string
		prependPaths []string
		extensions   []string
		manifests    []string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.Getenv == nil {
		deps.Getenv = os.Getenv
	}

	app := &App{
		Config:    deps.Config,
		fs:        deps.Fs,
		getenv:    deps.Getenv,
		configDir: deps.ConfigDir,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		cfg:       config.DefaultConfig(),
	}
	app.logger = app.newLogger(app.cfg)
	return app, nil
}

// loadOptions builds the config lookup for this invocation. A local
// config.cue is looked up in the working directory.
func (a *App) loadOptions() config.LoadOptions {
	baseDir, err := os.Getwd()
	if err != nil {
		baseDir = "."
	}
	return config.LoadOptions{
		ConfigFilePath: a.configFile,
		ConfigDirPath:  a.configDir,
		BaseDir:        baseDir,
	}
}

// loadConfig loads configuration and sets up the logger. Verbose comes from
// the flag or, when the flag is unset, from ui.verbose.
func (a *App) loadConfig(ctx context.Context) error {
	cfg, err := a.Config.Load(ctx, a.loadOptions())
	if err != nil {
		a.logger = a.newLogger(a.cfg)
		return err
	}

	a.cfg = cfg
	if !a.verbose {
		a.verbose = cfg.UI.Verbose
	}
	a.logger = a.newLogger(cfg)
	return nil
}

// newLogger returns a slog.Logger backed by a charm logger on stderr. Verbose
// mode always logs at debug level.
func (a *App) newLogger(cfg *config.Config) *slog.Logger {
	level, err := log.ParseLevel(cfg.Log.Level.String())
	if err != nil {
		level = log.WarnLevel
	}
	if a.verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(a.stderr, log.Options{
		Level:  level,
		Prefix: config.AppName,
	})
	return slog.New(handler)
}

// newEnvironment builds a depchain.Environment from the configuration plus
// flag overrides. Flag paths and extensions are added after configured ones,
// except --prepend-path which goes first. With no search path at all, the
// root itself is searched.
func (a *App) newEnvironment(flags *resolveFlags) (*depchain.Environment, error) {
	root := flags.root
	if root == "" {
		root = a.cfg.Root
	}
	if root != "" {
		expanded, err := config.ExpandPath(root, a.getenv)
		if err != nil {
			return nil, err
		}
		root = expanded
	}

	t, err := trail.New(a.fs, root)
	if err != nil {
		return nil, err
	}

	searchPaths, err := a.cfg.ExpandedSearchPaths(a.getenv)
	if err != nil {
		return nil, fmt.Errorf("invalid search path: %w", err)
	}
	t.AppendPaths(searchPaths...)
	t.AppendPaths(flags.paths...)
	t.PrependPaths(flags.prependPaths...)
	if len(t.Paths()) == 0 {
		a.logger.Debug("no search paths configured, searching the root", "root", t.Root())
		t.AppendPaths(t.Root())
	}

	t.AppendExtensions(a.cfg.Extensions...)
	t.AppendExtensions(flags.extensions...)

	manifests := a.cfg.ManifestFiles
	if len(flags.manifests) > 0 {
		manifests = flags.manifests
	}

	a.logger.Debug("search settings", "paths", t.Paths(), "extensions", t.Extensions(), "manifests", manifests)
	return depchain.NewEnvironment(t,
		depchain.WithLogger(a.logger),
		depchain.WithManifestFiles(manifests...),
	), nil
}
