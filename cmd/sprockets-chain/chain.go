// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/internal/watch"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

type (
	chainReport struct {
		Entry string   `json:"entry" toml:"entry"`
		Chain []string `json:"chain" toml:"chain"`
	}

	chainOutput struct {
		Chains []chainReport `json:"chains" toml:"chains"`
	}

	// chainPrinter resolves and prints a fixed set of entries.
	chainPrinter struct {
		app      *App
		env      *depchain.Environment
		entries  []string
		format   config.OutputFormat
		relative bool
	}
)

// newChainCommand creates the `sprockets-chain chain` command.
func newChainCommand(app *App) *cobra.Command {
	var (
		flags       resolveFlags
		format      string
		relative    bool
		watchAssets bool
	)

	cmd := &cobra.Command{
		Use:   "chain <entry>...",
		Short: "Print the ordered load chain of one or more entry points",
		Long: `Print the files an entry point needs, in the order they must load.

Entries are logical paths such as "application" or "admin/app.js", looked up
through the search paths. With several entries each chain is resolved
concurrently and printed in argument order, separated by a blank line.

With --watch the chains are printed again whenever an asset or package
manifest under a search path changes, until interrupted.`,
		Example: `  sprockets-chain chain -I app/assets -I vendor/assets application.js
  sprockets-chain chain --format json --relative application admin/app
  sprockets-chain chain --watch -I app/assets application`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := app.outputFormat(cmd, format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("relative") {
				relative = app.cfg.Output.Relative
			}

			env, err := app.newEnvironment(&flags)
			if err != nil {
				return err
			}

			p := &chainPrinter{app: app, env: env, entries: args, format: outFormat, relative: relative}
			if err := p.print(cmd.Context()); err != nil {
				return err
			}

			if !watchAssets {
				return nil
			}
			return p.watch(cmd.Context())
		},
	}

	addResolveFlags(cmd, &flags)
	cmd.Flags().StringVar(&format, "format", string(config.OutputText), "output format: text, json or toml (default from config)")
	cmd.Flags().BoolVar(&relative, "relative", false, "print paths relative to the root (default from config)")
	cmd.Flags().BoolVarP(&watchAssets, "watch", "w", false, "print the chains again whenever assets change")

	return cmd
}

func (p *chainPrinter) print(ctx context.Context) error {
	chains, err := p.env.ResolveChains(ctx, p.entries)
	if err != nil {
		return actionableResolveError(err, strings.Join(p.entries, ", "))
	}

	root := p.env.Trail().Root()
	out := chainOutput{Chains: make([]chainReport, len(p.entries))}
	for i, chain := range chains {
		paths := make([]string, len(chain))
		for j, path := range chain {
			paths[j] = displayPath(root, path, p.relative)
		}
		out.Chains[i] = chainReport{Entry: p.entries[i], Chain: paths}
		p.app.logger.Debug("resolved chain", "entry", p.entries[i], "length", len(chain))
	}

	w := p.app.stdout
	if p.format != config.OutputText {
		return writeStructured(w, p.format, out)
	}
	for i, report := range out.Chains {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, path := range report.Chain {
			fmt.Fprintln(w, path)
		}
	}
	return nil
}

// watch reprints the chains after every batch of asset changes. Resolution
// errors are reported and watching continues, so a half-saved file does not
// end the session.
func (p *chainPrinter) watch(ctx context.Context) error {
	t := p.env.Trail()
	w, err := watch.New(watch.Config{
		Roots:      t.Paths(),
		Extensions: t.Extensions(),
		Manifests:  p.env.ManifestFiles(),
		Stderr:     p.app.stderr,
		OnChange: func(ctx context.Context, changed []string) error {
			p.app.logger.Info("assets changed", "files", changed)
			fmt.Fprintln(p.app.stderr, SubtitleStyle.Render(fmt.Sprintf("%d file(s) changed, resolving again", len(changed))))
			if err := p.print(ctx); err != nil {
				p.app.renderError(p.app.stderr, err)
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(p.app.stderr, SubtitleStyle.Render(fmt.Sprintf("Watching %d search path(s) for changes (Ctrl+C to stop)", len(w.Roots()))))
	return w.Run(ctx)
}
