// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprocketschain/sprocketschain/internal/dag"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

// newCheckCommand creates the `sprockets-chain check` command.
func newCheckCommand(app *App) *cobra.Command {
	var flags resolveFlags

	cmd := &cobra.Command{
		Use:   "check <entry>...",
		Short: "Report require cycles reachable from entry points",
		Long: `Resolve each entry point and report files that require each other in a
loop. Chains still resolve when such loops exist, but their order then
depends on which file is the entry point.

Exits with status 1 when any cycle is found.`,
		Example: `  sprockets-chain check -I app/assets application.js admin.js`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := app.newEnvironment(&flags)
			if err != nil {
				return err
			}

			var firstCycle []string
			for _, entry := range args {
				if err := cmd.Context().Err(); err != nil {
					return err
				}

				root, err := env.ResolveTree(entry)
				if err != nil {
					return actionableResolveError(err, entry)
				}

				graph := dag.FromTree(root, func(n *depchain.Node) string { return n.LogicalPath })
				cycles := graph.Cycles()
				if len(cycles) == 0 {
					fmt.Fprintf(app.stdout, "%s %s: no require cycles (%d files)\n", SuccessStyle.Render("✓"), entry, graph.Len())
					continue
				}

				fmt.Fprintf(app.stdout, "%s %s: %d require cycle(s)\n", ErrorStyle.Render("✗"), entry, len(cycles))
				for _, cycle := range cycles {
					fmt.Fprintf(app.stdout, "    %s\n", strings.Join(cycle, " -> "))
				}
				if firstCycle == nil {
					firstCycle = cycles[0]
				}
			}

			if firstCycle != nil {
				return &ExitError{Code: ExitCycles, Err: &dag.CycleError{Cycle: firstCycle}}
			}
			return nil
		},
	}

	addResolveFlags(cmd, &flags)

	return cmd
}
