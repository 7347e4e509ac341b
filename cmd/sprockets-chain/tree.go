// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/sprocketschain/sprocketschain/internal/config"
	"github.com/sprocketschain/sprocketschain/pkg/depchain"
)

// newTreeCommand creates the `sprockets-chain tree` command.
func newTreeCommand(app *App) *cobra.Command {
	var (
		flags  resolveFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "tree <entry>",
		Short: "Show the directive tree of an entry point",
		Long: `Show every directive reachable from an entry point, nested under the
file that declares it. A file that is already being expanded higher up
the same branch is shown but not expanded again.`,
		Example: `  sprockets-chain tree -I app/assets application.js
  sprockets-chain tree --format json application`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outFormat, err := app.outputFormat(cmd, format)
			if err != nil {
				return err
			}

			env, err := app.newEnvironment(&flags)
			if err != nil {
				return err
			}

			root, err := env.ResolveTree(args[0])
			if err != nil {
				return actionableResolveError(err, args[0])
			}

			if outFormat != config.OutputText {
				return writeStructured(app.stdout, outFormat, root)
			}
			fmt.Fprintln(app.stdout, renderTree(root))
			return nil
		},
	}

	addResolveFlags(cmd, &flags)
	cmd.Flags().StringVar(&format, "format", string(config.OutputText), "output format: text, json or toml (default from config)")

	return cmd
}

// renderTree draws n and its descendants with lipgloss/tree. The root shows
// its logical path; every other node shows "<directive> <logical path>".
func renderTree(n *depchain.Node) string {
	t := tree.Root(n.LogicalPath).
		RootStyle(treeRootStyle).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumeratorStyle)
	for _, child := range n.Children {
		t.Child(treeNode(child))
	}
	return t.String()
}

func treeNode(n *depchain.Node) any {
	label := treeDirectiveStyle.Render(n.Directive.String()) + " " + n.LogicalPath
	if n.Directive == depchain.DirectiveStub {
		label = treeDirectiveStyle.Render(n.Directive.String()) + " " + treeStubStyle.Render(n.LogicalPath)
	}
	if len(n.Children) == 0 {
		return label
	}

	t := tree.Root(label)
	for _, child := range n.Children {
		t.Child(treeNode(child))
	}
	return t
}
