// SPDX-License-Identifier: MPL-2.0

package dag

import "github.com/sprocketschain/sprocketschain/pkg/depchain"

// FromTree builds the load-order graph of a dependency tree: one node per
// file, keyed by label, and an edge from every dependency to the file that
// declares it. Stub edges are left out since a stub never loads its target,
// and a file naming itself adds no edge.
func FromTree(root *depchain.Node, label func(*depchain.Node) string) *Graph {
	if label == nil {
		label = func(n *depchain.Node) string { return n.AbsolutePath }
	}

	g := New()
	if root == nil {
		return g
	}

	root.Walk(func(n *depchain.Node, _ int) bool {
		if n.Directive == depchain.DirectiveStub {
			return false
		}
		g.AddNode(label(n))
		for _, child := range n.Children {
			if child.Directive == depchain.DirectiveStub || child.AbsolutePath == n.AbsolutePath {
				continue
			}
			g.AddEdge(label(child), label(n))
		}
		return true
	})
	return g
}
