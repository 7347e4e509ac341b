// SPDX-License-Identifier: MPL-2.0

package depchain

// Linearize flattens a dependency tree into its chain: absolute paths ordered
// so that every file follows its dependencies.
//
// A path is emitted at most once, unless the node was reached through
// include, in which case it is emitted every time. A node marks its own
// position with a child that points back at itself (require_self, or a
// require_tree that lists the file); without one it is emitted after all of
// its children. Stub children remove their target and its whole subtree from
// the stubbing node's branch only.
func Linearize(root *Node) []string {
	if root == nil {
		return nil
	}
	chain, _ := visit(root, nil, nil, nil)
	return chain
}

// visit linearizes n. visited holds the non-include paths emitted so far in
// the whole chain and is returned extended with n's contribution; lineage
// holds n's ancestors; stubs holds the paths suppressed by n's ancestors.
func visit(n *Node, visited, lineage, stubs *pathSet) ([]string, *pathSet) {
	if lineage.has(n.AbsolutePath) {
		return nil, visited
	}
	if n.Directive != DirectiveInclude && visited.has(n.AbsolutePath) {
		return nil, visited
	}

	stubs = stubs.with(stubbed(n)...)
	lineage = lineage.with(n.AbsolutePath)

	var (
		chain       []string
		selfEmitted bool
	)
	emitSelf := func() {
		selfEmitted = true
		chain = append(chain, n.AbsolutePath)
		if n.Directive != DirectiveInclude {
			visited = visited.with(n.AbsolutePath)
		}
	}

	for _, child := range n.Children {
		switch {
		case stubs.has(child.AbsolutePath):
		case child.AbsolutePath == n.AbsolutePath:
			if !selfEmitted {
				emitSelf()
			}
		default:
			var sub []string
			sub, visited = visit(child, visited, lineage, stubs)
			chain = append(chain, sub...)
		}
	}

	if !selfEmitted {
		emitSelf()
	}
	return chain, visited
}

// stubbed returns the paths excluded by n's stub children: each target and
// everything below it.
func stubbed(n *Node) []string {
	var paths []string
	for _, child := range n.Children {
		if child.Directive != DirectiveStub {
			continue
		}
		child.Walk(func(node *Node, _ int) bool {
			paths = append(paths, node.AbsolutePath)
			return true
		})
	}
	return paths
}
