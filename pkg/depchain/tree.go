// SPDX-License-Identifier: MPL-2.0

package depchain

// buildTree resolves n's descriptors into children and expands each child
// recursively. A child is left unexpanded when it is n itself (a file that
// requires itself, require_self, "require_tree ." from inside the tree) or
// when it already appears on the path from the root, which is how mutual
// requires terminate. The linearizer skips such nodes.
func (r *resolver) buildTree(n *Node, lineage *pathSet) error {
	descs, err := r.descriptors(n)
	if err != nil {
		return err
	}

	lineage = lineage.with(n.AbsolutePath)
	n.Children = make([]*Node, 0, len(descs))

	for _, d := range descs {
		child, err := r.newNode(d.LogicalPath, d.Directive)
		if err != nil {
			return err
		}

		switch {
		case child.AbsolutePath == n.AbsolutePath:
		case lineage.has(child.AbsolutePath):
			r.logger.Debug("dependency cycle", "from", n.LogicalPath, "to", child.LogicalPath)
		default:
			if err := r.buildTree(child, lineage); err != nil {
				return err
			}
		}
		n.Children = append(n.Children, child)
	}
	return nil
}
