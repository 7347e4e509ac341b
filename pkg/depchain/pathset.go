// SPDX-License-Identifier: MPL-2.0

package depchain

// flattenDepth bounds how many layers a lookup walks before with() copies
// the layers into a single one.
const flattenDepth = 32

// pathSet is an immutable set of absolute paths. with() returns a new set
// layered over the receiver; the receiver and every other set sharing its
// layers are left untouched, so sibling branches of a traversal never see each
// other's additions. A nil *pathSet is the empty set.
type pathSet struct {
	parent  *pathSet
	members map[string]struct{}
	depth   int
}

func (s *pathSet) has(p string) bool {
	for layer := s; layer != nil; layer = layer.parent {
		if _, ok := layer.members[p]; ok {
			return true
		}
	}
	return false
}

func (s *pathSet) with(paths ...string) *pathSet {
	var members map[string]struct{}
	for _, p := range paths {
		if s.has(p) {
			continue
		}
		if members == nil {
			members = make(map[string]struct{}, len(paths))
		}
		members[p] = struct{}{}
	}
	if members == nil {
		return s
	}

	next := &pathSet{parent: s, members: members, depth: s.layers() + 1}
	if next.depth > flattenDepth {
		return next.flatten()
	}
	return next
}

func (s *pathSet) layers() int {
	if s == nil {
		return 0
	}
	return s.depth
}

func (s *pathSet) flatten() *pathSet {
	all := make(map[string]struct{})
	for layer := s; layer != nil; layer = layer.parent {
		for p := range layer.members {
			all[p] = struct{}{}
		}
	}
	return &pathSet{members: all, depth: 1}
}
