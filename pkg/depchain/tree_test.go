// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveTree(t *testing.T) {
	t.Parallel()

	env := newFixtureEnv(t)

	t.Run("one.js", func(t *testing.T) {
		t.Parallel()

		tree, err := env.ResolveTree("one.js")
		if err != nil {
			t.Fatalf("ResolveTree() error: %v", err)
		}
		if tree.Directive != DirectiveRoot {
			t.Errorf("root directive = %v, want root", tree.Directive)
		}
		if got := tree.Children[0].LogicalPath; got != "four.js" {
			t.Errorf("Children[0] = %q, want four.js", got)
		}
		if got := tree.Children[1].LogicalPath; got != "one.js" {
			t.Errorf("Children[1] = %q, want one.js", got)
		}
		if got := tree.Children[0].Children[0].LogicalPath; got != "eight/eight.coffee" {
			t.Errorf("Children[0].Children[0] = %q, want eight/eight.coffee", got)
		}

		self := tree.Children[1]
		if self.Directive != DirectiveRequireSelf || len(self.Children) != 0 {
			t.Errorf("require_self child = %v with %d children, want an unexpanded require_self node", self, len(self.Children))
		}
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		tree, err := env.ResolveTree("bad_eoln.js")
		if err != nil {
			t.Fatalf("ResolveTree() error: %v", err)
		}
		if got := tree.Children[0].LogicalPath; got != "five/six/six.js" {
			t.Errorf("Children[0] = %q, want five/six/six.js", got)
		}
	})

	t.Run("unresolved dependency", func(t *testing.T) {
		t.Parallel()

		missing := newEnv(t, map[string]string{"assets/app.js": "//= require ./nope\n"})
		tree, err := missing.ResolveTree("app")
		if !errors.Is(err, ErrUnresolvedPath) {
			t.Fatalf("ResolveTree() error = %v, want ErrUnresolvedPath", err)
		}
		if tree != nil {
			t.Errorf("ResolveTree() returned a partial tree on error")
		}
	})
}

func TestResolveTree_Cycles(t *testing.T) {
	t.Parallel()

	env := newEnv(t, map[string]string{
		"assets/a.js":    "//= require ./b\n",
		"assets/b.js":    "//= require ./c\n",
		"assets/c.js":    "//= require ./a\n",
		"assets/self.js": "//= require ./self\n",
	})

	tree, err := env.ResolveTree("a")
	if err != nil {
		t.Fatalf("ResolveTree(a) error: %v", err)
	}

	var depth int
	tree.Walk(func(_ *Node, d int) bool {
		depth = max(depth, d)
		return true
	})
	if depth != 3 {
		t.Errorf("tree depth = %d, want 3 (a -> b -> c -> a, unexpanded)", depth)
	}

	back := tree.Children[0].Children[0].Children[0]
	if back.AbsolutePath != tree.AbsolutePath || len(back.Children) != 0 {
		t.Errorf("cycle back-edge = %v with %d children, want unexpanded a.js", back, len(back.Children))
	}

	self, err := env.ResolveTree("self")
	if err != nil {
		t.Fatalf("ResolveTree(self) error: %v", err)
	}
	if len(self.Children) != 1 || len(self.Children[0].Children) != 0 {
		t.Errorf("self-require was expanded")
	}
}

func TestNode_Walk(t *testing.T) {
	t.Parallel()

	tree := &Node{LogicalPath: "root", Children: []*Node{
		{LogicalPath: "a", Children: []*Node{{LogicalPath: "a1"}}},
		{LogicalPath: "b"},
	}}

	var seen []string
	tree.Walk(func(n *Node, _ int) bool {
		seen = append(seen, n.LogicalPath)
		return n.LogicalPath != "a"
	})

	want := "root,a,b"
	if got := strings.Join(seen, ","); got != want {
		t.Errorf("Walk visited %s, want %s", got, want)
	}
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	n := &Node{LogicalPath: "two/two.js", Directive: DirectiveRequireDirectory}
	if got := n.String(); got != "require_directory two/two.js" {
		t.Errorf("String() = %q", got)
	}
}
