// SPDX-License-Identifier: MPL-2.0

package dag

import (
	"errors"
	"slices"
	"testing"
)

func graphOf(edges ...[2]string) *Graph {
	g := New()
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func TestTopologicalSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		graph *Graph
		want  []string
	}{
		{"empty", New(), nil},
		{"linear", graphOf([2]string{"jquery.js", "plugin.js"}, [2]string{"plugin.js", "app.js"}), []string{"jquery.js", "plugin.js", "app.js"}},
		{"duplicate edges", graphOf([2]string{"a.js", "b.js"}, [2]string{"a.js", "b.js"}), []string{"a.js", "b.js"}},
		{
			"diamond keeps insertion order per level",
			graphOf(
				[2]string{"base.js", "left.js"},
				[2]string{"base.js", "right.js"},
				[2]string{"left.js", "app.js"},
				[2]string{"right.js", "app.js"},
			),
			[]string{"base.js", "left.js", "right.js", "app.js"},
		},
		{"disconnected", graphOf([2]string{"a.js", "b.js"}, [2]string{"x.js", "y.js"}), []string{"a.js", "x.js", "b.js", "y.js"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.graph.TopologicalSort()
			if err != nil {
				t.Fatalf("TopologicalSort() error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("TopologicalSort() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		graph *Graph
		want  []string
	}{
		{"self loop", graphOf([2]string{"a.js", "a.js"}), []string{"a.js", "a.js"}},
		{"pair", graphOf([2]string{"a.js", "b.js"}, [2]string{"b.js", "a.js"}), []string{"a.js", "b.js", "a.js"}},
		{
			"cycle behind a tail",
			graphOf([2]string{"entry.js", "a.js"}, [2]string{"a.js", "b.js"}, [2]string{"b.js", "c.js"}, [2]string{"c.js", "a.js"}),
			[]string{"a.js", "b.js", "c.js", "a.js"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tt.graph.TopologicalSort()
			var cycleErr *CycleError
			if !errors.As(err, &cycleErr) {
				t.Fatalf("TopologicalSort() error = %v, want *CycleError", err)
			}
			if !slices.Equal(cycleErr.Cycle, tt.want) {
				t.Errorf("Cycle = %v, want %v", cycleErr.Cycle, tt.want)
			}
		})
	}
}

func TestCycles(t *testing.T) {
	t.Parallel()

	g := graphOf(
		[2]string{"a.js", "b.js"},
		[2]string{"b.js", "a.js"},
		[2]string{"b.js", "c.js"},
		[2]string{"c.js", "d.js"},
		[2]string{"d.js", "c.js"},
		[2]string{"e.js", "a.js"},
	)

	got := g.Cycles()
	want := [][]string{{"a.js", "b.js", "a.js"}, {"c.js", "d.js", "c.js"}}
	if !slices.EqualFunc(got, want, slices.Equal[[]string]) {
		t.Errorf("Cycles() = %v, want %v", got, want)
	}

	if cycles := graphOf([2]string{"a.js", "b.js"}).Cycles(); cycles != nil {
		t.Errorf("Cycles() on an acyclic graph = %v, want nil", cycles)
	}
}

func TestGraph_Nodes(t *testing.T) {
	t.Parallel()

	g := New()
	g.AddNode("z.js")
	g.AddEdge("a.js", "z.js")
	g.AddNode("a.js")

	if got := g.Nodes(); !slices.Equal(got, []string{"z.js", "a.js"}) {
		t.Errorf("Nodes() = %v", got)
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d, want 2", g.Len())
	}
}

func TestCycleError_Message(t *testing.T) {
	t.Parallel()

	err := &CycleError{Cycle: []string{"a.js", "b.js", "a.js"}}
	if want := "require cycle detected: a.js -> b.js -> a.js"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
