// SPDX-License-Identifier: MPL-2.0

// Package dag orders files by their require edges and reports require cycles.
// A chain resolves even when files require each other in a loop, but the
// resulting load order then depends on which file was the entry point; the
// check command uses this package to surface such loops.
package dag

import (
	"fmt"
	"slices"
	"strings"
)

type (
	// CycleError indicates that the graph contains a cycle, preventing topological ordering.
	CycleError struct {
		// Cycle is a closed path: the first node is repeated at the end.
		Cycle []string
	}

	// Graph is a directed graph for topological sorting.
	// An edge from A to B means A must load before B.
	Graph struct {
		adjacency map[string][]string
		// nodes tracks all nodes in insertion order for deterministic output.
		nodes   []string
		nodeSet map[string]bool
	}
)

func (e *CycleError) Error() string {
	return fmt.Sprintf("require cycle detected: %s", strings.Join(e.Cycle, " -> "))
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		adjacency: make(map[string][]string),
		nodeSet:   make(map[string]bool),
	}
}

// AddNode adds a node to the graph. If the node already exists, this is a no-op.
func (g *Graph) AddNode(name string) {
	if g.nodeSet[name] {
		return
	}
	g.nodeSet[name] = true
	g.nodes = append(g.nodes, name)
}

// AddEdge adds a directed edge from -> to. Both nodes are implicitly added.
// Repeated edges are stored once.
func (g *Graph) AddEdge(from, to string) {
	g.AddNode(from)
	g.AddNode(to)
	if !slices.Contains(g.adjacency[from], to) {
		g.adjacency[from] = append(g.adjacency[from], to)
	}
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// TopologicalSort returns a valid load order using Kahn's algorithm.
// Returns a CycleError naming one concrete cycle if the graph has any.
// Nodes at the same topological level keep their insertion order.
func (g *Graph) TopologicalSort() ([]string, error) {
	if len(g.nodes) == 0 {
		return nil, nil
	}

	inDegree := make(map[string]int, len(g.nodes))
	for _, neighbors := range g.adjacency {
		for _, neighbor := range neighbors {
			inDegree[neighbor]++
		}
	}

	queue := make([]string, 0)
	for _, node := range g.nodes {
		if inDegree[node] == 0 {
			queue = append(queue, node)
		}
	}

	result := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		result = append(result, node)

		for _, neighbor := range g.adjacency[node] {
			inDegree[neighbor]--
			if inDegree[neighbor] == 0 {
				queue = append(queue, neighbor)
			}
		}
	}

	if len(result) != len(g.nodes) {
		cycles := g.Cycles()
		return nil, &CycleError{Cycle: cycles[0]}
	}

	return result, nil
}

// Cycles returns one closed path per back edge found by a depth-first search
// that starts from each node in insertion order. Every cycle in the graph
// shares at least one node with a reported path. The result is nil for an
// acyclic graph.
func (g *Graph) Cycles() [][]string {
	const (
		unvisited = iota
		onStack
		done
	)

	state := make(map[string]int, len(g.nodes))
	var (
		stack  []string
		cycles [][]string
		visit  func(node string)
	)

	visit = func(node string) {
		state[node] = onStack
		stack = append(stack, node)

		for _, next := range g.adjacency[node] {
			switch state[next] {
			case unvisited:
				visit(next)
			case onStack:
				start := slices.Index(stack, next)
				cycle := append(slices.Clone(stack[start:]), next)
				cycles = append(cycles, cycle)
			}
		}

		stack = stack[:len(stack)-1]
		state[node] = done
	}

	for _, node := range g.nodes {
		if state[node] == unvisited {
			visit(node)
		}
	}
	return cycles
}
