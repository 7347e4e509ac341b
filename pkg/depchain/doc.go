// SPDX-License-Identifier: MPL-2.0

// Package depchain resolves Sprockets-style asset dependencies.
//
// Assets declare their dependencies in directive comments at the top of the
// file:
//
//	//= require jquery
//	//= require_self
//	//= require_tree ./widgets
//
// The package locates each referenced file through a Source (normally a
// *trail.Trail), builds a dependency tree of Nodes, and flattens that tree into
// a chain: an ordered list of absolute paths in which every file appears after
// all of its dependencies.
//
// File organization:
//   - directive.go: the closed set of directives and dependency descriptors
//   - header.go: extraction of raw directives from a file's leading comments
//   - resolve.go, manifest.go: logical path to absolute path resolution
//   - node.go: directive interpretation and directory expansion
//   - tree.go: recursive tree construction
//   - linearize.go, pathset.go: tree to chain flattening
//   - environment.go: the public entry points
package depchain
