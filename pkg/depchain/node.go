// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"fmt"
	"path"
	"path/filepath"
	"regexp"
	"slices"
)

// relativePattern matches ".", "./..." and "../...".
var relativePattern = regexp.MustCompile(`^\.($|\.?/)`)

// Node is one resolved file in a dependency tree. LogicalPath and
// AbsolutePath never change after construction. The same file can appear as
// several nodes when it is reached through different branches.
type Node struct {
	LogicalPath  string    `json:"logical_path" toml:"logical_path"`
	AbsolutePath string    `json:"absolute_path" toml:"absolute_path"`
	Directive    Directive `json:"directive" toml:"directive"`
	Children     []*Node   `json:"children,omitempty" toml:"children,omitempty"`
}

// String returns "<directive> <logical path>".
func (n *Node) String() string {
	return n.Directive.String() + " " + n.LogicalPath
}

// Walk calls fn for n and every descendant in depth-first order, passing the
// depth (0 for n). Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// IsRelative reports whether p is ".", or starts with "./" or "../".
func IsRelative(p string) bool {
	return relativePattern.MatchString(p)
}

func (r *resolver) newNode(logical string, directive Directive) (*Node, error) {
	res, err := r.resolve(logical)
	if err != nil {
		return nil, err
	}
	return &Node{LogicalPath: res.LogicalPath, AbsolutePath: res.AbsolutePath, Directive: directive}, nil
}

// descriptors reads n's file and interprets its directives.
func (r *resolver) descriptors(n *Node) ([]Descriptor, error) {
	content, err := r.src.ReadFile(n.AbsolutePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", n.LogicalPath, err)
	}
	return r.interpret(n, ParseRequires(content))
}

// interpret turns raw directive strings into descriptors. Unknown keywords
// are skipped.
func (r *resolver) interpret(n *Node, requires []string) ([]Descriptor, error) {
	var deps []Descriptor
	for _, raw := range requires {
		keyword, arg := splitDirective(raw)
		directive, ok := ParseDirective(keyword)
		if !ok {
			r.logger.Debug("skipping unknown directive", "file", n.LogicalPath, "directive", keyword)
			continue
		}
		if directive.TakesPath() && arg == "" {
			return nil, &InvalidDirectiveArgumentError{Directive: directive, Resource: n.LogicalPath}
		}

		switch directive {
		case DirectiveRequire, DirectiveInclude, DirectiveStub:
			deps = append(deps, Descriptor{Directive: directive, LogicalPath: n.resolveRelative(arg)})
		case DirectiveRequireSelf:
			deps = append(deps, Descriptor{Directive: directive, LogicalPath: n.LogicalPath})
		case DirectiveRequireDirectory, DirectiveRequireTree:
			if !IsRelative(arg) {
				return nil, &InvalidDirectiveArgumentError{Directive: directive, Argument: arg, Resource: n.LogicalPath}
			}
			paths, err := r.expand(n, arg, directive == DirectiveRequireTree)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				deps = append(deps, Descriptor{Directive: directive, LogicalPath: p})
			}
		case DirectiveRoot:
			// not a keyword
		}
	}
	return deps, nil
}

// resolveRelative joins a relative argument to the directory of n's logical
// path. Other arguments already are logical paths.
func (n *Node) resolveRelative(arg string) string {
	if IsRelative(arg) {
		return path.Join(path.Dir(n.LogicalPath), arg)
	}
	return arg
}

// expand lists the logical paths of the files inside dir (relative to n),
// in directory listing order. With recursive set, subdirectories are
// descended into at the position they are listed.
func (r *resolver) expand(n *Node, dir string, recursive bool) ([]string, error) {
	logicalDir := path.Join(path.Dir(n.LogicalPath), dir)
	fullDir, err := r.locateDir(n, dir, logicalDir)
	if err != nil {
		return nil, err
	}

	entries, err := r.src.Entries(fullDir)
	if err != nil {
		return nil, err
	}

	extensions := r.src.Extensions()
	var paths []string
	for _, entry := range entries {
		isDir, err := r.src.IsDir(filepath.Join(fullDir, entry))
		if err != nil {
			return nil, fmt.Errorf("failed to inspect %s: %w", filepath.Join(fullDir, entry), err)
		}

		if isDir {
			if !recursive {
				continue
			}
			nested, err := r.expand(n, path.Join(dir, entry), true)
			if err != nil {
				return nil, err
			}
			paths = append(paths, nested...)
			continue
		}

		if slices.Contains(extensions, filepath.Ext(entry)) {
			paths = append(paths, path.Join(logicalDir, entry))
		}
	}
	return paths, nil
}

// locateDir finds dir next to n's file first and then, for directories that
// live under another search root, through the Source.
func (r *resolver) locateDir(n *Node, dir, logicalDir string) (string, error) {
	local := filepath.Join(filepath.Dir(n.AbsolutePath), filepath.FromSlash(dir))
	isDir, err := r.src.IsDir(local)
	if err != nil {
		return "", fmt.Errorf("failed to inspect %s: %w", local, err)
	}
	if isDir {
		return local, nil
	}
	if found, ok := r.src.FindDirectory(logicalDir); ok {
		return found, nil
	}
	return "", &UnresolvedPathError{LogicalPath: logicalDir, Extensions: r.src.Extensions()}
}
