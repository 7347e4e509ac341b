// SPDX-License-Identifier: MPL-2.0

package depchain

const (
	// DirectiveRoot tags the entry point of a resolution call.
	DirectiveRoot Directive = iota
	// DirectiveRequire emits the dependency once, before the requiring file.
	DirectiveRequire
	// DirectiveInclude emits the dependency every time it is reached.
	DirectiveInclude
	// DirectiveRequireSelf places the requiring file itself at this position.
	DirectiveRequireSelf
	// DirectiveRequireDirectory requires every matching file directly inside a directory.
	DirectiveRequireDirectory
	// DirectiveRequireTree requires every matching file under a directory, recursively.
	DirectiveRequireTree
	// DirectiveStub excludes the dependency and its dependencies from the subtree.
	DirectiveStub
)

type (
	// Directive records how a node was reached from its parent.
	Directive int

	// Descriptor is a parsed but not yet resolved dependency.
	Descriptor struct {
		Directive   Directive
		LogicalPath string
	}
)

var directiveKeywords = map[string]Directive{
	"require":           DirectiveRequire,
	"include":           DirectiveInclude,
	"require_self":      DirectiveRequireSelf,
	"require_directory": DirectiveRequireDirectory,
	"require_tree":      DirectiveRequireTree,
	"stub":              DirectiveStub,
}

// ParseDirective maps a directive keyword to its Directive. "root" is not a
// keyword a file can use.
func ParseDirective(keyword string) (Directive, bool) {
	d, ok := directiveKeywords[keyword]
	return d, ok
}

// String returns the keyword spelling of the directive.
func (d Directive) String() string {
	switch d {
	case DirectiveRoot:
		return "root"
	case DirectiveRequire:
		return "require"
	case DirectiveInclude:
		return "include"
	case DirectiveRequireSelf:
		return "require_self"
	case DirectiveRequireDirectory:
		return "require_directory"
	case DirectiveRequireTree:
		return "require_tree"
	case DirectiveStub:
		return "stub"
	default:
		return "unknown"
	}
}

// TakesPath reports whether the directive needs a path argument.
func (d Directive) TakesPath() bool {
	switch d {
	case DirectiveRequire, DirectiveInclude, DirectiveStub, DirectiveRequireDirectory, DirectiveRequireTree:
		return true
	case DirectiveRoot, DirectiveRequireSelf:
		return false
	default:
		return false
	}
}

// MarshalText lets directives appear by name in JSON and TOML output.
func (d Directive) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
