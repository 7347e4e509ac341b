// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"encoding/json"
	"testing"
)

func TestParseDirective(t *testing.T) {
	t.Parallel()

	for _, d := range []Directive{
		DirectiveRequire, DirectiveInclude, DirectiveRequireSelf,
		DirectiveRequireDirectory, DirectiveRequireTree, DirectiveStub,
	} {
		got, ok := ParseDirective(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirective(%q) = %v, %v; want %v, true", d.String(), got, ok, d)
		}
	}

	for _, keyword := range []string{"root", "require_css", ""} {
		if _, ok := ParseDirective(keyword); ok {
			t.Errorf("ParseDirective(%q) accepted an unknown keyword", keyword)
		}
	}
}

func TestDirective_TakesPath(t *testing.T) {
	t.Parallel()

	if DirectiveRequireSelf.TakesPath() || DirectiveRoot.TakesPath() {
		t.Error("require_self and root must not take a path")
	}
	if !DirectiveRequireTree.TakesPath() || !DirectiveStub.TakesPath() {
		t.Error("require_tree and stub must take a path")
	}
}

func TestNode_MarshalJSON(t *testing.T) {
	t.Parallel()

	n := &Node{LogicalPath: "a.js", AbsolutePath: "/x/a.js", Directive: DirectiveInclude}
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("json.Marshal() error: %v", err)
	}
	want := `{"logical_path":"a.js","absolute_path":"/x/a.js","directive":"include"}`
	if string(data) != want {
		t.Errorf("json.Marshal() = %s, want %s", data, want)
	}
}
