// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"path/filepath"
	"testing"

	"github.com/sprocketschain/sprocketschain/internal/testutil"
)

const fixtureRoot = "/spec"

// fixtureFiles lays out three search roots. fixtures2 only supplies four.js
// and fixtures3 only supplies manifest-resolved packages, so a test can tell
// which root a file came from.
var fixtureFiles = map[string]string{
	"fixtures/one.js": "//= require four\n" +
		"//= require_self\n" +
		"//= require_directory ./two\n" +
		"//= require_tree ./five\n" +
		"//= stub ./five/six/eight-stub\n" +
		"\n" +
		"var one = 1;\n",
	"fixtures/two/two.js":               "//= require ./three\n",
	"fixtures/two/three.coffee":         "three = 3\n",
	"fixtures/two/notes.txt":            "not an asset\n",
	"fixtures/two/nested/ignored.js":    "",
	"fixtures/five/six/eight-stub.js":   "var stubbed = true;\n",
	"fixtures/five/six/seven.js.coffee": "seven = 7\n",
	"fixtures/five/six/six.js":          "//= include ./seven.js\n",
	"fixtures/eight/eight.coffee":       "eight = 8\n",
	"fixtures/nine/index.js":            "",
	"fixtures/bad_eoln.js":              "//= require five/six/six\r\n//= require four\r\n",
	"fixtures/multi.js":                 "//= require ten/one\n//= require ten/two\n//= require ten/three\n",
	"fixtures/ten/one.js":               "",
	"fixtures/ten/two.js":               "//= require ./one\n",
	"fixtures/ten/three.js":             "//= require ./one\n//= require ./two\n",
	"fixtures/eleven/one.js":            "//= require_tree ./\n",
	"fixtures/eleven/two.js":            "",
	"fixtures2/four.js":                 "//= require eight/eight\n",
	"fixtures3/twelve/bower.json":       `{"name": "twelve", "main": "one.js"}`,
	"fixtures3/twelve/one.js":           "",
	"fixtures3/thirteen/bower.json":     `{"main": ["./missing.js", "one.js"]}`,
	"fixtures3/thirteen/one.js":         "",
	"fixtures4/assets/sub1/one.js":      "//= require_tree ../sub2\n",
	"fixtures4/vendor/sub2/two.js":      "",
	"fixtures4/vendor/sub2/deeper/x.js": "",
}

func newFixtureEnv(t *testing.T, opts ...Option) *Environment {
	t.Helper()
	tr := testutil.NewMemTrail(t, fixtureRoot, fixtureFiles, "fixtures", "fixtures2", "fixtures3")
	return NewEnvironment(tr, opts...)
}

// newEnv builds an environment over a single search root holding files.
func newEnv(t *testing.T, files map[string]string, opts ...Option) *Environment {
	t.Helper()
	tr := testutil.NewMemTrail(t, "/work", files, "assets")
	return NewEnvironment(tr, opts...)
}

func fixturePath(dir, rel string) string {
	return filepath.Join(fixtureRoot, dir, filepath.FromSlash(rel))
}

func assetPath(rel string) string {
	return filepath.Join("/work/assets", filepath.FromSlash(rel))
}
