// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
)

func TestMustSetenv_Restores(t *testing.T) {
	const key = "SPROCKETS_CHAIN_TESTUTIL_PROBE"
	restoreOuter := MustUnsetenv(t, key)
	defer restoreOuter()

	restore := MustSetenv(t, key, "value")
	if got := os.Getenv(key); got != "value" {
		t.Fatalf("Getenv(%q) = %q, want %q", key, got, "value")
	}
	restore()

	if _, ok := os.LookupEnv(key); ok {
		t.Errorf("%s still set after restore", key)
	}
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	WriteFiles(t, fsys, "/assets", map[string]string{
		"app.js":        "//= require lib\n",
		"lib/util.js":   "",
		"empty/":        "",
		"deep/a/b/c.js": "c",
	})

	data, err := afero.ReadFile(fsys, "/assets/app.js")
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "//= require lib\n" {
		t.Errorf("app.js = %q", data)
	}

	if isDir, err := afero.IsDir(fsys, "/assets/empty"); err != nil || !isDir {
		t.Errorf("IsDir(/assets/empty) = %v, %v; want true, nil", isDir, err)
	}
	if ok, _ := afero.Exists(fsys, "/assets/deep/a/b/c.js"); !ok {
		t.Error("nested file was not written")
	}
}

func TestNewMemTrail(t *testing.T) {
	t.Parallel()

	tr := NewMemTrail(t, "/project", map[string]string{"assets/app.js": ""}, "assets")
	if abs, ok := tr.Find("app.js"); !ok || abs != "/project/assets/app.js" {
		t.Errorf("Find(app.js) = %q, %v", abs, ok)
	}
}
