// SPDX-License-Identifier: MPL-2.0

package trail

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"
)

func newTestTrail(t *testing.T, files ...string) *Trail {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, f := range files {
		full := filepath.Join("/root", filepath.FromSlash(f))
		if f[len(f)-1] == '/' {
			if err := fsys.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("MkdirAll(%s) error: %v", full, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll(%s) error: %v", filepath.Dir(full), err)
		}
		if err := afero.WriteFile(fsys, full, []byte(f), 0o644); err != nil {
			t.Fatalf("WriteFile(%s) error: %v", full, err)
		}
	}

	tr, err := New(fsys, "/root")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return tr
}

func TestTrail_Find(t *testing.T) {
	t.Parallel()

	tr := newTestTrail(t,
		"a/one.js",
		"a/one.coffee",
		"b/one.coffee",
		"b/two.coffee",
		"b/lib.js/",
		"b/lib.js.coffee",
		"a/dir/",
	)
	tr.AppendPaths("a", "b")
	tr.AppendExtensions("js", ".coffee")

	tests := []struct {
		logical string
		want    string
		wantOK  bool
	}{
		{"one", "/root/a/one.js", true},
		{"one.coffee", "/root/a/one.coffee", true},
		{"two", "/root/b/two.coffee", true},
		{"lib.js", "/root/b/lib.js.coffee", true},
		{"dir", "", false},
		{"missing", "", false},
		{"", "", false},
		{".", "", false},
		{"../a/one.js", "", false},
		{"/root/a/one", "/root/a/one.js", true},
		{"x/../one", "/root/a/one.js", true},
	}

	for _, tt := range tests {
		t.Run(tt.logical, func(t *testing.T) {
			t.Parallel()

			got, ok := tr.Find(tt.logical)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Find(%q) = %q, %v; want %q, %v", tt.logical, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTrail_PathsAndExtensions(t *testing.T) {
	t.Parallel()

	tr := newTestTrail(t)
	tr.AppendPaths("a", "b", "a", "")
	tr.PrependPaths("/abs", "b")

	want := []string{"/abs", "/root/b", "/root/a"}
	if got := tr.Paths(); !slices.Equal(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}

	tr.AppendExtensions("js", " ", ".coffee", ".js")
	tr.PrependExtensions("css")
	wantExt := []string{".css", ".js", ".coffee"}
	if got := tr.Extensions(); !slices.Equal(got, wantExt) {
		t.Errorf("Extensions() = %v, want %v", got, wantExt)
	}

	got := tr.Paths()
	got[0] = "mutated"
	if tr.Paths()[0] != "/abs" {
		t.Error("Paths() exposed internal state")
	}
}

func TestTrail_FindDirectory(t *testing.T) {
	t.Parallel()

	tr := newTestTrail(t, "assets/sub1/one.js", "vendor/sub2/two.js")
	tr.AppendPaths("assets", "vendor")

	if got, ok := tr.FindDirectory("sub2"); !ok || got != "/root/vendor/sub2" {
		t.Errorf("FindDirectory(sub2) = %q, %v", got, ok)
	}
	if _, ok := tr.FindDirectory("sub1/one.js"); ok {
		t.Error("FindDirectory accepted a file")
	}
	if _, ok := tr.FindDirectory("../vendor"); ok {
		t.Error("FindDirectory escaped the search roots")
	}
}

func TestTrail_Entries(t *testing.T) {
	t.Parallel()

	tr := newTestTrail(t,
		"d/b.js",
		"d/a.js",
		"d/.hidden.js",
		"d/#lock.js",
		"d/backup.js~",
		"d/sub/",
	)

	got, err := tr.Entries("/root/d")
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	want := []string{"a.js", "b.js", "sub"}
	if !slices.Equal(got, want) {
		t.Errorf("Entries() = %v, want %v", got, want)
	}

	got, err = tr.Entries("/root/missing")
	if err != nil || got != nil {
		t.Errorf("Entries(missing) = %v, %v; want nil, nil", got, err)
	}
}

func TestTrail_IsDirAndReadFile(t *testing.T) {
	t.Parallel()

	tr := newTestTrail(t, "d/a.js")

	if isDir, err := tr.IsDir("/root/d"); err != nil || !isDir {
		t.Errorf("IsDir(/root/d) = %v, %v", isDir, err)
	}
	if isDir, err := tr.IsDir("/root/d/a.js"); err != nil || isDir {
		t.Errorf("IsDir(/root/d/a.js) = %v, %v", isDir, err)
	}
	if isDir, err := tr.IsDir("/root/nope"); err != nil || isDir {
		t.Errorf("IsDir(/root/nope) = %v, %v", isDir, err)
	}

	data, err := tr.ReadFile("/root/d/a.js")
	if err != nil || string(data) != "d/a.js" {
		t.Errorf("ReadFile() = %q, %v", data, err)
	}
	if _, err := tr.ReadFile("/root/nope"); err == nil {
		t.Error("ReadFile(missing) returned no error")
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	tr, err := New(nil, "")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !filepath.IsAbs(tr.Root()) {
		t.Errorf("Root() = %q, want an absolute path", tr.Root())
	}
	if _, ok := tr.Fs().(*afero.OsFs); !ok {
		t.Errorf("Fs() = %T, want *afero.OsFs", tr.Fs())
	}
}
