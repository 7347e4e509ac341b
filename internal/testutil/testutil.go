// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/spf13/afero"

	"github.com/sprocketschain/sprocketschain/pkg/trail"
)

// MustSetenv sets the environment variable key to value.
// It returns a cleanup function that restores the original value (or unsets it).
// The test fails immediately if the operation fails.
func MustSetenv(t testing.TB, key, value string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		} else {
			if err := os.Unsetenv(key); err != nil {
				t.Errorf("failed to unset env %s: %v", key, err)
			}
		}
	}
}

// MustUnsetenv unsets the environment variable key.
// It returns a cleanup function that restores the original value (if any).
func MustUnsetenv(t testing.TB, key string) func() {
	t.Helper()
	originalValue, hadValue := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	return func() {
		if hadValue {
			if err := os.Setenv(key, originalValue); err != nil {
				t.Errorf("failed to restore env %s: %v", key, err)
			}
		}
	}
}

// WriteFiles creates every file in files under root, keyed by slash-separated
// path relative to root. A key ending in "/" creates an empty directory.
// Files are written in sorted key order.
func WriteFiles(t testing.TB, fsys afero.Fs, root string, files map[string]string) {
	t.Helper()
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, rel := range keys {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := fsys.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("failed to create directory %s: %v", full, err)
			}
			continue
		}
		if err := fsys.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", full, err)
		}
		if err := afero.WriteFile(fsys, full, []byte(files[rel]), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", full, err)
		}
	}
}

// NewMemTrail writes files into a fresh in-memory filesystem under root and
// returns a trail rooted there with searchPaths appended (relative to root).
// No extensions are registered.
func NewMemTrail(t testing.TB, root string, files map[string]string, searchPaths ...string) *trail.Trail {
	t.Helper()
	fsys := afero.NewMemMapFs()
	WriteFiles(t, fsys, root, files)

	tr, err := trail.New(fsys, root)
	if err != nil {
		t.Fatalf("trail.New(%q) error: %v", root, err)
	}
	tr.AppendPaths(searchPaths...)
	return tr
}
