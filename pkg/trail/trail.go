// SPDX-License-Identifier: MPL-2.0

// Package trail locates asset files by logical path. A Trail holds an ordered
// list of search roots and an ordered list of file extensions; Find returns the
// first regular file that matches a logical path in the first root that has one.
//
// All filesystem access goes through an afero.Fs so that callers (and tests)
// can swap the real disk for an in-memory tree.
package trail

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

type (
	// Trail is an ordered set of search roots plus an ordered set of
	// recognized extensions. It is safe for concurrent readers; mutations
	// (Append*/Prepend*) are expected to happen before resolution starts.
	Trail struct {
		fs   afero.Fs
		root string

		mu         sync.RWMutex
		paths      []string
		extensions []string
	}
)

// New creates a Trail rooted at root. Relative search paths added later are
// interpreted against root.
func New(fsys afero.Fs, root string) (*Trail, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if root == "" {
		root = "."
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve trail root: %w", err)
	}

	return &Trail{fs: fsys, root: absRoot}, nil
}

// Root returns the absolute directory relative search paths are joined to.
func (t *Trail) Root() string { return t.root }

// Fs returns the filesystem backing the trail.
func (t *Trail) Fs() afero.Fs { return t.fs }

// AppendPaths adds search roots with the lowest precedence.
func (t *Trail) AppendPaths(paths ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths = appendUnique(t.paths, t.absPaths(paths)...)
}

// PrependPaths adds search roots with the highest precedence, keeping their
// relative order.
func (t *Trail) PrependPaths(paths ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.paths = prependUnique(t.paths, t.absPaths(paths)...)
}

// AppendExtensions adds extensions with the lowest precedence. A missing
// leading dot is added.
func (t *Trail) AppendExtensions(exts ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.extensions = appendUnique(t.extensions, normalizeExtensions(exts)...)
}

// PrependExtensions adds extensions with the highest precedence.
func (t *Trail) PrependExtensions(exts ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.extensions = prependUnique(t.extensions, normalizeExtensions(exts)...)
}

// Paths returns a copy of the search roots in precedence order.
func (t *Trail) Paths() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.paths...)
}

// Extensions returns a copy of the recognized extensions in precedence order.
func (t *Trail) Extensions() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]string(nil), t.extensions...)
}

// Find returns the absolute path of the first regular file matching logical.
// For each root in order it tries the logical path as given and then the
// logical path with each extension appended.
func (t *Trail) Find(logical string) (string, bool) {
	if logical == "" {
		return "", false
	}

	if filepath.IsAbs(logical) {
		return t.firstFile(filepath.Clean(logical))
	}

	clean := path.Clean(filepath.ToSlash(logical))
	if clean == "." || strings.HasPrefix(clean, "../") {
		return "", false
	}

	for _, root := range t.Paths() {
		if abs, ok := t.firstFile(filepath.Join(root, filepath.FromSlash(clean))); ok {
			return abs, true
		}
	}
	return "", false
}

// FindDirectory returns the first search root entry that is a directory
// named by logical.
func (t *Trail) FindDirectory(logical string) (string, bool) {
	clean := path.Clean(filepath.ToSlash(logical))
	if strings.HasPrefix(clean, "../") || clean == ".." {
		return "", false
	}
	for _, root := range t.Paths() {
		candidate := filepath.Join(root, filepath.FromSlash(clean))
		if isDir, err := t.IsDir(candidate); err == nil && isDir {
			return candidate, true
		}
	}
	return "", false
}

// Entries lists the names inside dir, sorted, skipping hidden files and editor
// backups. A missing directory yields no entries.
func (t *Trail) Entries(dir string) ([]string, error) {
	infos, err := afero.ReadDir(t.fs, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "#") || strings.HasSuffix(name, "~") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// IsDir reports whether abs names an existing directory.
func (t *Trail) IsDir(abs string) (bool, error) {
	info, err := t.fs.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// ReadFile returns the content of the file at abs.
func (t *Trail) ReadFile(abs string) ([]byte, error) {
	data, err := afero.ReadFile(t.fs, abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", abs, err)
	}
	return data, nil
}

func (t *Trail) firstFile(base string) (string, bool) {
	if t.isFile(base) {
		return base, true
	}
	for _, ext := range t.Extensions() {
		if candidate := base + ext; t.isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (t *Trail) isFile(abs string) bool {
	info, err := t.fs.Stat(abs)
	return err == nil && info.Mode().IsRegular()
}

func (t *Trail) absPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(t.root, p)
		}
		out = append(out, filepath.Clean(p))
	}
	return out
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		if !slices.Contains(list, item) {
			list = append(list, item)
		}
	}
	return list
}

// prependUnique moves already-present items to the front instead of
// duplicating them.
func prependUnique(list []string, items ...string) []string {
	front := make([]string, 0, len(items))
	for _, item := range items {
		if !slices.Contains(front, item) {
			front = append(front, item)
		}
	}
	rest := make([]string, 0, len(list))
	for _, item := range list {
		if !slices.Contains(front, item) {
			rest = append(rest, item)
		}
	}
	return append(front, rest...)
}
