// SPDX-License-Identifier: MPL-2.0

// Package watch reports asset changes under a set of search roots.
//
// Events are debounced: everything that changes within the quiet period is
// delivered to OnChange as one sorted list of absolute paths. Only files with
// a recognized asset extension, or a package manifest name, count as changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 300 * time.Millisecond

// defaultIgnores are matched against paths relative to their search root.
var defaultIgnores = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/.*",
	"**/*~",
	"**/#*",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Roots are the search roots to watch, recursively. Roots that do not
		// exist are skipped.
		Roots []string

		// Extensions select which files count as asset changes, e.g. ".js".
		Extensions []string

		// Manifests are package manifest file names that count as changes
		// regardless of extension, e.g. "bower.json".
		Manifests []string

		// Ignore are extra doublestar patterns, relative to each root, merged
		// with the built-in ignores.
		Ignore []string

		// Debounce is the quiet period after the last event before OnChange
		// fires. Zero or negative values fall back to defaultDebounce.
		Debounce time.Duration

		// OnChange receives the changed absolute paths. A nil callback is a no-op.
		OnChange func(ctx context.Context, changed []string) error

		// Stderr receives non-fatal watcher diagnostics. nil means os.Stderr.
		Stderr io.Writer
	}

	// Watcher monitors search roots and fires a debounced callback when asset
	// files change. Run must be called exactly once.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		roots    []string
		ignores  []string
		stderr   io.Writer
		debounce time.Duration
		started  atomic.Bool
	}
)

// New creates a Watcher and registers every non-ignored directory under the
// configured roots.
func New(cfg Config) (*Watcher, error) {
	if err := validatePatterns(cfg.Ignore); err != nil {
		return nil, err
	}

	roots := make([]string, 0, len(cfg.Roots))
	for _, root := range cfg.Roots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("watch: resolve root %q: %w", root, err)
		}
		if info, err := os.Stat(abs); err != nil || !info.IsDir() {
			continue
		}
		if !slices.Contains(roots, abs) {
			roots = append(roots, abs)
		}
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("watch: none of the search roots exist: %v", cfg.Roots)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		roots:    roots,
		ignores:  append(slices.Clone(defaultIgnores), cfg.Ignore...),
		stderr:   cfg.Stderr,
		debounce: cfg.Debounce,
	}
	if w.stderr == nil {
		w.stderr = os.Stderr
	}
	if w.debounce <= 0 {
		w.debounce = defaultDebounce
	}

	for _, root := range roots {
		if err := w.addTree(root); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

// Roots returns the absolute roots being watched.
func (w *Watcher) Roots() []string { return slices.Clone(w.roots) }

// Run blocks until ctx is canceled, dispatching debounced callbacks. It
// returns nil on cancellation and an error when the watcher breaks. A
// callback that is still running when the next batch is due delays that
// batch instead of running concurrently.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return fmt.Errorf("watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending = make(map[string]struct{})
		timer   *time.Timer
		busy    atomic.Bool
	)

	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !busy.CompareAndSwap(false, true) {
			mu.Lock()
			timer.Reset(w.debounce)
			mu.Unlock()
			return
		}
		defer busy.Store(false)

		mu.Lock()
		changed := slices.Sorted(maps.Keys(pending))
		clear(pending)
		mu.Unlock()

		if len(changed) == 0 || w.cfg.OnChange == nil {
			return
		}
		if err := w.cfg.OnChange(ctx, changed); err != nil {
			fmt.Fprintf(w.stderr, "watch: %v\n", err)
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			fmt.Fprintf(w.stderr, "watch: close fsnotify: %v\n", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return fmt.Errorf("watch: fsnotify event channel closed unexpectedly")
			}
			if evt.Has(fsnotify.Create) {
				w.maybeAddTree(evt.Name)
			}
			if !w.relevant(evt.Name) {
				continue
			}

			mu.Lock()
			pending[evt.Name] = struct{}{}
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return fmt.Errorf("watch: fsnotify error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			fmt.Fprintf(w.stderr, "watch: fsnotify error: %v\n", err)
		}
	}
}

// isFatalFsnotifyError reports errors after which the watcher receives no
// further events.
func isFatalFsnotifyError(err error) bool {
	return slices.ContainsFunc(fatalErrnos, func(errno syscall.Errno) bool {
		return errors.Is(err, errno)
	})
}

// relevant reports whether a change to abs should be delivered: it must lie
// under a root, not be ignored, and carry an asset extension or a manifest
// name.
func (w *Watcher) relevant(abs string) bool {
	rel, ok := w.relative(abs)
	if !ok || w.isIgnored(rel) {
		return false
	}
	base := filepath.Base(abs)
	return slices.Contains(w.cfg.Extensions, filepath.Ext(base)) || slices.Contains(w.cfg.Manifests, base)
}

// relative returns abs relative to the first root containing it.
func (w *Watcher) relative(abs string) (string, bool) {
	for _, root := range w.roots {
		rel, err := filepath.Rel(root, abs)
		if err == nil && filepath.IsLocal(rel) {
			return rel, true
		}
	}
	return "", false
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			fmt.Fprintf(w.stderr, "watch: skipping inaccessible path %q: %v\n", path, walkErr)
			return nil //nolint:nilerr // keep watching the rest of the tree
		}
		if !d.IsDir() {
			return nil
		}
		if path != root {
			if rel, err := filepath.Rel(root, path); err == nil && w.isIgnored(rel) {
				return filepath.SkipDir
			}
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch: add directory %q: %w", path, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch: walk %s: %w", root, err)
	}
	return nil
}

// maybeAddTree starts watching a directory created after startup.
func (w *Watcher) maybeAddTree(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	rel, ok := w.relative(path)
	if !ok || w.isIgnored(rel) {
		return
	}
	if err := w.addTree(path); err != nil {
		fmt.Fprintf(w.stderr, "watch: %v\n", err)
	}
}

func (w *Watcher) isIgnored(rel string) bool {
	normalized := filepath.ToSlash(rel)
	for _, pat := range w.ignores {
		if matched, err := doublestar.Match(pat, normalized); err == nil && matched {
			return true
		}
	}
	return false
}

// DefaultIgnores returns a copy of the built-in ignore patterns.
func DefaultIgnores() []string {
	return slices.Clone(defaultIgnores)
}

func validatePatterns(patterns []string) error {
	for _, pat := range patterns {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("watch: invalid ignore pattern %q", pat)
		}
	}
	return nil
}
