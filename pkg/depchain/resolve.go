// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"io"
	"log/slog"
	"path"
	"strings"
)

type (
	// Resolved is the identity of one located file.
	Resolved struct {
		// LogicalPath is the requested logical path with the resolved file's
		// extension (and index/main suffix) appended.
		LogicalPath string
		// AbsolutePath is the file location exactly as the Source reported it.
		AbsolutePath string
	}

	// resolver bundles everything one resolution call needs. It holds no
	// per-call state and may be shared by concurrent calls.
	resolver struct {
		src       Source
		manifests []string
		logger    *slog.Logger
	}
)

func newResolver(src Source, manifests []string, logger *slog.Logger) *resolver {
	if len(manifests) == 0 {
		manifests = []string{DefaultManifestFile}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &resolver{src: src, manifests: manifests, logger: logger}
}

// resolve locates logical by trying, in order: the path itself, the main
// entries of a package manifest inside it, and an index file inside it.
func (r *resolver) resolve(logical string) (Resolved, error) {
	if abs, ok := r.src.Find(logical); ok {
		return withExtension(logical, logical, abs), nil
	}

	for _, candidate := range r.manifestCandidates(logical) {
		if abs, ok := r.src.Find(candidate); ok {
			r.logger.Debug("resolved through manifest", "logical", logical, "main", candidate)
			return withExtension(logical, candidate, abs), nil
		}
	}

	index := logical + "/index"
	if abs, ok := r.src.Find(index); ok {
		r.logger.Debug("resolved through index", "logical", logical)
		return withExtension(logical, index, abs), nil
	}

	return Resolved{}, &UnresolvedPathError{LogicalPath: logical, Extensions: r.src.Extensions()}
}

// manifestCandidates returns the cleaned logical paths named by the main
// field of the first readable manifest inside logical. Manifest problems are
// logged and treated as "no manifest".
func (r *resolver) manifestCandidates(logical string) []string {
	for _, name := range r.manifests {
		abs, ok := r.src.Find(logical + "/" + name)
		if !ok {
			continue
		}

		data, err := r.src.ReadFile(abs)
		if err != nil {
			r.logger.Debug("ignoring unreadable manifest", "path", abs, "error", err)
			continue
		}

		entries, err := parseManifest(data, abs)
		if err != nil {
			r.logger.Debug("ignoring manifest", "path", abs, "error", err)
			continue
		}

		candidates := make([]string, 0, len(entries))
		for _, entry := range entries {
			candidates = append(candidates, cleanLogical(logical+"/"+entry))
		}
		return candidates
	}
	return nil
}

// withExtension derives the logical path of a resolved file. matched is the
// logical candidate the Source found; whatever follows it in the absolute path
// (typically the extension) is appended to it. Separators in abs are
// normalized first so Windows-style paths work the same way.
func withExtension(requested, matched, abs string) Resolved {
	normalized := strings.ReplaceAll(abs, `\`, "/")

	suffix := ""
	if base, want := path.Base(normalized), path.Base(matched); strings.HasPrefix(base, want) {
		suffix = base[len(want):]
	} else if i := strings.LastIndex(normalized, matched); i >= 0 {
		suffix = normalized[i+len(matched):]
	}

	logical := matched + suffix
	if logical == "" {
		logical = requested
	}
	return Resolved{LogicalPath: logical, AbsolutePath: abs}
}
