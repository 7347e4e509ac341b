// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/sprocketschain/sprocketschain/pkg/cueutil"
)

// DefaultManifestFile is the package manifest consulted when a logical path
// names a directory.
const DefaultManifestFile = "bower.json"

//go:embed manifest_schema.cue
var manifestSchema string

type manifest struct {
	Main any `json:"main"`
}

// parseManifest decodes a manifest and returns its main entries in order.
func parseManifest(data []byte, filename string) ([]string, error) {
	m, err := cueutil.Decode[manifest](manifestSchema, data, "#Manifest", cueutil.WithFilename(filename))
	if err != nil {
		return nil, err
	}

	switch main := m.Main.(type) {
	case nil:
		return nil, fmt.Errorf("%s: no main entry", filename)
	case string:
		return []string{main}, nil
	case []any:
		entries := make([]string, 0, len(main))
		for _, v := range main {
			if s, ok := v.(string); ok {
				entries = append(entries, s)
			}
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%s: unsupported main entry of type %T", filename, main)
	}
}

// cleanLogical drops "." and empty segments, so "pkg/./lib//a.js" becomes
// "pkg/lib/a.js". ".." segments are kept as written.
func cleanLogical(p string) string {
	segments := strings.Split(strings.ReplaceAll(p, `\`, "/"), "/")
	kept := segments[:0]
	for _, seg := range segments {
		if seg == "" || seg == "." {
			continue
		}
		kept = append(kept, seg)
	}
	return strings.Join(kept, "/")
}
