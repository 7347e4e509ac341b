// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ExpandPath expands $VAR and ${VAR} references the way a shell would inside
// double quotes, and a leading "~" to the user's home directory. env resolves
// variables; nil means the process environment. Command substitution is not
// supported.
func ExpandPath(p string, env func(string) string) (string, error) {
	if env == nil {
		env = os.Getenv
	}

	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home := env("HOME")
		if home == "" {
			var err error
			if home, err = os.UserHomeDir(); err != nil {
				return "", fmt.Errorf("failed to expand %q: %w", p, err)
			}
		}
		p = filepath.Join(home, p[1:])
	}

	expanded, err := shell.Expand(p, env)
	if err != nil {
		return "", fmt.Errorf("failed to expand %q: %w", p, err)
	}
	return expanded, nil
}

// ExpandedSearchPaths returns SearchPaths with ExpandPath applied to each
// entry. Entries that expand to nothing are dropped.
func (c *Config) ExpandedSearchPaths(env func(string) string) ([]string, error) {
	out := make([]string, 0, len(c.SearchPaths))
	for _, p := range c.SearchPaths {
		expanded, err := ExpandPath(p, env)
		if err != nil {
			return nil, err
		}
		if expanded != "" {
			out = append(out, expanded)
		}
	}
	return out, nil
}
