// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	cueerrors "cuelang.org/go/cue/errors"
)

// FormatError flattens a CUE error into "<file>: <path>: <message>" lines.
// Non-CUE errors are wrapped with the file name only.
func FormatError(err error, filename string) error {
	if err == nil {
		return nil
	}

	var cueErr cueerrors.Error
	if !errors.As(err, &cueErr) {
		return fmt.Errorf("%s: %w", filename, err)
	}

	list := cueerrors.Errors(err)

	lines := make([]string, 0, len(list))
	for _, e := range list {
		field := jsonPath(cueerrors.Path(e))
		msg := e.Error()
		if field != "" {
			msg = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(msg, field), ":"))
			msg = field + ": " + msg
		}
		lines = append(lines, msg)
	}

	if len(lines) == 1 {
		return fmt.Errorf("%s: %s", filename, lines[0])
	}
	return fmt.Errorf("%s: validation failed:\n  %s", filename, strings.Join(lines, "\n  "))
}

// jsonPath renders ["search_paths", "1"] as "search_paths[1]".
func jsonPath(selectors []string) string {
	var sb strings.Builder
	for i, sel := range selectors {
		if _, err := strconv.Atoi(sel); err == nil && i > 0 {
			sb.WriteString("[" + sel + "]")
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(sel)
	}
	return sb.String()
}
