// SPDX-License-Identifier: MPL-2.0

package depchain

import (
	"regexp"
	"strings"
)

var (
	// directivePattern matches "//= require foo", " *= require_self */", "#= stub bar".
	directivePattern = regexp.MustCompile(`^\W*=\s*(\w+.*?)(\*/)?$`)

	lineBreak = regexp.MustCompile(`\r?\n`)
)

// ParseRequires returns the raw directive strings ("require four",
// "require_self", ...) declared in the leading comment header of content, in
// the order they appear. Directives after the first line of code are ignored.
func ParseRequires(content []byte) []string {
	var requires []string
	for _, line := range headerLines(string(content)) {
		if m := directivePattern.FindStringSubmatch(line); m != nil {
			requires = append(requires, strings.TrimSpace(m[1]))
		}
	}
	return requires
}

// headerLines returns the lines of the leading header: any mix of blank
// lines, /* */ blocks, // runs and # runs. The first other line ends it.
func headerLines(content string) []string {
	var header []string
	inBlock := false

	for _, line := range lineBreak.Split(content, -1) {
		if inBlock {
			end := strings.Index(line, "*/")
			if end < 0 {
				header = append(header, line)
				continue
			}
			inBlock = false
			header = append(header, line[:end+2])
			if strings.TrimSpace(line[end+2:]) != "" {
				return header
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			header = append(header, line)
		case strings.HasPrefix(trimmed, "//"), strings.HasPrefix(trimmed, "#"):
			header = append(header, line)
		case strings.HasPrefix(trimmed, "/*"):
			open := strings.Index(line, "/*")
			end := strings.Index(line[open+2:], "*/")
			if end < 0 {
				inBlock = true
				header = append(header, line)
				continue
			}
			closeAt := open + 2 + end + 2
			header = append(header, line[:closeAt])
			if strings.TrimSpace(line[closeAt:]) != "" {
				return header
			}
		default:
			return header
		}
	}
	return header
}

// splitDirective splits `require_directory "./two"` into its keyword and
// argument, dropping one pair of matching surrounding quotes.
func splitDirective(raw string) (keyword, argument string) {
	raw = strings.TrimSpace(raw)
	end := strings.IndexFunc(raw, func(r rune) bool { return !isWordRune(r) })
	if end < 0 {
		return raw, ""
	}
	keyword, argument = raw[:end], strings.TrimSpace(raw[end:])
	if n := len(argument); n >= 2 {
		if q := argument[0]; (q == '"' || q == '\'') && argument[n-1] == q {
			argument = argument[1 : n-1]
		}
	}
	return keyword, argument
}

func isWordRune(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
