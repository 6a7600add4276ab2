// Package normalize strips the incidental indentation that documentation
// comment formatting adds to embedded text.
package normalize

import "strings"

// shallowIndent is the deepest indent still treated as author whitespace
// when the text starts on the same line as its opening tag.
const shallowIndent = 4

// Lines splits raw into lines and removes the common indentation.
//
// A blank first and last line are dropped. The indentation of the first
// remaining line is stripped from every line, stopping early at the first
// non-whitespace character. When the raw text starts with content on its
// first line (not a tab) and that indentation is at most four columns, it
// is kept as written. Lines shorter than the indentation become empty. With
// keepEmpty unset, empty lines are removed from the result.
func Lines(raw string, keepEmpty bool) []string {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return nil
	}
	first := lines[0]

	if isBlank(lines[0]) {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return nil
	}
	if isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}

	indent := leadingSpace(lines[0])
	if indent <= shallowIndent && !isBlank(first) && first[0] != '\t' {
		indent = 0
	}

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		switch {
		case line == "":
		case len(line) < indent:
			line = ""
		default:
			line = trimIndent(line, indent)
		}
		if line == "" && !keepEmpty {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Join normalizes raw and joins the resulting lines with sep.
func Join(raw, sep string, keepEmpty bool) string {
	return strings.Join(Lines(raw, keepEmpty), sep)
}

// Prose normalizes free-form text. Empty lines are dropped and the rest are
// joined with a space, or with a newline when keepNewLines is set.
func Prose(raw string, keepNewLines bool) string {
	sep := " "
	if keepNewLines {
		sep = "\n"
	}
	return Join(raw, sep, false)
}

// Code normalizes a source code block, keeping empty lines.
func Code(raw string) string {
	return Join(raw, "\n", true)
}

func splitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	return strings.Split(raw, "\n")
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func leadingSpace(s string) int {
	n := 0
	for n < len(s) && isSpaceByte(s[n]) {
		n++
	}
	return n
}

// trimIndent removes up to n leading whitespace characters.
func trimIndent(line string, n int) string {
	i := 0
	for i < len(line) && i < n && isSpaceByte(line[i]) {
		i++
	}
	return line[i:]
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r'
}
