// Package toon encodes the member index in TOON (Token-Oriented Object
// Notation), a compact tabular text format.
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/xmldoc/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// Encode converts a member index into TOON format.
func Encode(idx *model.Index) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("assembly: %s", encodeValue(idx.Assembly)))

	var memberRows [][]string
	for i := range idx.Members {
		e := &idx.Members[i]
		memberRows = append(memberRows, []string{
			e.ID,
			e.Kind,
			fmt.Sprintf("%.4f", e.Rank),
			e.Summary,
		})
	}
	parts = append(parts, formatTabular("members", []string{"id", "kind", "rank", "summary"}, memberRows))

	var refRows [][]string
	for i := range idx.References {
		r := &idx.References[i]
		refRows = append(refRows, []string{
			r.Source,
			r.Target,
			strings.Join(r.Via, " "),
		})
	}
	parts = append(parts, formatTabular("references", []string{"source", "target", "via"}, refRows))

	if len(idx.Sites) > 0 {
		var siteRows [][]string
		for i := range idx.Sites {
			s := &idx.Sites[i]
			siteRows = append(siteRows, []string{
				s.Source,
				s.Target,
				s.Tag,
				fmt.Sprintf("%d", s.Line),
			})
		}
		parts = append(parts, formatTabular("sites", []string{"source", "target", "tag", "line"}, siteRows))
	}

	return strings.Join(parts, "\n")
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
