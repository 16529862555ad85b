package workbook

import (
	"regexp"
	"strings"
)

// DefaultLabelColumn names the first column when the header block leaves it blank.
const DefaultLabelColumn = "category"

var (
	lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
	// a hyphen that joins two word fragments across a line wrap
	hyphenWrap = regexp.MustCompile(`([\p{L}\p{N}_])-\s+([\p{L}\p{N}_])`)
	whitespace = regexp.MustCompile(`\s+`)
)

// NormalizeHeader flattens line breaks, rejoins hyphenated word wraps and
// collapses whitespace.
func NormalizeHeader(s string) string {
	s = lineBreaks.Replace(s)
	s = hyphenWrap.ReplaceAllString(s, "$1$2")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// BuildHeaders merges a block of header rows into one name per column.
// The result has max(width, widest header row) entries.
func BuildHeaders(rows [][]string, width int) []string {
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	headers := make([]string, width)
	for col := 0; col < width; col++ {
		var parts []string
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[col]); v != "" {
				parts = append(parts, v)
			}
		}
		headers[col] = NormalizeHeader(strings.Join(parts, " "))
	}
	return headers
}
