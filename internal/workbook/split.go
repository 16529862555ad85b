package workbook

import "strings"

// IsSeparator reports whether every cell of row is empty or whitespace.
func IsSeparator(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Split partitions rows into runs of non-separator rows. Consecutive or
// leading separators produce no empty blocks; a trailing run is kept.
func Split(rows [][]string) [][][]string {
	var blocks [][][]string
	var current [][]string

	for _, row := range rows {
		if IsSeparator(row) {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, row)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}
