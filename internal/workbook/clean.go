package workbook

import (
	"math"
	"strconv"
	"strings"

	"github.com/nconklindev/hitlisten/internal/types"
)

// NullMarker is the placeholder the workbook uses for "no value".
const NullMarker = "-"

// ParseNumber parses a numeric cell. Blanks, the null marker and anything
// unparseable come back as null rather than an error.
func ParseNumber(s string) types.Float {
	s = strings.TrimSpace(s)
	if s == "" || s == NullMarker {
		return types.Float{}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return types.Float{}
	}
	return types.NewFloat(v)
}

// Clean turns a raw sub-table into a typed Table: the label column is
// forward-filled and trimmed, the other columns are parsed as numbers, and
// rows with no numbers or no label are dropped.
func Clean(raw types.RawTable) types.Table {
	width := len(raw.Columns)
	table := types.Table{
		Columns: append([]string(nil), raw.Columns...),
		Rows:    make([]types.Row, 0, len(raw.Rows)),
	}

	lastLabel := ""
	for _, cells := range raw.Rows {
		label := ""
		if len(cells) > 0 {
			label = strings.TrimSpace(cells[0])
		}
		if label == "" {
			label = lastLabel
		} else {
			lastLabel = label
		}

		values := make([]types.Float, 0, max(width-1, 0))
		anyValue := false
		for col := 1; col < width; col++ {
			v := types.Float{}
			if col < len(cells) {
				v = ParseNumber(cells[col])
			}
			anyValue = anyValue || v.Valid
			values = append(values, v)
		}

		if len(values) > 0 && !anyValue {
			continue
		}
		if label == "" {
			continue
		}

		table.Rows = append(table.Rows, types.Row{Label: label, Values: values})
	}

	return table
}
