package analysis

import (
	"sort"

	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/types"
)

// DefaultThreshold is the group size below which a group counts as small.
const DefaultThreshold = 30

// SizeAnalysis holds the group sizes read from one row of a transposed table.
type SizeAnalysis struct {
	Threshold int
	// Sizes keeps source column order. Null means the cell was not numeric.
	Sizes types.GroupSizes
	// Total sums the non-null sizes.
	Total int
	// SmallGroups lists non-null sizes below Threshold in source order.
	SmallGroups types.GroupSizes
	// Sorted lists non-null sizes, largest first; ties keep source order.
	Sorted types.GroupSizes
	// Duplicates names groups that appeared more than once; only the first was kept.
	Duplicates []string
}

// SizeRow resolves the row holding group sizes: by label when one is given, else by index.
func SizeRow(t types.Table, label string, index int) (int, error) {
	if label != "" {
		if i := t.RowIndex(label); i >= 0 {
			return i, nil
		}
		return 0, apperrors.Shape("no row labelled %q", label)
	}
	if index < 0 || index >= len(t.Rows) {
		return 0, apperrors.Shape("size row %d out of range (table has %d rows)", index, len(t.Rows))
	}
	return index, nil
}

// AnalyzeGroupSizes reads row of a transposed table as per-group sizes.
func AnalyzeGroupSizes(t types.Table, groups []string, row, threshold int) (SizeAnalysis, error) {
	if row < 0 || row >= len(t.Rows) {
		return SizeAnalysis{}, apperrors.Shape("size row %d out of range (table has %d rows)", row, len(t.Rows))
	}
	values := t.Rows[row].Values

	result := SizeAnalysis{Threshold: threshold}
	seen := make(map[string]bool, len(groups))
	for _, name := range groups {
		if seen[name] {
			result.Duplicates = append(result.Duplicates, name)
			continue
		}
		seen[name] = true

		size := types.Int{}
		if col := columnIndex(t.Columns, name); col > 0 && col-1 < len(values) {
			size = values[col-1].Int()
		}
		result.Sizes = append(result.Sizes, types.GroupSize{Name: name, Size: size})
	}

	for _, g := range result.Sizes {
		if !g.Size.Valid {
			continue
		}
		result.Total += g.Size.Value
		result.Sorted = append(result.Sorted, g)
		if g.Size.Value < threshold {
			result.SmallGroups = append(result.SmallGroups, g)
		}
	}
	SortBySize(result.Sorted)

	return result, nil
}

// SortBySize orders non-null sizes descending, keeping insertion order for ties.
func SortBySize(sizes types.GroupSizes) {
	sort.SliceStable(sizes, func(i, j int) bool {
		return sizes[i].Size.Value > sizes[j].Size.Value
	})
}

func columnIndex(columns []string, name string) int {
	for i, c := range columns {
		if c == name {
			return i
		}
	}
	return -1
}
