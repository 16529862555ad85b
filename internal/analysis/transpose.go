package analysis

import "github.com/nconklindev/hitlisten/internal/types"

// QuestionColumn names the label column of a transposed table.
const QuestionColumn = "Question"

// Transpose pivots a row-per-group table into a column-per-group table.
// The pivoted label column supplies the group names and is dropped from the
// data; every other source column becomes one row labelled with its name.
func Transpose(t types.Table) (types.Table, []string) {
	groups := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		groups[i] = row.Label
	}

	out := types.Table{Rows: make([]types.Row, 0, max(len(t.Columns)-1, 0))}
	for col := 1; col < len(t.Columns); col++ {
		values := make([]types.Float, len(t.Rows))
		for i, row := range t.Rows {
			if col-1 < len(row.Values) {
				values[i] = row.Values[col-1]
			}
		}
		out.Rows = append(out.Rows, types.Row{Label: t.Columns[col], Values: values})
	}

	out.Columns = append([]string{QuestionColumn}, groups...)
	return out, groups
}
