package workbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		rows   [][]string
		blocks int
	}{
		{"Empty input", nil, 0},
		{"Single block", [][]string{{"a"}, {"b"}}, 1},
		{"Separator between", [][]string{{"a"}, {}, {"b"}}, 2},
		{"Leading separator", [][]string{{}, {"a"}}, 1},
		{"Consecutive separators", [][]string{{"a"}, {}, {"", " "}, {"b"}}, 2},
		{"Trailing separator", [][]string{{"a"}, {}}, 1},
		{"Only separators", [][]string{{}, {""}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := Split(tt.rows)
			assert.Len(t, blocks, tt.blocks)

			rows := 0
			for _, b := range blocks {
				assert.NotEmpty(t, b)
				rows += len(b)
			}
			separators := 0
			for _, r := range tt.rows {
				if IsSeparator(r) {
					separators++
				}
			}
			assert.Equal(t, len(tt.rows), rows+separators)
		})
	}
}

func TestSplitKeepsOrder(t *testing.T) {
	blocks := Split([][]string{{"a"}, {"b"}, {}, {"c"}})

	assert.Equal(t, [][][]string{{{"a"}, {"b"}}, {{"c"}}}, blocks)
}
