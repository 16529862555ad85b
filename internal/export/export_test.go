package export

import (
	"path/filepath"
	"testing"

	"github.com/nconklindev/hitlisten/internal/analysis"
	"github.com/nconklindev/hitlisten/internal/power"
	"github.com/nconklindev/hitlisten/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteWorkbook(t *testing.T) {
	sizes := types.GroupSizes{
		{Name: "IT", Size: types.NewInt(64)},
		{Name: "HR", Size: types.Int{}},
		{Name: "Vertrieb", Size: types.NewInt(12)},
	}
	results := Results{
		Sizes:      analysis.SizeAnalysis{Threshold: 30, Sizes: sizes},
		Aggregated: types.GroupSizes{{Name: "Alle", Size: types.NewInt(76)}},
		Power:      power.Analyze(sizes, power.DefaultEffectSize, power.DefaultAlpha),
	}
	path := filepath.Join(t.TempDir(), "processed", "results.xlsx")

	require.NoError(t, WriteWorkbook(path, results))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{GroupsSheet, AggregatedSheet, PowerSheet}, f.GetSheetList())

	groups, err := f.GetRows(GroupsSheet)
	require.NoError(t, err)
	require.Len(t, groups, 4)
	assert.Equal(t, []string{"Group", "n", "Small"}, groups[0])
	assert.Equal(t, []string{"IT", "64", "FALSE"}, groups[1])
	assert.Equal(t, []string{"HR"}, groups[2])
	assert.Equal(t, []string{"Vertrieb", "12", "TRUE"}, groups[3])

	aggregated, err := f.GetRows(AggregatedSheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"Bucket", "n"}, {"Alle", "76"}}, aggregated)

	powers, err := f.GetRows(PowerSheet)
	require.NoError(t, err)
	require.Len(t, powers, 3)
	assert.Equal(t, "good", powers[1][3])
	assert.Equal(t, "insufficient", powers[2][3])
}
