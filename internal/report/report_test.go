package report

import (
	"strings"
	"testing"

	"github.com/nconklindev/hitlisten/internal/analysis"
	"github.com/nconklindev/hitlisten/internal/power"
	"github.com/nconklindev/hitlisten/internal/types"

	"github.com/stretchr/testify/assert"
)

func sizeAnalysis() analysis.SizeAnalysis {
	return analysis.SizeAnalysis{
		Threshold: 30,
		Sizes: types.GroupSizes{
			{Name: "IT", Size: types.NewInt(60)},
			{Name: "HR", Size: types.NewInt(20)},
			{Name: "Vertrieb", Size: types.Int{}},
		},
		Total:       80,
		SmallGroups: types.GroupSizes{{Name: "HR", Size: types.NewInt(20)}},
		Sorted: types.GroupSizes{
			{Name: "IT", Size: types.NewInt(60)},
			{Name: "HR", Size: types.NewInt(20)},
		},
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Projekt-, Programmleitung", DisplayName("Projekt-, \nProgrammleitung"))
}

func TestGroupSizes(t *testing.T) {
	out := GroupSizes(sizeAnalysis(), true)

	assert.Contains(t, out, "IT")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "Total: n = 80")
	assert.Contains(t, out, "Groups with n < 30: 1")
	assert.Contains(t, out, "Groups with n ≥ 30: 1")
	assert.Contains(t, out, "Groups without a size: 1")
	assert.NotContains(t, out, "Vertrieb")
}

func TestGroupSizesWithoutPercentages(t *testing.T) {
	out := GroupSizes(sizeAnalysis(), false)

	assert.NotContains(t, out, "Share")
	assert.NotContains(t, out, "%")
}

func TestPower(t *testing.T) {
	result := power.Analyze(types.GroupSizes{
		{Name: "small", Size: types.NewInt(10)},
		{Name: "large", Size: types.NewInt(200)},
	}, power.DefaultEffectSize, power.DefaultAlpha)

	out := Power(result)

	assert.Contains(t, out, "Good")
	assert.Contains(t, out, "Insufficient")
	assert.Contains(t, out, "Mean power:")
	assert.Less(t, strings.Index(out, "large"), strings.Index(out, "small"))
}

func TestPowerEmpty(t *testing.T) {
	out := Power(power.Analyze(nil, power.DefaultEffectSize, power.DefaultAlpha))

	assert.Contains(t, out, "Mean power: 0.0%")
}

func TestComparison(t *testing.T) {
	c := analysis.Compare(
		types.GroupSizes{{Name: "A", Size: types.NewInt(10)}, {Name: "B", Size: types.NewInt(20)}, {Name: "C", Size: types.NewInt(40)}},
		types.GroupSizes{{Name: "X", Size: types.NewInt(30)}, {Name: "C", Size: types.NewInt(40)}},
		30,
	)

	out := Comparison(c)

	assert.Contains(t, out, "2 (67%)")
	assert.Contains(t, out, "Improvement: 2 groups")
	assert.Contains(t, out, "Reduction: 1 groups")
}
