package chart

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/nconklindev/hitlisten/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	original = types.GroupSizes{
		{Name: "IT, Daten, Analytics - Fachrolle", Size: types.NewInt(45)},
		{Name: "HR - Fachrolle", Size: types.NewInt(8)},
		{Name: "Vertrieb", Size: types.Int{}},
		{Name: "Sonstiges - Projekt-, Programmleitung, \nKoordination und PMO", Size: types.NewInt(12)},
	}
	aggregated = types.GroupSizes{
		{Name: "IT & Daten", Size: types.NewInt(45)},
		{Name: "Restgruppe", Size: types.NewInt(20)},
	}
)

func smallOptions() Options {
	opts := DefaultOptions()
	opts.Width, opts.Height, opts.DPI = 8, 4, 50
	return opts
}

func TestPanel(t *testing.T) {
	p, err := Panel("ORIGINAL", original, 30)
	require.NoError(t, err)

	assert.Equal(t, "ORIGINAL\n3 groups (2 with n<30)", p.Title.Text)
}

func TestPanelEmpty(t *testing.T) {
	p, err := Panel("AGGREGATED", nil, 30)
	require.NoError(t, err)

	assert.Equal(t, "AGGREGATED\n0 groups (0 with n<30)", p.Title.Text)
}

func TestRenderComparison(t *testing.T) {
	var buf bytes.Buffer
	opts := smallOptions()

	require.NoError(t, RenderComparison(&buf, original, aggregated, opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}

func TestSaveComparison(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "figures", "group_comparison.png")

	require.NoError(t, SaveComparison(path, original, aggregated, smallOptions()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
