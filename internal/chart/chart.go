// Package chart draws the original-vs-aggregated group size comparison.
package chart

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/nconklindev/hitlisten/internal/analysis"
	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/report"
	"github.com/nconklindev/hitlisten/internal/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const title = "Group structure: original vs. aggregated"

var (
	smallColor     = color.RGBA{R: 220, G: 53, B: 69, A: 180}
	largeColor     = color.RGBA{R: 40, G: 167, B: 69, A: 180}
	thresholdColor = color.RGBA{R: 255, G: 165, A: 255}
)

type Options struct {
	Threshold int
	// Width and Height are in inches.
	Width  float64
	Height float64
	DPI    int
}

func DefaultOptions() Options {
	return Options{
		Threshold: analysis.DefaultThreshold,
		Width:     16,
		Height:    7,
		DPI:       150,
	}
}

// Panel builds one horizontal bar panel. Bars are sorted largest first,
// red below the threshold and green at or above it.
func Panel(name string, sizes types.GroupSizes, threshold int) (*plot.Plot, error) {
	sorted := make(types.GroupSizes, 0, len(sizes))
	for _, g := range sizes {
		if g.Size.Valid {
			sorted = append(sorted, g)
		}
	}
	analysis.SortBySize(sorted)

	n := len(sorted)
	small := 0
	// gonum draws index 0 at the bottom; the largest group goes on top
	below := make(plotter.Values, n)
	above := make(plotter.Values, n)
	names := make([]string, n)
	labels := plotter.XYLabels{XYs: make(plotter.XYs, n), Labels: make([]string, n)}
	for i, g := range sorted {
		pos := n - 1 - i
		v := float64(g.Size.Value)
		if g.Size.Value < threshold {
			below[pos] = v
			small++
		} else {
			above[pos] = v
		}
		names[pos] = report.DisplayName(g.Name)
		labels.XYs[pos] = plotter.XY{X: v + 2, Y: float64(pos)}
		labels.Labels[pos] = fmt.Sprintf("n=%d", g.Size.Value)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s\n%d groups (%d with n<%d)", name, n, small, threshold)
	p.X.Label.Text = "Participants (n)"
	p.X.Min = 0
	if n == 0 {
		return p, nil
	}

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	for _, series := range []struct {
		values plotter.Values
		color  color.Color
	}{{below, smallColor}, {above, largeColor}} {
		bars, err := plotter.NewBarChart(series.values, vg.Points(12))
		if err != nil {
			return nil, apperrors.Wrap(err, "build bar chart")
		}
		bars.Horizontal = true
		bars.Color = series.color
		bars.LineStyle.Color = color.Black
		bars.LineStyle.Width = vg.Points(0.5)
		p.Add(bars)
	}

	line, err := plotter.NewLine(plotter.XYs{
		{X: float64(threshold), Y: -0.5},
		{X: float64(threshold), Y: float64(n) - 0.5},
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "build threshold line")
	}
	line.Color = thresholdColor
	line.Width = vg.Points(2)
	line.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Threshold n=%d", threshold), line)
	p.Legend.Top = true

	values, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, apperrors.Wrap(err, "build value labels")
	}
	p.Add(values)

	p.NominalY(names...)
	return p, nil
}

// RenderComparison writes a PNG with the original panel on the left and the
// aggregated panel on the right.
func RenderComparison(w io.Writer, original, aggregated types.GroupSizes, opts Options) error {
	left, err := Panel("ORIGINAL", original, opts.Threshold)
	if err != nil {
		return err
	}
	right, err := Panel("AGGREGATED", aggregated, opts.Threshold)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch),
		vgimg.UseDPI(opts.DPI),
	)
	dc := draw.New(img)

	heading := text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(14)),
		XAlign:  text.XCenter,
		YAlign:  text.YTop,
		Handler: plot.DefaultTextHandler,
	}
	dc.FillText(heading, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Millimeter*2}, title)

	tiles := draw.Tiles{
		Rows:   1,
		Cols:   2,
		PadX:   vg.Millimeter * 8,
		PadTop: vg.Millimeter * 12,
	}
	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return apperrors.Wrap(err, "encode png")
	}
	return nil
}

// SaveComparison renders to path. The file is written to a temporary name
// and renamed, so path holds either the whole image or nothing new.
func SaveComparison(path string, original, aggregated types.GroupSizes, opts Options) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrapf(err, "create %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".chart-*.png")
	if err != nil {
		return apperrors.Wrapf(err, "create temp file in %s", dir)
	}
	defer os.Remove(tmp.Name())

	if err := RenderComparison(tmp, original, aggregated, opts); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperrors.Wrapf(err, "move chart to %s", path)
	}
	return nil
}
