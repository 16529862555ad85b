package export

import (
	"os"
	"path/filepath"

	"github.com/nconklindev/hitlisten/internal/analysis"
	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/power"
	"github.com/nconklindev/hitlisten/internal/types"

	"github.com/xuri/excelize/v2"
)

const (
	GroupsSheet     = "Groups"
	AggregatedSheet = "Aggregated"
	PowerSheet      = "Power"
)

// Results is everything written to the processed workbook.
type Results struct {
	Sizes      analysis.SizeAnalysis
	Aggregated types.GroupSizes
	Power      power.Result
}

// WriteWorkbook saves results as an .xlsx file with one sheet per result.
// The file is saved under a temporary name and renamed into place.
func WriteWorkbook(path string, r Results) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), GroupsSheet); err != nil {
		return apperrors.Wrap(err, "rename default sheet")
	}
	for _, name := range []string{AggregatedSheet, PowerSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return apperrors.Wrapf(err, "create sheet %s", name)
		}
	}

	groups := [][]interface{}{{"Group", "n", "Small"}}
	for _, g := range r.Sizes.Sizes {
		if !g.Size.Valid {
			groups = append(groups, []interface{}{g.Name, nil, nil})
			continue
		}
		groups = append(groups, []interface{}{g.Name, g.Size.Value, g.Size.Value < r.Sizes.Threshold})
	}

	aggregated := [][]interface{}{{"Bucket", "n"}}
	for _, g := range r.Aggregated {
		aggregated = append(aggregated, []interface{}{g.Name, g.Size.Value})
	}

	powers := [][]interface{}{{"Group", "n", "Power", "Rating"}}
	for _, g := range r.Power.Groups {
		powers = append(powers, []interface{}{g.Name, g.Size, g.Power, string(g.Rating)})
	}

	for sheet, rows := range map[string][][]interface{}{
		GroupsSheet:     groups,
		AggregatedSheet: aggregated,
		PowerSheet:      powers,
	} {
		if err := writeRows(f, sheet, rows); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrapf(err, "create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".export-*.xlsx")
	if err != nil {
		return apperrors.Wrapf(err, "create temp file in %s", dir)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := f.SaveAs(tmp.Name()); err != nil {
		return apperrors.Wrapf(err, "save %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return apperrors.Wrapf(err, "move export to %s", path)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return apperrors.Wrapf(err, "write %s row %d", sheet, i+1)
		}
	}
	return nil
}
