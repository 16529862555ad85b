package pipeline

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nconklindev/hitlisten/internal/analysis"
	"github.com/nconklindev/hitlisten/internal/chart"
	"github.com/nconklindev/hitlisten/internal/config"
	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/export"
	"github.com/nconklindev/hitlisten/internal/power"
	"github.com/nconklindev/hitlisten/internal/report"
	"github.com/nconklindev/hitlisten/internal/types"
	"github.com/nconklindev/hitlisten/internal/workbook"
)

const (
	ChartFile  = "group_comparison.png"
	ExportFile = "hitlisten_results.xlsx"
)

// Result carries every intermediate product of one run.
type Result struct {
	Workbook     string
	Tables       []types.Table
	Matrix       types.Table
	Groups       []string
	Sizes        analysis.SizeAnalysis
	MappingFound bool
	Aggregated   types.GroupSizes
	Power        power.Result
	Comparison   analysis.Comparison
}

const steps = 6

// Run loads the workbook at path and carries it through the whole analysis.
// Progress in [0, 1] is sent without blocking when progress is non-nil.
func Run(cfg *config.Config, path string, log *slog.Logger, progress chan<- float64) (*Result, error) {
	if log == nil {
		log = slog.Default()
	}
	advance := func(step int) {
		if progress != nil {
			select {
			case progress <- float64(step) / steps:
			default:
			}
		}
	}

	opts := workbook.Options{
		Sheet:          cfg.Workbook.Sheet,
		Header:         cfg.Workbook.Header,
		ExpectedTables: cfg.Workbook.ExpectedTables,
		Logger:         log,
	}
	tables, err := workbook.Load(path, opts)
	if err != nil {
		return nil, err
	}
	log.Info("workbook loaded", "path", path, "tables", len(tables))
	advance(1)

	if cfg.Workbook.SplitHead {
		if tables, err = workbook.SplitHead(tables, 0); err != nil {
			return nil, err
		}
	}
	if cfg.Workbook.GroupTable < 0 || cfg.Workbook.GroupTable >= len(tables) {
		return nil, apperrors.Shape("group table %d out of range (have %d tables)", cfg.Workbook.GroupTable, len(tables))
	}
	matrix, groups := analysis.Transpose(tables[cfg.Workbook.GroupTable])
	log.Debug("group table transposed", "groups", len(groups), "questions", len(matrix.Rows))
	advance(2)

	row, err := analysis.SizeRow(matrix, cfg.Workbook.SizeLabel, cfg.Workbook.SizeRow)
	if err != nil {
		return nil, err
	}
	sizes, err := analysis.AnalyzeGroupSizes(matrix, groups, row, cfg.Analysis.Threshold)
	if err != nil {
		return nil, err
	}
	for _, name := range sizes.Duplicates {
		log.Warn("duplicate group skipped", "group", name)
	}
	log.Info("group sizes analysed", "groups", len(sizes.Sizes), "total", sizes.Total, "small", len(sizes.SmallGroups))
	advance(3)

	mapping, found, err := config.LoadMapping(cfg.MappingPath())
	if err != nil {
		return nil, err
	}
	if !found {
		log.Warn("no aggregation mapping, keeping original groups", "path", cfg.MappingPath())
	}
	aggregated := analysis.AggregateStages(sizes.Sizes, mapping.Stages, mapping.KeepEmpty)
	log.Info("groups aggregated", "stages", len(mapping.Stages), "buckets", len(aggregated))
	advance(4)

	powers := power.Analyze(aggregated, cfg.Analysis.EffectSize, cfg.Analysis.Alpha)
	log.Debug("power computed", "mean", powers.Mean, "min", powers.Min, "max", powers.Max)
	advance(5)

	comparison := analysis.Compare(sizes.Sizes, aggregated, cfg.Analysis.Threshold)
	advance(6)

	return &Result{
		Workbook:     path,
		Tables:       tables,
		Matrix:       matrix,
		Groups:       groups,
		Sizes:        sizes,
		MappingFound: found,
		Aggregated:   aggregated,
		Power:        powers,
		Comparison:   comparison,
	}, nil
}

// Report renders the three text reports of a run.
func Report(r *Result) string {
	return strings.Join([]string{
		report.GroupSizes(r.Sizes, true),
		report.Power(r.Power),
		report.Comparison(r.Comparison),
	}, "\n\n")
}

// SaveChart writes the comparison chart under the processed data directory
// and returns its path.
func SaveChart(cfg *config.Config, r *Result) (string, error) {
	dir, err := config.DataPath(cfg.Root, string(config.Processed))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ChartFile)

	opts := chart.DefaultOptions()
	opts.Threshold = cfg.Analysis.Threshold
	opts.Width = cfg.Chart.Width
	opts.Height = cfg.Chart.Height
	if err := chart.SaveComparison(path, r.Sizes.Sizes, r.Aggregated, opts); err != nil {
		return "", err
	}
	return path, nil
}

// SaveExport writes the results workbook under the processed data directory
// and returns its path.
func SaveExport(cfg *config.Config, r *Result) (string, error) {
	dir, err := config.DataPath(cfg.Root, string(config.Processed))
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ExportFile)

	err = export.WriteWorkbook(path, export.Results{
		Sizes:      r.Sizes,
		Aggregated: r.Aggregated,
		Power:      r.Power,
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
