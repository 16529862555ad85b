package workbook

import (
	"log/slog"
	"os"
	"path/filepath"

	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/types"

	"github.com/xuri/excelize/v2"
)

// DefaultExpectedTables is the number of blocks in a Hitlisten workbook.
const DefaultExpectedTables = 6

// DefaultHeaderSpan covers the eighteen header rows below the two reserved title rows.
var DefaultHeaderSpan = types.HeaderSpan{Start: 2, Stop: 20}

type Options struct {
	// Sheet defaults to the first sheet of the workbook.
	Sheet          string
	Header         types.HeaderSpan
	ExpectedTables int
	Logger         *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		Header:         DefaultHeaderSpan,
		ExpectedTables: DefaultExpectedTables,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// ValidateSpan rejects negative or empty header spans.
func ValidateSpan(span types.HeaderSpan) error {
	if span.Start < 0 || span.Stop <= span.Start {
		return apperrors.Shape("invalid header span [%d, %d)", span.Start, span.Stop)
	}
	return nil
}

// LoadFrom loads filename from dir.
func LoadFrom(dir, filename string, opts Options) ([]types.Table, error) {
	return Load(filepath.Join(dir, filename), opts)
}

// Load reads the workbook at path and returns its cleaned sub-tables in
// sheet order. It returns either every table or an error, never a partial list.
func Load(path string, opts Options) ([]types.Table, error) {
	if err := ValidateSpan(opts.Header); err != nil {
		return nil, err
	}

	rows, err := ReadSheet(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	opts.logger().Debug("sheet read", "path", path, "rows", len(rows))

	tables, err := Parse(rows, opts)
	if err != nil {
		return nil, apperrors.Wrapf(err, "load %s", filepath.Base(path))
	}
	return tables, nil
}

// ReadSheet returns the raw cell grid of a sheet without interpreting any header row.
func ReadSheet(path, sheet string) ([][]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, apperrors.NotFound("workbook not found: %s", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "open workbook %s", path)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		return nil, apperrors.NotFound("sheet %q not found in %s", sheet, path)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.Wrapf(err, "read sheet %q", sheet)
	}
	return rows, nil
}

// Parse splits an in-memory sheet grid into cleaned tables.
func Parse(rows [][]string, opts Options) ([]types.Table, error) {
	log := opts.logger()
	span := opts.Header
	if err := ValidateSpan(span); err != nil {
		return nil, err
	}
	if span.Start >= len(rows) {
		return nil, apperrors.Shape("header span [%d, %d) starts beyond the sheet's %d rows", span.Start, span.Stop, len(rows))
	}
	stop := min(span.Stop, len(rows))

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	headers := BuildHeaders(rows[span.Start:stop], width)
	if len(headers) == 0 {
		return nil, apperrors.HeaderBuild("no header columns in rows [%d, %d)", span.Start, stop)
	}
	if headers[0] == "" {
		headers[0] = DefaultLabelColumn
	}
	log.Debug("headers built", "columns", len(headers))

	blocks := Split(rows[stop:])
	if len(blocks) != opts.ExpectedTables {
		log.Warn("workbook shape drift", "expected", opts.ExpectedTables, "found", len(blocks))
		return nil, apperrors.Shape("expected %d, found %d sub-tables", opts.ExpectedTables, len(blocks))
	}

	tables := make([]types.Table, len(blocks))
	for i, block := range blocks {
		tables[i] = Clean(types.RawTable{Columns: headers, Rows: block})
		log.Debug("table cleaned", "index", i, "rawRows", len(block), "rows", len(tables[i].Rows))
	}
	return tables, nil
}

// SplitHead replaces tables[i] with two tables: its first row and the rest.
func SplitHead(tables []types.Table, i int) ([]types.Table, error) {
	if i < 0 || i >= len(tables) {
		return nil, apperrors.Shape("table index %d out of range (have %d)", i, len(tables))
	}
	t := tables[i]
	if len(t.Rows) == 0 {
		return nil, apperrors.Shape("table %d has no rows to split", i)
	}

	head := types.Table{Columns: t.Columns, Rows: t.Rows[:1:1]}
	rest := types.Table{Columns: t.Columns, Rows: t.Rows[1:]}

	out := make([]types.Table, 0, len(tables)+1)
	out = append(out, tables[:i]...)
	out = append(out, head, rest)
	out = append(out, tables[i+1:]...)
	return out, nil
}
