package types

import (
	"math"
	"strconv"
)

// Float is a numeric cell value that may be null.
type Float struct {
	Value float64
	Valid bool
}

// Int is a group size that may be null.
type Int struct {
	Value int
	Valid bool
}

func NewFloat(v float64) Float { return Float{Value: v, Valid: true} }

func NewInt(v int) Int { return Int{Value: v, Valid: true} }

// Int truncates toward zero. NaN, infinities and values outside the int32
// range become null.
func (f Float) Int() Int {
	if !f.Valid || math.IsNaN(f.Value) || f.Value < math.MinInt32 || f.Value > math.MaxInt32 {
		return Int{}
	}
	return NewInt(int(f.Value))
}

func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (i Int) String() string {
	if !i.Valid {
		return ""
	}
	return strconv.Itoa(i.Value)
}

// HeaderSpan is a [Start, Stop) range of sheet rows holding header text.
type HeaderSpan struct {
	Start int
	Stop  int
}

// RawTable is a block of untyped string cells with assigned column names.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// Table is a cleaned table. Columns[0] names the label column; each row
// carries one value per remaining column.
type Table struct {
	Columns []string
	Rows    []Row
}

type Row struct {
	Label  string
	Values []Float
}

// Raw renders the table back into string cells.
func (t Table) Raw() RawTable {
	raw := RawTable{
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		cells = append(cells, row.Label)
		for _, v := range row.Values {
			cells = append(cells, v.String())
		}
		raw.Rows[i] = cells
	}
	return raw
}

// RowIndex returns the index of the first row with the given label, or -1.
func (t Table) RowIndex(label string) int {
	for i, row := range t.Rows {
		if row.Label == label {
			return i
		}
	}
	return -1
}

// GroupSize is one entry of an ordered group-name to size mapping.
type GroupSize struct {
	Name string
	Size Int
}

// GroupSizes preserves the insertion order of the source columns.
type GroupSizes []GroupSize

// Get returns the size recorded for name.
func (g GroupSizes) Get(name string) (Int, bool) {
	for _, e := range g {
		if e.Name == name {
			return e.Size, true
		}
	}
	return Int{}, false
}

func (g GroupSizes) Names() []string {
	names := make([]string, len(g))
	for i, e := range g {
		names[i] = e.Name
	}
	return names
}

// MappingEntry maps an original group to a target bucket.
type MappingEntry struct {
	Group  string
	Bucket string
}

// AggregationMapping is an ordered many-to-one group to bucket mapping.
type AggregationMapping []MappingEntry

// IdentityMapping maps every group onto itself.
func IdentityMapping(sizes GroupSizes) AggregationMapping {
	m := make(AggregationMapping, len(sizes))
	for i, e := range sizes {
		m[i] = MappingEntry{Group: e.Name, Bucket: e.Name}
	}
	return m
}
