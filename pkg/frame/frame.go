// Package frame provides a small in-memory table used by the extraction
// pipelines.
//
// A Frame holds named columns and rows of Values. Every row carries a
// label, its position in the source the frame was created from. Labels
// survive selection and filtering and can be written as the CSV index
// column.
//
// Aggregation follows the usual dataframe conventions: sums ignore
// missing values and give 0 when nothing is left, means ignore missing
// values and give a missing value when nothing is left, left joins keep
// every left row and fill unmatched columns with missing values.
package frame

import (
	"slices"
)

// Frame is a table of Values with named columns.
type Frame struct {
	cols   []string
	pos    map[string]int
	labels []int
	rows   [][]Value
}

// New creates an empty frame with the given columns.
func New(cols ...string) *Frame {
	res := &Frame{
		cols: slices.Clone(cols),
		pos:  make(map[string]int, len(cols)),
	}
	for i, v := range cols {
		if _, ok := res.pos[v]; !ok {
			res.pos[v] = i
		}
	}
	return res
}

// AddRow appends a row. Missing trailing values are filled with NA,
// extra values are ignored. The row label is the current row count.
func (f *Frame) AddRow(vals ...Value) {
	f.addRow(len(f.rows), vals)
}

func (f *Frame) addRow(label int, vals []Value) {
	row := make([]Value, len(f.cols))
	copy(row, vals)
	f.rows = append(f.rows, row)
	f.labels = append(f.labels, label)
}

// Columns returns column names in order.
func (f *Frame) Columns() []string {
	return slices.Clone(f.cols)
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.cols)
}

// Has checks if a column exists.
func (f *Frame) Has(col string) bool {
	_, ok := f.pos[col]
	return ok
}

// Labels returns row labels.
func (f *Frame) Labels() []int {
	return slices.Clone(f.labels)
}

// Value returns the cell at row i of the column, or NA if the column
// does not exist.
func (f *Frame) Value(i int, col string) Value {
	j, ok := f.pos[col]
	if !ok {
		return NA()
	}
	return f.rows[i][j]
}

// Row returns a copy of the row i.
func (f *Frame) Row(i int) []Value {
	return slices.Clone(f.rows[i])
}

// Column returns a copy of the values of a column.
func (f *Frame) Column(col string) ([]Value, error) {
	j, ok := f.pos[col]
	if !ok {
		return nil, MissingColumnsError([]string{col})
	}
	res := make([]Value, len(f.rows))
	for i := range f.rows {
		res[i] = f.rows[i][j]
	}
	return res, nil
}

// SetColumn replaces the values of a column, or appends a new column if
// it does not exist yet.
func (f *Frame) SetColumn(col string, vals []Value) error {
	if len(vals) != len(f.rows) {
		return ShapeError(col, len(f.rows), len(vals))
	}
	j, ok := f.pos[col]
	if !ok {
		j = len(f.cols)
		f.cols = append(f.cols, col)
		f.pos[col] = j
		for i := range f.rows {
			f.rows[i] = append(f.rows[i], NA())
		}
	}
	for i := range f.rows {
		f.rows[i][j] = vals[i]
	}
	return nil
}

// Select returns a new frame with the given columns in the given order.
// All absent columns are reported in a single error.
func (f *Frame) Select(cols ...string) (*Frame, error) {
	idx := make([]int, len(cols))
	var missing []string
	for i, v := range cols {
		j, ok := f.pos[v]
		if !ok {
			missing = append(missing, v)
			continue
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return nil, MissingColumnsError(missing)
	}

	res := New(cols...)
	for i, row := range f.rows {
		vals := make([]Value, len(idx))
		for k, j := range idx {
			vals[k] = row[j]
		}
		res.addRow(f.labels[i], vals)
	}
	return res, nil
}

// Drop returns a new frame without the given columns. Unknown columns
// are ignored.
func (f *Frame) Drop(cols ...string) *Frame {
	var keep []string
	for _, v := range f.cols {
		if !slices.Contains(cols, v) {
			keep = append(keep, v)
		}
	}
	res, _ := f.Select(keep...)
	return res
}

// Rename changes the name of a column.
func (f *Frame) Rename(old, name string) error {
	j, ok := f.pos[old]
	if !ok {
		return MissingColumnsError([]string{old})
	}
	delete(f.pos, old)
	f.cols[j] = name
	f.pos[name] = j
	return nil
}

// Apply replaces every value of the given columns with fn(value).
func (f *Frame) Apply(fn func(Value) Value, cols ...string) error {
	idx := make([]int, len(cols))
	var missing []string
	for i, v := range cols {
		j, ok := f.pos[v]
		if !ok {
			missing = append(missing, v)
		}
		idx[i] = j
	}
	if len(missing) > 0 {
		return MissingColumnsError(missing)
	}

	for _, row := range f.rows {
		for _, j := range idx {
			row[j] = fn(row[j])
		}
	}
	return nil
}

// Filter returns a new frame with rows for which keep returns true.
// Row labels are preserved.
func (f *Frame) Filter(keep func(Row) bool) *Frame {
	res := New(f.cols...)
	for i, row := range f.rows {
		if keep(Row{f: f, i: i}) {
			res.addRow(f.labels[i], slices.Clone(row))
		}
	}
	return res
}

// DropDuplicates keeps the first row of every key value. Rows with a
// missing key are all kept.
func (f *Frame) DropDuplicates(key string) (*Frame, error) {
	j, ok := f.pos[key]
	if !ok {
		return nil, MissingColumnsError([]string{key})
	}
	seen := make(map[Value]struct{})
	res := New(f.cols...)
	for i, row := range f.rows {
		k := row[j]
		if !k.IsNA() {
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
		}
		res.addRow(f.labels[i], slices.Clone(row))
	}
	return res, nil
}

// RowMin sets the column dst to the row-wise minimum of cols, ignoring
// missing and non-numeric values. A row without numbers gets NA.
func (f *Frame) RowMin(dst string, cols ...string) error {
	src, err := f.Select(cols...)
	if err != nil {
		return err
	}
	vals := make([]Value, len(src.rows))
	for i, row := range src.rows {
		res := NA()
		for _, v := range row {
			n, ok := v.Float()
			if !ok {
				continue
			}
			if cur, ok := res.Float(); !ok || n < cur {
				res = Num(n)
			}
		}
		vals[i] = res
	}
	return f.SetColumn(dst, vals)
}

// Concat joins frames side by side. All frames must have the same number
// of rows, labels are taken from the first frame.
func Concat(frames ...*Frame) (*Frame, error) {
	if len(frames) == 0 {
		return New(), nil
	}
	var cols []string
	for _, v := range frames {
		if v.Len() != frames[0].Len() {
			return nil, ShapeError("concat", frames[0].Len(), v.Len())
		}
		cols = append(cols, v.cols...)
	}
	res := New(cols...)
	for i := range frames[0].rows {
		vals := make([]Value, 0, len(cols))
		for _, v := range frames {
			vals = append(vals, v.rows[i]...)
		}
		res.addRow(frames[0].labels[i], vals)
	}
	return res, nil
}

// Row gives read access to a row during filtering.
type Row struct {
	f *Frame
	i int
}

// Get returns the value of a column in the row.
func (r Row) Get(col string) Value {
	return r.f.Value(r.i, col)
}

// Label returns the row label.
func (r Row) Label() int {
	return r.f.labels[r.i]
}
