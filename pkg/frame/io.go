package frame

import (
	"encoding/csv"
	"errors"
	"io"
	"maps"
	"slices"
	"strconv"
)

// NAStrings are CSV cells that are read as missing values.
var NAStrings = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {},
	"-1.#QNAN": {}, "-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {},
	"<NA>": {}, "N/A": {}, "NA": {}, "NULL": {}, "NaN": {}, "None": {},
	"n/a": {}, "nan": {}, "null": {},
}

// ReadCSV reads a CSV table with a header row. Cells are kept as
// strings, cells listed in NAStrings become missing. Bare quotes in
// unquoted fields are accepted. Short rows are
// padded with missing values, a row with more fields than the header
// is an error.
func ReadCSV(r io.Reader) (*Frame, error) {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	// a quote inside an unquoted field is kept as a literal character
	rdr.LazyQuotes = true

	header, err := rdr.Read()
	if errors.Is(err, io.EOF) {
		return New(), nil
	}
	if err != nil {
		return nil, ParseCSVError(1, err)
	}

	res := New(header...)
	for {
		rec, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, ParseCSVError(line, err)
		}
		line, _ := rdr.FieldPos(0)
		if len(rec) > len(header) {
			err = errors.New(
				"expected " + strconv.Itoa(len(header)) +
					" fields, saw " + strconv.Itoa(len(rec)),
			)
			return nil, ParseCSVError(line, err)
		}

		vals := make([]Value, len(rec))
		for i, v := range rec {
			if _, ok := NAStrings[v]; ok {
				continue
			}
			vals[i] = Str(v)
		}
		res.AddRow(vals...)
	}
	return res, nil
}

// FromRecords builds a frame from decoded JSON objects. Columns are the
// union of all keys in sorted order, absent keys become missing values.
func FromRecords(recs []map[string]any) *Frame {
	keys := make(map[string]struct{})
	for _, rec := range recs {
		for k := range rec {
			keys[k] = struct{}{}
		}
	}
	cols := slices.Sorted(maps.Keys(keys))

	res := New(cols...)
	for _, rec := range recs {
		vals := make([]Value, len(cols))
		for i, c := range cols {
			vals[i] = Of(rec[c])
		}
		res.AddRow(vals...)
	}
	return res
}

// WriteCSV writes the frame with a header row. With withIndex the row
// labels are written as the first, unnamed column.
func (f *Frame) WriteCSV(w io.Writer, withIndex bool) error {
	cw := csv.NewWriter(w)

	header := f.cols
	if withIndex {
		header = append([]string{""}, f.cols...)
	}
	if err := cw.Write(header); err != nil {
		return WriteCSVError(err)
	}

	rec := make([]string, len(header))
	for i, row := range f.rows {
		k := 0
		if withIndex {
			rec[0] = strconv.Itoa(f.labels[i])
			k = 1
		}
		for j, v := range row {
			rec[j+k] = v.String()
		}
		if err := cw.Write(rec); err != nil {
			return WriteCSVError(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return WriteCSVError(err)
	}
	return nil
}
