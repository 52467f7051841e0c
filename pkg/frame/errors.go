package frame

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/gn"
)

// MissingColumnsError is returned when a table lacks expected columns.
func MissingColumnsError(cols []string) error {
	msg := "Table does not have expected columns: <em>%s</em>"
	vars := []any{strings.Join(cols, ", ")}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FrameMissingColumnsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: missing columns %v",
			fn.Name(), cols),
	}
}

// ParseCSVError is returned for malformed CSV input.
func ParseCSVError(line int, err error) error {
	msg := "Cannot parse CSV data at line <em>%d</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FrameParseCSVError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot parse CSV line %d: %w",
			fn.Name(), line, err),
	}
}

// WriteCSVError is returned when a table cannot be written as CSV.
func WriteCSVError(err error) error {
	msg := "Cannot write CSV data"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FrameWriteCSVError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot write CSV: %w",
			fn.Name(), err),
	}
}

// DuplicateKeyError is returned when a joined table has the same key
// in more than one row.
func DuplicateKeyError(key string, val Value) error {
	msg := "Key <em>%s</em> has duplicate value <em>%s</em>"
	vars := []any{key, val.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FrameDuplicateKeyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: duplicate %s value %s",
			fn.Name(), key, val),
	}
}

// ShapeError is returned when the number of rows does not match.
func ShapeError(name string, want, got int) error {
	msg := "Row count mismatch for <em>%s</em>: expected %d, got %d"
	vars := []any{name, want, got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FrameShapeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: %s has %d rows instead of %d",
			fn.Name(), name, got, want),
	}
}
