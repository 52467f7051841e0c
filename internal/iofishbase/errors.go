package iofishbase

import (
	"fmt"
	"runtime"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/gn"
)

// FetchError is returned when a page request cannot be made or read.
func FetchError(table string, offset int, err error) error {
	msg := `Cannot fetch FishBase table <em>%s</em> (offset %d)

<em>Possible causes:</em>
  - No internet connection
  - FishBase API is down`
	vars := []any{table, offset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FishBaseFetchError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot fetch %s at offset %d: %w",
			fn.Name(), table, offset, err),
	}
}

// StatusError is returned when the API answers with a non-200 status.
func StatusError(table string, offset, status int) error {
	msg := "FishBase returned status <em>%d</em> for table <em>%s</em>"
	vars := []any{status, table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FishBaseStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: status %d for %s at offset %d",
			fn.Name(), status, table, offset),
	}
}

// DecodeError is returned when a page is not valid JSON.
func DecodeError(table string, offset int, err error) error {
	msg := "Cannot decode FishBase response for table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FishBaseDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot decode %s at offset %d: %w",
			fn.Name(), table, offset, err),
	}
}

// IncompleteError is returned when the API stops sending rows before
// the announced count is reached.
func IncompleteError(table string, got, count int) error {
	msg := "FishBase table <em>%s</em> ended after %d of %d rows"
	vars := []any{table, got, count}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FishBaseIncompleteError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: empty page for %s at offset %d of %d",
			fn.Name(), table, got, count),
	}
}
