package iosqlite

import (
	"fmt"

	"github.com/gnames/fishfeat/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError is returned when the SQLite database cannot be opened.
func OpenError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist
  - File is not a SQLite database`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SQLiteOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open SQLite database %s: %w", path, err),
	}
}

// ExportError is returned when a table cannot be written.
func ExportError(table string, err error) error {
	msg := "Cannot export table <em>%s</em> to SQLite"
	vars := []any{table}
	return &gn.Error{
		Code: errcode.SQLiteExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot export table %s: %w", table, err),
	}
}
