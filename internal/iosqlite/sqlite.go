// Package iosqlite exports frames to a SQLite database.
package iosqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/fishfeat/pkg/frame"
	_ "modernc.org/sqlite" // SQLite driver
)

// IndexColumn holds row labels when a frame is exported with its index.
const IndexColumn = "row_id"

// Export replaces table in the SQLite database at path with the content
// of the frame. Columns that hold only numbers are REAL, others are TEXT,
// missing values are NULL. With withIndex row labels are stored in
// IndexColumn.
func Export(
	ctx context.Context,
	path, table string,
	f *frame.Frame,
	withIndex bool,
) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return OpenError(path, err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return OpenError(path, err)
	}

	cols := f.Columns()
	defs := make([]string, 0, len(cols)+1)
	names := make([]string, 0, len(cols)+1)
	if withIndex {
		defs = append(defs, quote(IndexColumn)+" INTEGER")
		names = append(names, quote(IndexColumn))
	}
	text := make([]bool, len(cols))
	for i, v := range cols {
		typ := columnType(f, v)
		text[i] = typ == "TEXT"
		defs = append(defs, quote(v)+" "+typ)
		names = append(names, quote(v))
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return ExportError(table, err)
	}
	defer tx.Rollback()

	q := "DROP TABLE IF EXISTS " + quote(table)
	if _, err = tx.ExecContext(ctx, q); err != nil {
		return ExportError(table, err)
	}
	q = fmt.Sprintf("CREATE TABLE %s (%s)",
		quote(table), strings.Join(defs, ", "))
	if _, err = tx.ExecContext(ctx, q); err != nil {
		return ExportError(table, err)
	}

	q = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quote(table), strings.Join(names, ", "),
		strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", "))
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return ExportError(table, err)
	}
	defer stmt.Close()

	labels := f.Labels()
	for i := range f.Len() {
		args := make([]any, 0, len(names))
		if withIndex {
			args = append(args, labels[i])
		}
		for j, v := range f.Row(i) {
			args = append(args, sqlValue(v, text[j]))
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return ExportError(table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return ExportError(table, err)
	}

	slog.Info("Table exported to SQLite",
		"path", path, "table", table, "rows", f.Len())
	return nil
}

func columnType(f *frame.Frame, col string) string {
	vals, _ := f.Column(col)
	for _, v := range vals {
		if v.Kind() == frame.String {
			return "TEXT"
		}
	}
	return "REAL"
}

// sqlValue converts a value for binding. Numbers in TEXT columns are
// formatted the same way as in CSV output.
func sqlValue(v frame.Value, text bool) any {
	switch v.Kind() {
	case frame.Number:
		if text {
			return v.String()
		}
		n, _ := v.Float()
		return n
	case frame.String:
		return v.String()
	default:
		return nil
	}
}

func quote(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
