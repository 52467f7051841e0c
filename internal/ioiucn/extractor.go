package ioiucn

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/gnames/fishfeat/internal/iofs"
	"github.com/gnames/fishfeat/internal/iosqlite"
	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/fishfeat/pkg/extract"
	"github.com/gnames/fishfeat/pkg/iucn"
	"github.com/gnames/gn"
)

// SQLiteTable is the table name of the fish subset in the SQLite export.
const SQLiteTable = "iucn_subset"

type extractor struct {
	cfg    *config.Config
	client *http.Client
}

// New creates the IUCN subset extractor.
func New(cfg *config.Config) extract.Extractor {
	return &extractor{cfg: cfg, client: http.DefaultClient}
}

// Extract downloads the snapshot, keeps fish rows and writes them with
// the original row numbers as the index.
func (e *extractor) Extract(ctx context.Context) error {
	if err := iofs.EnsureOutputDir(e.cfg.OutputDir); err != nil {
		return err
	}

	rawPath := e.cfg.IUCNRawPath()
	err := Download(ctx, e.client, e.cfg.IUCN.URL, rawPath, !e.cfg.Quiet)
	if err != nil {
		return err
	}

	raw, err := ReadSnapshot(rawPath)
	if err != nil {
		return err
	}

	sub, err := iucn.Subset(raw)
	if err != nil {
		return err
	}

	path := e.cfg.IUCNSubsetPath()
	if err = iofs.WriteCSV(path, sub, true); err != nil {
		return err
	}
	slog.Info("IUCN subset saved",
		"path", path, "rows", sub.Len(), "total", raw.Len())
	if !e.cfg.Quiet {
		gn.Info("Saved %s of %s IUCN records to <em>%s</em>",
			humanize.Comma(int64(sub.Len())),
			humanize.Comma(int64(raw.Len())), path)
	}

	if e.cfg.SQLitePath == "" {
		return nil
	}
	return iosqlite.Export(ctx, e.cfg.SQLitePath, SQLiteTable, sub, true)
}
