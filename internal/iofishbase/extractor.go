package iofishbase

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/fishfeat/internal/iofs"
	"github.com/gnames/fishfeat/internal/iosqlite"
	"github.com/gnames/fishfeat/pkg/config"
	"github.com/gnames/fishfeat/pkg/extract"
	"github.com/gnames/fishfeat/pkg/fishbase"
	"github.com/gnames/gn"
)

// SQLiteTable is the table name of the feature matrix in the SQLite
// export.
const SQLiteTable = "fishbase_features"

type extractor struct {
	cfg     *config.Config
	fetcher fishbase.Fetcher
}

// New creates the FishBase feature extractor. The fetcher defaults to a
// Client built from cfg.
func New(cfg *config.Config, fetcher fishbase.Fetcher) extract.Extractor {
	if fetcher == nil {
		fetcher = NewClient(cfg)
	}
	return &extractor{cfg: cfg, fetcher: fetcher}
}

// Extract downloads the FishBase tables, builds the feature matrix and
// writes it with SpecCode as the first column. Row labels are not
// written, SpecCode serves as the index.
func (e *extractor) Extract(ctx context.Context) error {
	tables, err := fishbase.FetchTables(ctx, e.fetcher)
	if err != nil {
		return err
	}

	feat, err := fishbase.Features(tables)
	if err != nil {
		return err
	}

	if err = iofs.EnsureOutputDir(e.cfg.OutputDir); err != nil {
		return err
	}

	path := e.cfg.FeaturesPath()
	if err = iofs.WriteCSV(path, feat, false); err != nil {
		return err
	}
	slog.Info("FishBase features saved",
		"path", path, "rows", feat.Len(), "columns", feat.Width())
	if !e.cfg.Quiet {
		gn.Info("Saved %s species with %d columns to <em>%s</em>",
			humanize.Comma(int64(feat.Len())), feat.Width(), path)
	}

	if e.cfg.SQLitePath == "" {
		return nil
	}
	return iosqlite.Export(ctx, e.cfg.SQLitePath, SQLiteTable, feat, false)
}
