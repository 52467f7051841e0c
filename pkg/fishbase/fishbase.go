// Package fishbase turns raw FishBase tables into a per-species feature
// matrix.
//
// Every cleaning function takes a raw table as it comes from the API and
// returns a frame keyed by SpecCode with at most one row per species.
// Features joins these frames onto the taxonomy table.
package fishbase

import (
	"context"

	"github.com/gnames/fishfeat/pkg/frame"
)

// SpecCode is the name of the species key column in produced frames.
const SpecCode = "SpecCode"

// Names of the FishBase tables used for features.
const (
	TaxaTable      = "taxa"
	SpeciesTable   = "species"
	EcologyTable   = "ecology"
	EcosystemTable = "ecosystem"
	MaturityTable  = "maturity"
)

// TableNames lists the tables in the order they are fetched.
var TableNames = []string{
	TaxaTable, SpeciesTable, EcologyTable, EcosystemTable, MaturityTable,
}

// Fetcher returns the full content of a FishBase table.
type Fetcher interface {
	FetchTable(ctx context.Context, table string) (*frame.Frame, error)
}

// Tables holds raw FishBase tables.
type Tables struct {
	Taxa      *frame.Frame
	Species   *frame.Frame
	Ecology   *frame.Frame
	Ecosystem *frame.Frame
	Maturity  *frame.Frame
}

// FetchTables downloads all tables needed for features, one after
// another. The first failure stops the download.
func FetchTables(ctx context.Context, f Fetcher) (*Tables, error) {
	res := &Tables{}
	dst := map[string]**frame.Frame{
		TaxaTable:      &res.Taxa,
		SpeciesTable:   &res.Species,
		EcologyTable:   &res.Ecology,
		EcosystemTable: &res.Ecosystem,
		MaturityTable:  &res.Maturity,
	}
	for _, name := range TableNames {
		tbl, err := f.FetchTable(ctx, name)
		if err != nil {
			return nil, err
		}
		*dst[name] = tbl
	}
	return res, nil
}

// Features cleans all tables and joins them on SpecCode. Every row of
// the taxonomy table is kept, species absent from other tables get
// missing values in their columns.
func Features(t *Tables) (*frame.Frame, error) {
	taxa, err := Taxa(t.Taxa)
	if err != nil {
		return nil, err
	}
	species, err := Species(t.Species)
	if err != nil {
		return nil, err
	}
	ecology, err := Ecology(t.Ecology)
	if err != nil {
		return nil, err
	}
	maturity, err := Maturity(t.Maturity)
	if err != nil {
		return nil, err
	}
	ecosystem, err := Ecosystem(t.Ecosystem)
	if err != nil {
		return nil, err
	}

	return frame.LeftJoin(SpecCode, taxa, species, ecology, maturity, ecosystem)
}

// presence maps the FishBase flag encoding (-1 present, 0 absent) to
// 1 and 0.
func presence(v frame.Value) frame.Value {
	n, ok := v.Float()
	return frame.Bool(ok && n == -1)
}

func toNumber(v frame.Value) frame.Value {
	return v.ToNumber()
}

// selectKeyed selects columns, renames the key column to SpecCode and
// makes its values numeric.
func selectKeyed(f *frame.Frame, key string, cols ...string) (*frame.Frame, error) {
	res, err := f.Select(append([]string{key}, cols...)...)
	if err != nil {
		return nil, err
	}
	if key != SpecCode {
		if err = res.Rename(key, SpecCode); err != nil {
			return nil, err
		}
	}
	if err = res.Apply(toNumber, SpecCode); err != nil {
		return nil, err
	}
	return res, nil
}
