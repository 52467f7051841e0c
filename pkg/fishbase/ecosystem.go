package fishbase

import (
	"strings"

	"github.com/gnames/fishfeat/pkg/frame"
)

var (
	// EcosystemColumns are read from the ecosystem table.
	EcosystemColumns = []string{
		"Salinity", "Area", "SizeRef", "Climate",
		"AverageDepth", "MaxDepth", "TempSurface", "TempDepth",
	}

	// EcosystemMeans are averaged per species.
	EcosystemMeans = []string{"AverageDepth", "TempSurface", "TempDepth"}
)

const (
	// NoneCategory replaces missing climate and salinity.
	NoneCategory = "none"

	// ClimateTop is the number of climate categories encoded.
	ClimateTop = 5

	// SalinityTop is the number of salinity categories encoded.
	SalinityTop = 3
)

// Ecosystem aggregates per-population ecosystem records by species.
//
// Area is summed. Depth and temperatures are coerced to numbers and
// averaged. Salinity and Climate are lower-cased, one-hot encoded into
// their first SalinityTop and ClimateTop categories, summed per species
// and set to 1 only when the sum is above 1.
func Ecosystem(raw *frame.Frame) (*frame.Frame, error) {
	f, err := selectKeyed(raw, "Speccode", EcosystemColumns...)
	if err != nil {
		return nil, err
	}

	if err = f.Apply(toNumber, EcosystemMeans...); err != nil {
		return nil, err
	}

	g, err := f.GroupBy(SpecCode)
	if err != nil {
		return nil, err
	}
	area, err := g.Sum("Area")
	if err != nil {
		return nil, err
	}
	means, err := g.Mean(EcosystemMeans...)
	if err != nil {
		return nil, err
	}

	err = f.Apply(func(v frame.Value) frame.Value {
		if v.IsNA() {
			return frame.Str(NoneCategory)
		}
		return frame.Str(strings.ToLower(v.String()))
	}, "Climate", "Salinity")
	if err != nil {
		return nil, err
	}

	salinity, err := f.OneHotTop("Salinity", "Salinity", SalinityTop)
	if err != nil {
		return nil, err
	}
	climate, err := f.OneHotTop("Climate", "Climate", ClimateTop)
	if err != nil {
		return nil, err
	}
	key, err := f.Select(SpecCode)
	if err != nil {
		return nil, err
	}
	cat, err := frame.Concat(key, salinity, climate)
	if err != nil {
		return nil, err
	}

	indicators := append(salinity.Columns(), climate.Columns()...)
	cg, err := cat.GroupBy(SpecCode)
	if err != nil {
		return nil, err
	}
	counts, err := cg.Sum(indicators...)
	if err != nil {
		return nil, err
	}
	// threshold is > 1: a species seen in a single record gets 0
	err = counts.Apply(func(v frame.Value) frame.Value {
		n, _ := v.Float()
		return frame.Bool(n > 1)
	}, indicators...)
	if err != nil {
		return nil, err
	}

	return frame.LeftJoin(SpecCode, counts, area, means)
}
