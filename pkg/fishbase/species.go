package fishbase

import "github.com/gnames/fishfeat/pkg/frame"

// SpeciesColumns are species traits copied to the features. GameFish is
// recoded from -1/0 to 1/0, the rest keep their values.
var SpeciesColumns = []string{"Vulnerability", "Length", "Weight", "GameFish"}

// Categorical describes a species trait expanded into dummy columns.
type Categorical struct {
	Column    string
	Prefix    string
	DropFirst bool
}

// SpeciesCategoricals are expanded in this order.
var SpeciesCategoricals = []Categorical{
	{Column: "Importance", Prefix: "Imp"},
	{Column: "Aquarium", Prefix: "Aquarium"},
	{Column: "UsedforAquaculture", Prefix: "Aquaculture"},
	{Column: "UsedasBait", Prefix: "Bait", DropFirst: true},
	{Column: "Dangerous", Prefix: "Danger"},
}

// Species recodes GameFish to 1/0 and replaces categorical traits with
// dummy columns, one per observed category. Only the first row of each
// SpecCode is kept.
func Species(raw *frame.Frame) (*frame.Frame, error) {
	cols := append([]string{}, SpeciesColumns...)
	for _, v := range SpeciesCategoricals {
		cols = append(cols, v.Column)
	}
	f, err := selectKeyed(raw, SpecCode, cols...)
	if err != nil {
		return nil, err
	}

	if err = f.Apply(presence, "GameFish"); err != nil {
		return nil, err
	}

	parts := make([]*frame.Frame, 0, len(SpeciesCategoricals)+1)
	var drop []string
	for _, v := range SpeciesCategoricals {
		d, err := f.Dummies(v.Column, v.Prefix, v.DropFirst)
		if err != nil {
			return nil, err
		}
		parts = append(parts, d)
		drop = append(drop, v.Column)
	}
	parts = append([]*frame.Frame{f.Drop(drop...)}, parts...)

	res, err := frame.Concat(parts...)
	if err != nil {
		return nil, err
	}
	return res.DropDuplicates(SpecCode)
}
