package fishbase

import "github.com/gnames/fishfeat/pkg/frame"

// TaxaColumns are taxonomy columns kept in features.
var TaxaColumns = []string{"Genus", "Species", "Family", "Order", "Class"}

// Taxa selects the taxonomy of every species, keeping the first row of
// each SpecCode.
func Taxa(raw *frame.Frame) (*frame.Frame, error) {
	res, err := selectKeyed(raw, SpecCode, TaxaColumns...)
	if err != nil {
		return nil, err
	}
	return res.DropDuplicates(SpecCode)
}
