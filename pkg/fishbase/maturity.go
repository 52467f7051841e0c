package fishbase

import "github.com/gnames/fishfeat/pkg/frame"

// Columns produced by Maturity.
const (
	AgeMaturity    = "Age_Maturity"
	LengthMaturity = "Length_Maturity"
)

// Maturity takes the smaller of the two minimal maturity ages and
// lengths of every record and averages them per species. A species
// without any measurement gets missing values.
func Maturity(raw *frame.Frame) (*frame.Frame, error) {
	f, err := selectKeyed(raw, "Speccode",
		"AgeMatMin", "AgeMatMin2", "LengthMatMin", "LengthMatMin2",
	)
	if err != nil {
		return nil, err
	}

	if err = f.RowMin(AgeMaturity, "AgeMatMin", "AgeMatMin2"); err != nil {
		return nil, err
	}
	if err = f.RowMin(LengthMaturity, "LengthMatMin", "LengthMatMin2"); err != nil {
		return nil, err
	}

	g, err := f.GroupBy(SpecCode)
	if err != nil {
		return nil, err
	}
	return g.Mean(AgeMaturity, LengthMaturity)
}
