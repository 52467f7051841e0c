package fishbase

import "github.com/gnames/fishfeat/pkg/frame"

// HabitatColumns are ecology flags encoded as -1 (present) and 0.
var HabitatColumns = []string{
	"Neritic", "SupraLittoralZone", "Saltmarshes", "LittoralZone",
	"TidePools", "Intertidal", "SubLittoral", "Caves", "Oceanic",
	"Epipelagic", "Mesopelagic", "Bathypelagic", "Abyssopelagic",
	"Hadopelagic", "Estuaries", "Mangroves", "MarshesSwamps",
	"CaveAnchialine", "Stream", "Lakes", "Cave",
}

// DietTroph is the trophic level from diet composition.
const DietTroph = "DietTLu"

// Ecology remaps habitat flags to 1/0 and sums them per species. A sum
// above one means several ecology records report the habitat. DietTLu
// is summed as well.
func Ecology(raw *frame.Frame) (*frame.Frame, error) {
	cols := append(append([]string{}, HabitatColumns...), DietTroph)
	f, err := selectKeyed(raw, SpecCode, cols...)
	if err != nil {
		return nil, err
	}

	if err = f.Apply(presence, HabitatColumns...); err != nil {
		return nil, err
	}

	g, err := f.GroupBy(SpecCode)
	if err != nil {
		return nil, err
	}
	return g.Sum(cols...)
}
