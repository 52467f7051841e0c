// Package iucn narrows an IUCN Red List snapshot down to fish species.
package iucn

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/fishfeat/pkg/frame"
)

// Columns kept in the subset, in output order.
var Columns = []string{
	"Class", "Order", "Family", "Genus", "Species", "Red List status",
}

// FishClasses are the taxonomic classes that make a record a fish.
var FishClasses = []string{
	"Actinopterygii", "Chondrichthyes", "Sarcopterygii", "Cephalaspidomorphi",
}

// normalized are the columns that are capitalized before matching.
var normalized = []string{"Class", "Order", "Family"}

// Subset selects Columns, capitalizes Class, Order and Family and keeps
// only rows that belong to FishClasses. Row labels of the source frame
// are preserved.
func Subset(f *frame.Frame) (*frame.Frame, error) {
	res, err := f.Select(Columns...)
	if err != nil {
		return nil, err
	}

	err = res.Apply(func(v frame.Value) frame.Value {
		if v.IsNA() {
			return v
		}
		return frame.Str(Capitalize(v.String()))
	}, normalized...)
	if err != nil {
		return nil, err
	}

	res = res.Filter(func(r frame.Row) bool {
		return IsFish(r.Get("Class").String())
	})
	return res, nil
}

// IsFish checks if a capitalized class name is one of FishClasses.
func IsFish(class string) bool {
	return slices.Contains(FishClasses, class)
}

// Capitalize makes the first letter upper case and the rest lower case.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
