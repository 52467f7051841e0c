package frame

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind tells what a Value holds.
type Kind int

const (
	// Missing marks an absent value (null in JSON, empty cell in CSV).
	Missing Kind = iota
	// Number is a float64 value.
	Number
	// String is a text value.
	String
)

// Value is a single cell of a Frame. The zero Value is missing.
// Values are comparable and can be used as map keys.
type Value struct {
	kind Kind
	num  float64
	str  string
}

// NA returns a missing value.
func NA() Value {
	return Value{}
}

// Num returns a numeric value. NaN is converted to a missing value.
func Num(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: Number, num: f}
}

// Str returns a text value.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

// Bool returns 1 for true and 0 for false.
func Bool(b bool) Value {
	if b {
		return Num(1)
	}
	return Num(0)
}

// Of converts a decoded JSON value to a Value.
func Of(v any) Value {
	switch t := v.(type) {
	case nil:
		return NA()
	case float64:
		return Num(t)
	case float32:
		return Num(float64(t))
	case int:
		return Num(float64(t))
	case int64:
		return Num(float64(t))
	case string:
		return Str(t)
	case bool:
		return Bool(t)
	case Value:
		return t
	default:
		return Str(fmt.Sprint(t))
	}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNA is true for missing values.
func (v Value) IsNA() bool {
	return v.kind == Missing
}

// Float returns the numeric interpretation of the value. Strings are
// parsed, and the second return is false when the value is missing or
// cannot be parsed.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case Number:
		return v.num, true
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// ToNumber converts parseable strings to numbers and everything else
// to missing.
func (v Value) ToNumber() Value {
	if f, ok := v.Float(); ok {
		return Num(f)
	}
	return NA()
}

// String renders the value the way it is written to CSV. Missing values
// are empty strings, numbers use the shortest exact representation.
func (v Value) String() string {
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case String:
		return v.str
	default:
		return ""
	}
}

// Compare orders values: numbers first (numerically), then strings
// (lexically), missing values last.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return rank(a.kind) - rank(b.kind)
	}
	switch a.kind {
	case Number:
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	case String:
		return strings.Compare(a.str, b.str)
	default:
		return 0
	}
}

func rank(k Kind) int {
	switch k {
	case Number:
		return 0
	case String:
		return 1
	default:
		return 2
	}
}
