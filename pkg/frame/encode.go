package frame

import (
	"slices"
)

// Dummies expands a categorical column into indicator columns named
// prefix_category, one per distinct observed value in ascending order.
// Missing values get zeros in every column. With dropFirst the first
// category column is omitted.
func (f *Frame) Dummies(col, prefix string, dropFirst bool) (*Frame, error) {
	vals, err := f.Column(col)
	if err != nil {
		return nil, err
	}

	var cats []Value
	seen := make(map[Value]struct{})
	for _, v := range vals {
		if v.IsNA() {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}
	slices.SortFunc(cats, Compare)
	if dropFirst && len(cats) > 0 {
		cats = cats[1:]
	}

	return f.indicators(vals, cats, prefix), nil
}

// OneHotTop encodes a column into indicators for its first k distinct
// values in order of first occurrence. Values outside of these k
// categories get zeros in every column.
func (f *Frame) OneHotTop(col, prefix string, k int) (*Frame, error) {
	vals, err := f.Column(col)
	if err != nil {
		return nil, err
	}

	var cats []Value
	seen := make(map[Value]struct{})
	for _, v := range vals {
		if len(cats) == k {
			break
		}
		if v.IsNA() {
			continue
		}
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			cats = append(cats, v)
		}
	}

	return f.indicators(vals, cats, prefix), nil
}

func (f *Frame) indicators(vals, cats []Value, prefix string) *Frame {
	cols := make([]string, len(cats))
	idx := make(map[Value]int, len(cats))
	for i, v := range cats {
		cols[i] = prefix + "_" + v.String()
		idx[v] = i
	}

	res := New(cols...)
	for i, v := range vals {
		row := make([]Value, len(cats))
		for j := range row {
			row[j] = Num(0)
		}
		if j, ok := idx[v]; ok {
			row[j] = Num(1)
		}
		res.addRow(f.labels[i], row)
	}
	return res
}
