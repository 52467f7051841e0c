package frame

import (
	"slices"
)

// Groups is a frame split into groups of rows sharing a key value.
type Groups struct {
	f    *Frame
	key  string
	keys []Value
	rows map[Value][]int
}

// GroupBy splits the frame by the values of the key column. Rows with a
// missing key are dropped. Groups are ordered by ascending key.
func (f *Frame) GroupBy(key string) (*Groups, error) {
	j, ok := f.pos[key]
	if !ok {
		return nil, MissingColumnsError([]string{key})
	}
	res := &Groups{f: f, key: key, rows: make(map[Value][]int)}
	for i, row := range f.rows {
		k := row[j]
		if k.IsNA() {
			continue
		}
		if _, ok := res.rows[k]; !ok {
			res.keys = append(res.keys, k)
		}
		res.rows[k] = append(res.rows[k], i)
	}
	slices.SortStableFunc(res.keys, Compare)
	return res, nil
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.keys)
}

// Sum adds up numeric values of every column per group. Missing and
// non-numeric values are skipped, a group without numbers sums to 0.
func (g *Groups) Sum(cols ...string) (*Frame, error) {
	return g.agg(cols, func(ff []float64) Value {
		var res float64
		for _, v := range ff {
			res += v
		}
		return Num(res)
	})
}

// Mean averages numeric values of every column per group. Missing and
// non-numeric values are skipped, a group without numbers gives NA.
func (g *Groups) Mean(cols ...string) (*Frame, error) {
	return g.agg(cols, func(ff []float64) Value {
		if len(ff) == 0 {
			return NA()
		}
		var res float64
		for _, v := range ff {
			res += v
		}
		return Num(res / float64(len(ff)))
	})
}

func (g *Groups) agg(cols []string, fn func([]float64) Value) (*Frame, error) {
	src, err := g.f.Select(cols...)
	if err != nil {
		return nil, err
	}

	res := New(append([]string{g.key}, cols...)...)
	for _, k := range g.keys {
		vals := make([]Value, 0, len(cols)+1)
		vals = append(vals, k)
		for j := range cols {
			var ff []float64
			for _, i := range g.rows[k] {
				if n, ok := src.rows[i][j].Float(); ok {
					ff = append(ff, n)
				}
			}
			vals = append(vals, fn(ff))
		}
		res.AddRow(vals...)
	}
	return res, nil
}
