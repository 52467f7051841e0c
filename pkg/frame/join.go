package frame

// LeftJoin joins frames on the key column. Every row of left is kept in
// its original order. Columns of each right frame (except the key) are
// appended; rows without a match get NA there. Every right frame must
// have unique non-missing keys.
func LeftJoin(key string, left *Frame, rights ...*Frame) (*Frame, error) {
	lk, ok := left.pos[key]
	if !ok {
		return nil, MissingColumnsError([]string{key})
	}

	type side struct {
		cols []int
		rows map[Value]int
	}
	sides := make([]side, len(rights))
	cols := left.Columns()
	for n, r := range rights {
		rk, ok := r.pos[key]
		if !ok {
			return nil, MissingColumnsError([]string{key})
		}
		s := side{rows: make(map[Value]int, r.Len())}
		for j, v := range r.cols {
			if j == rk {
				continue
			}
			s.cols = append(s.cols, j)
			cols = append(cols, v)
		}
		for i, row := range r.rows {
			k := row[rk]
			if k.IsNA() {
				continue
			}
			if _, ok := s.rows[k]; ok {
				return nil, DuplicateKeyError(key, k)
			}
			s.rows[k] = i
		}
		sides[n] = s
	}

	res := New(cols...)
	for i, row := range left.rows {
		vals := make([]Value, 0, len(cols))
		vals = append(vals, row...)
		k := row[lk]
		for n, s := range sides {
			ri, ok := s.rows[k]
			if k.IsNA() {
				ok = false
			}
			for _, j := range s.cols {
				if ok {
					vals = append(vals, rights[n].rows[ri][j])
				} else {
					vals = append(vals, NA())
				}
			}
		}
		res.addRow(left.labels[i], vals)
	}
	return res, nil
}
