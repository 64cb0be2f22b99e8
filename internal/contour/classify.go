package contour

// Classify maps the 16 corner sign patterns of a cell onto the five drawing
// cases. Two above corners are an edge when they are cyclic neighbors and a
// saddle when they sit on a diagonal.
func Classify(c Cell) Case {
	switch c.Sum() {
	case 1:
		return CaseCorner
	case 3:
		return CaseInverseCorner
	case 2:
		for k := 0; k < 4; k++ {
			if c[k].Class != Above {
				continue
			}
			if c[next(k)].Class == Above || c[prev(k)].Class == Above {
				return CaseEdge
			}
			return CaseSaddle
		}
	}
	return CaseNone
}
