package geometry

// Pair is an unordered pair of points.
type Pair struct {
	A, B Point
}

// Distance returns the Euclidean distance between the two points of the pair.
func (pr Pair) Distance() float64 {
	return pr.A.Distance(pr.B)
}

// Normalize returns the pair with A ≤ B in (X, Y) order, so that two pairs
// holding the same points compare equal regardless of orientation.
func (pr Pair) Normalize() Pair {
	if pr.B.Less(pr.A) {
		return Pair{A: pr.B, B: pr.A}
	}
	return pr
}
