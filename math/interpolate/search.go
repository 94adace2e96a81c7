package interpolate

// searcher locates bracketing intervals within a strictly increasing
// sequence of knot positions.
type searcher struct {
	xs      []float64
	x0, lim float64
	dx      float64
	n       int
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.n = len(xs)
	s.x0 = xs[0]
	s.lim = xs[s.n-1]
	if s.n > 1 {
		s.dx = (s.lim - s.x0) / float64(s.n-1)
	}
}

// bracket returns i such that xs[i] <= x <= xs[i+1]. Values of x outside
// [xs[0], xs[n-1]] are clamped to the first or last interval, so the caller
// can apply its own extrapolation rule.
//
// bracket must not be called on a searcher with fewer than two knots.
func (s *searcher) bracket(x float64) int {
	if x <= s.x0 {
		return 0
	}
	if x >= s.lim {
		return s.n - 2
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 &&
		s.xs[guess] <= x && s.xs[guess+1] >= x {

		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x >= s.xs[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}
