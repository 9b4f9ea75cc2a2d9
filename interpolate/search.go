package interpolate

// searcher locates the bracketing interval of a query inside a strictly
// increasing domain. It first guesses under the assumption of uniform
// spacing, which makes lookups O(1) on uniform or near-uniform grids,
// and falls back to binary search on irregular ones.
type searcher struct {
	xs      []float64
	x0, lim float64
	dx      float64 // mean step, used only for the uniform guess
	n       int
}

func newSearcher(xs []float64) searcher {
	n := len(xs)

	return searcher{
		xs:  xs,
		x0:  xs[0],
		lim: xs[n-1],
		dx:  (xs[n-1] - xs[0]) / float64(n-1),
		n:   n,
	}
}

// bracket returns i such that xs[i] <= x <= xs[i+1], with i in
// [0, n-2]. The caller must have clamped x into [x0, lim] first.
func (s *searcher) bracket(x float64) int {
	// Guess under the assumption of uniform spacing.
	guess := int((x - s.x0) / s.dx)
	if guess >= 0 && guess < s.n-1 && s.xs[guess] <= x && x <= s.xs[guess+1] {
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
