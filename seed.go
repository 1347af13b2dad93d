package fmalign

import "golang.org/x/exp/slices"

// seeds returns, for each offset i in [0, len(read)-k+1), the set of
// reference positions at which read[i:i+k] occurs exactly in R, sorted in
// ascending order. Order of offsets in the returned slice follows the
// read.
//
// Sorting each offset's hits makes the first-occurrence tie-break in
// AlignRead depend on reference position rather than on the incidental
// order LF-walk recovery happens to produce.
func (ix *Index) seeds(read []byte, k int) [][]int {
	m := len(read) - k + 1
	out := make([][]int, m)
	for i := 0; i < m; i++ {
		lo, hi := ix.search(read[i : i+k])
		p := ix.positions(lo, hi)
		slices.Sort(p)
		out[i] = p
	}
	return out
}
