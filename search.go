package fmalign

// search backward-searches pattern p in the indexed reference and returns
// the half-open row interval [lo, hi) in the sorted-rotation matrix whose
// rotations begin with p. An empty match is returned as (0, 0).
//
// occ counts inclusively, so the top bound is adjusted down by one when
// bwt[top] itself matches the current symbol.
func (ix *Index) search(p []byte) (lo, hi int) {
	top, bot := 0, ix.n-1
	for i := len(p) - 1; i >= 0; i-- {
		c := p[i]
		if !ix.present[c] {
			return 0, 0
		}
		topRank := ix.occ(top, c)
		botRank := ix.occ(bot, c)
		if ix.bwt[top] == c {
			topRank--
		}
		top = ix.firc[c] + topRank
		bot = ix.firc[c] + botRank - 1
		if bot < top {
			return 0, 0
		}
	}
	return top, bot + 1
}

// positions recovers the reference starting offsets for every row in the
// half-open interval [lo, hi), via LF-walking each row back to the nearest
// sampled suffix-array entry. Order is unspecified.
func (ix *Index) positions(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, 0, hi-lo)
	for r := lo; r < hi; r++ {
		p, steps := r, 0
		for !ix.saHas[p] {
			c := ix.bwt[p]
			p = ix.firc[c] + ix.rank[p] - 1
			steps++
		}
		out = append(out, (ix.saVal[p]+steps)%ix.n)
	}
	return out
}
