package fmalign

// alignAffine scores s against t with global alignment under an affine gap
// penalty (gapOpen once per run of gap symbols, gapExtend for every gap
// symbol after the first) and returns the score with the aligned pair
// recovered by backtrace.
//
// Three score layers run in parallel over the same (len(s)+1)x(len(t)+1)
// grid: lower holds the best score ending in a gap that consumes s (a run
// down the rows), upper holds the best score ending in a gap that consumes
// t (a run across the columns), and middle holds the best score ending in
// a match or mismatch. Each layer also carries a backtrack pointer
// (previous layer, previous flat index).
//
// The middle layer compares candidates in a fixed order: lower, then
// upper, then diagonal; a later candidate only displaces an earlier one
// by scoring strictly higher, so equal-scoring alignments resolve
// deterministically.
func alignAffine(s, t []byte, mr, mmp, gapOpen, gapExtend int) (score int, alignedS, alignedT string) {
	stride := len(t) + 1
	n := (len(s) + 1) * stride

	lower := make([]int, n)  // layer ending in a gap consuming s (vertical run)
	upper := make([]int, n)  // layer ending in a gap consuming t (horizontal run)
	middle := make([]int, n) // layer ending in a match/mismatch

	const fromLower = 1
	const fromUpper = 2
	const fromMiddle = 3

	type back struct {
		layer int
		prev  int
	}
	blower := make([]back, n)
	bupper := make([]back, n)
	bmiddle := make([]back, n)

	lower[0] = negInf
	upper[0] = negInf

	for x := 1; x < n; x++ {
		i, j := x/stride, x%stride

		if i == 0 {
			lower[x] = negInf
		} else {
			px := x - stride
			extend := lower[px] - gapExtend
			open := middle[px] - gapOpen
			if extend >= open {
				lower[x], blower[x] = extend, back{fromLower, px}
			} else {
				lower[x], blower[x] = open, back{fromMiddle, px}
			}
		}

		if j == 0 {
			upper[x] = negInf
		} else {
			px := x - 1
			extend := upper[px] - gapExtend
			open := middle[px] - gapOpen
			if extend >= open {
				upper[x], bupper[x] = extend, back{fromUpper, px}
			} else {
				upper[x], bupper[x] = open, back{fromMiddle, px}
			}
		}

		best := lower[x]
		bestBack := back{fromLower, x}
		if upper[x] > best {
			best, bestBack = upper[x], back{fromUpper, x}
		}
		if i > 0 && j > 0 {
			px := x - stride - 1
			m := -mmp
			if s[i-1] == t[j-1] {
				m = mr
			}
			if v := middle[px] + m; v > best {
				best, bestBack = v, back{fromMiddle, px}
			}
		}
		middle[x], bmiddle[x] = best, bestBack
	}

	x := n - 1
	score = middle[x]

	var as, at []byte
	layer := fromMiddle
	for x > 0 {
		i, j := x/stride, x%stride
		var b back
		switch layer {
		case fromLower:
			as = append(as, s[i-1])
			at = append(at, GapSymbol)
			b = blower[x]
		case fromUpper:
			as = append(as, GapSymbol)
			at = append(at, t[j-1])
			b = bupper[x]
		default:
			b = bmiddle[x]
			if b.prev == x {
				// Gap-layer close at this cell: switch layers without
				// consuming a column.
				layer = b.layer
				continue
			}
			as = append(as, s[i-1])
			at = append(at, t[j-1])
		}
		layer = b.layer
		x = b.prev
	}
	reverseBytes(as)
	reverseBytes(at)
	return score, string(as), string(at)
}

// alignAffineScore computes only the final score of alignAffine, skipping
// the backtrack arrays. Used by the seed-extension scan pass, which scores
// many candidate windows before backtracing just the winner.
func alignAffineScore(s, t []byte, mr, mmp, gapOpen, gapExtend int) int {
	stride := len(t) + 1
	n := (len(s) + 1) * stride

	lower := make([]int, n)
	upper := make([]int, n)
	middle := make([]int, n)

	lower[0] = negInf
	upper[0] = negInf

	for x := 1; x < n; x++ {
		i, j := x/stride, x%stride

		if i == 0 {
			lower[x] = negInf
		} else {
			px := x - stride
			extend := lower[px] - gapExtend
			open := middle[px] - gapOpen
			if extend >= open {
				lower[x] = extend
			} else {
				lower[x] = open
			}
		}

		if j == 0 {
			upper[x] = negInf
		} else {
			px := x - 1
			extend := upper[px] - gapExtend
			open := middle[px] - gapOpen
			if extend >= open {
				upper[x] = extend
			} else {
				upper[x] = open
			}
		}

		best := lower[x]
		if upper[x] > best {
			best = upper[x]
		}
		if i > 0 && j > 0 {
			px := x - stride - 1
			m := -mmp
			if s[i-1] == t[j-1] {
				m = mr
			}
			if v := middle[px] + m; v > best {
				best = v
			}
		}
		middle[x] = best
	}

	return middle[n-1]
}
