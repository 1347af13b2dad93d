package fmalign

// negInf is a finite stand-in for -infinity, chosen so that a handful of
// penalty subtractions can't wrap around to a positive score.
const negInf = -(1 << 30)

// alignBanded scores s against t with banded global (linear-gap) dynamic
// programming and returns the score together with the aligned pair
// recovered by backtrace. Only cells with |i-j| < band are populated;
// if the bottom-right corner falls outside the band, it returns
// (negInf, "", "").
//
// Backtrace predecessors are tried in a fixed order: up (gap in t), then
// left (gap in s), then diagonal; the first that reproduces the cell's
// score wins, so equal-scoring alignments resolve deterministically.
func alignBanded(s, t []byte, mr, mmp, indp, band int) (score int, alignedS, alignedT string) {
	ls, lt := len(s), len(t)
	stride := lt + 1
	h := make([]int, (ls+1)*stride)
	for i := range h {
		h[i] = negInf
	}
	h[0] = 0

	inBand := func(i, j int) bool {
		d := i - j
		if d < 0 {
			d = -d
		}
		return d < band
	}

	for i := 0; i <= ls; i++ {
		jlo := i - band + 1
		if jlo < 0 {
			jlo = 0
		}
		jhi := i + band - 1
		if jhi > lt {
			jhi = lt
		}
		for j := jlo; j <= jhi; j++ {
			if i == 0 && j == 0 {
				continue
			}
			x := i*stride + j
			switch {
			case i == 0:
				h[x] = -j * indp
			case j == 0:
				h[x] = -i * indp
			default:
				best := negInf
				if inBand(i-1, j) {
					if v := h[(i-1)*stride+j] - indp; v > best {
						best = v
					}
				}
				if inBand(i, j-1) {
					if v := h[i*stride+j-1] - indp; v > best {
						best = v
					}
				}
				if inBand(i-1, j-1) {
					m := -mmp
					if s[i-1] == t[j-1] {
						m = mr
					}
					if v := h[(i-1)*stride+j-1] + m; v > best {
						best = v
					}
				}
				h[x] = best
			}
		}
	}

	if !inBand(ls, lt) {
		return negInf, "", ""
	}
	score = h[ls*stride+lt]
	if score <= negInf/2 {
		return negInf, "", ""
	}

	var as, at []byte
	i, j := ls, lt
	for i > 0 || j > 0 {
		cur := h[i*stride+j]
		switch {
		case i > 0 && h[(i-1)*stride+j]-indp == cur: // d: up, gap in t
			as = append(as, s[i-1])
			at = append(at, GapSymbol)
			i--
		case j > 0 && h[i*stride+j-1]-indp == cur: // r: left, gap in s
			as = append(as, GapSymbol)
			at = append(at, t[j-1])
			j--
		default: // dr: diagonal, match/mismatch
			as = append(as, s[i-1])
			at = append(at, t[j-1])
			i--
			j--
		}
	}
	reverseBytes(as)
	reverseBytes(at)
	return score, string(as), string(at)
}

// alignBandedScore computes only the final score of alignBanded, skipping
// the backtrace arrays. Used by the seed-extension scan pass, which scores
// many candidate windows before backtracing just the winner.
func alignBandedScore(s, t []byte, mr, mmp, indp, band int) int {
	ls, lt := len(s), len(t)
	stride := lt + 1
	h := make([]int, (ls+1)*stride)
	for i := range h {
		h[i] = negInf
	}
	h[0] = 0

	inBand := func(i, j int) bool {
		d := i - j
		if d < 0 {
			d = -d
		}
		return d < band
	}

	for i := 0; i <= ls; i++ {
		jlo := i - band + 1
		if jlo < 0 {
			jlo = 0
		}
		jhi := i + band - 1
		if jhi > lt {
			jhi = lt
		}
		for j := jlo; j <= jhi; j++ {
			if i == 0 && j == 0 {
				continue
			}
			x := i*stride + j
			switch {
			case i == 0:
				h[x] = -j * indp
			case j == 0:
				h[x] = -i * indp
			default:
				best := negInf
				if inBand(i-1, j) {
					if v := h[(i-1)*stride+j] - indp; v > best {
						best = v
					}
				}
				if inBand(i, j-1) {
					if v := h[i*stride+j-1] - indp; v > best {
						best = v
					}
				}
				if inBand(i-1, j-1) {
					m := -mmp
					if s[i-1] == t[j-1] {
						m = mr
					}
					if v := h[(i-1)*stride+j-1] + m; v > best {
						best = v
					}
				}
				h[x] = best
			}
		}
	}

	if !inBand(ls, lt) {
		return negInf
	}
	return h[ls*stride+lt]
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
