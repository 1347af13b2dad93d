package fmalign

import "strconv"

// CigarOf encodes an aligned (reference, read) pair as a CIGAR string:
// runs of match/mismatch ('M'), insertion relative to the reference ('I',
// a gap in alignedRef), and deletion relative to the reference ('D', a gap
// in alignedRead), each written as a run length followed by its class
// letter. alignedRef and alignedRead must have equal length. Matches and
// mismatches are not distinguished; both are 'M'.
func CigarOf(alignedRef, alignedRead string) string {
	if len(alignedRef) == 0 {
		return ""
	}

	classOf := func(i int) byte {
		switch {
		case alignedRef[i] == GapSymbol:
			return 'I'
		case alignedRead[i] == GapSymbol:
			return 'D'
		default:
			return 'M'
		}
	}

	var out []byte
	runClass := classOf(0)
	runLen := 1
	for i := 1; i < len(alignedRef); i++ {
		c := classOf(i)
		if c == runClass {
			runLen++
			continue
		}
		out = strconv.AppendInt(out, int64(runLen), 10)
		out = append(out, runClass)
		runClass = c
		runLen = 1
	}
	out = strconv.AppendInt(out, int64(runLen), 10)
	out = append(out, runClass)
	return string(out)
}
