package fmalign

// kmpFailure computes the Knuth-Morris-Pratt failure array of s: the
// longest proper prefix of s[:i+1] that is also a suffix of s[:i+1].
// Used only by tests, as an independent oracle for backward search.
func kmpFailure(s []byte) []int {
	f := make([]int, len(s))
	for pos, cnd := 1, 0; pos < len(s); {
		switch {
		case len(s) < 2:
			return f
		case s[pos] == s[cnd]:
			cnd++
			f[pos] = cnd
			pos++
		case cnd > 0:
			cnd = f[cnd-1]
		default:
			pos++
		}
	}
	return f
}

// kmpAllIndex returns every starting offset at which pat occurs in s,
// including overlapping occurrences.
func kmpAllIndex(s, pat []byte) []int {
	if len(pat) == 0 || len(pat) > len(s) {
		return nil
	}
	f := kmpFailure(pat)
	var out []int
	m := 0
	for i := 0; i < len(s); i++ {
		for m > 0 && pat[m] != s[i] {
			m = f[m-1]
		}
		if pat[m] == s[i] {
			m++
		}
		if m == len(pat) {
			out = append(out, i-len(pat)+1)
			m = f[m-1]
		}
	}
	return out
}
