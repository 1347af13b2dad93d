package fmalign

import "sort"

// suffixArray builds the suffix array of t by prefix doubling: at each
// round the rank pair (rank[i], rank[i+k]) is sorted, then collapsed back
// to a single rank so the next round can look twice as far ahead. Three
// parallel arrays (sa, rank, tmp) stand in for a record per suffix, which
// keeps the hot sort cache-friendly.
//
// t must be non-empty. The returned slice is a permutation of [0,len(t)).
func suffixArray(t []byte) []int {
	n := len(t)
	sa := make([]int, n)
	rank := make([]int, n)
	tmp := make([]int, n)
	for i := range sa {
		sa[i] = i
		rank[i] = int(t[i])
	}
	// k is the length of the prefix whose rank is already exact in rank[].
	for k := 1; k < n; k *= 2 {
		secondary := func(i int) int {
			if i+k < n {
				return rank[i+k]
			}
			return -1
		}
		sort.Slice(sa, func(a, b int) bool {
			i, j := sa[a], sa[b]
			if rank[i] != rank[j] {
				return rank[i] < rank[j]
			}
			return secondary(i) < secondary(j)
		})
		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			prev, cur := sa[i-1], sa[i]
			tmp[cur] = tmp[prev]
			if rank[prev] != rank[cur] || secondary(prev) != secondary(cur) {
				tmp[cur]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break // every suffix has a distinct rank; already fully sorted
		}
	}
	return sa
}
