package fmalign

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchBanana(t *testing.T) {
	ix, err := NewIndex([]byte("BANANA"), 1, 1)
	require.NoError(t, err)

	lo, hi := ix.search([]byte("ANA"))
	require.Equal(t, 2, hi-lo)

	pos := ix.positions(lo, hi)
	sort.Ints(pos)
	require.Equal(t, []int{1, 3}, pos)
}

func TestSearchUnknownSymbol(t *testing.T) {
	ix, err := NewIndex([]byte("AAAA"), 1, 1)
	require.NoError(t, err)
	lo, hi := ix.search([]byte("G"))
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)
}

func TestSearchConsistencyAgainstKMP(t *testing.T) {
	ref := []byte("AATCGGGTTCAATCGGGGTAATCGGGTTCAATCGGGGT")
	ix, err := NewIndex(ref, 3, 5)
	require.NoError(t, err)

	for _, w := range []string{"A", "TCGGG", "GGGGT", "AATCGGGTTCAATCGGGGT", "TTC"} {
		lo, hi := ix.search([]byte(w))
		got := ix.positions(lo, hi)
		sort.Ints(got)

		want := kmpAllIndex(ref, []byte(w))
		sort.Ints(want)

		require.Equal(t, want, got, "mismatch searching %q", w)
	}
}

func TestSearchEmptyMatch(t *testing.T) {
	ix, err := NewIndex([]byte("AAAA"), 1, 1)
	require.NoError(t, err)
	lo, hi := ix.search([]byte("GGGG"))
	require.Equal(t, lo, hi)
}
