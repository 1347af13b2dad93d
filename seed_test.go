package fmalign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedsEmptyWhenNoHits(t *testing.T) {
	ix, err := NewIndex([]byte("AAAA"), 1, 1)
	require.NoError(t, err)

	ss := ix.seeds([]byte("GGGG"), 2)
	require.Len(t, ss, 3)
	for _, s := range ss {
		require.Empty(t, s)
	}
}

func TestSeedsCoverReadLength(t *testing.T) {
	ref := []byte("ACGTACGTACGT")
	ix, err := NewIndex(ref, 2, 2)
	require.NoError(t, err)

	read := []byte("ACGTACGT")
	k := 3
	ss := ix.seeds(read, k)
	require.Len(t, ss, len(read)-k+1)
	for i, positions := range ss {
		for _, p := range positions {
			require.Equal(t, string(read[i:i+k]), string(ref[p:p+k]))
		}
	}
}
