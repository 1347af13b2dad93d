package fmalign

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlignBandedExactRepeat(t *testing.T) {
	ref := strings.Repeat("ACGT", 250)
	read := "ACGTACGTACGTACGTACGT"

	score, as, at := alignBanded([]byte(read), []byte(ref[:len(read)]), 1, 1, 1, 3)
	require.Equal(t, len(read), score)
	require.Equal(t, read, as)
	require.Equal(t, ref[:len(read)], at)
}

func TestAlignBandedMismatch(t *testing.T) {
	s := []byte("ACGTACGT")
	ref := []byte("ACGTCCGT")
	score, as, at := alignBanded(s, ref, 1, 1, 1, 3)
	require.Equal(t, 6, score)
	require.Equal(t, "ACGTACGT", as)
	require.Equal(t, "ACGTCCGT", at)
}

func TestAlignBandedInsertion(t *testing.T) {
	s := []byte("ACGTTACGT")
	ref := []byte("ACGTACGT")
	score, as, at := alignBanded(s, ref, 1, 1, 1, 3)
	require.Equal(t, 7, score)
	require.Equal(t, len(as), len(at))
	require.Equal(t, "ACGTTACGT", strings.ReplaceAll(as, string(GapSymbol), ""))
	require.Equal(t, "ACGTACGT", strings.ReplaceAll(at, string(GapSymbol), ""))
}

func TestAlignBandedOutOfBandRejected(t *testing.T) {
	// The length difference exceeds the band width, so the bottom-right
	// corner is never populated.
	s := []byte("AAAAAAAAAA")
	ref := []byte("AAAA")
	score, as, at := alignBanded(s, ref, 1, 1, 1, 3)
	require.Equal(t, negInf, score)
	require.Empty(t, as)
	require.Empty(t, at)
	require.Equal(t, negInf, alignBandedScore(s, ref, 1, 1, 1, 3))
}

func TestAlignBandedAlignmentLengthBound(t *testing.T) {
	s := []byte("AACCGGTT")
	ref := []byte("ACCGGT")
	_, as, at := alignBanded(s, ref, 2, 1, 1, 4)
	require.Equal(t, len(as), len(at))
	require.LessOrEqual(t, len(as), len(s)+len(ref))
}
