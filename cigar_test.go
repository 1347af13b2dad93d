package fmalign

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCigarOfAllMatch(t *testing.T) {
	require.Equal(t, "14M", CigarOf("AATCGGGTTCAATC", "AATCGGGTTCAATC"))
}

func TestCigarOfInsertionAndDeletion(t *testing.T) {
	ref := "ACGT--ACGT"
	read := "ACGTGGACGT"
	require.Equal(t, "4M2I4M", CigarOf(ref, read))

	ref2 := "ACGTACGT"
	read2 := "ACGT--GT"
	require.Equal(t, "4M2D2M", CigarOf(ref2, read2))
}

func TestCigarOfMixedRuns(t *testing.T) {
	ref := "AC-GTACGT"
	read := "ACTGTAC-T"
	require.Equal(t, "2M1I4M1D1M", CigarOf(ref, read))
}

func TestCigarOfEmpty(t *testing.T) {
	require.Equal(t, "", CigarOf("", ""))
}
