package fastaio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const fastqSample = "@read1\nACGTACGT\n+\nIIIIIIII\n@read2\nTTTTGGGG\n+\nHHHHHHHH\n"

func TestFASTQScannerReadsRecords(t *testing.T) {
	s := NewFASTQScanner(strings.NewReader(fastqSample))

	var rec Record
	require.True(t, s.Scan(&rec))
	require.Equal(t, "@read1", rec.Header)
	require.Equal(t, "ACGTACGT", string(rec.Seq))
	require.Equal(t, "IIIIIIII", string(rec.Qual))

	require.True(t, s.Scan(&rec))
	require.Equal(t, "@read2", rec.Header)
	require.Equal(t, "TTTTGGGG", string(rec.Seq))
	require.Equal(t, "HHHHHHHH", string(rec.Qual))

	require.False(t, s.Scan(&rec))
	require.NoError(t, s.Err())
}

func TestFASTQScannerRejectsMissingAtSign(t *testing.T) {
	s := NewFASTQScanner(strings.NewReader("read1\nACGT\n+\nIIII\n"))
	var rec Record
	require.False(t, s.Scan(&rec))
	require.ErrorIs(t, s.Err(), ErrInvalidFASTQ)
}

func TestFASTQScannerRejectsTruncatedRecord(t *testing.T) {
	s := NewFASTQScanner(strings.NewReader("@read1\nACGT\n"))
	var rec Record
	require.False(t, s.Scan(&rec))
	require.ErrorIs(t, s.Err(), ErrShortFASTQ)
}
