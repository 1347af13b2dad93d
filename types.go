package fmalign

import "errors"

// Seq is a sequence over an arbitrary byte alphabet. There is no named type
// per alphabet: the aligner core never assumes DNA, RNA, or protein.
type Seq []byte

// String satisfies fmt.Stringer.
func (s Seq) String() string { return string(s) }

// GapSymbol marks a gap column in an aligned sequence pair.
const GapSymbol = '-'

// sentinel is the unique, lexicographically smallest symbol appended to a
// reference before indexing. Code point 0 can't occur in any text read
// from FASTA, so it is always available as a terminator.
const sentinel = 0

// Engine selects the dynamic-programming scheme used to score and extend
// seed candidates.
type Engine int

const (
	// Banded selects linear-gap banded global alignment (C5).
	Banded Engine = iota
	// Affine selects affine-gap three-layer global alignment (C6).
	Affine
)

// ScoringConfig bundles the parameters of an alignment call. MatchReward,
// MismatchPenalty, and IndelPenalty drive the Banded engine; GapOpenPenalty
// and GapExtendPenalty drive the Affine engine.
type ScoringConfig struct {
	MatchReward      int
	MismatchPenalty  int
	IndelPenalty     int
	GapOpenPenalty   int
	GapExtendPenalty int
	Engine           Engine
}

// AlignmentResult is the outcome of aligning one read against a reference.
type AlignmentResult struct {
	RefPosition int
	Score       int
	AlignedRef  string
	AlignedRead string
	Cigar       string
}

// Errors returned at the library's external boundaries. Malformed input
// (empty reference, bad stride, empty read, bad seed/band parameters) is
// rejected with one of these; a read with no seed hits anywhere in the
// reference is not an error, it surfaces as a nil *AlignmentResult.
var (
	ErrEmptyReference = errors.New("fmalign: reference is empty")
	ErrSentinelInRef  = errors.New("fmalign: reference contains the sentinel byte")
	ErrInvalidStride  = errors.New("fmalign: sample/checkpoint stride must be >= 1")
	ErrEmptyRead      = errors.New("fmalign: read is empty")
	ErrSeedTooLong    = errors.New("fmalign: seed length exceeds read length")
	ErrSeedTooShort   = errors.New("fmalign: seed length must be >= 1")
	ErrBandTooNarrow  = errors.New("fmalign: band width must be >= 1")
	ErrNegativeParam  = errors.New("fmalign: scoring parameters must be >= 0")
)
