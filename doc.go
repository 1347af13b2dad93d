// Package fmalign implements the core of a short-read sequence aligner.
//
// Given a reference text R, NewIndex builds a compressed full-text index
// over R (a suffix array, its Burrows-Wheeler transform, a first-occurrence
// table, rank checkpoints, and a sampled suffix array). AlignRead then
// locates a query read's best approximate placement in R by generating
// exact-match seeds through the index and extending each candidate
// placement to a gapped alignment, reporting the highest scoring alignment
// together with its reference coordinate and a CIGAR string.
//
// The package treats sequences as plain byte slices over an arbitrary
// alphabet; nothing here assumes DNA. FASTA/FASTQ parsing, SAM/BAM
// emission, and command-line handling are external collaborators (see
// internal/fastaio and cmd/fmalign), not core concerns.
//
// fmalign is synchronous and allocates no goroutines of its own. An *Index
// is immutable once built, so callers may call AlignRead concurrently
// against the same index from multiple goroutines.
package fmalign
