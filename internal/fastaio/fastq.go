package fastaio

import (
	"bufio"
	"errors"
	"io"
)

// ErrShortFASTQ is returned when a FASTQ file ends mid-record.
var ErrShortFASTQ = errors.New("fastaio: short FASTQ record")

// ErrInvalidFASTQ is returned when a FASTQ record's framing lines ('@' and
// '+') are missing or out of order.
var ErrInvalidFASTQ = errors.New("fastaio: malformed FASTQ record")

var errFASTQEOF = errors.New("fastaio: fastq eof")

// FASTQScanner reads four-line FASTQ records (ID, sequence, a '+' line, and
// a quality string) one at a time. Scanners are not safe for concurrent
// use.
type FASTQScanner struct {
	b   *bufio.Scanner
	err error
}

// NewFASTQScanner constructs a FASTQScanner reading from r.
func NewFASTQScanner(r io.Reader) *FASTQScanner {
	return &FASTQScanner{b: bufio.NewScanner(r)}
}

// Scan reads the next record into rec, returning false once the stream is
// exhausted or an error occurs. Call Err after Scan returns false to tell
// the two cases apart.
func (s *FASTQScanner) Scan(rec *Record) bool {
	if s.err != nil {
		return false
	}
	if !s.b.Scan() {
		if s.err = s.b.Err(); s.err == nil {
			s.err = errFASTQEOF
		}
		return false
	}
	header := s.b.Bytes()
	if len(header) == 0 || header[0] != '@' {
		s.err = ErrInvalidFASTQ
		return false
	}
	rec.Header = string(header)

	if !s.scanLine() {
		return false
	}
	rec.Seq = append(rec.Seq[:0], s.b.Bytes()...)

	if !s.scanLine() {
		return false
	}
	sep := s.b.Bytes()
	if len(sep) == 0 || sep[0] != '+' {
		s.err = ErrInvalidFASTQ
		return false
	}

	if !s.scanLine() {
		return false
	}
	rec.Qual = append(rec.Qual[:0], s.b.Bytes()...)
	return true
}

func (s *FASTQScanner) scanLine() bool {
	if ok := s.b.Scan(); !ok {
		if s.err = s.b.Err(); s.err == nil {
			s.err = ErrShortFASTQ
		}
		return false
	}
	return true
}

// Err returns the scanning error, if any, after Scan has returned false.
func (s *FASTQScanner) Err() error {
	if s.err == errFASTQEOF {
		return nil
	}
	return s.err
}
