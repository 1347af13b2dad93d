package fmalign

// AlignRead aligns read against the reference indexed by ix: it generates
// exact-match seeds of length seedLen, turns each seed hit into a candidate
// reference window of len(read) bytes, scores every in-bounds candidate
// with a score-only pass of the engine named by cfg.Engine, and re-runs the
// highest-scoring candidate through the same engine with backtrace.
//
// Ties among candidates are broken by first occurrence: scanning proceeds
// in read-offset order and, within an offset, in the order seeds returns
// positions, and a later candidate only displaces the incumbent by scoring
// strictly higher. If no seed produces any in-bounds candidate, AlignRead
// returns (nil, nil) rather than an error.
func (ix *Index) AlignRead(read []byte, seedLen, band int, cfg ScoringConfig) (*AlignmentResult, error) {
	if len(read) == 0 {
		return nil, ErrEmptyRead
	}
	if seedLen < 1 {
		return nil, ErrSeedTooShort
	}
	if seedLen > len(read) {
		return nil, ErrSeedTooLong
	}
	if band < 1 {
		return nil, ErrBandTooNarrow
	}
	if cfg.MatchReward < 0 || cfg.MismatchPenalty < 0 || cfg.IndelPenalty < 0 ||
		cfg.GapOpenPenalty < 0 || cfg.GapExtendPenalty < 0 {
		return nil, ErrNegativeParam
	}

	hits := ix.seeds(read, seedLen)

	seen := make(map[int]bool)
	var candidates []int
	for offset, positions := range hits {
		for _, p := range positions {
			start := p - offset
			if start < 0 || start+len(read) > ix.RefLen() {
				continue
			}
			if !seen[start] {
				seen[start] = true
				candidates = append(candidates, start)
			}
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	score := func(window []byte) int {
		if cfg.Engine == Affine {
			return alignAffineScore(read, window, cfg.MatchReward, cfg.MismatchPenalty, cfg.GapOpenPenalty, cfg.GapExtendPenalty)
		}
		return alignBandedScore(read, window, cfg.MatchReward, cfg.MismatchPenalty, cfg.IndelPenalty, band)
	}

	bestStart := candidates[0]
	bestScore := score(ix.ref[bestStart : bestStart+len(read)])
	for _, start := range candidates[1:] {
		s := score(ix.ref[start : start+len(read)])
		if s > bestScore {
			bestScore, bestStart = s, start
		}
	}

	window := ix.ref[bestStart : bestStart+len(read)]
	var finalScore int
	var alignedRead, alignedRef string
	if cfg.Engine == Affine {
		finalScore, alignedRead, alignedRef = alignAffine(read, window, cfg.MatchReward, cfg.MismatchPenalty, cfg.GapOpenPenalty, cfg.GapExtendPenalty)
	} else {
		finalScore, alignedRead, alignedRef = alignBanded(read, window, cfg.MatchReward, cfg.MismatchPenalty, cfg.IndelPenalty, band)
	}

	return &AlignmentResult{
		RefPosition: bestStart,
		Score:       finalScore,
		AlignedRef:  alignedRef,
		AlignedRead: alignedRead,
		Cigar:       CigarOf(alignedRef, alignedRead),
	}, nil
}
