package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arouane/fmalign"
	"github.com/arouane/fmalign/internal/fastaio"
)

var (
	refPath          string
	readsPath        string
	seedLen          int
	band             int
	saSampleStride   int
	rankCheckStride  int
	matchReward      int
	mismatchPenalty  int
	indelPenalty     int
	gapOpenPenalty   int
	gapExtendPenalty int
	useAffine        bool
)

var rootCmd = &cobra.Command{
	Use:   "fmalign",
	Short: "Align FASTQ reads against a FASTA reference with an FM-index",
	Long: `fmalign builds an FM-index over a FASTA reference, then aligns each
read from a FASTQ file against it: exact-match seeding through the index
locates candidate placements, and either banded or affine-gap dynamic
programming extends the best candidate into a full alignment.`,
	RunE: runAlign,
}

func init() {
	rootCmd.Flags().StringVarP(&refPath, "ref", "r", "", "FASTA reference file (required)")
	rootCmd.Flags().StringVarP(&readsPath, "reads", "q", "", "FASTQ reads file (required)")
	rootCmd.Flags().IntVarP(&seedLen, "seed-len", "k", 12, "exact-match seed length")
	rootCmd.Flags().IntVarP(&band, "band", "b", 5, "band width for the banded engine")
	rootCmd.Flags().IntVar(&saSampleStride, "sa-stride", 4, "suffix array sampling stride")
	rootCmd.Flags().IntVar(&rankCheckStride, "rank-stride", 16, "rank checkpoint stride")
	rootCmd.Flags().IntVar(&matchReward, "match", 1, "match reward")
	rootCmd.Flags().IntVar(&mismatchPenalty, "mismatch", 1, "mismatch penalty")
	rootCmd.Flags().IntVar(&indelPenalty, "indel", 1, "indel penalty (banded engine)")
	rootCmd.Flags().IntVar(&gapOpenPenalty, "gap-open", 2, "gap open penalty (affine engine)")
	rootCmd.Flags().IntVar(&gapExtendPenalty, "gap-extend", 1, "gap extend penalty (affine engine)")
	rootCmd.Flags().BoolVar(&useAffine, "affine", false, "use the affine-gap engine instead of banded")

	rootCmd.MarkFlagRequired("ref")
	rootCmd.MarkFlagRequired("reads")
}

func runAlign(cmd *cobra.Command, args []string) error {
	refRecs, err := fastaio.ReadFASTAFile(refPath)
	if err != nil {
		return errors.Wrap(err, "reading reference FASTA")
	}
	if len(refRecs) == 0 {
		return errors.New("reference FASTA contains no sequences")
	}
	if len(refRecs) > 1 {
		log.WithFields(logrus.Fields{
			"used":    refRecs[0].ID(),
			"ignored": len(refRecs) - 1,
		}).Warn("multiple reference sequences found, aligning against the first only")
	}

	log.WithField("ref", refRecs[0].ID()).Info("building index")
	ix, err := fmalign.NewIndex(refRecs[0].Seq, saSampleStride, rankCheckStride)
	if err != nil {
		return errors.Wrap(err, "building index")
	}

	f, err := os.Open(readsPath)
	if err != nil {
		return errors.Wrap(err, "opening reads file")
	}
	defer f.Close()

	engine := fmalign.Banded
	if useAffine {
		engine = fmalign.Affine
	}
	cfg := fmalign.ScoringConfig{
		MatchReward:      matchReward,
		MismatchPenalty:  mismatchPenalty,
		IndelPenalty:     indelPenalty,
		GapOpenPenalty:   gapOpenPenalty,
		GapExtendPenalty: gapExtendPenalty,
		Engine:           engine,
	}

	scanner := fastaio.NewFASTQScanner(f)
	var rec fastaio.Record
	aligned, unmapped := 0, 0
	for scanner.Scan(&rec) {
		res, err := ix.AlignRead(rec.Seq, seedLen, band, cfg)
		if err != nil {
			log.WithError(err).WithField("read", rec.ID()).Warn("skipping read")
			continue
		}
		if res == nil {
			unmapped++
			fmt.Printf("%s\t*\t0\t*\n", rec.ID())
			continue
		}
		aligned++
		fmt.Printf("%s\t%d\t%d\t%s\n", rec.ID(), res.RefPosition, res.Score, res.Cigar)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading FASTQ reads")
	}

	log.WithFields(logrus.Fields{"aligned": aligned, "unmapped": unmapped}).Info("done")
	return nil
}
