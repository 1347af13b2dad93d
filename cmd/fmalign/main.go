// Command fmalign aligns FASTQ reads against a FASTA reference using the
// fmalign package and prints one alignment line per read.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("fmalign failed")
		os.Exit(1)
	}
}
