// Package dataloaders reads and writes the CSV files exchanged with the
// optimizer.
package dataloaders

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/bjstrat/chromosome"
)

const (
	MeanChromosomeFilename    = "chrom.csv"
	EvolvedChromosomeFilename = "strategy_chromosome.csv"
)

// ReadChromosome parses the first line of r as a comma-separated
// chromosome. Any further lines are ignored.
func ReadChromosome(r io.Reader) (chromosome.Chromosome, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	// Stray quotes are left in the field so they fail as a ParseError.
	cr.LazyQuotes = true
	record, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &chromosome.MalformedChromosomeError{Got: 0}
	}
	if err != nil {
		return nil, err
	}
	return chromosome.Parse(record)
}

// LoadChromosome reads a chromosome file from disk.
func LoadChromosome(path string) (chromosome.Chromosome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := ReadChromosome(f)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("size", len(c)).Bool("binary", c.IsBinary()).
		Msg("loaded-chromosome")
	return c, nil
}

// WriteChromosome writes c as a single comma-separated line. Integral
// values are written without a decimal point, so a binarized chromosome
// is written as 0s and 1s.
func WriteChromosome(w io.Writer, c chromosome.Chromosome) error {
	record := make([]string, len(c))
	for i, v := range c {
		record[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// SaveChromosome writes c to path, replacing any existing file.
func SaveChromosome(path string, c chromosome.Chromosome) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteChromosome(f, c); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Debug().Str("path", path).Int("size", len(c)).Msg("saved-chromosome")
	return nil
}
