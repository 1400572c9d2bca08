package chromosome

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("value is not finite")

// Chromosome is the flat vector emitted by the optimizer. Functions in
// this package never modify a Chromosome they are given.
type Chromosome []float64

// Parse converts the fields of a chromosome file into a Chromosome.
// Leading and trailing whitespace around each field is ignored.
func Parse(fields []string) (Chromosome, error) {
	c := make(Chromosome, len(fields))
	for i, f := range fields {
		trimmed := strings.TrimSpace(f)
		v, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, &ParseError{Index: i, Field: f, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Index: i, Field: f, Err: errNotFinite}
		}
		c[i] = v
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the chromosome against the segment layout.
func (c Chromosome) Validate() error {
	if len(c) != Length {
		return &MalformedChromosomeError{Got: len(c)}
	}
	return nil
}

// Segment returns a copy of the values belonging to category cat.
func (c Chromosome) Segment(cat Category) []float64 {
	s := SegmentFor(cat)
	out := make([]float64, s.Len())
	copy(out, c[s.Offset:s.End()])
	return out
}

// IsBinary is true if every value is exactly 0 or 1.
func (c Chromosome) IsBinary() bool {
	for _, v := range c {
		if v != 0 && v != 1 {
			return false
		}
	}
	return true
}
