package strategy

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidThreshold = errors.New("threshold must be a positive finite number")

// A Quantizer turns a cell value into the text shown in a rendered table.
// Both quantizers truncate toward zero; neither rounds.
type Quantizer struct {
	name   string
	format func(v float64) string
	// indented cells are shifted so that their first character sits under
	// the column label.
	indented bool
}

func (q Quantizer) String() string {
	return q.name
}

// Format returns the unpadded text for v.
func (q Quantizer) Format(v float64) string {
	return q.format(v)
}

// DecisionQuantizer shows int(v / a). For a binarized chromosome this
// prints the decision itself; for a mean chromosome it prints 1 only for
// cells at or above the threshold.
func DecisionQuantizer(a float64) (Quantizer, error) {
	if !(a > 0) || math.IsInf(a, 0) {
		return Quantizer{}, ErrInvalidThreshold
	}
	return Quantizer{
		name: "decision",
		format: func(v float64) string {
			return strconv.Itoa(int(v / a))
		},
		indented: true,
	}, nil
}

// HundredthsQuantizer shows a value truncated to two decimal places, e.g.
// 0.978 becomes "0.97" and 1 becomes "1.0".
var HundredthsQuantizer = Quantizer{
	name:   "hundredths",
	format: formatHundredths,
}

func formatHundredths(v float64) string {
	// Converting through an integer also turns -0 into 0.
	t := float64(int64(100*v)) / 100.0
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
