package chromosome

import (
	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// DefaultThreshold is the cutoff applied to mean chromosomes to obtain a
// playable strategy.
const DefaultThreshold = 0.95

// Threshold returns a new chromosome where every value at or above a
// becomes 1 and every other value becomes 0.
func Threshold(c Chromosome, a float64) Chromosome {
	return lo.Map(c, func(x float64, _ int) float64 {
		if x >= a {
			return 1
		}
		return 0
	})
}

// Sample draws a binary strategy from a mean chromosome: value i is 1
// with probability c[i]. A nil rng uses frand's global generator.
func Sample(c Chromosome, rng *frand.RNG) Chromosome {
	draw := frand.Float64
	if rng != nil {
		draw = rng.Float64
	}
	return lo.Map(c, func(p float64, _ int) float64 {
		if draw() < p {
			return 1
		}
		return 0
	})
}
