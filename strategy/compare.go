package strategy

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/bjstrat/chromosome"
)

// Disagreement counts the cells of one category where two strategies
// take different decisions.
type Disagreement struct {
	Category chromosome.Category
	Cells    int
	Total    int
}

// Compare binarizes both chromosomes with threshold a and returns a
// chromosome holding 1 wherever the decisions differ, together with
// per-category counts.
func Compare(x, y chromosome.Chromosome, a float64) (chromosome.Chromosome, []Disagreement, error) {
	if err := x.Validate(); err != nil {
		return nil, nil, err
	}
	if err := y.Validate(); err != nil {
		return nil, nil, err
	}
	bx := chromosome.Threshold(x, a)
	by := chromosome.Threshold(y, a)
	diff := lo.Map(bx, func(v float64, i int) float64 {
		if v != by[i] {
			return 1
		}
		return 0
	})
	ds := lo.Map(chromosome.Categories(), func(cat chromosome.Category, _ int) Disagreement {
		seg := chromosome.Chromosome(diff).Segment(cat)
		return Disagreement{
			Category: cat,
			Cells:    int(lo.Sum(seg)),
			Total:    len(seg),
		}
	})
	return diff, ds, nil
}

// FormatDisagreements renders the counts returned by Compare.
func FormatDisagreements(ds []Disagreement) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-20s%-9s%-9s%-9s\n", "Category", "Differ", "Cells", "% differ")
	for _, d := range ds {
		fmt.Fprintf(&sb, "%-20s%-9d%-9d%-9.2f\n", d.Category, d.Cells, d.Total,
			float64(d.Cells*100)/float64(d.Total))
	}
	total := lo.SumBy(ds, func(d Disagreement) int { return d.Cells })
	fmt.Fprintf(&sb, "%-20s%-9d%-9d\n", "total", total, chromosome.Length)
	return sb.String()
}
