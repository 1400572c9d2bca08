package strategy

import (
	"fmt"

	"github.com/domino14/bjstrat/cards"
	"github.com/domino14/bjstrat/chromosome"
)

// Hand totals are stored at row total-2.
func totalRow(total int) int {
	return total - 2
}

func grid(rows int) [][]float64 {
	g := make([][]float64, rows)
	for i := range g {
		g[i] = make([]float64, chromosome.DealerCards)
	}
	return g
}

func dealer(label string) int {
	i, err := cards.Index(label)
	if err != nil {
		panic(err)
	}
	return i
}

// mark sets the cells of a row for dealer up-cards from through to,
// inclusive.
func mark(row []float64, from, to string) {
	for j := dealer(from); j <= dealer(to); j++ {
		row[j] = 1
	}
}

// BasicStrategy returns Thorp's basic strategy encoded as a binary
// chromosome. It is the usual reference point for an evolved strategy.
func BasicStrategy() chromosome.Chromosome {
	var g [chromosome.NumCategories][][]float64
	for _, seg := range chromosome.Layout {
		g[seg.Category] = grid(seg.Rows)
	}

	split := g[chromosome.Split]
	mark(split[0], "A", "T") // A,A
	mark(split[1], "2", "7") // 2,2
	mark(split[2], "2", "7") // 3,3
	mark(split[3], "5", "5") // 4,4
	mark(split[5], "2", "7") // 6,6
	mark(split[6], "2", "8") // 7,7
	mark(split[7], "A", "T") // 8,8
	mark(split[8], "2", "6") // 9,9
	mark(split[8], "8", "9")

	// Rows are the card held with the ace.
	sdd := g[chromosome.SoftDoubleDown]
	mark(sdd[0], "5", "6")
	for i := 1; i <= 4; i++ {
		mark(sdd[i], "4", "6")
	}
	mark(sdd[5], "2", "6")
	mark(sdd[6], "3", "6")

	hdd := g[chromosome.HardDoubleDown]
	mark(hdd[totalRow(8)], "5", "6")
	mark(hdd[totalRow(9)], "2", "6")
	mark(hdd[totalRow(10)], "2", "9")
	mark(hdd[totalRow(11)], "A", "T")

	ss := g[chromosome.SoftStand]
	for total := 18; total <= 21; total++ {
		mark(ss[totalRow(total)], "A", "8")
	}
	for total := 19; total <= 21; total++ {
		mark(ss[totalRow(total)], "9", "T")
	}

	hs := g[chromosome.HardStand]
	for total := 12; total <= 21; total++ {
		mark(hs[totalRow(total)], "4", "6")
	}
	for total := 13; total <= 21; total++ {
		mark(hs[totalRow(total)], "2", "3")
	}
	for total := 17; total <= 21; total++ {
		mark(hs[totalRow(total)], "A", "A")
		mark(hs[totalRow(total)], "7", "T")
	}

	s, err := chromosome.Encode(g)
	if err != nil {
		panic(fmt.Sprintf("basic strategy does not fit the layout: %v", err))
	}
	return s.Flatten()
}
