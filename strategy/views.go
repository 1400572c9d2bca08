package strategy

import (
	"fmt"
	"strconv"

	"github.com/domino14/bjstrat/cards"
	"github.com/domino14/bjstrat/chromosome"
)

// View describes how a single category is displayed.
type View struct {
	Category chromosome.Category
	Title    string
	RowLabel func(row int) string
}

// CardRowLabel labels a row by card rank. It is used for the split table
// (the rank of the pair) and the soft double down table (the card held
// next to the ace).
func CardRowLabel(row int) string {
	return cards.Label(row)
}

// HandTotalRowLabel labels a row by the hard or soft hand total it
// represents. Row 0 is a total of 2.
func HandTotalRowLabel(row int) string {
	return strconv.Itoa(row + 2)
}

// Views builds one View per category. titleFormat receives the category
// name, e.g. "Mean %s".
func Views(titleFormat string) [chromosome.NumCategories]View {
	var vs [chromosome.NumCategories]View
	for _, cat := range chromosome.Categories() {
		label := HandTotalRowLabel
		if cat == chromosome.Split || cat == chromosome.SoftDoubleDown {
			label = CardRowLabel
		}
		vs[cat] = View{
			Category: cat,
			Title:    fmt.Sprintf(titleFormat, cat),
			RowLabel: label,
		}
	}
	return vs
}

// MeanViews are the views used for optimizer output.
func MeanViews() [chromosome.NumCategories]View {
	return Views("Mean %s")
}
