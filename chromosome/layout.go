// Package chromosome decodes the flat strategy vector produced by the
// evolutionary optimizer into its five decision tables.
package chromosome

import "github.com/domino14/bjstrat/cards"

// Category is one of the five strategy decisions encoded in a chromosome.
type Category int

const (
	Split Category = iota
	SoftDoubleDown
	HardDoubleDown
	SoftStand
	HardStand

	NumCategories
)

// DealerCards is the number of columns in every table, one per dealer
// up-card rank.
const DealerCards = cards.NumRanks

// Length is the number of values in a well-formed chromosome.
const Length = 800

var categoryNames = [NumCategories]string{
	"split",
	"soft double down",
	"hard double down",
	"soft stand",
	"hard stand",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "unknown"
	}
	return categoryNames[c]
}

// Segment is the contiguous range of a chromosome holding one category.
type Segment struct {
	Category Category
	Offset   int
	Rows     int
}

// Len is the number of chromosome values in the segment.
func (s Segment) Len() int {
	return s.Rows * DealerCards
}

// End is the offset one past the last value of the segment.
func (s Segment) End() int {
	return s.Offset + s.Len()
}

// Layout lists the segments in chromosome order. Offsets are contiguous
// and the final segment ends at Length.
var Layout = [NumCategories]Segment{
	{Category: Split, Offset: 0, Rows: 10},
	{Category: SoftDoubleDown, Offset: 100, Rows: 10},
	{Category: HardDoubleDown, Offset: 200, Rows: 20},
	{Category: SoftStand, Offset: 400, Rows: 20},
	{Category: HardStand, Offset: 600, Rows: 20},
}

// SegmentFor returns the layout entry for c.
func SegmentFor(c Category) Segment {
	return Layout[c]
}

// Categories returns all categories in chromosome order.
func Categories() []Category {
	cs := make([]Category, NumCategories)
	for i := range cs {
		cs[i] = Category(i)
	}
	return cs
}
