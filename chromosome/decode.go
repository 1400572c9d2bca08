package chromosome

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Table is one decoded strategy category. Rows index the player hand,
// columns the dealer up-card.
type Table struct {
	category Category
	m        *mat.Dense
}

// NewTable builds a rows x DealerCards table from row-major data. data is
// copied. The row count is not checked against the layout here; that is
// left to the consumers that derive labels from it.
func NewTable(cat Category, rows int, data []float64) (*Table, error) {
	if rows <= 0 || len(data) != rows*DealerCards {
		return nil, fmt.Errorf("cannot shape %d values into %d rows of %d", len(data), rows, DealerCards)
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return &Table{category: cat, m: mat.NewDense(rows, DealerCards, cp)}, nil
}

func (t *Table) Category() Category {
	return t.category
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (int, int) {
	return t.m.Dims()
}

func (t *Table) At(i, j int) float64 {
	return t.m.At(i, j)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []float64 {
	return mat.Row(nil, i, t.m)
}

// Values returns the table contents in row-major order.
func (t *Table) Values() []float64 {
	r, _ := t.Dims()
	out := make([]float64, 0, r*DealerCards)
	for i := 0; i < r; i++ {
		out = append(out, t.Row(i)...)
	}
	return out
}

// Strategy is a fully decoded chromosome.
type Strategy struct {
	tables [NumCategories]*Table
}

// Decode splits c into its five segments and reshapes each one into a
// table. Cell (i, j) of a category holds c[offset+10*i+j].
func Decode(c Chromosome) (*Strategy, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s := &Strategy{}
	for _, seg := range Layout {
		t, err := NewTable(seg.Category, seg.Rows, c[seg.Offset:seg.End()])
		if err != nil {
			return nil, err
		}
		s.tables[seg.Category] = t
	}
	return s, nil
}

// Table returns the decoded table for cat.
func (s *Strategy) Table(cat Category) *Table {
	return s.tables[cat]
}

// Tables returns the tables in layout order.
func (s *Strategy) Tables() []*Table {
	return s.tables[:]
}

// Flatten concatenates the tables back into a chromosome. It is the
// inverse of Decode.
func (s *Strategy) Flatten() Chromosome {
	c := make(Chromosome, 0, Length)
	for _, t := range s.tables {
		c = append(c, t.Values()...)
	}
	return c
}

// Encode builds a strategy from per-category grids given in layout
// order. Each grid must have the layout's row count and DealerCards
// columns.
func Encode(grids [NumCategories][][]float64) (*Strategy, error) {
	s := &Strategy{}
	for _, seg := range Layout {
		g := grids[seg.Category]
		if len(g) != seg.Rows {
			return nil, &ShapeMismatchError{Category: seg.Category, Got: len(g), Want: seg.Rows}
		}
		data := make([]float64, 0, seg.Len())
		for i, row := range g {
			if len(row) != DealerCards {
				return nil, fmt.Errorf("%v row %d has %d columns, want %d", seg.Category, i, len(row), DealerCards)
			}
			data = append(data, row...)
		}
		t, err := NewTable(seg.Category, seg.Rows, data)
		if err != nil {
			return nil, err
		}
		s.tables[seg.Category] = t
	}
	return s, nil
}
