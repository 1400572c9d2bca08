package strategy

import (
	"fmt"
	"io"
	"strings"

	"github.com/domino14/bjstrat/cards"
	"github.com/domino14/bjstrat/chromosome"
)

const (
	bannerWidth = 65
	cellWidth   = 5
	corner      = "***** "
)

// Renderer draws strategy tables as fixed-width text.
type Renderer struct {
	q Quantizer
}

func NewRenderer(q Quantizer) *Renderer {
	return &Renderer{q: q}
}

func centered(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

func header() string {
	var sb strings.Builder
	sb.WriteString(corner)
	for _, l := range cards.Labels {
		sb.WriteString("  " + l + "  ")
	}
	sb.WriteString("\n")
	return sb.String()
}

// Render returns the text for one table. The table must have the row
// count its view's category has in the chromosome layout, since row
// labels are derived from the row position.
func (r *Renderer) Render(t *chromosome.Table, v View) (string, error) {
	if t.Category() != v.Category {
		return "", &chromosome.CategoryMismatchError{Got: t.Category(), Want: v.Category}
	}
	rows, cols := t.Dims()
	if want := chromosome.SegmentFor(v.Category).Rows; rows != want {
		return "", &chromosome.ShapeMismatchError{Category: v.Category, Got: rows, Want: want}
	}

	labels := make([]string, rows)
	labelWidth := 0
	for i := range labels {
		labels[i] = "  " + v.RowLabel(i) + "  "
		if len(labels[i]) > labelWidth {
			labelWidth = len(labels[i])
		}
	}
	indent := ""
	if r.q.indented {
		// Line the cell up with the label in the header above it.
		if n := len(corner) + 2 - labelWidth; n > 0 {
			indent = strings.Repeat(" ", n)
		}
	}

	var sb strings.Builder
	rule := strings.Repeat("*", bannerWidth)
	sb.WriteString(rule + "\n")
	sb.WriteString(centered(v.Title, bannerWidth) + "\n")
	sb.WriteString(rule + "\n")
	sb.WriteString(header())
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "%-*s", labelWidth, labels[i])
		for j := 0; j < cols; j++ {
			cell := indent + r.q.Format(t.At(i, j))
			if len(cell) >= cellWidth {
				// Wide values still need a gap before the next column.
				cell += " "
			}
			fmt.Fprintf(&sb, "%-*s", cellWidth, cell)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	return sb.String(), nil
}

// RenderStrategy writes all five tables of s in layout order. Nothing is
// written if any table fails to render.
func (r *Renderer) RenderStrategy(w io.Writer, s *chromosome.Strategy, views [chromosome.NumCategories]View) error {
	var sb strings.Builder
	for _, t := range s.Tables() {
		out, err := r.Render(t, views[t.Category()])
		if err != nil {
			return err
		}
		sb.WriteString(out)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
