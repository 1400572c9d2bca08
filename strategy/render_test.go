package strategy

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/bjstrat/chromosome"
)

const testRule = "*****************************************************************"
const testHeader = "*****   A    2    3    4    5    6    7    8    9    T  "

func filled(v float64) chromosome.Chromosome {
	c := make(chromosome.Chromosome, chromosome.Length)
	for i := range c {
		c[i] = v
	}
	return c
}

func decode(t *testing.T, c chromosome.Chromosome) *chromosome.Strategy {
	s, err := chromosome.Decode(c)
	require.NoError(t, err)
	return s
}

func decisionRenderer(t *testing.T) *Renderer {
	q, err := DecisionQuantizer(chromosome.DefaultThreshold)
	require.NoError(t, err)
	return NewRenderer(q)
}

func TestRenderSplitDecisions(t *testing.T) {
	s := decode(t, filled(1))
	out, err := decisionRenderer(t).Render(s.Table(chromosome.Split), MeanViews()[chromosome.Split])
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4+10+2)
	assert.Equal(t, testRule, lines[0])
	assert.Equal(t, strings.TrimSpace(lines[1]), "Mean split")
	assert.Len(t, lines[1], 65)
	assert.Equal(t, testRule, lines[2])
	assert.Equal(t, testHeader, lines[3])
	assert.Equal(t, "  A  "+strings.Repeat("   1 ", 10), lines[4])
	assert.Equal(t, "  T  "+strings.Repeat("   1 ", 10), lines[13])
	assert.Equal(t, "", lines[14])
	assert.Equal(t, "", lines[15])
}

func TestRenderHandTotalDecisions(t *testing.T) {
	s := decode(t, filled(0))
	out, err := decisionRenderer(t).Render(s.Table(chromosome.HardStand), MeanViews()[chromosome.HardStand])
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4+20+2)
	assert.Equal(t, "  2   "+strings.Repeat("  0  ", 10), lines[4])
	assert.Equal(t, "  9   "+strings.Repeat("  0  ", 10), lines[11])
	assert.Equal(t, "  10  "+strings.Repeat("  0  ", 10), lines[12])
	assert.Equal(t, "  21  "+strings.Repeat("  0  ", 10), lines[23])
}

func TestRenderDigitsUnderHeaders(t *testing.T) {
	s := decode(t, filled(1))
	r := decisionRenderer(t)
	views := MeanViews()
	for _, tbl := range s.Tables() {
		out, err := r.Render(tbl, views[tbl.Category()])
		require.NoError(t, err)
		lines := strings.Split(out, "\n")
		for _, row := range lines[4 : len(lines)-2] {
			for j := 0; j < 10; j++ {
				assert.Equal(t, byte('1'), row[8+5*j], "category %v", tbl.Category())
			}
		}
	}
}

func TestRenderHundredths(t *testing.T) {
	c := make(chromosome.Chromosome, chromosome.Length)
	copy(c, []float64{0.978, 1, 0, 0.5})
	s := decode(t, c)
	out, err := NewRenderer(HundredthsQuantizer).Render(s.Table(chromosome.Split), MeanViews()[chromosome.Split])
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "  A  0.97 1.0  0.0  0.5  "+strings.Repeat("0.0  ", 6), lines[4])
}

func TestRenderWideCellsStayApart(t *testing.T) {
	c := filled(0)
	c[0] = -12.345
	c[1] = 0.5
	c[2] = -0.978
	c[3] = 0.25
	s := decode(t, c)
	out, err := NewRenderer(HundredthsQuantizer).Render(s.Table(chromosome.Split), MeanViews()[chromosome.Split])
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.True(t, strings.HasPrefix(lines[4], "  A  -12.34 0.5  -0.97 0.25 0.0  "), lines[4])
	fields := strings.Fields(lines[4])
	require.Len(t, fields, 11)
	assert.Equal(t, []string{"-12.34", "0.5", "-0.97", "0.25"}, fields[1:5])
}

func TestRenderShapeMismatch(t *testing.T) {
	tbl, err := chromosome.NewTable(chromosome.Split, 20, make([]float64, 200))
	require.NoError(t, err)
	_, err = decisionRenderer(t).Render(tbl, MeanViews()[chromosome.Split])
	var serr *chromosome.ShapeMismatchError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 20, serr.Got)
	assert.Equal(t, 10, serr.Want)
}

func TestRenderCategoryMismatch(t *testing.T) {
	tbl, err := chromosome.NewTable(chromosome.SoftDoubleDown, 10, make([]float64, 100))
	require.NoError(t, err)
	_, err = decisionRenderer(t).Render(tbl, MeanViews()[chromosome.Split])
	var cerr *chromosome.CategoryMismatchError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, chromosome.SoftDoubleDown, cerr.Got)
	assert.Equal(t, chromosome.Split, cerr.Want)
	var serr *chromosome.ShapeMismatchError
	assert.False(t, errors.As(err, &serr))
}

func TestRenderStrategyIsDeterministic(t *testing.T) {
	c := make(chromosome.Chromosome, chromosome.Length)
	for i := range c {
		c[i] = float64(i%97) / 97
	}
	s := decode(t, c)
	r := NewRenderer(HundredthsQuantizer)
	var a, b bytes.Buffer
	require.NoError(t, r.RenderStrategy(&a, s, MeanViews()))
	require.NoError(t, r.RenderStrategy(&b, s, MeanViews()))
	assert.Equal(t, a.Bytes(), b.Bytes())
	for _, cat := range chromosome.Categories() {
		assert.Contains(t, a.String(), "Mean "+cat.String())
	}
	// 5 banners of 3 lines, 5 headers, 80 rows, 5 blank lines.
	assert.Equal(t, 15+5+80+5, strings.Count(a.String(), "\n"))
}

func TestRenderAllOnesAndZeros(t *testing.T) {
	r := decisionRenderer(t)
	for _, v := range []float64{0, 1} {
		s := decode(t, chromosome.Threshold(filled(v), chromosome.DefaultThreshold))
		var buf bytes.Buffer
		require.NoError(t, r.RenderStrategy(&buf, s, MeanViews()))
		want := "0"
		if v == 1 {
			want = "1"
		}
		for _, line := range strings.Split(buf.String(), "\n") {
			// Row lines start with an indented label; titles are
			// indented much further.
			if len(line) < 3 || !strings.HasPrefix(line, "  ") || line[2] == ' ' {
				continue
			}
			fields := strings.Fields(line)
			require.Len(t, fields, 11)
			for _, f := range fields[1:] {
				assert.Equal(t, want, f)
			}
		}
	}
}
