package cards

import (
	"testing"

	"github.com/matryer/is"
)

func TestLabel(t *testing.T) {
	is := is.New(t)
	is.Equal(Label(0), "A")
	is.Equal(Label(1), "2")
	is.Equal(Label(8), "9")
	is.Equal(Label(9), "T")
}

func TestLabelOutOfRange(t *testing.T) {
	for _, i := range []int{-1, NumRanks} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for index %d", i)
				}
			}()
			Label(i)
		}()
	}
}

func TestIndexRoundTrip(t *testing.T) {
	is := is.New(t)
	for i := 0; i < NumRanks; i++ {
		idx, err := Index(Label(i))
		is.NoErr(err)
		is.Equal(idx, i)
	}
	_, err := Index("K")
	is.True(err != nil)
}
