package chromosome

import "fmt"

// MalformedChromosomeError is returned when a chromosome does not hold
// exactly Length values.
type MalformedChromosomeError struct {
	Got int
}

func (e *MalformedChromosomeError) Error() string {
	return fmt.Sprintf("malformed chromosome: got %d values, want %d", e.Got, Length)
}

// ParseError is returned when a chromosome field is not a finite decimal
// number.
type ParseError struct {
	Index int
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("chromosome value %d (%q) is not numeric: %v", e.Index, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ShapeMismatchError is returned when a table's row count disagrees with
// the layout of its category.
type ShapeMismatchError struct {
	Category Category
	Got      int
	Want     int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v table has %d rows, want %d", e.Category, e.Got, e.Want)
}

// CategoryMismatchError is returned when a table is paired with the view
// of another category.
type CategoryMismatchError struct {
	Got  Category
	Want Category
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("got a %v table, want %v", e.Got, e.Want)
}
