// Package cards holds the fixed mapping between card rank indices and
// their display labels. Index 0 is the ace and index 9 is any ten-valued
// card.
package cards

import "fmt"

// NumRanks is the number of distinct dealer up-card ranks.
const NumRanks = 10

// Labels maps a rank index to its label.
var Labels = [NumRanks]string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "T"}

// Label returns the label of the rank with index i. It panics if i is out
// of range, since rank indices are always derived positionally.
func Label(i int) string {
	if i < 0 || i >= NumRanks {
		panic(fmt.Sprintf("card rank index out of range: %d", i))
	}
	return Labels[i]
}

// Index is the inverse of Label.
func Index(label string) (int, error) {
	for i, l := range Labels {
		if l == label {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown card label %q", label)
}
