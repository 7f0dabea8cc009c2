package store

import (
	"fmt"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

// MinIndex is the lowest position indexed selection may pick. Position 0, the
// first member ever saved, is reserved.
const MinIndex = 1

// IndexOutOfRangeError reports an indexed selection outside [MinIndex, Max].
type IndexOutOfRangeError struct {
	Set   string
	Index int
	Max   int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Max < MinIndex {
		return fmt.Sprintf("index %d out of range: set %q has nothing to select", e.Index, e.Set)
	}
	return fmt.Sprintf("index %d out of range: valid range for set %q is [%d, %d]", e.Index, e.Set, MinIndex, e.Max)
}

func indexOutOfRange(set string, index, size int) error {
	cause := &IndexOutOfRangeError{Set: set, Index: index, Max: size - 1}
	return svurlerrors.IndexOutOfRange(cause, index, cause.Max).WithContext("set", set)
}
