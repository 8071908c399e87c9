package hashtable

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by facade methods that report absence through
// an error rather than a boolean, e.g. Map.MustGet.
var ErrNotFound = errors.New("hashtable: key not found")

// maxDist is the largest probe distance a dist byte can encode. A
// distance that would need to go beyond this indicates a degenerate
// hash distribution or a catastrophic run of metadata collisions; per
// spec.md §4.12/§7 this is fatal, not a retryable condition.
const maxDist = 255

// CapacityOverflowError is panicked by Insert/InsertUnique when a probe
// distance would exceed maxDist. It is a distinguished error kind (not
// a plain string panic) so a recovering caller can identify it with
// errors.As, while still matching the teacher's own habit of panicking
// on impossible/assertion states (map.go's panic("impossible"),
// panic(fmt.Sprintf(...))).
type CapacityOverflowError struct {
	Slot     int
	Distance int
}

func (e *CapacityOverflowError) Error() string {
	return fmt.Sprintf("hashtable: probe distance %d at slot %d exceeds %d, hash distribution is degenerate",
		e.Distance, e.Slot, maxDist)
}
