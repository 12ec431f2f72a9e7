package kitdemo

import (
	"errors"
	"fmt"
)

// ErrAllocation is matched by every *AllocationError via errors.Is.
var ErrAllocation = errors.New("kitdemo: cannot allocate pixmap")

// AllocationError is returned when a pixmap of the requested size cannot
// be created: non-positive dimensions, a byte size that overflows int, or
// a pixel count above the renderer's limit.
type AllocationError struct {
	Width  int
	Height int
	Reason string
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("kitdemo: cannot allocate %dx%d pixmap: %s", e.Width, e.Height, e.Reason)
}

// Unwrap returns ErrAllocation.
func (e *AllocationError) Unwrap() error {
	return ErrAllocation
}
