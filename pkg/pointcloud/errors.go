package pointcloud

import "fmt"

// ShapeMismatchError reports input whose length disagrees with the shape
// required by the operation. It is surfaced immediately and never recovered.
type ShapeMismatchError struct {
	What string // which input was mis-shaped
	Got  int
	Want int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: %s is %d, want %d", e.What, e.Got, e.Want)
}

// DimensionalityError reports an operation that is undefined for the
// dimensionality of the data it was asked to work on.
type DimensionalityError struct {
	Op   string // operation that rejected the data
	Dims int    // dimensionality it was given
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("%s: undefined for %dD data", e.Op, e.Dims)
}
