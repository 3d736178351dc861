package tensor

import (
	"fmt"
	"math"
)

// ShapeMismatchError reports operand shapes that are incompatible for the
// requested operation. It is fatal for the forward pass that produced it:
// the caller must abandon the current tape and may retry with correct shapes.
type ShapeMismatchError struct {
	Op   string // Operation that detected the mismatch (e.g., "Linear")
	Want Shape
	Got  Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: want %v, got %v", e.Op, e.Want, e.Got)
}

// IndexOutOfRangeError reports an index (typically a class label) outside
// its valid range [0, Bound).
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Bound int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}

// NumericInstabilityError reports a non-finite intermediate value (NaN or Inf).
// It is non-fatal in principle: training code reports it and lets the caller
// decide whether to adjust hyperparameters and resume.
type NumericInstabilityError struct {
	Op    string
	Index int     // Flat index of the first offending element
	Value float64 // The non-finite value
}

func (e *NumericInstabilityError) Error() string {
	return fmt.Sprintf("%s: non-finite value %v at element %d", e.Op, e.Value, e.Index)
}

// CheckFinite scans a tensor for NaN or Inf values.
// Returns a NumericInstabilityError naming the first offending element,
// or nil if all values are finite.
func CheckFinite(op string, t *Tensor) error {
	for i, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NumericInstabilityError{Op: op, Index: i, Value: v}
		}
	}
	return nil
}
