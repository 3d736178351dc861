// Copyright 2025 Seed ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense float64 tensor
// container.
//
// A Tensor is a flat row-major buffer plus a shape, with an optional
// gradient buffer populated by the backward pass. Tensors are CPU-only
// and single-precision-free: every value is a float64.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	y := tensor.Zeros(tensor.Shape{2, 2})
package tensor

import (
	"github.com/seed-ml/seed/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} is a 2×3 matrix.
type Shape = tensor.Shape

// Tensor is a dense float64 tensor with an optional gradient buffer.
type Tensor = tensor.Tensor

// Error types surfaced by tensor and operation validation. All are
// matchable with errors.As.
type (
	// ShapeMismatchError reports incompatible operand shapes.
	ShapeMismatchError = tensor.ShapeMismatchError

	// IndexOutOfRangeError reports an index or label outside its bound.
	IndexOutOfRangeError = tensor.IndexOutOfRangeError

	// NumericInstabilityError reports a NaN or Inf value.
	NumericInstabilityError = tensor.NumericInstabilityError
)

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// FromSlice creates a tensor from existing data. The data length must
// match the shape's element count.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a zero-filled tensor, panicking on an invalid shape.
func Zeros(shape Shape) *Tensor {
	return tensor.Zeros(shape)
}

// Full creates a tensor filled with value, panicking on an invalid shape.
func Full(shape Shape, value float64) *Tensor {
	return tensor.Full(shape, value)
}

// Scalar creates a rank-0 tensor holding a single value.
func Scalar(value float64) *Tensor {
	return tensor.Scalar(value)
}

// CheckFinite fails with NumericInstabilityError if the tensor contains a
// NaN or Inf value.
func CheckFinite(op string, t *Tensor) error {
	return tensor.CheckFinite(op, t)
}
