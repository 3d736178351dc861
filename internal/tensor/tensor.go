// Package tensor implements the numeric container for the seed engine.
//
// A Tensor owns a flat float64 buffer plus a shape. The buffer length always
// equals the product of the shape's dimensions. A tensor may additionally own
// a gradient buffer of identical shape, lazily allocated on the first
// backward contribution.
//
// There is no implicit broadcasting: operations that need a specific
// shape relation check it explicitly and fail with ShapeMismatchError.
package tensor

import "fmt"

// Tensor holds a flat buffer of float64 values plus a shape.
//
// The optional gradient buffer accumulates contributions from backward
// passes. It is allocated on first use by AccumGrad and released by
// ZeroGrad, so tensors that never participate in differentiation carry
// no gradient storage.
type Tensor struct {
	data  []float64
	shape Shape
	grad  []float64 // nil until the first backward contribution
}

// New creates a zero-filled tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor{
		data:  make([]float64, shape.NumElements()),
		shape: shape.Clone(),
	}, nil
}

// FromSlice creates a tensor that adopts the given data slice.
// The slice length must equal the product of the shape's dimensions.
func FromSlice(data []float64, shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, &ShapeMismatchError{Op: "FromSlice", Want: shape.Clone(), Got: Shape{len(data)}}
	}
	return &Tensor{data: data, shape: shape.Clone()}, nil
}

// Zeros creates a zero-filled tensor. Panics on an invalid shape; intended
// for construction sites where the shape is statically known.
func Zeros(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(err)
	}
	return t
}

// Full creates a tensor filled with the given value.
func Full(shape Shape, value float64) *Tensor {
	t := Zeros(shape)
	for i := range t.data {
		t.data[i] = value
	}
	return t
}

// Scalar creates a one-element tensor holding the given value.
func Scalar(value float64) *Tensor {
	return Full(Shape{1}, value)
}

// Data returns the underlying value buffer. Mutations are visible to every
// holder of this tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// At returns the element at row i, column j of a 2D tensor.
func (t *Tensor) At(i, j int) float64 {
	return t.data[i*t.shape[1]+j]
}

// Clone returns a deep copy of the tensor's values. The gradient buffer is
// not copied: clones start without gradient state.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.data))
	copy(data, t.data)
	return &Tensor{data: data, shape: t.shape.Clone()}
}

// Grad returns the gradient buffer, or nil if no backward contribution has
// been accumulated yet.
func (t *Tensor) Grad() []float64 {
	return t.grad
}

// HasGrad reports whether a gradient buffer is currently allocated.
func (t *Tensor) HasGrad() bool {
	return t.grad != nil
}

// AccumGrad adds the given tensor into the gradient buffer, allocating a
// zero buffer first if absent. Contributions sum: a value used by multiple
// downstream operations receives the sum of their gradients, never the last
// writer's value alone.
func (t *Tensor) AccumGrad(g *Tensor) error {
	if !t.shape.Equal(g.shape) {
		return &ShapeMismatchError{Op: "AccumGrad", Want: t.shape.Clone(), Got: g.shape.Clone()}
	}
	if t.grad == nil {
		t.grad = make([]float64, len(t.data))
	}
	for i, v := range g.data {
		t.grad[i] += v
	}
	return nil
}

// ZeroGrad releases the gradient buffer. The next AccumGrad starts from a
// fresh zero buffer.
func (t *Tensor) ZeroGrad() {
	t.grad = nil
}
