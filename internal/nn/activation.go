package nn

import (
	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

// ReLU is a rectified linear unit activation module: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a new ReLU activation module.
func NewReLU() *ReLU {
	return &ReLU{}
}

// Forward applies ReLU element-wise, recording the operation on the tape
// when one is supplied.
func (r *ReLU) Forward(tape *autodiff.Tape, input *tensor.Tensor) (*tensor.Tensor, error) {
	op, err := ops.NewReLUOp(input)
	if err != nil {
		return nil, err
	}
	if tape != nil {
		tape.Record(op)
	}
	return op.Output(), nil
}

// Parameters returns nil (ReLU has no trainable parameters).
func (r *ReLU) Parameters() []*Parameter {
	return nil
}

// Sigmoid is a logistic activation module: σ(x) = 1 / (1 + exp(-x)).
//
// Sigmoid squashes values into (0, 1); its derivative is computed from the
// cached forward output, σ'(x) = σ(x)·(1-σ(x)).
type Sigmoid struct{}

// NewSigmoid creates a new Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return &Sigmoid{}
}

// Forward applies the sigmoid element-wise, recording the operation on the
// tape when one is supplied.
func (s *Sigmoid) Forward(tape *autodiff.Tape, input *tensor.Tensor) (*tensor.Tensor, error) {
	op, err := ops.NewSigmoidOp(input)
	if err != nil {
		return nil, err
	}
	if tape != nil {
		tape.Record(op)
	}
	return op.Output(), nil
}

// Parameters returns nil (Sigmoid has no trainable parameters).
func (s *Sigmoid) Parameters() []*Parameter {
	return nil
}
