package ops

import (
	"math"

	"github.com/seed-ml/seed/internal/tensor"
)

// SigmoidOp represents the logistic activation: output = 1 / (1 + exp(-x)).
//
// The op caches its output rather than its input: the derivative is
// f'(x) = f(x)·(1 - f(x)), so the forward result is all the backward pass
// needs, per element, in O(1).
type SigmoidOp struct {
	x      *tensor.Tensor
	output *tensor.Tensor
}

// NewSigmoidOp computes the forward pass and returns the recorded operation.
func NewSigmoidOp(x *tensor.Tensor) (*SigmoidOp, error) {
	output, err := tensor.New(x.Shape())
	if err != nil {
		return nil, err
	}
	xd, od := x.Data(), output.Data()
	for i, v := range xd {
		od[i] = 1.0 / (1.0 + math.Exp(-v))
	}
	return &SigmoidOp{x: x, output: output}, nil
}

// Backward computes upstream · output · (1 - output).
func (op *SigmoidOp) Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error) {
	if !outputGrad.Shape().Equal(op.output.Shape()) {
		return nil, &tensor.ShapeMismatchError{
			Op:   "Sigmoid: backward",
			Want: op.output.Shape().Clone(),
			Got:  outputGrad.Shape().Clone(),
		}
	}
	grad, err := tensor.New(op.x.Shape())
	if err != nil {
		return nil, err
	}
	od, gd, dd := op.output.Data(), grad.Data(), outputGrad.Data()
	for i, s := range od {
		gd[i] = dd[i] * s * (1 - s)
	}
	return []*tensor.Tensor{grad}, nil
}

// Inputs returns [x].
func (op *SigmoidOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Output returns the activation output.
func (op *SigmoidOp) Output() *tensor.Tensor {
	return op.output
}
