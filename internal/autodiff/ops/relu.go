package ops

import "github.com/seed-ml/seed/internal/tensor"

// ReLUOp represents the rectified linear unit: output = max(0, x).
//
// The op caches its input: the backward pass needs to know where the input
// was positive. The boundary policy treats exactly 0 as masked off, so the
// derivative at 0 is 0.
type ReLUOp struct {
	x      *tensor.Tensor
	output *tensor.Tensor
}

// NewReLUOp computes the forward pass and returns the recorded operation.
func NewReLUOp(x *tensor.Tensor) (*ReLUOp, error) {
	output, err := tensor.New(x.Shape())
	if err != nil {
		return nil, err
	}
	xd, od := x.Data(), output.Data()
	for i, v := range xd {
		if v > 0 {
			od[i] = v
		}
	}
	return &ReLUOp{x: x, output: output}, nil
}

// Backward masks the upstream gradient to zero wherever the cached input
// was <= 0.
func (op *ReLUOp) Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error) {
	if !outputGrad.Shape().Equal(op.output.Shape()) {
		return nil, &tensor.ShapeMismatchError{
			Op:   "ReLU: backward",
			Want: op.output.Shape().Clone(),
			Got:  outputGrad.Shape().Clone(),
		}
	}
	grad, err := tensor.New(op.x.Shape())
	if err != nil {
		return nil, err
	}
	xd, gd, dd := op.x.Data(), grad.Data(), outputGrad.Data()
	for i, v := range xd {
		if v > 0 {
			gd[i] = dd[i]
		}
	}
	return []*tensor.Tensor{grad}, nil
}

// Inputs returns [x].
func (op *ReLUOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x}
}

// Output returns the activation output.
func (op *ReLUOp) Output() *tensor.Tensor {
	return op.output
}
