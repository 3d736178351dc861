package ops

import "github.com/seed-ml/seed/internal/tensor"

// AddOp represents element-wise addition: output = a + b.
//
// Both operands must have identical shapes; there is no implicit
// broadcasting. The gradient flows unchanged to both inputs, which makes
// AddOp the canonical fan-in point for values reused across the graph.
type AddOp struct {
	a, b   *tensor.Tensor
	output *tensor.Tensor
}

// NewAddOp computes the forward pass and returns the recorded operation.
func NewAddOp(a, b *tensor.Tensor) (*AddOp, error) {
	if !a.Shape().Equal(b.Shape()) {
		return nil, &tensor.ShapeMismatchError{Op: "Add", Want: a.Shape().Clone(), Got: b.Shape().Clone()}
	}
	output, err := tensor.New(a.Shape())
	if err != nil {
		return nil, err
	}
	ad, bd, od := a.Data(), b.Data(), output.Data()
	for i := range od {
		od[i] = ad[i] + bd[i]
	}
	return &AddOp{a: a, b: b, output: output}, nil
}

// Backward passes the upstream gradient through to both inputs.
func (op *AddOp) Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error) {
	if !outputGrad.Shape().Equal(op.output.Shape()) {
		return nil, &tensor.ShapeMismatchError{
			Op:   "Add: backward",
			Want: op.output.Shape().Clone(),
			Got:  outputGrad.Shape().Clone(),
		}
	}
	// The same gradient flows to both inputs. Copies keep accumulation on
	// one input from aliasing the other's contribution.
	return []*tensor.Tensor{outputGrad.Clone(), outputGrad.Clone()}, nil
}

// Inputs returns [a, b].
func (op *AddOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.a, op.b}
}

// Output returns the sum tensor.
func (op *AddOp) Output() *tensor.Tensor {
	return op.output
}
