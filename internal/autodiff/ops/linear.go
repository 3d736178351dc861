package ops

import "github.com/seed-ml/seed/internal/tensor"

// LinearOp represents a dense transform: output = x·w + b.
//
// Shapes:
//   - x: [batch, in]
//   - w: [in, out]
//   - b: [out]
//   - output: [batch, out]
//
// Backward pass:
//   - dW = xᵀ·dY
//   - db = column-sum of dY
//   - dX = dY·wᵀ
type LinearOp struct {
	x, w, b *tensor.Tensor
	output  *tensor.Tensor
}

// NewLinearOp validates shapes, computes the forward pass, and returns the
// recorded operation. Any dimension disagreement fails with
// ShapeMismatchError before any output is produced.
func NewLinearOp(x, w, b *tensor.Tensor) (*LinearOp, error) {
	xs, ws, bs := x.Shape(), w.Shape(), b.Shape()
	if len(xs) != 2 {
		return nil, &tensor.ShapeMismatchError{Op: "Linear: input", Want: tensor.Shape{-1, -1}, Got: xs.Clone()}
	}
	if len(ws) != 2 {
		return nil, &tensor.ShapeMismatchError{Op: "Linear: weight", Want: tensor.Shape{-1, -1}, Got: ws.Clone()}
	}
	if xs[1] != ws[0] {
		return nil, &tensor.ShapeMismatchError{Op: "Linear: input", Want: tensor.Shape{xs[0], ws[0]}, Got: xs.Clone()}
	}
	if len(bs) != 1 || bs[0] != ws[1] {
		return nil, &tensor.ShapeMismatchError{Op: "Linear: bias", Want: tensor.Shape{ws[1]}, Got: bs.Clone()}
	}

	batch, in, out := xs[0], xs[1], ws[1]
	data := matMul(x.Data(), batch, in, w.Data(), out)
	bd := b.Data()
	for i := 0; i < batch; i++ {
		for j := 0; j < out; j++ {
			data[i*out+j] += bd[j]
		}
	}

	output, err := tensor.FromSlice(data, tensor.Shape{batch, out})
	if err != nil {
		return nil, err
	}
	return &LinearOp{x: x, w: w, b: b, output: output}, nil
}

// Backward computes [dX, dW, db] given the upstream gradient dY.
func (op *LinearOp) Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error) {
	if !outputGrad.Shape().Equal(op.output.Shape()) {
		return nil, &tensor.ShapeMismatchError{
			Op:   "Linear: backward",
			Want: op.output.Shape().Clone(),
			Got:  outputGrad.Shape().Clone(),
		}
	}

	xs, ws := op.x.Shape(), op.w.Shape()
	batch, in, out := xs[0], xs[1], ws[1]
	dy := outputGrad.Data()

	dx, err := tensor.FromSlice(matMulTransB(dy, batch, out, op.w.Data(), in), tensor.Shape{batch, in})
	if err != nil {
		return nil, err
	}
	dw, err := tensor.FromSlice(matMulTransA(op.x.Data(), batch, in, dy, out), tensor.Shape{in, out})
	if err != nil {
		return nil, err
	}
	db, err := tensor.FromSlice(columnSum(dy, batch, out), tensor.Shape{out})
	if err != nil {
		return nil, err
	}

	return []*tensor.Tensor{dx, dw, db}, nil
}

// Inputs returns [x, w, b].
func (op *LinearOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.x, op.w, op.b}
}

// Output returns the output tensor x·w + b.
func (op *LinearOp) Output() *tensor.Tensor {
	return op.output
}
