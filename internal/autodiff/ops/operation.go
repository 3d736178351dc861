// Package ops defines the differentiable operations recorded on the tape.
//
// Each operation is a tagged record of one forward invocation: it holds
// references to its input tensors (owned by the enclosing scope), the output
// tensor it produced, and whatever intermediate values its backward formula
// needs (the activation's input for ReLU, the output for Sigmoid, the
// softmax path for cross-entropy).
//
// Supported operations:
//   - LinearOp: dense transform Y = X·W + b
//   - ReLUOp: rectified linear unit (derivative 0 at and below zero)
//   - SigmoidOp: logistic activation (f'(x) = f(x)·(1-f(x)))
//   - AddOp: element-wise addition of same-shape tensors
//   - CrossEntropyOp: fused log-softmax + negative log-likelihood
package ops

import "github.com/seed-ml/seed/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass, and
// computes input gradients during the backward pass.
type Operation interface {
	// Backward computes gradients for the inputs given the gradient of the
	// output. Returns one gradient tensor per input, in Inputs() order.
	// Entries may be nil for inputs that are not differentiated.
	Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error)

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.Tensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.Tensor
}
