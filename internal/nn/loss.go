package nn

import (
	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

// CrossEntropyLoss computes the fused log-softmax + negative log-likelihood
// loss for classification.
//
// The fused formulation keeps the forward pass numerically stable for
// logits of large magnitude and gives the backward pass its closed form
// (softmax - onehot) / batch.
type CrossEntropyLoss struct{}

// NewCrossEntropyLoss creates a new cross-entropy loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return &CrossEntropyLoss{}
}

// Forward computes the scalar mean loss for logits [batch, classes] and
// integer labels of length batch, recording the operation on the tape when
// one is supplied. A label outside [0, classes) fails with
// IndexOutOfRangeError; that batch contributes nothing.
func (c *CrossEntropyLoss) Forward(tape *autodiff.Tape, logits *tensor.Tensor, labels []int) (*tensor.Tensor, error) {
	op, err := ops.NewCrossEntropyOp(logits, labels)
	if err != nil {
		return nil, err
	}
	if tape != nil {
		tape.Record(op)
	}
	return op.Output(), nil
}
