package nn

import (
	"math/rand"

	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

// Linear implements a fully connected (dense) layer.
//
// Performs the transformation y = x·W + b where:
//   - x is the input tensor with shape [batch, in_features]
//   - W is the weight matrix with shape [in_features, out_features]
//   - b is the bias vector with shape [out_features]
//   - y is the output tensor with shape [batch, out_features]
//
// Weights are initialized with Xavier/Glorot uniform; biases start at zero.
type Linear struct {
	inFeatures  int
	outFeatures int
	weight      *Parameter // [in_features, out_features]
	bias        *Parameter // [out_features]
}

// NewLinear creates a new Linear layer with Xavier-initialized weights and
// zero biases.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	weightShape := tensor.Shape{inFeatures, outFeatures}
	weight := NewParameter("weight", Xavier(inFeatures, outFeatures, weightShape, rng))
	bias := NewParameter("bias", Zeros(tensor.Shape{outFeatures}))

	return &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		weight:      weight,
		bias:        bias,
	}
}

// Forward computes y = x·W + b and records the operation on the tape when
// one is supplied. Input shape must be [batch, in_features]; anything else
// fails with ShapeMismatchError before any state is touched.
func (l *Linear) Forward(tape *autodiff.Tape, input *tensor.Tensor) (*tensor.Tensor, error) {
	op, err := ops.NewLinearOp(input, l.weight.Tensor(), l.bias.Tensor())
	if err != nil {
		return nil, err
	}
	if tape != nil {
		tape.Record(op)
	}
	return op.Output(), nil
}

// Parameters returns [weight, bias].
func (l *Linear) Parameters() []*Parameter {
	return []*Parameter{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear) Weight() *Parameter {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear) Bias() *Parameter {
	return l.bias
}

// InFeatures returns the number of input features.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the number of output features.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}
