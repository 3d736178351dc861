package ops

import (
	"math"

	"github.com/seed-ml/seed/internal/tensor"
)

// CrossEntropyOp represents the fused log-softmax + negative log-likelihood
// loss.
//
// Forward (per row, with max-subtraction stabilization):
//
//	logsoftmax(z)_c = z_c - max(z) - log(Σ exp(z_c' - max(z)))
//	loss = -(1/B) Σ_i logsoftmax(z_i)_{y_i}
//
// Backward (closed form):
//
//	∂L/∂z_i = (softmax(z_i) - onehot(y_i)) / B
//
// This single formula is the reason log-softmax and NLL are fused: it avoids
// catastrophic cancellation and redundant work versus differentiating
// softmax, log, and NLL separately.
//
// Shapes: logits [batch, classes], labels of length batch with each value in
// [0, classes). A row of uniformly equal logits yields a uniform softmax and
// is not an error.
type CrossEntropyOp struct {
	logits *tensor.Tensor
	labels []int
	output *tensor.Tensor // scalar mean loss
}

// NewCrossEntropyOp validates inputs, computes the stabilized forward pass,
// and returns the recorded operation. A label outside [0, classes) fails
// with IndexOutOfRangeError.
func NewCrossEntropyOp(logits *tensor.Tensor, labels []int) (*CrossEntropyOp, error) {
	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, &tensor.ShapeMismatchError{Op: "CrossEntropy: logits", Want: tensor.Shape{-1, -1}, Got: shape.Clone()}
	}
	batch, classes := shape[0], shape[1]
	if len(labels) != batch {
		return nil, &tensor.ShapeMismatchError{Op: "CrossEntropy: labels", Want: tensor.Shape{batch}, Got: tensor.Shape{len(labels)}}
	}

	data := logits.Data()
	total := 0.0
	for b, label := range labels {
		if label < 0 || label >= classes {
			return nil, &tensor.IndexOutOfRangeError{Op: "CrossEntropy", Index: label, Bound: classes}
		}
		row := data[b*classes : (b+1)*classes]
		logProbs := logSoftmaxRow(row)
		total += -logProbs[label]
	}

	return &CrossEntropyOp{
		logits: logits,
		labels: labels,
		output: tensor.Scalar(total / float64(batch)),
	}, nil
}

// Backward computes (softmax(z) - onehot(y)) / batch, scaled by the upstream
// scalar gradient.
func (op *CrossEntropyOp) Backward(outputGrad *tensor.Tensor) ([]*tensor.Tensor, error) {
	if outputGrad.NumElements() != 1 {
		return nil, &tensor.ShapeMismatchError{
			Op:   "CrossEntropy: backward",
			Want: tensor.Shape{1},
			Got:  outputGrad.Shape().Clone(),
		}
	}
	seed := outputGrad.Data()[0]

	shape := op.logits.Shape()
	batch, classes := shape[0], shape[1]
	grad, err := tensor.New(shape)
	if err != nil {
		return nil, err
	}

	data, gd := op.logits.Data(), grad.Data()
	for b, label := range op.labels {
		row := data[b*classes : (b+1)*classes]
		probs := softmaxRow(row)
		for c := 0; c < classes; c++ {
			g := probs[c]
			if c == label {
				g -= 1.0
			}
			gd[b*classes+c] = seed * g / float64(batch)
		}
	}

	return []*tensor.Tensor{grad}, nil
}

// Inputs returns [logits]. Labels are not differentiated.
func (op *CrossEntropyOp) Inputs() []*tensor.Tensor {
	return []*tensor.Tensor{op.logits}
}

// Output returns the scalar mean loss.
func (op *CrossEntropyOp) Output() *tensor.Tensor {
	return op.output
}

// LogSoftmax computes the stabilized row-wise log-softmax of 2D logits.
// This is a forward-only helper for inference paths; it records nothing.
func LogSoftmax(logits *tensor.Tensor) (*tensor.Tensor, error) {
	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, &tensor.ShapeMismatchError{Op: "LogSoftmax", Want: tensor.Shape{-1, -1}, Got: shape.Clone()}
	}
	batch, classes := shape[0], shape[1]
	out, err := tensor.New(shape)
	if err != nil {
		return nil, err
	}
	data, od := logits.Data(), out.Data()
	for b := 0; b < batch; b++ {
		row := logSoftmaxRow(data[b*classes : (b+1)*classes])
		copy(od[b*classes:(b+1)*classes], row)
	}
	return out, nil
}

// logSoftmaxRow computes log-softmax for one row using the log-sum-exp
// trick: subtracting the row max keeps every exponent <= 0, so the result
// stays finite for logits of any magnitude.
func logSoftmaxRow(logits []float64) []float64 {
	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	sumExp := 0.0
	for _, v := range logits {
		sumExp += math.Exp(v - maxVal)
	}
	logSumExp := maxVal + math.Log(sumExp)

	result := make([]float64, len(logits))
	for i, v := range logits {
		result[i] = v - logSumExp
	}
	return result
}

// softmaxRow computes softmax for one row with max-subtraction stabilization.
func softmaxRow(logits []float64) []float64 {
	maxVal := logits[0]
	for _, v := range logits[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	probs := make([]float64, len(logits))
	sumExp := 0.0
	for i, v := range logits {
		probs[i] = math.Exp(v - maxVal)
		sumExp += probs[i]
	}
	for i := range probs {
		probs[i] /= sumExp
	}
	return probs
}
