package nn

import (
	"math"

	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

// Probabilities runs a tape-free forward pass and returns per-class
// probabilities with shape [batch, classes].
//
// Probabilities are produced by explicitly exponentiating the stabilized
// log-softmax output. They are an inference-only view: training always
// consumes raw logits through the fused loss, never these probabilities.
func Probabilities(model Module, input *tensor.Tensor) (*tensor.Tensor, error) {
	logits, err := model.Forward(nil, input)
	if err != nil {
		return nil, err
	}
	logProbs, err := ops.LogSoftmax(logits)
	if err != nil {
		return nil, err
	}
	data := logProbs.Data()
	for i, v := range data {
		data[i] = math.Exp(v)
	}
	return logProbs, nil
}

// Predict returns the most likely class index for each row of the input
// batch, using a tape-free forward pass.
func Predict(model Module, input *tensor.Tensor) ([]int, error) {
	logits, err := model.Forward(nil, input)
	if err != nil {
		return nil, err
	}
	shape := logits.Shape()
	if len(shape) != 2 {
		return nil, &tensor.ShapeMismatchError{Op: "Predict", Want: tensor.Shape{-1, -1}, Got: shape.Clone()}
	}
	batch, classes := shape[0], shape[1]
	data := logits.Data()

	preds := make([]int, batch)
	for b := 0; b < batch; b++ {
		row := data[b*classes : (b+1)*classes]
		best := 0
		for c, v := range row {
			if v > row[best] {
				best = c
			}
		}
		preds[b] = best
	}
	return preds, nil
}
