// Package autodiff implements reverse-mode automatic differentiation over a
// gradient tape.
//
// Operations are recorded on a Tape in execution order during the forward
// pass. Because every operation's inputs are created strictly before its
// output, the creation order is already a valid topological order, and the
// backward pass simply walks the tape in reverse.
//
// Usage:
//
//	tape := autodiff.NewTape()
//	tape.StartRecording()
//	// ... forward pass records operations ...
//	err := tape.Backward(loss)
//	// parameter.Grad() now holds accumulated gradients
//	tape.Clear()
//
// Whether a forward pass builds a tape is an explicit per-call decision:
// callers that only need inference pass a nil tape to the layers. There is
// no process-wide "gradients enabled" toggle.
package autodiff

import (
	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

// Tape records operations during the forward pass and drives the backward
// pass. A tape belongs to one forward pass: it is cleared (and its recorded
// intermediates dropped) once the corresponding backward pass completes.
type Tape struct {
	operations []ops.Operation // Recorded operations, in execution order
	recording  bool
}

// NewTape creates a new, non-recording gradient tape.
func NewTape() *Tape {
	return &Tape{
		operations: make([]ops.Operation, 0, 64),
	}
}

// StartRecording enables operation recording.
func (t *Tape) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *Tape) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *Tape) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape. Only records if the tape is
// currently recording.
func (t *Tape) Record(op ops.Operation) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *Tape) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *Tape) NumOps() int {
	return len(t.operations)
}

// Backward propagates gradients from the scalar loss to every tensor that
// participated in the recorded forward pass.
//
// Algorithm:
//  1. Seed the loss tensor with gradient 1.0 (∂loss/∂loss = 1).
//  2. Walk operations in strict reverse of creation order.
//  3. For each operation whose output has a gradient, invoke its backward
//     formula and sum the results into each input's entry — summation, not
//     overwrite, so fan-out (a value feeding multiple operations) gets the
//     total of all downstream contributions.
//  4. Accumulate the per-pass results into each tensor's gradient buffer.
//
// Calling Backward twice without zeroing gradients compounds them: each
// pass adds its full contribution on top of whatever the buffers already
// hold. That is the documented accumulation contract (it is what gradient
// accumulation across micro-batches relies on); resetting between optimizer
// steps is the training loop's responsibility.
func (t *Tape) Backward(loss *tensor.Tensor) error {
	if loss.NumElements() != 1 {
		return &tensor.ShapeMismatchError{Op: "Backward: loss", Want: tensor.Shape{1}, Got: loss.Shape().Clone()}
	}
	if len(t.operations) == 0 {
		return nil
	}

	// Per-pass gradients live in a scratch map so that a second Backward
	// call starts from the same seed, not from already-accumulated buffers.
	grads := make(map[*tensor.Tensor]*tensor.Tensor, len(t.operations)*2)
	grads[loss] = tensor.Full(loss.Shape(), 1.0)

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		outputGrad, ok := grads[op.Output()]
		if !ok {
			// No gradient flows through this operation's output.
			continue
		}
		inputGrads, err := op.Backward(outputGrad)
		if err != nil {
			return err
		}
		inputs := op.Inputs()
		for j, input := range inputs {
			if j >= len(inputGrads) || inputGrads[j] == nil {
				continue
			}
			if existing, ok := grads[input]; ok {
				addInto(existing, inputGrads[j])
			} else {
				grads[input] = inputGrads[j]
			}
		}
	}

	// Fold the pass results into the persistent gradient buffers.
	for target, grad := range grads {
		if err := target.AccumGrad(grad); err != nil {
			return err
		}
	}
	return nil
}

// addInto sums src into dst element-wise. Shapes are already equal: both
// gradients were produced for the same tensor.
func addInto(dst, src *tensor.Tensor) {
	dd, sd := dst.Data(), src.Data()
	for i, v := range sd {
		dd[i] += v
	}
}
