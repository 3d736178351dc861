package autodiff

import (
	"math"
	"math/rand"
	"testing"

	"github.com/seed-ml/seed/internal/autodiff/ops"
	"github.com/seed-ml/seed/internal/tensor"
)

const (
	fdEpsilon   = 1e-6
	fdTolerance = 1e-5
)

// checkGradients compares every element of the tensor's accumulated
// gradient against a central finite-difference estimate of the loss.
func checkGradients(t *testing.T, name string, target *tensor.Tensor, loss func() float64) {
	t.Helper()
	if !target.HasGrad() {
		t.Fatalf("%s: no gradient accumulated", name)
	}
	data := target.Data()
	grad := target.Grad()
	for i := range data {
		orig := data[i]
		data[i] = orig + fdEpsilon
		plus := loss()
		data[i] = orig - fdEpsilon
		minus := loss()
		data[i] = orig

		numerical := (plus - minus) / (2 * fdEpsilon)
		if math.Abs(grad[i]-numerical) > fdTolerance {
			t.Errorf("%s[%d]: autodiff grad %v differs from numerical %v by %v",
				name, i, grad[i], numerical, grad[i]-numerical)
		}
	}
}

func randomTensor(shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	out := tensor.Zeros(shape)
	data := out.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return out
}

// TestGradientCheck_Linear validates the closed-form linear gradients
// (dW = XᵀdY, db = colsum dY, dX = dYWᵀ) against finite differences for
// every parameter and the input.
func TestGradientCheck_Linear(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	x := randomTensor(tensor.Shape{3, 4}, rng)
	w := randomTensor(tensor.Shape{4, 5}, rng)
	b := randomTensor(tensor.Shape{5}, rng)
	labels := []int{2, 0, 4}

	loss := func() float64 {
		lin, err := ops.NewLinearOp(x, w, b)
		if err != nil {
			t.Fatalf("NewLinearOp: %v", err)
		}
		ce, err := ops.NewCrossEntropyOp(lin.Output(), labels)
		if err != nil {
			t.Fatalf("NewCrossEntropyOp: %v", err)
		}
		return ce.Output().Data()[0]
	}

	tape := NewTape()
	tape.StartRecording()
	lin, _ := ops.NewLinearOp(x, w, b)
	tape.Record(lin)
	ce, _ := ops.NewCrossEntropyOp(lin.Output(), labels)
	tape.Record(ce)
	if err := tape.Backward(ce.Output()); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	checkGradients(t, "W", w, loss)
	checkGradients(t, "b", b, loss)
	checkGradients(t, "X", x, loss)
}

// TestGradientCheck_MLP validates end-to-end gradients through
// linear → ReLU → linear → cross-entropy.
func TestGradientCheck_MLP(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	x := randomTensor(tensor.Shape{2, 3}, rng)
	w1 := randomTensor(tensor.Shape{3, 4}, rng)
	b1 := randomTensor(tensor.Shape{4}, rng)
	w2 := randomTensor(tensor.Shape{4, 2}, rng)
	b2 := randomTensor(tensor.Shape{2}, rng)
	labels := []int{1, 0}

	forward := func(tape *Tape) *tensor.Tensor {
		lin1, err := ops.NewLinearOp(x, w1, b1)
		if err != nil {
			t.Fatalf("NewLinearOp: %v", err)
		}
		relu, err := ops.NewReLUOp(lin1.Output())
		if err != nil {
			t.Fatalf("NewReLUOp: %v", err)
		}
		lin2, err := ops.NewLinearOp(relu.Output(), w2, b2)
		if err != nil {
			t.Fatalf("NewLinearOp: %v", err)
		}
		ce, err := ops.NewCrossEntropyOp(lin2.Output(), labels)
		if err != nil {
			t.Fatalf("NewCrossEntropyOp: %v", err)
		}
		if tape != nil {
			tape.Record(lin1)
			tape.Record(relu)
			tape.Record(lin2)
			tape.Record(ce)
		}
		return ce.Output()
	}

	tape := NewTape()
	tape.StartRecording()
	lossTensor := forward(tape)
	if err := tape.Backward(lossTensor); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	loss := func() float64 { return forward(nil).Data()[0] }
	checkGradients(t, "W1", w1, loss)
	checkGradients(t, "b1", b1, loss)
	checkGradients(t, "W2", w2, loss)
	checkGradients(t, "b2", b2, loss)
	checkGradients(t, "X", x, loss)
}

// TestGradientCheck_Sigmoid validates the cached-output sigmoid derivative
// inside a full classification graph.
func TestGradientCheck_Sigmoid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	x := randomTensor(tensor.Shape{2, 3}, rng)
	w1 := randomTensor(tensor.Shape{3, 3}, rng)
	b1 := randomTensor(tensor.Shape{3}, rng)
	w2 := randomTensor(tensor.Shape{3, 2}, rng)
	b2 := randomTensor(tensor.Shape{2}, rng)
	labels := []int{0, 1}

	forward := func(tape *Tape) *tensor.Tensor {
		lin1, _ := ops.NewLinearOp(x, w1, b1)
		sig, _ := ops.NewSigmoidOp(lin1.Output())
		lin2, _ := ops.NewLinearOp(sig.Output(), w2, b2)
		ce, _ := ops.NewCrossEntropyOp(lin2.Output(), labels)
		if tape != nil {
			tape.Record(lin1)
			tape.Record(sig)
			tape.Record(lin2)
			tape.Record(ce)
		}
		return ce.Output()
	}

	tape := NewTape()
	tape.StartRecording()
	lossTensor := forward(tape)
	if err := tape.Backward(lossTensor); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	loss := func() float64 { return forward(nil).Data()[0] }
	checkGradients(t, "W1", w1, loss)
	checkGradients(t, "b1", b1, loss)
	checkGradients(t, "W2", w2, loss)
	checkGradients(t, "b2", b2, loss)
}

// TestGradientCheck_FanOut validates summed gradients when a value feeds
// two operations.
func TestGradientCheck_FanOut(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	x := randomTensor(tensor.Shape{1, 4}, rng)
	labels := []int{1}

	forward := func(tape *Tape) *tensor.Tensor {
		relu, _ := ops.NewReLUOp(x)
		add, _ := ops.NewAddOp(relu.Output(), relu.Output())
		ce, _ := ops.NewCrossEntropyOp(add.Output(), labels)
		if tape != nil {
			tape.Record(relu)
			tape.Record(add)
			tape.Record(ce)
		}
		return ce.Output()
	}

	tape := NewTape()
	tape.StartRecording()
	lossTensor := forward(tape)
	if err := tape.Backward(lossTensor); err != nil {
		t.Fatalf("Backward: %v", err)
	}

	loss := func() float64 { return forward(nil).Data()[0] }
	checkGradients(t, "X", x, loss)
}
