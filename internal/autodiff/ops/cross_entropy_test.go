package ops

import (
	"errors"
	"math"
	"testing"

	"github.com/seed-ml/seed/internal/tensor"
)

// naiveNLL computes -log(softmax(z)_y) without stabilization, for
// comparison on well-scaled inputs.
func naiveNLL(logits []float64, label int) float64 {
	sum := 0.0
	for _, v := range logits {
		sum += math.Exp(v)
	}
	return -math.Log(math.Exp(logits[label]) / sum)
}

func TestCrossEntropyOp_Forward(t *testing.T) {
	logits, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
	op, err := NewCrossEntropyOp(logits, []int{1})
	if err != nil {
		t.Fatalf("NewCrossEntropyOp: %v", err)
	}

	// -log(softmax([1,2])[1]) = log(1 + e^-1)
	want := math.Log(1 + math.Exp(-1))
	if got := op.Output().Data()[0]; !almostEqual(got, want, 1e-12) {
		t.Errorf("loss = %v, want %v", got, want)
	}
}

func TestCrossEntropyOp_MatchesNaiveForWellScaledInputs(t *testing.T) {
	values := []float64{0.3, -1.2, 2.1, 0.0, 1.7, -0.4}
	logits, _ := tensor.FromSlice(values, tensor.Shape{2, 3})
	labels := []int{2, 0}

	op, err := NewCrossEntropyOp(logits, labels)
	if err != nil {
		t.Fatalf("NewCrossEntropyOp: %v", err)
	}

	want := (naiveNLL(values[:3], 2) + naiveNLL(values[3:], 0)) / 2
	if got := op.Output().Data()[0]; !almostEqual(got, want, 1e-12) {
		t.Errorf("loss = %v, naive = %v", got, want)
	}
}

func TestCrossEntropyOp_StableForLargeLogits(t *testing.T) {
	// The naive formula overflows exp(1e4); the stabilized path must stay
	// finite for logits with magnitude up to at least 1e4.
	tests := []struct {
		name   string
		logits []float64
		label  int
		want   float64
	}{
		{"large positive, correct class", []float64{1e4, 0}, 0, 0},
		{"large positive, wrong class", []float64{1e4, 0}, 1, 1e4},
		{"large negative", []float64{-1e4, 0}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logits, _ := tensor.FromSlice(tt.logits, tensor.Shape{1, 2})
			op, err := NewCrossEntropyOp(logits, []int{tt.label})
			if err != nil {
				t.Fatalf("NewCrossEntropyOp: %v", err)
			}
			got := op.Output().Data()[0]
			if math.IsNaN(got) || math.IsInf(got, 0) {
				t.Fatalf("loss = %v, want finite", got)
			}
			if !almostEqual(got, tt.want, 1e-6) {
				t.Errorf("loss = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossEntropyOp_UniformLogits(t *testing.T) {
	// Uniformly equal logits produce a uniform softmax; not an error.
	logits, _ := tensor.FromSlice([]float64{3, 3, 3, 3}, tensor.Shape{1, 4})
	op, err := NewCrossEntropyOp(logits, []int{2})
	if err != nil {
		t.Fatalf("NewCrossEntropyOp: %v", err)
	}
	if got, want := op.Output().Data()[0], math.Log(4); !almostEqual(got, want, 1e-12) {
		t.Errorf("loss = %v, want log(4) = %v", got, want)
	}
}

func TestCrossEntropyOp_LabelOutOfRange(t *testing.T) {
	logits, _ := tensor.New(tensor.Shape{2, 3})
	for _, label := range []int{-1, 3, 7} {
		_, err := NewCrossEntropyOp(logits, []int{0, label})
		var oor *tensor.IndexOutOfRangeError
		if !errors.As(err, &oor) {
			t.Fatalf("label %d: expected IndexOutOfRangeError, got %v", label, err)
		}
		if oor.Index != label || oor.Bound != 3 {
			t.Errorf("error reports index %d bound %d, want %d and 3", oor.Index, oor.Bound, label)
		}
	}
}

func TestCrossEntropyOp_LabelCountMismatch(t *testing.T) {
	logits, _ := tensor.New(tensor.Shape{2, 3})
	_, err := NewCrossEntropyOp(logits, []int{0})
	var sm *tensor.ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestCrossEntropyOp_Backward(t *testing.T) {
	logits, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{1, 2})
	op, _ := NewCrossEntropyOp(logits, []int{1})

	grads, err := op.Backward(tensor.Scalar(1.0))
	if err != nil {
		t.Fatalf("Backward: %v", err)
	}

	// dZ = softmax([1,2]) - [0,1] = [p, p-1] with p = 1/(1+e)
	p := 1 / (1 + math.E)
	want := []float64{p, p - 1}
	for i, v := range grads[0].Data() {
		if !almostEqual(v, want[i], 1e-12) {
			t.Errorf("dZ[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestCrossEntropyOp_BackwardAveragesOverBatch(t *testing.T) {
	logits, _ := tensor.FromSlice([]float64{0, 0, 0, 0}, tensor.Shape{2, 2})
	op, _ := NewCrossEntropyOp(logits, []int{0, 1})

	grads, _ := op.Backward(tensor.Scalar(1.0))
	// Per row: (0.5 - onehot) / 2
	want := []float64{-0.25, 0.25, 0.25, -0.25}
	for i, v := range grads[0].Data() {
		if !almostEqual(v, want[i], 1e-12) {
			t.Errorf("dZ[%d] = %v, want %v", i, v, want[i])
		}
	}
}

func TestLogSoftmax_RowsSumToOneAfterExp(t *testing.T) {
	logits, _ := tensor.FromSlice([]float64{1, 2, 3, -5, 0, 5}, tensor.Shape{2, 3})
	out, err := LogSoftmax(logits)
	if err != nil {
		t.Fatalf("LogSoftmax: %v", err)
	}
	data := out.Data()
	for b := 0; b < 2; b++ {
		sum := 0.0
		for c := 0; c < 3; c++ {
			sum += math.Exp(data[b*3+c])
		}
		if !almostEqual(sum, 1.0, 1e-12) {
			t.Errorf("row %d: exp(log-softmax) sums to %v, want 1", b, sum)
		}
	}
}
