package tensor

import (
	"errors"
	"math"
	"testing"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}
	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("NumElements(%v) = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShape_Equal(t *testing.T) {
	if !(Shape{2, 3}).Equal(Shape{2, 3}) {
		t.Error("equal shapes reported unequal")
	}
	if (Shape{2, 3}).Equal(Shape{3, 2}) {
		t.Error("different shapes reported equal")
	}
	if (Shape{2, 3}).Equal(Shape{2, 3, 1}) {
		t.Error("shapes of different rank reported equal")
	}
}

func TestNew_InvalidShape(t *testing.T) {
	if _, err := New(Shape{2, 0}); err == nil {
		t.Error("expected error for zero dimension")
	}
	if _, err := New(Shape{-1}); err == nil {
		t.Error("expected error for negative dimension")
	}
}

func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestTensor_At(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	if got := x.At(1, 2); got != 6 {
		t.Errorf("At(1,2) = %v, want 6", got)
	}
	if got := x.At(0, 1); got != 2 {
		t.Errorf("At(0,1) = %v, want 2", got)
	}
}

func TestAccumGrad_LazyAllocationAndSum(t *testing.T) {
	x := Zeros(Shape{3})
	if x.HasGrad() {
		t.Fatal("fresh tensor should have no gradient buffer")
	}

	g1, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	if err := x.AccumGrad(g1); err != nil {
		t.Fatalf("AccumGrad: %v", err)
	}
	if !x.HasGrad() {
		t.Fatal("gradient buffer should be allocated after first contribution")
	}

	g2, _ := FromSlice([]float64{10, 20, 30}, Shape{3})
	if err := x.AccumGrad(g2); err != nil {
		t.Fatalf("AccumGrad: %v", err)
	}

	want := []float64{11, 22, 33}
	for i, v := range x.Grad() {
		if v != want[i] {
			t.Errorf("grad[%d] = %v, want %v (contributions must sum)", i, v, want[i])
		}
	}
}

func TestAccumGrad_ShapeMismatch(t *testing.T) {
	x := Zeros(Shape{3})
	g := Zeros(Shape{2})
	err := x.AccumGrad(g)
	var sm *ShapeMismatchError
	if !errors.As(err, &sm) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestZeroGrad(t *testing.T) {
	x := Zeros(Shape{2})
	g, _ := FromSlice([]float64{1, 1}, Shape{2})
	_ = x.AccumGrad(g)
	x.ZeroGrad()
	if x.HasGrad() {
		t.Error("ZeroGrad should release the gradient buffer")
	}

	// The next contribution starts from zero again.
	_ = x.AccumGrad(g)
	if x.Grad()[0] != 1 {
		t.Errorf("grad after reset = %v, want 1", x.Grad()[0])
	}
}

func TestClone_Independent(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2}, Shape{2})
	y := x.Clone()
	y.Data()[0] = 99
	if x.Data()[0] != 1 {
		t.Error("clone shares storage with original")
	}
	if y.HasGrad() {
		t.Error("clone should not carry gradient state")
	}
}

func TestCheckFinite(t *testing.T) {
	x, _ := FromSlice([]float64{1, 2, 3}, Shape{3})
	if err := CheckFinite("test", x); err != nil {
		t.Errorf("finite tensor reported unstable: %v", err)
	}

	x.Data()[1] = math.NaN()
	err := CheckFinite("test", x)
	var ni *NumericInstabilityError
	if !errors.As(err, &ni) {
		t.Fatalf("expected NumericInstabilityError, got %v", err)
	}
	if ni.Index != 1 {
		t.Errorf("offending index = %d, want 1", ni.Index)
	}

	x.Data()[1] = math.Inf(-1)
	if err := CheckFinite("test", x); err == nil {
		t.Error("expected error for -Inf")
	}
}
