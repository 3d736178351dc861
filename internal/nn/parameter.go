package nn

import "github.com/seed-ml/seed/internal/tensor"

// Parameter represents a trainable parameter in a neural network.
//
// A parameter is created once at model construction, lives for the whole
// training run, and is mutated in place by the optimizer — never replaced.
// Its gradient buffer lives on the underlying tensor and is lazily
// allocated by the first backward pass.
type Parameter struct {
	name   string // Parameter name (e.g., "weight", "bias")
	tensor *tensor.Tensor
}

// NewParameter creates a new trainable parameter wrapping an initialized
// tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{name: name, tensor: t}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Grad returns the accumulated gradient buffer, or nil if no backward pass
// has contributed to this parameter yet.
func (p *Parameter) Grad() []float64 {
	return p.tensor.Grad()
}

// HasGrad reports whether a gradient buffer is currently allocated.
func (p *Parameter) HasGrad() bool {
	return p.tensor.HasGrad()
}

// ZeroGrad releases the gradient buffer. Call between optimizer steps to
// avoid accumulating gradients across iterations.
func (p *Parameter) ZeroGrad() {
	p.tensor.ZeroGrad()
}
