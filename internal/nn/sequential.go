package nn

import (
	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/tensor"
)

// Sequential is a container module that chains modules together: each
// module's output becomes the next module's input.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Forward applies all modules in sequence. The first error aborts the pass.
func (s *Sequential) Forward(tape *autodiff.Tape, input *tensor.Tensor) (*tensor.Tensor, error) {
	output := input
	for _, module := range s.modules {
		var err error
		output, err = module.Forward(tape, output)
		if err != nil {
			return nil, err
		}
	}
	return output, nil
}

// Parameters returns all trainable parameters from all modules, in layer
// order then parameter-within-layer order.
func (s *Sequential) Parameters() []*Parameter {
	var params []*Parameter
	for _, module := range s.modules {
		params = append(params, module.Parameters()...)
	}
	return params
}

// Add appends a module to the sequence.
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}
