package optim

import (
	"fmt"

	"github.com/seed-ml/seed/internal/nn"
)

// SGD implements stochastic gradient descent.
//
// Update rule, element-wise and in place:
//
//	param = param - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	for batch := range batches {
//	    // forward + tape.Backward(loss)
//	    if err := optimizer.Step(); err != nil { ... }
//	    optimizer.ZeroGrad()
//	}
type SGD struct {
	params []*nn.Parameter
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01; must be positive)
}

// NewSGD creates a new SGD optimizer over a fixed ordered collection of
// parameters. A zero LR gets the default; a negative LR is rejected.
func NewSGD(params []*nn.Parameter, config SGDConfig) (*SGD, error) {
	if config.LR < 0 {
		return nil, fmt.Errorf("SGD: learning rate must be positive, got %v", config.LR)
	}
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{params: params, lr: config.LR}, nil
}

// Step performs a single optimization step: param -= lr * grad for every
// tracked parameter, in place.
//
// If any tracked parameter has no gradient buffer, Step fails with
// PreconditionError and modifies nothing: a missing buffer means backward
// was never run, which is a usage bug, not a training condition.
func (s *SGD) Step() error {
	for _, param := range s.params {
		if !param.HasGrad() {
			return &PreconditionError{
				Op:     "SGD.Step",
				Reason: fmt.Sprintf("parameter %q has no gradient (backward not run)", param.Name()),
			}
		}
	}

	for _, param := range s.params {
		data := param.Tensor().Data()
		grad := param.Grad()
		for i := range data {
			data[i] -= s.lr * grad[i]
		}
	}
	return nil
}

// ZeroGrad releases gradients for all tracked parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
