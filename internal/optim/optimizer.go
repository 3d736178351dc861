// Package optim implements optimization algorithms for training.
//
// Optimizers hold a fixed ordered collection of parameters and consume the
// gradients accumulated on them by the backward pass:
//
//	err := tape.Backward(loss)
//	err = optimizer.Step()
//	optimizer.ZeroGrad()
package optim

import "fmt"

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all tracked parameters in place.
	// Fails with PreconditionError if any tracked parameter has no
	// gradient buffer, which means backward was never run.
	Step() error

	// ZeroGrad releases all tracked parameters' gradient buffers.
	// Call between optimizer steps to prevent gradient accumulation
	// across iterations.
	ZeroGrad()

	// LR returns the current learning rate.
	LR() float64

	// SetLR updates the learning rate. Useful for scheduling.
	SetLR(lr float64)
}

// PreconditionError signals a usage bug: an operation was invoked before
// its required predecessor (e.g., Step before any Backward).
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: precondition failed: %s", e.Op, e.Reason)
}
