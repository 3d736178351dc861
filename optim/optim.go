// Copyright 2025 Seed ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the public API for optimization algorithms.
//
// Example:
//
//	optimizer, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//	// after tape.Backward(loss):
//	err = optimizer.Step()
//	optimizer.ZeroGrad()
package optim

import (
	"github.com/seed-ml/seed/internal/nn"
	"github.com/seed-ml/seed/internal/optim"
)

// Optimizer is the common interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD is plain stochastic gradient descent, param -= lr * grad.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// PreconditionError signals an operation invoked before its required
// predecessor, e.g. Step before any backward pass.
type PreconditionError = optim.PreconditionError

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}
