// Copyright 2025 Seed ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for neural network building blocks:
// layers, activations, containers, loss, initialization, and checkpoint
// persistence.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128, rng),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10, rng),
//	)
package nn

import (
	"math/rand"

	"github.com/seed-ml/seed/internal/nn"
	"github.com/seed-ml/seed/internal/serialization"
	"github.com/seed-ml/seed/internal/tensor"
)

// Module is anything with a forward pass and trainable parameters.
type Module = nn.Module

// Parameter wraps a trainable tensor with a name.
type Parameter = nn.Parameter

// Layer and container types.
type (
	// Linear is a fully connected layer, y = x·W + b.
	Linear = nn.Linear

	// ReLU is the rectified linear activation.
	ReLU = nn.ReLU

	// Sigmoid is the logistic activation.
	Sigmoid = nn.Sigmoid

	// Sequential chains modules output-to-input.
	Sequential = nn.Sequential

	// CrossEntropyLoss is the fused log-softmax + NLL classification loss.
	CrossEntropyLoss = nn.CrossEntropyLoss
)

// Activation names a non-linearity for BuildMLP layer specs.
type Activation = nn.Activation

// Supported activation kinds.
const (
	ActivationNone    = nn.ActivationNone
	ActivationReLU    = nn.ActivationReLU
	ActivationSigmoid = nn.ActivationSigmoid
)

// LayerSpec describes one dense layer for BuildMLP.
type LayerSpec = nn.LayerSpec

// Checkpoint file types, re-exported so callers can build metadata and
// inspect loaded headers.
type (
	// CheckpointMeta carries training state alongside saved parameters.
	CheckpointMeta = serialization.CheckpointMeta

	// Header is the decoded header of a .seed file.
	Header = serialization.Header
)

// NewParameter creates a named trainable parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// NewLinear creates a dense layer with Xavier-initialized weights and zero
// biases.
func NewLinear(inFeatures, outFeatures int, rng *rand.Rand) *Linear {
	return nn.NewLinear(inFeatures, outFeatures, rng)
}

// NewReLU creates a ReLU activation module.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// NewSigmoid creates a Sigmoid activation module.
func NewSigmoid() *Sigmoid {
	return nn.NewSigmoid()
}

// NewSequential creates a container chaining the given modules.
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// NewCrossEntropyLoss creates the classification loss.
func NewCrossEntropyLoss() *CrossEntropyLoss {
	return nn.NewCrossEntropyLoss()
}

// ParseActivation maps a name ("relu", "sigmoid", "none") to an
// Activation kind.
func ParseActivation(name string) (Activation, error) {
	return nn.ParseActivation(name)
}

// BuildMLP constructs a Sequential classifier from ordered layer specs.
func BuildMLP(specs []LayerSpec, rng *rand.Rand) (*Sequential, error) {
	return nn.BuildMLP(specs, rng)
}

// Xavier draws Glorot-uniform values sized by the layer's fan-in and
// fan-out.
func Xavier(fanIn, fanOut int, shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	return nn.Xavier(fanIn, fanOut, shape, rng)
}

// Zeros creates a zero-filled tensor, the conventional bias init.
func Zeros(shape tensor.Shape) *tensor.Tensor {
	return nn.Zeros(shape)
}

// Randn creates a tensor with values drawn from N(0, 1).
func Randn(shape tensor.Shape, rng *rand.Rand) *tensor.Tensor {
	return nn.Randn(shape, rng)
}

// Predict returns the most likely class per input row, tape-free.
func Predict(model Module, input *tensor.Tensor) ([]int, error) {
	return nn.Predict(model, input)
}

// Probabilities returns per-class probabilities [batch, classes],
// tape-free.
func Probabilities(model Module, input *tensor.Tensor) (*tensor.Tensor, error) {
	return nn.Probabilities(model, input)
}

// SaveModel persists a model's parameters to path in the .seed format.
func SaveModel(path string, model Module, checkpoint *serialization.CheckpointMeta) error {
	return nn.SaveModel(path, model, checkpoint)
}

// LoadModel restores parameters from path into an identically structured
// model.
func LoadModel(path string, model Module) (*serialization.Header, error) {
	return nn.LoadModel(path, model)
}
