// Package nn implements neural network modules for the seed engine.
//
// This package provides the building blocks for dense classifiers:
//   - Module interface: base interface for all NN components
//   - Parameter: trainable tensors with gradient tracking
//   - Linear: fully connected layer
//   - Activations: ReLU, Sigmoid
//   - CrossEntropyLoss: fused log-softmax + NLL classification loss
//   - Sequential: container for stacking layers
//   - LayerSpec/BuildMLP: declarative model construction
package nn

import (
	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Forward takes the tape explicitly: pass a recording tape to build the
// computation graph for training, or a nil tape for inference. The tape
// parameter is the engine's only gradient-mode switch.
type Module interface {
	// Forward computes the output of the module given an input tensor,
	// recording the operation on the tape when one is supplied.
	Forward(tape *autodiff.Tape, input *tensor.Tensor) (*tensor.Tensor, error)

	// Parameters returns all trainable parameters of this module, in a
	// fixed order. Modules without trainable parameters (activations)
	// return nil.
	Parameters() []*Parameter
}
