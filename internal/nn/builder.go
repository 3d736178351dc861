package nn

import (
	"fmt"
	"math/rand"
)

// Activation names the non-linearity applied after a layer.
type Activation int

// Supported activation kinds.
const (
	ActivationNone Activation = iota
	ActivationReLU
	ActivationSigmoid
)

// String returns a human-readable activation name.
func (a Activation) String() string {
	switch a {
	case ActivationNone:
		return "none"
	case ActivationReLU:
		return "relu"
	case ActivationSigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// ParseActivation maps a name to an Activation kind.
func ParseActivation(name string) (Activation, error) {
	switch name {
	case "none", "":
		return ActivationNone, nil
	case "relu":
		return ActivationReLU, nil
	case "sigmoid":
		return ActivationSigmoid, nil
	default:
		return ActivationNone, fmt.Errorf("unknown activation %q", name)
	}
}

// LayerSpec describes one dense layer of a feed-forward classifier: its
// dimensions and the activation applied to its output.
type LayerSpec struct {
	In         int
	Out        int
	Activation Activation
}

// BuildMLP constructs a Sequential model from an ordered list of layer
// specifications. Adjacent layers must agree on dimensions
// (specs[i].Out == specs[i+1].In); the final layer conventionally uses
// ActivationNone so the model emits raw logits for the loss.
func BuildMLP(specs []LayerSpec, rng *rand.Rand) (*Sequential, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("BuildMLP: at least one layer spec required")
	}

	model := NewSequential()
	for i, spec := range specs {
		if spec.In <= 0 || spec.Out <= 0 {
			return nil, fmt.Errorf("BuildMLP: layer %d has non-positive dimensions [%d, %d]", i, spec.In, spec.Out)
		}
		if i > 0 && specs[i-1].Out != spec.In {
			return nil, fmt.Errorf("BuildMLP: layer %d input dim %d does not match layer %d output dim %d",
				i, spec.In, i-1, specs[i-1].Out)
		}

		model.Add(NewLinear(spec.In, spec.Out, rng))
		switch spec.Activation {
		case ActivationNone:
		case ActivationReLU:
			model.Add(NewReLU())
		case ActivationSigmoid:
			model.Add(NewSigmoid())
		default:
			return nil, fmt.Errorf("BuildMLP: layer %d has unknown activation %d", i, spec.Activation)
		}
	}
	return model, nil
}
