package nn

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/seed-ml/seed/internal/serialization"
)

// SaveModel persists a model's parameters to path in the .seed format.
//
// Parameters are stored in Parameters() order — by layer, then by parameter
// within layer — with positional names ("param.0.weight"), so a file can
// only be restored into a model of identical architecture.
func SaveModel(path string, model Module, checkpoint *serialization.CheckpointMeta) error {
	params := model.Parameters()
	entries := make([]serialization.Entry, len(params))
	for i, p := range params {
		entries[i] = serialization.Entry{
			Name:   fmt.Sprintf("param.%d.%s", i, p.Name()),
			Tensor: p.Tensor(),
		}
	}
	return serialization.Save(path, "Sequential", entries, checkpoint)
}

// LoadModel restores parameters from path into an already-constructed
// model. Tensor count and shapes must match the model exactly; values are
// copied into the existing parameter tensors in place.
func LoadModel(path string, model Module) (*serialization.Header, error) {
	header, entries, err := serialization.Load(path)
	if err != nil {
		return nil, err
	}

	params := model.Parameters()
	if len(entries) != len(params) {
		return nil, errors.Errorf("checkpoint has %d tensors, model has %d parameters",
			len(entries), len(params))
	}
	for i, p := range params {
		stored := entries[i].Tensor
		if !stored.Shape().Equal(p.Tensor().Shape()) {
			return nil, errors.Errorf("checkpoint tensor %q shape %v does not match parameter %q shape %v",
				entries[i].Name, stored.Shape(), p.Name(), p.Tensor().Shape())
		}
		copy(p.Tensor().Data(), stored.Data())
	}
	return header, nil
}
