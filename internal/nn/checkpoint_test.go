package nn_test

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/seed-ml/seed/internal/nn"
	"github.com/seed-ml/seed/internal/serialization"
)

func newTestModel(seed int64) *nn.Sequential {
	rng := rand.New(rand.NewSource(seed))
	return nn.NewSequential(
		nn.NewLinear(4, 8, rng),
		nn.NewReLU(),
		nn.NewLinear(8, 3, rng),
	)
}

func TestSaveLoadModel_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlp.seed")

	model := newTestModel(1)
	checkpoint := &serialization.CheckpointMeta{Epoch: 3, Loss: 0.25, LR: 0.1}
	if err := nn.SaveModel(path, model, checkpoint); err != nil {
		t.Fatalf("SaveModel: %v", err)
	}

	// Same architecture, different initialization.
	restored := newTestModel(99)
	header, err := nn.LoadModel(path, restored)
	if err != nil {
		t.Fatalf("LoadModel: %v", err)
	}

	if header.Checkpoint == nil || header.Checkpoint.Epoch != 3 {
		t.Errorf("checkpoint metadata not restored: %+v", header.Checkpoint)
	}

	origParams := model.Parameters()
	loadedParams := restored.Parameters()
	if len(origParams) != len(loadedParams) {
		t.Fatalf("parameter count mismatch: %d vs %d", len(origParams), len(loadedParams))
	}
	for i := range origParams {
		orig := origParams[i].Tensor().Data()
		loaded := loadedParams[i].Tensor().Data()
		for j := range orig {
			if orig[j] != loaded[j] {
				t.Fatalf("parameter %d value %d: %v != %v", i, j, orig[j], loaded[j])
			}
		}
	}
}

func TestLoadModel_ArchitectureMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mlp.seed")
	if err := nn.SaveModel(path, newTestModel(1), nil); err != nil {
		t.Fatalf("SaveModel: %v", err)
	}

	rng := rand.New(rand.NewSource(2))

	// Wrong parameter count.
	if _, err := nn.LoadModel(path, nn.NewSequential(nn.NewLinear(4, 8, rng))); err == nil {
		t.Error("expected error for parameter count mismatch")
	}

	// Matching count, wrong shapes.
	wrongShapes := nn.NewSequential(
		nn.NewLinear(4, 6, rng),
		nn.NewReLU(),
		nn.NewLinear(6, 3, rng),
	)
	if _, err := nn.LoadModel(path, wrongShapes); err == nil {
		t.Error("expected error for shape mismatch")
	}
}
