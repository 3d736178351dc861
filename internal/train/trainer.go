// Package train orchestrates the forward/backward/update cycle.
//
// One iteration moves through a fixed sequence of phases:
//
//	Idle → ForwardPass → BackwardPass → OptimizerStep → Idle
//
// with EpochBoundary reached after the loader is exhausted. Execution is
// strictly single-threaded and synchronous: backward completes before the
// optimizer step, and the step (including the gradient reset) completes
// before the next forward pass begins.
package train

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"k8s.io/klog/v2"

	"github.com/seed-ml/seed/internal/autodiff"
	"github.com/seed-ml/seed/internal/data"
	"github.com/seed-ml/seed/internal/nn"
	"github.com/seed-ml/seed/internal/optim"
	"github.com/seed-ml/seed/internal/tensor"
)

// Phase identifies where the trainer is within one iteration.
type Phase int

// Trainer phases, in iteration order.
const (
	Idle Phase = iota
	ForwardPass
	BackwardPass
	OptimizerStep
	EpochBoundary
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case ForwardPass:
		return "forward"
	case BackwardPass:
		return "backward"
	case OptimizerStep:
		return "step"
	case EpochBoundary:
		return "epoch-boundary"
	default:
		return "unknown"
	}
}

// Config holds training loop settings.
type Config struct {
	Epochs   int  // Number of full passes over the loader (default: 1)
	Progress bool // Render a per-epoch progress bar on stderr
}

// Trainer drives repeated forward/backward/update cycles over batches.
//
// The trainer owns the tape: it is cleared and rebuilt for every batch and
// never shared across iterations. Gradients are zeroed right after each
// optimizer step, so each step consumes exactly one batch's gradients;
// tape-level accumulation across batches remains available to callers that
// drive the tape directly.
type Trainer struct {
	model nn.Module
	loss  *nn.CrossEntropyLoss
	opt   optim.Optimizer
	tape  *autodiff.Tape
	phase Phase
}

// NewTrainer creates a trainer for the given model and optimizer.
func NewTrainer(model nn.Module, opt optim.Optimizer) *Trainer {
	return &Trainer{
		model: model,
		loss:  nn.NewCrossEntropyLoss(),
		opt:   opt,
		tape:  autodiff.NewTape(),
		phase: Idle,
	}
}

// Phase returns the trainer's current phase.
func (t *Trainer) Phase() Phase {
	return t.phase
}

// RunEpoch performs one full pass over the loader and returns the mean
// per-batch loss.
//
// A non-finite loss is reported via klog and training continues: numeric
// divergence is not a transient fault, and whether to adjust the learning
// rate and resume is the caller's decision. Shape and label errors abort
// the epoch with no partial parameter mutation for the failing batch.
func (t *Trainer) RunEpoch(loader data.Loader) (float64, error) {
	return t.runEpoch(loader, nil)
}

func (t *Trainer) runEpoch(loader data.Loader, bar *progressbar.ProgressBar) (float64, error) {
	loader.Reset()

	totalLoss := 0.0
	numBatches := 0

	for {
		batch, ok := loader.Next()
		if !ok {
			break
		}

		lossValue, err := t.trainBatch(batch)
		if err != nil {
			t.phase = Idle
			return 0, err
		}

		totalLoss += lossValue
		numBatches++
		if bar != nil {
			_ = bar.Add(1)
		}
		klog.V(2).Infof("batch %d: loss=%.6f", numBatches, lossValue)
	}

	t.phase = EpochBoundary
	defer func() { t.phase = Idle }()

	if numBatches == 0 {
		return 0, errors.New("train: loader produced no batches")
	}
	return totalLoss / float64(numBatches), nil
}

// trainBatch runs one Idle→Forward→Backward→Step→Idle cycle.
func (t *Trainer) trainBatch(batch *data.Batch) (float64, error) {
	// ForwardPass: build a fresh tape and compute the scalar loss.
	t.phase = ForwardPass
	t.tape.Clear()
	t.tape.StartRecording()

	logits, err := t.model.Forward(t.tape, batch.Inputs)
	if err != nil {
		return 0, err
	}
	loss, err := t.loss.Forward(t.tape, logits, batch.Labels)
	if err != nil {
		return 0, err
	}
	t.tape.StopRecording()

	lossValue := loss.Data()[0]
	if err := tensor.CheckFinite("train: loss", loss); err != nil {
		klog.Warningf("numeric instability: %v (consider lowering the learning rate)", err)
	}

	// BackwardPass: propagate gradients to every parameter.
	t.phase = BackwardPass
	if err := t.tape.Backward(loss); err != nil {
		return 0, err
	}

	// OptimizerStep: update parameters, then reset gradients so the next
	// iteration starts clean.
	t.phase = OptimizerStep
	if err := t.opt.Step(); err != nil {
		return 0, err
	}
	t.opt.ZeroGrad()

	t.phase = Idle
	return lossValue, nil
}

// Fit trains for the configured number of epochs and returns the mean loss
// of each epoch in order.
func (t *Trainer) Fit(loader data.Loader, config Config) ([]float64, error) {
	epochs := config.Epochs
	if epochs <= 0 {
		epochs = 1
	}

	losses := make([]float64, 0, epochs)
	for epoch := 1; epoch <= epochs; epoch++ {
		var bar *progressbar.ProgressBar
		if config.Progress {
			bar = progressbar.NewOptions(loader.NumBatches(),
				progressbar.OptionSetDescription(fmt.Sprintf("epoch %d/%d", epoch, epochs)),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		meanLoss, err := t.runEpoch(loader, bar)
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			return losses, errors.Wrapf(err, "train: epoch %d", epoch)
		}

		losses = append(losses, meanLoss)
		klog.Infof("epoch %d/%d: mean loss=%.6f lr=%v", epoch, epochs, meanLoss, t.opt.LR())
	}
	return losses, nil
}

// Evaluate runs a tape-free pass over the loader and returns mean loss and
// accuracy. No gradients are produced and no parameters change.
func (t *Trainer) Evaluate(loader data.Loader) (meanLoss, accuracy float64, err error) {
	loader.Reset()

	totalLoss := 0.0
	numBatches := 0
	correct, total := 0, 0

	for {
		batch, ok := loader.Next()
		if !ok {
			break
		}

		logits, err := t.model.Forward(nil, batch.Inputs)
		if err != nil {
			return 0, 0, err
		}
		loss, err := t.loss.Forward(nil, logits, batch.Labels)
		if err != nil {
			return 0, 0, err
		}
		totalLoss += loss.Data()[0]
		numBatches++

		preds, err := nn.Predict(t.model, batch.Inputs)
		if err != nil {
			return 0, 0, err
		}
		for i, p := range preds {
			if p == batch.Labels[i] {
				correct++
			}
			total++
		}
	}

	if numBatches == 0 {
		return 0, 0, errors.New("train: loader produced no batches")
	}
	return totalLoss / float64(numBatches), float64(correct) / float64(total), nil
}
