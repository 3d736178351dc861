// Command seed trains a feed-forward classifier with the seed engine.
//
// By default it trains a single linear layer on a synthetic linearly
// separable two-class dataset; pass -data to train on a CSV dataset
// (label,f0,f1,... with a header row) instead.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"k8s.io/klog/v2"

	"github.com/seed-ml/seed/internal/data"
	"github.com/seed-ml/seed/internal/nn"
	"github.com/seed-ml/seed/internal/optim"
	"github.com/seed-ml/seed/internal/serialization"
	"github.com/seed-ml/seed/internal/train"
)

func main() {
	var (
		dataPath   = flag.String("data", "", "CSV dataset path (empty: synthetic two-cluster data)")
		scale      = flag.Float64("scale", 1, "divide CSV feature values by this (e.g. 255 for pixel data)")
		layers     = flag.String("layers", "", "comma-separated layer widths, e.g. 784,128,10 (empty: inferred single layer)")
		activation = flag.String("activation", "relu", "hidden layer activation: relu, sigmoid or none")
		epochs     = flag.Int("epochs", 10, "training epochs")
		batchSize  = flag.Int("batch-size", 32, "mini-batch size")
		lr         = flag.Float64("lr", 0.1, "SGD learning rate")
		seed       = flag.Int64("seed", 42, "random seed for init and shuffling")
		savePath   = flag.String("save", "", "write a checkpoint here after training")
		loadPath   = flag.String("load", "", "restore parameters from this checkpoint before training")
		evalOnly   = flag.Bool("eval", false, "skip training; report loss and accuracy only")
	)
	klog.InitFlags(nil)
	flag.Parse()

	if err := run(*dataPath, *scale, *layers, *activation, *epochs, *batchSize, *lr, *seed,
		*savePath, *loadPath, *evalOnly); err != nil {
		klog.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(dataPath string, scale float64, layers, activation string, epochs, batchSize int,
	lr float64, seed int64, savePath, loadPath string, evalOnly bool) error {
	rng := rand.New(rand.NewSource(seed))

	features, labels, err := loadDataset(dataPath, scale, rng)
	if err != nil {
		return err
	}
	numClasses := maxLabel(labels) + 1
	featureDim := len(features[0])
	klog.Infof("dataset: %d samples, %d features, %d classes", len(features), featureDim, numClasses)

	specs, err := parseLayers(layers, featureDim, numClasses, activation)
	if err != nil {
		return err
	}
	model, err := nn.BuildMLP(specs, rng)
	if err != nil {
		return err
	}

	if loadPath != "" {
		header, err := nn.LoadModel(loadPath, model)
		if err != nil {
			return err
		}
		klog.Infof("restored checkpoint %s (created %s)", loadPath, header.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	opt, err := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: lr})
	if err != nil {
		return err
	}
	trainer := train.NewTrainer(model, opt)

	loader, err := data.NewInMemory(features, labels, batchSize, rng)
	if err != nil {
		return err
	}

	if !evalOnly {
		losses, err := trainer.Fit(loader, train.Config{Epochs: epochs, Progress: true})
		if err != nil {
			return err
		}

		if savePath != "" {
			meta := &serialization.CheckpointMeta{
				Epoch: len(losses),
				Loss:  losses[len(losses)-1],
				LR:    opt.LR(),
			}
			if err := nn.SaveModel(savePath, model, meta); err != nil {
				return err
			}
			klog.Infof("saved checkpoint to %s", savePath)
		}
	}

	meanLoss, accuracy, err := trainer.Evaluate(loader)
	if err != nil {
		return err
	}
	fmt.Printf("loss=%.6f accuracy=%.2f%%\n", meanLoss, accuracy*100)
	return nil
}

// loadDataset reads the CSV dataset, or generates the synthetic default.
func loadDataset(path string, scale float64, rng *rand.Rand) ([][]float64, []int, error) {
	if path != "" {
		return data.LoadCSV(path, scale)
	}
	features, labels := data.TwoClusters(500, 2, 2.0, 0.4, rng)
	return features, labels, nil
}

// parseLayers turns "784,128,10" into layer specs with the chosen hidden
// activation and no activation on the output layer. An empty string yields
// a single linear layer from featureDim to numClasses.
func parseLayers(spec string, featureDim, numClasses int, activation string) ([]nn.LayerSpec, error) {
	act, err := nn.ParseActivation(activation)
	if err != nil {
		return nil, err
	}

	if spec == "" {
		return []nn.LayerSpec{{In: featureDim, Out: numClasses, Activation: nn.ActivationNone}}, nil
	}

	parts := strings.Split(spec, ",")
	if len(parts) < 2 {
		return nil, fmt.Errorf("-layers needs at least two widths, got %q", spec)
	}
	widths := make([]int, len(parts))
	for i, p := range parts {
		w, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid layer width %q", p)
		}
		widths[i] = w
	}
	if widths[0] != featureDim {
		return nil, fmt.Errorf("first layer width %d does not match feature dim %d", widths[0], featureDim)
	}
	if widths[len(widths)-1] != numClasses {
		return nil, fmt.Errorf("last layer width %d does not match class count %d", widths[len(widths)-1], numClasses)
	}

	specs := make([]nn.LayerSpec, len(widths)-1)
	for i := 0; i < len(widths)-1; i++ {
		layerAct := act
		if i == len(widths)-2 {
			layerAct = nn.ActivationNone // Output layer emits raw logits
		}
		specs[i] = nn.LayerSpec{In: widths[i], Out: widths[i+1], Activation: layerAct}
	}
	return specs, nil
}

func maxLabel(labels []int) int {
	max := 0
	for _, l := range labels {
		if l > max {
			max = l
		}
	}
	return max
}
