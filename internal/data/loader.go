// Package data provides batch production for the training loop.
//
// The training core consumes batches through the Loader interface and never
// owns the underlying dataset; shuffling policy and batch size belong to
// the loader.
package data

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/seed-ml/seed/internal/tensor"
)

// Batch pairs an input tensor [batch, features] with the integer labels for
// each row. Batches are consumed, not owned, by the training loop.
type Batch struct {
	Inputs *tensor.Tensor
	Labels []int
}

// Loader produces batches, iterable repeatedly across epochs.
type Loader interface {
	// Reset starts a new epoch. Loaders with a shuffling policy reshuffle
	// here.
	Reset()

	// Next returns the next batch, or ok=false when the epoch is
	// exhausted. The final batch of an epoch may be shorter than the
	// configured batch size.
	Next() (batch *Batch, ok bool)

	// NumBatches returns the number of batches per epoch.
	NumBatches() int
}

// InMemory is a Loader over a dataset held in memory.
//
// With a non-nil rng, sample order is reshuffled at every Reset; with a nil
// rng, batches are produced in dataset order.
type InMemory struct {
	features  [][]float64
	labels    []int
	batchSize int
	rng       *rand.Rand
	order     []int
	cursor    int
}

// NewInMemory creates an in-memory loader. Features must be non-empty with a
// consistent dimension, one label per row.
func NewInMemory(features [][]float64, labels []int, batchSize int, rng *rand.Rand) (*InMemory, error) {
	if len(features) == 0 {
		return nil, errors.New("data: empty dataset")
	}
	if len(features) != len(labels) {
		return nil, errors.Errorf("data: %d feature rows but %d labels", len(features), len(labels))
	}
	if batchSize <= 0 {
		return nil, errors.Errorf("data: batch size must be positive, got %d", batchSize)
	}
	dim := len(features[0])
	for i, row := range features {
		if len(row) != dim {
			return nil, errors.Errorf("data: row %d has %d features, want %d", i, len(row), dim)
		}
	}

	order := make([]int, len(features))
	for i := range order {
		order[i] = i
	}

	l := &InMemory{
		features:  features,
		labels:    labels,
		batchSize: batchSize,
		rng:       rng,
		order:     order,
	}
	l.Reset()
	return l, nil
}

// Reset starts a new epoch, reshuffling when a rng was supplied.
func (l *InMemory) Reset() {
	l.cursor = 0
	if l.rng != nil {
		l.rng.Shuffle(len(l.order), func(i, j int) {
			l.order[i], l.order[j] = l.order[j], l.order[i]
		})
	}
}

// Next returns the next batch in the current epoch order. The final batch
// may be shorter than the configured batch size.
func (l *InMemory) Next() (*Batch, bool) {
	if l.cursor >= len(l.order) {
		return nil, false
	}

	end := l.cursor + l.batchSize
	if end > len(l.order) {
		end = len(l.order)
	}
	indices := l.order[l.cursor:end]
	l.cursor = end

	dim := len(l.features[0])
	data := make([]float64, 0, len(indices)*dim)
	labels := make([]int, 0, len(indices))
	for _, idx := range indices {
		data = append(data, l.features[idx]...)
		labels = append(labels, l.labels[idx])
	}

	inputs, err := tensor.FromSlice(data, tensor.Shape{len(indices), dim})
	if err != nil {
		// Unreachable: dimensions were validated at construction.
		panic(err)
	}
	return &Batch{Inputs: inputs, Labels: labels}, true
}

// NumBatches returns the number of batches per epoch, counting a trailing
// short batch.
func (l *InMemory) NumBatches() int {
	return (len(l.order) + l.batchSize - 1) / l.batchSize
}

// Len returns the number of samples in the dataset.
func (l *InMemory) Len() int {
	return len(l.order)
}
