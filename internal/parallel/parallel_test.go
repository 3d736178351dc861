package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_EachIndexExactlyOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}

	n := 1000
	hits := make([]int64, n)
	For(n, func(i int) {
		atomic.AddInt64(&hits[i], 1)
	}, cfg)

	for i, h := range hits {
		if h != 1 {
			t.Errorf("index %d executed %d times, want 1", i, h)
		}
	}
}

func TestFor_MatchesSequentialOutput(t *testing.T) {
	// Disjoint writes per index must produce bit-identical results on
	// both paths.
	n := 500
	run := func(cfg Config) []float64 {
		out := make([]float64, n)
		For(n, func(i int) {
			out[i] = float64(i) * 1.5
		}, cfg)
		return out
	}

	sequential := run(Config{Enabled: false})
	parallel := run(Config{Enabled: true, NumWorkers: 8, MinChunkSize: 16})
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Fatalf("out[%d]: sequential %v, parallel %v", i, sequential[i], parallel[i])
		}
	}
}
