// Package parallel provides a deterministic fork-join helper for the dense
// math kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a loop is split across goroutines.
type Config struct {
	Enabled      bool // Whether to fan out at all
	NumWorkers   int  // Number of worker goroutines to use
	MinChunkSize int  // Minimum iterations per goroutine
}

// DefaultConfig sizes the pool to the CPU count. The chunk floor keeps
// small workloads on the sequential path where goroutine overhead
// dominates; matrix-row callers amortize it quickly since every iteration
// is a full row of multiply-adds.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 32,
	}
}

// For executes f(i) for every i in [0, n), splitting the range across
// goroutines when worthwhile. Each index runs exactly once on exactly one
// goroutine, so callers that write disjoint output per index get
// bit-identical results to the sequential path.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || n < cfg.MinChunkSize {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
