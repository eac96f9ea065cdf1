// Package parallel splits read-only evaluation work over a history into
// chunks run on separate goroutines.
//
// Training is strictly sequential; only work that does not change a model,
// such as computing the cost of every event, may be run here.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum events per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 256,
	}
}

// chunks returns the [start, end) ranges n is split into. A single range
// means sequential execution.
func (cfg Config) chunks(n int) [][2]int {
	if n <= 0 {
		return nil
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		return [][2]int{{0, n}}
	}

	size := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)
	ranges := make([][2]int, 0, (n+size-1)/size)
	for start := 0; start < n; start += size {
		ranges = append(ranges, [2]int{start, min(start+size, n)})
	}
	return ranges
}

// For executes f(i) for i in [0, n), in chunks on separate goroutines when
// cfg allows it.
func For(n int, f func(i int), cfg Config) {
	ranges := cfg.chunks(n)
	if len(ranges) == 1 {
		for i := range n {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	for _, r := range ranges {
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(r[0], r[1])
	}
	wg.Wait()
}

// Sum returns f(0) + ... + f(n-1).
//
// Each chunk is summed in index order and the partial sums are added in
// chunk order, so the result only depends on n and cfg, not on goroutine
// scheduling.
func Sum(n int, f func(i int) float64, cfg Config) float64 {
	ranges := cfg.chunks(n)
	partial := make([]float64, len(ranges))

	For(len(ranges), func(k int) {
		var s float64
		for i := ranges[k][0]; i < ranges[k][1]; i++ {
			s += f(i)
		}
		partial[k] = s
	}, Config{Enabled: len(ranges) > 1, NumWorkers: len(ranges), MinChunkSize: 1})

	var total float64
	for _, s := range partial {
		total += s
	}
	return total
}
