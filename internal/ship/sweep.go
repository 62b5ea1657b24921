package ship

import (
	"runtime"
	"sync"
)

// SweepResult records one seed of a Sweep.
type SweepResult struct {
	Seed   int64
	Census Census
	// Err is the generation failure, or the joined invariant violations of a
	// grid that did generate.
	Err error
}

// Sweep generates cfg once per seed on at most workers goroutines and checks
// every finished grid. Results come back in seed order. workers <= 0 uses
// GOMAXPROCS.
func Sweep(cfg Config, seeds []int64, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]SweepResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			results[i] = sweepOne(cfg, s)
			<-sem
		}(idx, seed)
	}

	wg.Wait()
	return results
}

func sweepOne(cfg Config, seed int64) SweepResult {
	res := SweepResult{Seed: seed}
	cfg.Seed = seed
	g, err := Generate(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	res.Census = CountCells(g.Grid())
	res.Err = CheckInvariants(g.Grid())
	return res
}
