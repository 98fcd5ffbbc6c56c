package physics

import (
	"sync"

	"github.com/san-kum/unisim/internal/body"
)

// Below this population the goroutine overhead outweighs the pass itself.
const parallelThreshold = 64

// accumulateParallel partitions bodies across workers. Each worker owns a
// contiguous range and sums the full force on each of its bodies from the
// pre-step position snapshot, so no body's force is written by more than
// one goroutine and the result is independent of scheduling. The summation
// order per body is fixed (all partners in index order), which keeps the
// output deterministic even though it differs from the sequential
// pair-at-a-time pass only in floating-point association.
func (e *Engine) accumulateParallel(bodies []*body.Body) {
	n := len(bodies)
	workers := e.Workers
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				for j := 0; j < n; j++ {
					if i == j {
						continue
					}
					if f, ok := e.pairForce(bodies[i], bodies[j]); ok {
						bodies[i].AddForce(f)
					}
				}
			}
		}(lo, hi)
	}
	wg.Wait()
}
