package trajectory_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/trajgen/trajectory"
)

// TestGenerateConcurrentFanOut drives many goroutines through Generate on
// distinct inputs simultaneously. Generate allocates only local state and
// takes no pointer receiver, so this must be race-clean under `go test -race`.
func TestGenerateConcurrentFanOut(t *testing.T) {
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		pf := float64(i%7) + 0.5
		go func(pf float64) {
			defer wg.Done()
			pr, ok := trajectory.Generate(0, 0, 0, pf, 0, 1, 1, 1)
			require.True(t, ok)
			require.InDelta(t, pf, pr.P[7], 5e-7)
		}(pf)
	}
	wg.Wait()
}
