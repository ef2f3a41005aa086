package trajectory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/trajgen/trajectory"
)

// TestJerkToReachTargetMatchesSolvedProfile checks that re-deriving the jerk
// magnitude from a solved profile's own segment times reproduces the jMax
// that produced it.
func TestJerkToReachTargetMatchesSolvedProfile(t *testing.T) {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(t, ok)

	j := trajectory.JerkToReachTarget(pr.T, pr.P[0], pr.V[0], pr.A[0], pr.P[7])
	require.InDelta(t, 1.0, j, 1e-6)
}
