package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/boxesandglue/trajgen/trajectory"
)

// ProfileSuite exercises Generate's documented invariants and boundary
// scenarios against known closed-form and symmetry properties.
type ProfileSuite struct {
	suite.Suite
}

func (s *ProfileSuite) TestRestToRestUnitDisplacement() {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 2.0, pr.Duration(), 1e-6)
	require.InDelta(s.T(), pr.T[0], pr.T[2], 1e-9)
	require.InDelta(s.T(), pr.T[2], pr.T[4], 1e-9)
	require.InDelta(s.T(), pr.T[4], pr.T[6], 1e-9)
	require.Greater(s.T(), pr.T[3], 0.0)
}

func (s *ProfileSuite) TestRestToRestPureJerk() {
	pr, ok := trajectory.Generate(0, 0, 0, 0.1, 0, 10, 10, 1)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 0, pr.T[1], 1e-9)
	require.InDelta(s.T(), 0, pr.T[3], 1e-9)
	require.InDelta(s.T(), 0, pr.T[5], 1e-9)

	want := math.Cbrt(0.05)
	require.InDelta(s.T(), want, pr.T[0], 1e-6)
	require.InDelta(s.T(), want, pr.T[2], 1e-6)
	require.InDelta(s.T(), want, pr.T[4], 1e-6)
	require.InDelta(s.T(), want, pr.T[6], 1e-6)
}

func (s *ProfileSuite) TestNegativeDirectionMirrorsPositive() {
	up, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)

	down, ok := trajectory.Generate(0, 0, 0, -1, 0, 1, 1, 1)
	require.True(s.T(), ok)

	require.InDelta(s.T(), up.Duration(), down.Duration(), 1e-6)
	for i := range up.P {
		require.InDelta(s.T(), -up.P[i], down.P[i], 1e-6)
	}
	for i := range up.V {
		require.InDelta(s.T(), -up.V[i], down.V[i], 1e-6)
	}
}

func (s *ProfileSuite) TestInitialVelocityAboveBound() {
	pr, ok := trajectory.Generate(0, 2, 0, 5, 0, 1, 1, 1)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 5, pr.P[7], 5e-7)
	require.InDelta(s.T(), 0, pr.V[7], 5e-8)
}

func (s *ProfileSuite) TestInitialAcceleration() {
	pr, ok := trajectory.Generate(0, 0, 0.5, 1, 0, 2, 1, 2)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 1, pr.P[7], 5e-7)
	require.InDelta(s.T(), 0, pr.V[7], 5e-8)
}

func (s *ProfileSuite) TestZeroFinalVelocityAcc1VelBranch() {
	pr, ok := trajectory.Generate(0, 0.3, 0, 0.8, 0, 1, 1, 1)
	require.True(s.T(), ok)
	require.InDelta(s.T(), 0.8, pr.P[7], 5e-7)
	require.InDelta(s.T(), 0, pr.V[7], 5e-8)
}

func (s *ProfileSuite) TestForwardIntegrationReachesTarget() {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)
	p, v, _ := pr.At(pr.Duration())
	require.InDelta(s.T(), 1, p, 5e-7)
	require.InDelta(s.T(), 0, v, 5e-8)
}

func (s *ProfileSuite) TestIntegratorExactnessOnAcceleration() {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)
	for i := 0; i < 7; i++ {
		require.InDelta(s.T(), pr.A[i]+pr.T[i]*pr.J[i], pr.A[i+1], 1e-9)
	}
}

func (s *ProfileSuite) TestResetChangesEndpointUnlessScaleIsOne() {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)

	original := pr
	original.Reset(0, 0, 0, 1)
	require.True(s.T(), original.Check(1, 0, 1, 1))

	rescaled := pr
	rescaled.Reset(0, 0, 0, 2)
	require.False(s.T(), rescaled.Check(1, 0, 1, 1))
}

func (s *ProfileSuite) TestTimeOptimalityLowerBound() {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(s.T(), ok)

	vf, v0, aMax := 0.0, 0.0, 1.0
	require.GreaterOrEqual(s.T(), pr.Duration(), math.Abs(vf-v0)/aMax-1e-9)
	if pr.T[1] > 0 {
		require.GreaterOrEqual(s.T(), pr.Duration(), 2*aMax/1.0-1e-6)
	}
}

func (s *ProfileSuite) TestNoFeasibleShapeReportsFailure() {
	_, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 0)
	require.False(s.T(), ok)
}

func TestProfileSuite(t *testing.T) {
	suite.Run(t, new(ProfileSuite))
}
