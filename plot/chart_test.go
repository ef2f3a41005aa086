package plot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/trajgen/plot"
	"github.com/boxesandglue/trajgen/trajectory"
)

func TestWriteSVGProducesWellFormedDocument(t *testing.T) {
	pr, ok := trajectory.Generate(0, 0, 0, 1, 0, 1, 1, 1)
	require.True(t, ok)

	var buf strings.Builder
	chart := plot.NewChart()
	require.NoError(t, chart.WriteSVG(&buf, &pr))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<svg"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	require.Contains(t, out, "p(t)")
	require.Contains(t, out, "v(t)")
	require.Contains(t, out, "a(t)")
}

func TestWriteSVGRejectsZeroDurationProfile(t *testing.T) {
	var pr trajectory.Profile
	var buf strings.Builder
	chart := plot.NewChart()
	require.Error(t, chart.WriteSVG(&buf, &pr))
}
