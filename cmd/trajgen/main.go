// command trajgen solves a single-DOF jerk-limited trajectory from the
// command line and optionally plots it to an SVG file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/boxesandglue/trajgen/plot"
	"github.com/boxesandglue/trajgen/trajectory"
)

var (
	p0   = flag.Float64("p0", 0, "initial position")
	v0   = flag.Float64("v0", 0, "initial velocity")
	a0   = flag.Float64("a0", 0, "initial acceleration")
	pf   = flag.Float64("pf", 1, "target position")
	vf   = flag.Float64("vf", 0, "target velocity")
	vMax = flag.Float64("vmax", 1, "velocity bound")
	aMax = flag.Float64("amax", 1, "acceleration bound")
	jMax = flag.Float64("jmax", 1, "jerk bound")
	svg  = flag.String("svg", "", "write a position/velocity/acceleration chart to this SVG file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	pr, ok := trajectory.Generate(*p0, *v0, *a0, *pf, *vf, *vMax, *aMax, *jMax)
	if !ok {
		return fmt.Errorf("trajgen: no feasible profile for p0=%g v0=%g a0=%g -> pf=%g vf=%g under vmax=%g amax=%g jmax=%g",
			*p0, *v0, *a0, *pf, *vf, *vMax, *aMax, *jMax)
	}

	fmt.Printf("duration: %g\n", pr.Duration())
	fmt.Printf("t: %v\n", pr.T)
	fmt.Printf("j: %v\n", pr.J)
	fmt.Printf("a: %v\n", pr.A)
	fmt.Printf("v: %v\n", pr.V)
	fmt.Printf("p: %v\n", pr.P)

	if *svg == "" {
		return nil
	}
	f, err := os.Create(*svg)
	if err != nil {
		return fmt.Errorf("trajgen: %w", err)
	}
	defer f.Close()

	chart := plot.NewChart()
	if err := chart.WriteSVG(f, &pr); err != nil {
		return fmt.Errorf("trajgen: %w", err)
	}
	return nil
}
