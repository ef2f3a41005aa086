package trajectory

import "math"

// Small integer-power helpers used throughout the shape solvers, mirroring
// ruckig.cpp's Power(v, int) overload — named rather than spelled out with
// repeated multiplication, the way the dense closed-form formulas below read
// most closely to the source they're ported from.
func pow2(v float64) float64 { return v * v }
func pow3(v float64) float64 { return v * v * v }
func pow4(v float64) float64 { return v * v * v * v }
func pow5(v float64) float64 { return v * v * v * v * v }
func pow6(v float64) float64 { return v * v * v * v * v * v }
func pow7(v float64) float64 { return v * v * v * v * v * v * v }
func pow8(v float64) float64 { return v * v * v * v * v * v * v * v }
func pow12(v float64) float64 { p := pow6(v); return p * p }

// cbrt2 and cbrt4 are 2^(1/3) and 2^(2/3), appearing throughout the quartic
// and acc1_vel solvers (ruckig.cpp's Power(2, 0.333...) / Power(2, 0.666...)).
var (
	cbrt2 = math.Pow(2, 1.0/3.0)
	cbrt4 = math.Pow(2, 2.0/3.0)
)
