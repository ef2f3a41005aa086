package trajectory

import (
	"math"
	"math/cmplx"
)

// shapeNone solves the "none" shape: no vMax cruise and no aMax plateau on
// either ramp, i.e. the general quartic case for t[0] (and by symmetry
// t[2]==t[4]) with t[1]==t[3]==t[5]==0. Three branches are tried in order,
// from the most degenerate (closed-form cube root) to the fully general
// quartic with four candidate roots.
//
// Mirrors RuckigEquation::time_up_none (ruckig.cpp:268-500).
func shapeNone(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	if math.Abs(v0) < 1e-16 && math.Abs(a0) < 1e-16 && math.Abs(vf) < 1e-16 {
		t0 := math.Cbrt((pf - p0) / (2 * jMax))
		pr.T[0], pr.T[1], pr.T[2], pr.T[3], pr.T[4], pr.T[5], pr.T[6] = t0, 0, t0, 0, t0, 0, t0
		pr.Set(p0, v0, a0, jerkPattern(jMax))
		return pr.Check(pf, vf, vMax, aMax)
	}

	if math.Abs(v0) < 1e-16 && math.Abs(vf) < 1e-16 {
		if shapeNoneRestToRestAcc(pr, p0, v0, a0, pf, vf, vMax, aMax, jMax) {
			return true
		}
	}

	return shapeNoneGeneral(pr, p0, v0, a0, pf, vf, vMax, aMax, jMax)
}

// shapeNoneRestToRestAcc is the v0 == vf == 0 (a0 possibly nonzero) "Solution
// 2" branch: a dedicated real closed form, tried before the general quartic.
//
// Mirrors ruckig.cpp:282-311.
func shapeNoneRestToRestAcc(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	dp := p0 - pf
	h1 := pow3(a0) + 3*pow2(jMax)*dp
	h2 := -pow8(a0) + 192*pow5(a0)*pow2(jMax)*dp + 288*pow2(a0)*pow4(jMax)*pow2(dp)
	h3 := pow2(a0) * jMax * h1
	h4 := 17*pow6(a0) + 48*pow3(a0)*pow2(jMax)*dp + 72*pow4(jMax)*pow2(dp)
	h5 := 3 * (-576*pow2(a0)*pow2(h3) + 96*pow4(a0)*h1*h3*jMax + 3*pow12(a0)*pow2(jMax) + (12*pow6(a0)+16*pow2(h1))*h4*pow2(jMax))
	// Be careful of numerical stability of h6.
	h6 := 648 * pow4(jMax) * (h5 + math.Sqrt(pow2(h5)-3*pow3(h2)*pow4(jMax)))
	h7 := (h2/math.Cbrt(h6) + math.Cbrt(h6)/(108*pow4(jMax))) / pow2(a0)
	h8 := math.Sqrt(-9*h7+(3*pow6(a0)+4*pow2(h1))/(pow4(a0)*pow2(jMax))) / 3
	h9 := (8 * h1 * (-27 + (8*pow2(h1))/pow6(a0))) / (27 * pow3(jMax))
	root := math.Sqrt(36*h7 - (9*h9)/h8 + (8*(3*pow6(a0)+4*pow2(h1)))/(pow4(a0)*pow2(jMax)))
	h10 := (-6*h8 + root + (4*h1)/(pow2(a0)*jMax)) / 12

	pr.T[0] = (-6*h8 + root - (8*a0)/jMax + (12*jMax*dp)/pow2(a0)) / 12
	pr.T[1] = 0
	pr.T[2] = h10
	pr.T[3] = 0
	pr.T[4] = (-12*pow7(a0) + 17*pow6(a0)*h10*jMax + 12*pow5(a0)*pow2(h10)*pow2(jMax) -
		18*pow4(a0)*pow2(jMax)*(pow3(h10)*jMax+2*p0-2*pf) + 48*pow3(a0)*h10*pow3(jMax)*dp +
		36*pow2(a0)*pow2(h10)*pow4(jMax)*dp + 72*h10*pow5(jMax)*pow2(dp)) /
		(-pow6(a0)*jMax + 48*pow3(a0)*pow3(jMax)*dp + 72*pow5(jMax)*pow2(dp))
	pr.T[5] = 0
	pr.T[6] = pr.T[4]

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}

// quarticT4 evaluates the shared closed-form expression for t[4] (and t[6])
// once a real root h of the quartic (t[0]) has been chosen, for any of the
// four candidate solutions.
//
// Mirrors the `profile.t[4] = -(...)/h17` expressions repeated at
// ruckig.cpp:399, 421, 450, 479 (identical polynomial, only the root symbol
// changes between h13..h16).
func quarticT4(h, a0, jMax, p0, pf, v0, vf, h17 float64) float64 {
	dp := p0 - pf
	dv := v0 - vf
	termA := pow7(a0)
	termB := 13 * pow6(a0) * h * jMax
	termC := 72 * pow4(jMax) * (-(h * (jMax*pow2(dp) - pow3(dv))) + pow2(h)*jMax*dp*dv + 2*dp*v0*dv + pow3(h)*jMax*pow2(dv))
	termD := 6 * pow5(a0) * jMax * (7*pow2(h)*jMax + v0 + 3*vf)
	termE := -12 * pow3(a0) * pow2(jMax) * (10*h*jMax*dp - pow2(v0) + pow2(h)*jMax*(13*v0-16*vf) - 2*v0*vf + 3*pow2(vf))
	termF := 6 * pow4(a0) * pow2(jMax) * (3*pow3(h)*jMax - 8*p0 + 8*pf + h*(v0+19*vf))
	termG := -36 * pow2(a0) * pow3(jMax) * (pow2(h)*jMax*dp + 2*(-p0+pf)*v0 + 2*pow3(h)*jMax*dv + h*(3*pow2(v0)+2*v0*vf-3*pow2(vf)))
	termH := -72 * a0 * pow3(jMax) * (pow3(v0) + pow2(v0)*vf - 3*v0*pow2(vf) + pow3(vf) +
		jMax*(pow2(p0)+pow2(pf)+h*pf*(4*v0-2*vf)-2*p0*(pf+2*h*v0-h*vf)+pow2(h)*(-2*pow2(v0)+5*v0*vf-3*pow2(vf))))
	return -((termA + termB + termC + termD + termE + termF + termG + termH) / h17)
}

// quarticT2 evaluates the shared closed-form expression for t[2] given the
// complex combination of h12/h12_a/h12_b specific to each candidate solution
// (ruckig.cpp:397, 419, 448, 477).
func quarticT2(combo complex128, a0, h2, jMax, p0, pf, v0, vf float64) float64 {
	realTerm := -4*pow3(a0) + 6*jMax*jMax*(p0-pf) + 6*a0*(h2+jMax*(v0-2*vf))
	whole := complex(realTerm, 0) + complex(3*jMax, 0)*complex(h2, 0)*combo
	return realPart(whole) / (6 * h2 * jMax)
}

// shapeNoneGeneral is the fully general quartic solve for t[0] (and by
// symmetry t[2]==t[4]): four candidate roots h13_c..h16_c are derived from a
// resolvent cubic, and each is tried in turn (checking the profile it
// produces) until one verifies.
//
// Mirrors ruckig.cpp:313-500.
func shapeNoneGeneral(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	dp := p0 - pf
	h1 := 2*pow3(a0) + 3*pow2(jMax)*(-p0+pf) - 3*a0*jMax*(v0-2*vf)
	h2 := pow2(a0) + 2*jMax*(-v0+vf)
	h3 := pow5(a0) - 24*pow2(a0)*pow2(jMax)*dp + 24*pow3(jMax)*(-p0+pf)*v0 + 4*pow3(a0)*jMax*(v0+3*vf) +
		12*a0*pow2(jMax)*(pow2(v0)+2*v0*vf-pow2(vf))
	h4 := 3*pow4(a0) - 24*a0*pow2(jMax)*dp - 4*pow2(jMax)*pow2(v0-vf) + 4*pow2(a0)*jMax*(v0+5*vf)
	h5 := pow6(a0) - 48*pow3(a0)*pow2(jMax)*dp - 144*a0*pow3(jMax)*dp*v0 + 6*pow4(a0)*jMax*(v0+3*vf) +
		36*pow2(a0)*pow2(jMax)*(pow2(v0)+2*v0*vf-pow2(vf)) - 72*pow3(jMax)*(jMax*pow2(dp)-(v0-vf)*pow2(v0+vf))
	h17 := jMax * (-pow6(a0) + 48*pow3(a0)*pow2(jMax)*dp - 144*a0*pow3(jMax)*dp*v0 + 6*pow4(a0)*jMax*(v0-3*vf) -
		36*pow2(a0)*pow2(jMax)*(pow2(v0)-2*v0*vf-pow2(vf)) + 72*pow3(jMax)*(jMax*pow2(dp)+pow2(v0-vf)*(v0+vf)))
	h6 := -pow8(a0) + 192*pow5(a0)*pow2(jMax)*dp + 8*pow6(a0)*jMax*(v0-5*vf) +
		1152*a0*pow4(jMax)*dp*v0*(v0+vf) - 192*pow3(a0)*pow3(jMax)*dp*(5*v0+2*vf) -
		120*pow4(a0)*pow2(jMax)*(pow2(v0)-2*v0*vf-3*pow2(vf)) +
		96*pow2(a0)*pow3(jMax)*(3*jMax*pow2(dp)+5*pow3(v0)-3*pow2(v0)*vf-15*v0*pow2(vf)+pow3(vf)) -
		48*pow4(jMax)*(12*jMax*pow2(dp)*(v0+vf)+pow2(v0-vf)*(11*pow2(v0)+26*v0*vf+11*pow2(vf)))

	h8 := 4*pow2(h1)/(9*h2) - h4/3
	h9 := -2 * (2*h1/h2*(h8-h4/6) + h3) / (3 * jMax)
	h7 := 3 * (36*h2*pow2(h3) + 16*pow2(h1)*h5 + 3*h4*(pow2(h4)-8*h1*h3-4*h2*h5))

	h10x := h6 * pow2(h6/h7)
	h10 := powc(complex(3*h7, 0)*(complex(1, 0)-sqrtc(1-3*h10x)), 1.0/3.0)
	// Important: numerical stability of h10.
	if math.Abs(pow2(h6/h7)) < 1e-11 {
		base := complex(9*h7/2, 0)
		h10 = powc(complex(h10x, 0), 1.0/3.0)*powc(base, 1.0/3.0) +
			powc(complex(h10x, 0), 4.0/3.0)*powc(base, 1.0/3.0)/4 +
			5*powc(complex(h10x, 0), 7.0/3.0)*powc(base, 1.0/3.0)/16
	}

	h10n := normSq(h10)
	h11 := complex(
		real(h10)/18+(real(h10)*h6)/(6*h10n),
		imag(h10)/18-(imag(h10)*h6)/(6*h10n),
	)

	h11h2 := h11 / complex(h2, 0)
	h8h2 := complex(h8/h2, 0)
	h12 := sqrtcc(h11h2+h8h2) / complex(jMax, 0)

	if cmplx.Abs(h11+complex(h8, 0)) < 1e-3 {
		h12 = sqrtcc(complex(h6, 0)/(complex(6, 0)*h10*complex(h2, 0))+
			complex(pow2(2*h1)/pow2(3*h2), 0)+
			(h10-complex(6*h4, 0))/complex(18*h2, 0)) / complex(jMax, 0)
	}

	h12n := normSq(h12)
	h9h12Real := (real(h12) * h9) / (h12n * h2)
	h9h12Imag := (-imag(h12) * h9) / (h12n * h2)

	h12a := sqrtcc(complex(-real(h11h2), -imag(h11h2))+complex(2*h8/h2, 0)+complex(h9h12Real, h9h12Imag)) / complex(jMax, 0)
	h12b := sqrtcc(complex(-real(h11h2), -imag(h11h2))+complex(2*h8/h2, 0)-complex(h9h12Real, h9h12Imag)) / complex(jMax, 0)

	base := complex(h1/(3*h2*jMax), 0)
	h13c := (h12-h12a)/2 - base
	h14c := (h12+h12a)/2 - base
	h15c := (-h12+h12b)/2 - base
	h16c := (-h12-h12b)/2 - base

	// Solution 3
	if real(h13c) > 0 && isReal(h13c) {
		h13 := cmplx.Abs(h13c)
		if tryQuarticRoot(pr, h13, h12-h12a, p0, v0, a0, pf, vf, vMax, aMax, jMax, h2, h17) {
			return true
		}
	}
	// Solution 4
	if real(h14c) > 0 && isReal(h14c) {
		h14 := cmplx.Abs(h14c)
		if tryQuarticRoot(pr, h14, h12+h12a, p0, v0, a0, pf, vf, vMax, aMax, jMax, h2, h17) {
			return true
		}
	}
	// Solution 2
	if real(h15c) > 0 && isReal(h15c) {
		h15 := real(h15c)
		if tryQuarticRoot(pr, h15, -h12+h12b, p0, v0, a0, pf, vf, vMax, aMax, jMax, h2, h17) {
			return true
		}
	}
	// Solution 1
	if real(h16c) > 0 && isReal(h16c) {
		h16 := real(h16c)
		if tryQuarticRoot(pr, h16, -h12-h12b, p0, v0, a0, pf, vf, vMax, aMax, jMax, h2, h17) {
			return true
		}
	}
	return false
}

// tryQuarticRoot builds and checks the profile for one accepted candidate
// root of the quartic, mirroring the repeated block following each
// `if (h*_c.real() > 0.0 ...)` in ruckig.cpp:392-498.
func tryQuarticRoot(pr *Profile, h float64, combo complex128, p0, v0, a0, pf, vf, vMax, aMax, jMax, h2, h17 float64) bool {
	pr.T[0] = h
	pr.T[1] = 0
	pr.T[2] = quarticT2(combo, a0, h2, jMax, p0, pf, v0, vf)
	pr.T[3] = 0
	pr.T[4] = quarticT4(h, a0, jMax, p0, pf, v0, vf, h17)
	pr.T[5] = 0
	pr.T[6] = pr.T[4]

	// Set average as only the sum of t[2] and t[4] needs to be positive.
	pr.T[2] = (pr.T[2] + pr.T[4]) / 2
	pr.T[4] = pr.T[2]

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}
