package trajectory

import "math"

// shapeAcc0Vel solves the shape in which only the second ramp reaches its
// bound and holds -aMax (T[5]); the first ramp peaks below aMax (T[1] is 0)
// and there is no vMax cruise (T[3] is 0).
//
// Mirrors RuckigEquation::time_up_acc0_vel (ruckig.cpp:183-206).
func shapeAcc0Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	h1 := 5*pow2(a0) + 6*a0*aMax + pow2(aMax) + 2*jMax*v0
	h2 := 2*a0 + aMax
	h3 := 3*pow4(a0) + 8*pow3(a0)*aMax + 24*a0*aMax*jMax*v0 + 6*pow2(a0)*(pow2(aMax)+2*jMax*v0) +
		12*jMax*(2*aMax*jMax*(p0-pf)+pow2(aMax)*(v0+vf)+jMax*(pow2(v0)-pow2(vf)))
	h4 := (a0 + aMax) * (pow2(a0) + a0*aMax + 2*jMax*v0)
	h5 := 4*pow4(a0) + 8*pow3(a0)*aMax + pow4(aMax) + 24*aMax*pow2(jMax)*(p0-pf) - 24*a0*aMax*jMax*v0 +
		4*pow2(a0)*(pow2(aMax)-4*jMax*v0) + pow2(aMax)*jMax*(-8*v0+12*vf) + 4*pow2(jMax)*(4*pow2(v0)-3*pow2(vf))
	h6 := 1728 * (2*pow3(h1) - 6*h1*(h3+6*h2*h4) + 9*(pow2(h2)*h3+12*pow2(h4))) * pow6(jMax)
	h7 := math.Pow(h6+math.Sqrt(pow2(h6)-11943936*pow3(h5)*pow12(jMax)), 1.0/3.0)
	h8 := math.Sqrt((4*cbrt2*h5)/h7 + (cbrt4*h7+24*(-2*h1+3*pow2(h2))*pow2(jMax))/(72*pow4(jMax)))

	h9 := math.Sqrt((-576*cbrt2*h5)/h7 - (2*cbrt4*h7)/pow4(jMax) -
		(96*(h1*(3*h2+2*h8*jMax)-3*(pow3(h2)+2*h4+pow2(h2)*h8*jMax)))/(h8*pow3(jMax)))

	pr.T[0] = -h2/(2*jMax) + (-12*h8+h9)/24
	pr.T[1] = 0
	pr.T[2] = -aMax/(2*jMax) + (-12*h8+h9)/24
	pr.T[3] = 0
	pr.T[4] = aMax / jMax
	pr.T[5] = -(12*pow2(a0)*aMax + jMax*(12*pow2(aMax)*h8+aMax*(-12*pow2(h8)*jMax+h8*jMax*h9-24*v0)+h8*jMax*(h8*jMax*h9+24*vf))) /
		(24 * aMax * h8 * pow2(jMax))
	pr.T[6] = aMax / jMax

	pr.T[2] = (pr.T[2] + pr.T[4]) / 2
	pr.T[4] = pr.T[2]

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}
