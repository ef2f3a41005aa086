package trajectory

import "math"

// shapeAcc0 solves the shape whose first ramp peaks below aMax (T[1] is 0),
// followed by a cruise at vMax (T[3]) and a second ramp that holds -aMax
// (T[5]).
//
// Mirrors RuckigEquation::time_up_acc0 (ruckig.cpp:128-139).
func shapeAcc0(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	root := math.Sqrt(2) * math.Sqrt(pow2(a0)+2*jMax*(-v0+vMax)) * math.Abs(jMax)

	pr.T[0] = (-2*a0*jMax + root) / (2 * pow2(jMax))
	pr.T[1] = 0
	pr.T[2] = (math.Sqrt(pow2(a0)/2+jMax*(-v0+vMax)) * math.Abs(jMax)) / pow2(jMax)
	pr.T[3] = (-2*jMax*(2*pow3(a0)*aMax-6*a0*aMax*jMax*v0+3*jMax*(2*aMax*jMax*(p0-pf)+pow2(aMax)*(vf+vMax)+jMax*(-pow2(vf)+pow2(vMax)))) +
		3*math.Sqrt(2)*aMax*math.Sqrt(pow2(a0)+2*jMax*(-v0+vMax))*(pow2(a0)-2*jMax*(v0+vMax))*math.Abs(jMax)) /
		(12 * aMax * pow3(jMax) * vMax)
	pr.T[4] = aMax / jMax
	pr.T[5] = (-(pow2(aMax)/jMax) - vf + vMax) / aMax
	pr.T[6] = aMax / jMax

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}

// shapeAcc1 solves the shape whose first ramp reaches aMax and holds it
// (T[1]), followed by a cruise at vMax (T[3]) and a second ramp that peaks
// below aMax (T[5] is 0).
//
// Mirrors RuckigEquation::time_up_acc1 (ruckig.cpp:141-160).
func shapeAcc1(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	pr.T[0] = (-a0 + aMax) / jMax
	pr.T[1] = (pow2(a0) - 2*pow2(aMax) - 2*jMax*v0 + 2*jMax*vMax) / (2 * aMax * jMax)
	pr.T[2] = aMax / jMax
	realNum3 := 3*pow4(a0) - 8*pow3(a0)*aMax + 24*a0*aMax*jMax*v0 + 6*pow2(a0)*(pow2(aMax)-2*jMax*v0) -
		12*jMax*(pow2(aMax)*(v0+vMax)+jMax*(-pow2(v0)+pow2(vMax))+2*aMax*jMax*(p0-pf))
	complexTerm3 := complex(-24*aMax*jMax, 0) * sqrtc(jMax) * sqrtc(-vf+vMax) * complex(vf+vMax, 0)
	pr.T[3] = realPart((complex(realNum3, 0) + complexTerm3) / complex(24*aMax*pow2(jMax)*vMax, 0))
	pr.T[4] = realPart(sqrtc(-vf+vMax) / sqrtc(jMax))
	pr.T[5] = 0
	pr.T[6] = realPart(sqrtc(-vf+vMax) / sqrtc(jMax))

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}

// shapeAcc0Acc1 solves the shape in which neither ramp reaches aMax (T[1] and
// T[5] are 0) and the velocity cruises at vMax in between (T[3]).
//
// Mirrors RuckigEquation::time_up_acc0_acc1 (ruckig.cpp:162-181).
func shapeAcc0Acc1(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	sqrtA := sqrtc(pow2(a0) + 2*jMax*(-v0+vMax))

	pr.T[0] = realPart((complex(-2*a0*jMax, 0) + complex(math.Sqrt(2), 0)*sqrtA*complex(math.Abs(jMax), 0)) / complex(2*pow2(jMax), 0))
	pr.T[1] = 0
	pr.T[2] = realPart(sqrtc(pow2(a0)/2+jMax*(-v0+vMax))*complex(math.Abs(jMax), 0)) / pow2(jMax)
	pr.T[3] = realPart((complex(-4*jMax, 0)*(complex(pow3(a0)+3*pow2(jMax)*(p0-pf)-3*a0*jMax*v0, 0)+
		complex(3*jMax, 0)*sqrtc(jMax)*sqrtc(-vf+vMax)*complex(vf+vMax, 0)) +
		complex(3*math.Sqrt(2), 0)*sqrtA*complex(pow2(a0)-2*jMax*(v0+vMax), 0)*complex(math.Abs(jMax), 0)) /
		complex(12*pow3(jMax)*vMax, 0))
	pr.T[4] = realPart(sqrtc(-vf+vMax) / sqrtc(jMax))
	pr.T[5] = 0
	pr.T[6] = realPart(sqrtc(-vf+vMax) / sqrtc(jMax))

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}
