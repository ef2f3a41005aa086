package trajectory

import "math"

// shapeAcc0Acc1Vel solves the full seven-segment shape (both acceleration
// ramps present and a cruise at vMax) for the positive direction.
//
// Mirrors RuckigEquation::time_up_acc0_acc1_vel (ruckig.cpp:86-105).
func shapeAcc0Acc1Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	pr.T[0] = (-a0 + aMax) / jMax
	pr.T[1] = (pow2(a0) - 2*pow2(aMax) - 2*jMax*v0 + 2*jMax*vMax) / (2 * aMax * jMax)
	pr.T[2] = aMax / jMax
	pr.T[3] = (3*pow4(a0) - 8*pow3(a0)*aMax + 24*a0*aMax*jMax*v0 + 6*pow2(a0)*(pow2(aMax)-2*jMax*v0) -
		12*jMax*(2*aMax*jMax*(p0-pf)+pow2(aMax)*(v0+vf+2*vMax)-jMax*(pow2(v0)+pow2(vf)-2*pow2(vMax)))) /
		(24 * aMax * pow2(jMax) * vMax)
	pr.T[4] = aMax / jMax
	pr.T[5] = (-(pow2(aMax)/jMax) - vf + vMax) / aMax
	pr.T[6] = aMax / jMax

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}

// shapeVel solves the shape with both acceleration plateaus (T[1] at aMax,
// T[5] at -aMax) but no vMax cruise: T[3] is 0 and the two plateau
// durations are the free unknowns.
//
// Mirrors RuckigEquation::time_up_vel (ruckig.cpp:107-126).
func shapeVel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	root := math.Sqrt(6) * math.Sqrt(pow2(aMax)*pow2(jMax)*(3*pow4(a0)-8*pow3(a0)*aMax+24*a0*aMax*jMax*v0+
		6*pow2(a0)*(pow2(aMax)-2*jMax*v0)+
		6*(pow4(aMax)+4*aMax*pow2(jMax)*(-p0+pf)-2*pow2(aMax)*jMax*(v0+vf)+2*pow2(jMax)*(pow2(v0)+pow2(vf)))))

	pr.T[0] = (-a0 + aMax) / jMax
	pr.T[1] = (6*pow2(a0)*aMax*jMax - 18*pow3(aMax)*jMax - 12*aMax*pow2(jMax)*v0 + root) / (12 * pow2(aMax) * pow2(jMax))
	pr.T[2] = aMax / jMax
	pr.T[3] = 0
	pr.T[4] = aMax / jMax
	pr.T[5] = (-18*pow3(aMax)*jMax - 12*aMax*pow2(jMax)*vf + root) / (12 * pow2(aMax) * pow2(jMax))
	pr.T[6] = aMax / jMax

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}

// shapeAcc1Vel solves the shape whose first ramp reaches aMax and holds it
// (T[1]), with no vMax cruise (T[3] is 0) and a second ramp that peaks below
// aMax (T[5] is 0). Degenerates into two complex-root candidate branches
// when vf is essentially zero.
//
// Mirrors RuckigEquation::time_up_acc1_vel (ruckig.cpp:208-266).
func shapeAcc1Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	if math.Abs(vf) < 1e-16 {
		disc := sqrtcc(complex(-3*pow4(a0)+8*pow3(a0)*aMax-24*a0*aMax*jMax*v0-6*pow2(a0)*(pow2(aMax)-2*jMax*v0)+
			12*jMax*(2*aMax*jMax*(p0-pf)+pow2(aMax)*v0-jMax*pow2(v0)), 0))
		i3 := complex(0, 1) * complex(math.Sqrt(3), 0)
		sqrtTerm := sqrtcc(complex(9*pow2(aMax), 0) - complex(0, 6)*complex(math.Sqrt(3), 0)*disc)

		// Solution 2
		{
			pr.T[0] = (-a0 + aMax) / jMax
			pr.T[1] = realPart(-(complex(-3*pow2(a0)+3*pow2(aMax)+6*jMax*v0, 0) - i3*disc + complex(aMax, 0)*sqrtTerm)) / (6 * aMax * jMax)
			pr.T[2] = aMax / jMax
			pr.T[3] = 0
			pr.T[4] = realPart(complex(-3*aMax, 0)+sqrtTerm) / (6 * jMax)
			pr.T[5] = 0
			pr.T[6] = pr.T[4]

			pr.Set(p0, v0, a0, jerkPattern(jMax))
			if pr.Check(pf, vf, vMax, aMax) {
				return true
			}
		}

		// Solution 1
		{
			pr.T[0] = (-a0 + aMax) / jMax
			pr.T[1] = realPart(complex(3*pow2(a0)-3*pow2(aMax)-6*jMax*v0, 0)-i3*disc+complex(aMax, 0)*sqrtTerm) / (6 * aMax * jMax)
			pr.T[2] = aMax / jMax
			pr.T[3] = 0
			pr.T[4] = -realPart(complex(3*aMax, 0)+sqrtTerm) / (6 * jMax)
			pr.T[5] = 0
			pr.T[6] = pr.T[4]

			pr.Set(p0, v0, a0, jerkPattern(jMax))
			if pr.Check(pf, vf, vMax, aMax) {
				return true
			}
		}

		return false
	}

	h1 := pow2(aMax) + 2*jMax*vf
	h2 := 3*pow4(a0) - 8*pow3(a0)*aMax + 24*a0*aMax*jMax*v0 + 6*pow2(a0)*(pow2(aMax)-2*jMax*v0) -
		12*jMax*(2*aMax*jMax*(p0-pf)+pow2(aMax)*(v0+vf)+jMax*(-pow2(v0)+pow2(vf)))
	h3 := pow4(jMax) * (-3*pow4(a0) + 8*pow3(a0)*aMax + pow4(aMax) + 24*aMax*pow2(jMax)*(p0-pf) -
		24*a0*aMax*jMax*v0 - 6*pow2(a0)*(pow2(aMax)-2*jMax*v0) + 4*pow2(aMax)*jMax*(3*v0-2*vf) +
		4*pow2(jMax)*(-3*pow2(v0)+4*pow2(vf)))
	h4 := 1728 * pow6(jMax) * (-2*pow3(h1) - 6*h1*(h2-12*pow2(aMax)*jMax*vf) + 9*pow2(aMax)*(h2-48*pow2(jMax)*pow2(vf)))
	h5 := math.Pow(h4+math.Sqrt(-11943936*pow3(h3)+pow2(h4)), 1.0/3.0)
	h6 := math.Sqrt((-4*cbrt2*h3)/(h5*pow4(jMax)) - h5/(36*cbrt2*pow4(jMax)) + pow2(aMax)/pow2(jMax) - (2*h1)/(3*pow2(jMax)))
	h7 := math.Sqrt((288*cbrt2*h3*h6+h5*(cbrt4*h5*h6+48*jMax*(3*pow3(aMax)-3*aMax*h1+3*pow2(aMax)*h6*jMax-2*h1*h6*jMax+12*aMax*jMax*vf)))/
		(h5*h6*pow4(jMax))) / (6 * math.Sqrt(2))

	pr.T[0] = (-a0 + aMax) / jMax
	pr.T[1] = -(-pow2(a0) + pow2(aMax) + jMax*(h6*h7*jMax+2*v0) + aMax*(-(h6*jMax)+h7*jMax-(2*vf)/h6)) / (2 * aMax * jMax)
	pr.T[2] = aMax / jMax
	pr.T[3] = 0
	pr.T[4] = -(aMax + h6*jMax - h7*jMax) / (2 * jMax)
	pr.T[5] = 0
	pr.T[6] = -(aMax + h6*jMax - h7*jMax) / (2 * jMax)

	pr.T[2] = (pr.T[2] + pr.T[4]) / 2
	pr.T[4] = pr.T[2]

	pr.Set(p0, v0, a0, jerkPattern(jMax))
	return pr.Check(pf, vf, vMax, aMax)
}
