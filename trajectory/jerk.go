package trajectory

// JerkToReachTarget returns the jerk magnitude that, applied over the seven
// segment durations t with the canonical {+,0,-,0,-,0,+} sign pattern,
// carries (p0, v0, a0) to pf given only the segment times (used to rescale a
// profile found for one jMax onto a different one without re-solving).
//
// Mirrors RuckigEquation::jerk_to_reach_target_with_times (ruckig.cpp:534-537).
func JerkToReachTarget(t [7]float64, p0, v0, a0, pf float64) float64 {
	t1, t2, t3, t4, t5, t6, t7 := t[0], t[1], t[2], t[3], t[4], t[5], t[6]
	tSum := t1 + t2 + t3 + t4 + t5 + t6 + t7

	num := -6*p0 + 6*pf - 3*tSum*(a0*tSum+2*v0)
	den := -pow3(t1) + pow3(t3) + pow3(t5) + 3*pow2(t5)*t6 + 3*t5*pow2(t6) +
		3*pow2(t5)*t7 + 6*t5*t6*t7 + 3*t5*pow2(t7) - pow3(t7) +
		3*pow2(t3)*(t4+t5+t6+t7) + 3*t3*pow2(t4+t5+t6+t7) -
		3*pow2(t1)*(t2+t3+t4+t5+t6+t7) - 3*t1*pow2(t2+t3+t4+t5+t6+t7)

	return -(num / den)
}
