package trajectory

// integrate advances a jerk-limited segment of duration t, starting from
// position p0, velocity v0, acceleration a0, under constant jerk j, and
// returns the state at the end of the segment.
//
// Mirrors Profile::integrate (ruckig.cpp:47-52).
func integrate(t, p0, v0, a0, j float64) (p, v, a float64) {
	p = p0 + t*v0 + 0.5*t*t*a0 + (1.0/6.0)*t*t*t*j
	v = v0 + t*a0 + 0.5*t*t*j
	a = a0 + t*j
	return p, v, a
}
