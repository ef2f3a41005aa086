package trajectory

// Generate computes the time-optimal, jerk-limited profile carrying a
// single degree of freedom from (p0, v0, a0) to (pf, vf) subject to the
// symmetric bounds vMax, aMax, jMax (all given as positive magnitudes).
//
// It enumerates the eight profile shapes in roughly most-constrained-first
// order, trying the positive-direction solver and then its sign-flipped
// negative-direction counterpart for each, and returns the first profile
// whose forward integration verifies against (pf, vf, vMax, aMax). If no
// variant verifies, it reports failure; the caller may relax bounds or
// reject the request.
//
// Mirrors the trial-and-verify dispatch ruckig.cpp leaves to its caller:
// each of the sixteen RuckigEquation::time_up_*/time_down_* pairs is tried
// until Profile::check passes.
func Generate(p0, v0, a0, pf, vf, vMax, aMax, jMax float64) (Profile, bool) {
	variants := [...]func(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool{
		shapeAcc0Acc1Vel,
		shapeDownAcc0Acc1Vel,
		shapeVel,
		shapeDownVel,
		shapeAcc0Vel,
		shapeDownAcc0Vel,
		shapeAcc1Vel,
		shapeDownAcc1Vel,
		shapeAcc0Acc1,
		shapeDownAcc0Acc1,
		shapeAcc0,
		shapeDownAcc0,
		shapeAcc1,
		shapeDownAcc1,
		shapeNone,
		shapeDownNone,
	}

	for _, solve := range variants {
		var pr Profile
		if solve(&pr, p0, v0, a0, pf, vf, vMax, aMax, jMax) {
			return pr, true
		}
	}
	return Profile{}, false
}

// The shapeDown* adaptors are the negative-direction counterpart of each
// positive-direction solver above. Every one of ruckig.cpp's time_down_*
// functions (ruckig.cpp:502-532) is a one-line call into its time_up_*
// twin with vMax, aMax and jMax negated; nothing else differs, so no
// separate negative-direction algebra exists anywhere in this package.

func shapeDownAcc0Acc1Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc0Acc1Vel(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownVel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeVel(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownAcc0(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc0(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownAcc1(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc1(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownAcc0Acc1(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc0Acc1(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownAcc0Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc0Vel(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownAcc1Vel(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeAcc1Vel(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}

func shapeDownNone(pr *Profile, p0, v0, a0, pf, vf, vMax, aMax, jMax float64) bool {
	return shapeNone(pr, p0, v0, a0, pf, vf, -vMax, -aMax, -jMax)
}
