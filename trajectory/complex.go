package trajectory

import "math/cmplx"

// realTol bounds how far a complex intermediate's imaginary part may stray
// from zero before it is no longer accepted as "essentially real" (ruckig.cpp
// solutions always project .real() after a sqrt/pow chain that is real-valued
// for physically reachable targets; residual imaginary parts are floating
// point noise from the complex path).
const realTol = 1e-8

// sqrtc takes the principal complex square root of a real value, mirroring
// ruckig.cpp's SqrtComplex(double) overload (std::sqrt(std::complex<double>(v,0))).
func sqrtc(v float64) complex128 {
	return cmplx.Sqrt(complex(v, 0))
}

// sqrtcc is ruckig.cpp's SqrtComplex(std::complex<double>) overload.
func sqrtcc(v complex128) complex128 {
	return cmplx.Sqrt(v)
}

// powc is ruckig.cpp's PowerComplex(std::complex<double>, double).
func powc(v complex128, e float64) complex128 {
	return cmplx.Pow(v, complex(e, 0))
}

// realPart is ruckig.cpp's repeated `(...).real()` projection.
func realPart(v complex128) float64 {
	return real(v)
}

// isReal reports whether v's imaginary part is within realTol of zero, the
// test ruckig.cpp applies before accepting a complex root as a candidate
// segment duration (e.g. h13_c.imag() in time_up_none's Solution 3..4).
func isReal(v complex128) bool {
	return imagAbs(v) < realTol
}

func imagAbs(v complex128) float64 {
	im := imag(v)
	if im < 0 {
		return -im
	}
	return im
}

// normSq is C++'s std::norm: the squared magnitude of a complex number,
// cheaper than cmplx.Abs(v)*cmplx.Abs(v) and exactly what ruckig.cpp's h11
// computation divides by (ruckig.cpp:342).
func normSq(v complex128) float64 {
	re, im := real(v), imag(v)
	return re*re + im*im
}
