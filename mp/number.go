package mp

// Number aliases float64. Kept as a distinct name, the way knot and path
// coordinates are named throughout this package, rather than spelling
// float64 everywhere.
type Number = float64
