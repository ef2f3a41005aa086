package mp

// Style holds drawing attributes attached to a path.
type Style struct {
	Stroke      Color
	StrokeWidth float64
	Fill        Color
}

// Path is a linked ring of knots. Charts in package plot build Paths whose
// knots all carry explicit, collinear control points (straight polyline
// segments); the general Bezier machinery the teacher built this type for
// lives on only through Knot's control-point fields, which svg.PathToSVG
// still inspects to decide between "L" and "C" segments.
type Path struct {
	Head  *Knot
	Style Style
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// Append adds a knot to the end of the path, keeping the circular linked
// list invariant Knot.Next/Prev rely on.
func (p *Path) Append(k *Knot) {
	if p.Head == nil {
		p.Head = k
		k.Next = k
		k.Prev = k
		return
	}
	tail := p.Head.Prev
	tail.Next = k
	k.Prev = tail
	k.Next = p.Head
	p.Head.Prev = k
}

// Polyline builds an open Path through pts as straight line segments: every
// knot's control points coincide with its own coordinates, which is exactly
// what svg.PathToSVG's collinearity check needs to emit "L" commands instead
// of cubic Beziers.
func Polyline(pts []Point) *Path {
	path := NewPath()
	for i, pt := range pts {
		k := &Knot{
			XCoord: pt.X, YCoord: pt.Y,
			LeftX: pt.X, LeftY: pt.Y,
			RightX: pt.X, RightY: pt.Y,
			LType: KnotExplicit, RType: KnotExplicit,
		}
		if i == len(pts)-1 {
			k.RType = KnotEndpoint
		}
		path.Append(k)
	}
	return path
}
