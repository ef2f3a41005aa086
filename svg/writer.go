package svg

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/boxesandglue/trajgen/mp"
)

// PathToSVG converts an mp.Path into an SVG path string. Each knot pair is
// emitted as a line ("L") when its control points are collinear with the
// segment endpoints, or as a cubic ("C") otherwise — mp.Polyline always
// produces the former, but the check is kept general for any mp.Path caller
// supplies with real control points.
func PathToSVG(path *mp.Path) string {
	if path == nil || path.Head == nil {
		return ""
	}
	var b strings.Builder
	h := path.Head
	fmt.Fprintf(&b, "M %.3f %.3f", h.XCoord, h.YCoord)
	p := h
	isClosed := false
	for {
		q := p.Next
		isLine := (p.RightX == p.XCoord && p.RightY == p.YCoord &&
			q.LeftX == q.XCoord && q.LeftY == q.YCoord)
		if !isLine {
			dx := q.XCoord - p.XCoord
			dy := q.YCoord - p.YCoord
			cross1 := (p.RightX-p.XCoord)*dy - (p.RightY-p.YCoord)*dx
			cross2 := (q.LeftX-p.XCoord)*dy - (q.LeftY-p.YCoord)*dx
			const eps = 1e-6
			if cross1 > -eps && cross1 < eps && cross2 > -eps && cross2 < eps {
				isLine = true
			}
		}
		if isLine {
			fmt.Fprintf(&b, " L %.3f %.3f", q.XCoord, q.YCoord)
		} else {
			fmt.Fprintf(&b, " C %.3f %.3f %.3f %.3f %.3f %.3f",
				p.RightX, p.RightY,
				q.LeftX, q.LeftY,
				q.XCoord, q.YCoord)
		}
		p = q
		if p.RType == mp.KnotEndpoint {
			break
		}
		if p == h {
			isClosed = true
			break
		}
	}
	if isClosed {
		b.WriteString("Z")
	}
	return b.String()
}

// pathBBox computes the bounding box of a path's knot coordinates. Every path
// this package draws is a straight polyline (mp.Polyline), so the knots
// themselves bound the curve; no cubic-extrema search is needed.
func pathBBox(p *mp.Path) (minX, minY, maxX, maxY float64) {
	if p == nil || p.Head == nil {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	k := p.Head
	for {
		if k.XCoord < minX {
			minX = k.XCoord
		}
		if k.XCoord > maxX {
			maxX = k.XCoord
		}
		if k.YCoord < minY {
			minY = k.YCoord
		}
		if k.YCoord > maxY {
			maxY = k.YCoord
		}
		next := k.Next
		if next == nil || k.RType == mp.KnotEndpoint || next == p.Head {
			break
		}
		k = next
	}
	return minX, minY, maxX, maxY
}

// Builder is a small SVG writer for rendering trajectory charts: a handful
// of polylines plus text labels, fit to an automatically computed viewBox.
type Builder struct {
	width, height float64
	paths         []*mp.Path
	labels        []*mp.Label
	bg            string
	viewBox       string
	viewBoxSet    bool
	stroke        mp.Color
	fill          mp.Color
	strokeWidth   float64
	padding       float64
	autoSize      bool
}

// NewBuilder constructs a Builder. Called without dimensions, it enables
// auto sizing based on the computed viewBox (see FitViewBoxToPaths).
func NewBuilder(dim ...float64) *Builder {
	var w, h float64
	if len(dim) >= 2 {
		w, h = dim[0], dim[1]
	}
	return &Builder{
		width:       w,
		height:      h,
		stroke:      mp.ColorCSS("black"),
		fill:        mp.ColorCSS("none"),
		strokeWidth: 1,
		autoSize:    len(dim) == 0,
	}
}

// Padding sets the default padding applied by FitViewBoxToPaths.
func (s *Builder) Padding(p float64) *Builder {
	s.padding = p
	return s
}

// SetBackground sets a solid background fill color for the whole canvas.
func (s *Builder) SetBackground(color string) *Builder {
	s.bg = color
	return s
}

// WithColor sets the default stroke color used by paths without their own Style.Stroke.
func (s *Builder) WithColor(c mp.Color) *Builder {
	s.stroke = c
	return s
}

// FitViewBoxToPaths computes a tight bounding box over the given paths,
// plus padding and half the widest stroke, and applies it as the viewBox.
func (s *Builder) FitViewBoxToPaths(paths ...*mp.Path) *Builder {
	s.viewBoxSet = true
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	maxStroke := s.strokeWidth
	for _, p := range paths {
		if p == nil || p.Head == nil {
			continue
		}
		if p.Style.StrokeWidth > maxStroke {
			maxStroke = p.Style.StrokeWidth
		}
		lminX, lminY, lmaxX, lmaxY := pathBBox(p)
		if lminX < minx {
			minx = lminX
		}
		if lminY < miny {
			miny = lminY
		}
		if lmaxX > maxx {
			maxx = lmaxX
		}
		if lmaxY > maxy {
			maxy = lmaxY
		}
	}
	for _, l := range s.labels {
		if l == nil {
			continue
		}
		if l.Position.X < minx {
			minx = l.Position.X
		}
		if l.Position.X > maxx {
			maxx = l.Position.X
		}
		if l.Position.Y < miny {
			miny = l.Position.Y
		}
		if l.Position.Y > maxy {
			maxy = l.Position.Y
		}
	}
	if math.IsInf(minx, 1) {
		return s
	}
	pad := s.padding + maxStroke/2
	w := maxx - minx + 2*pad
	h := maxy - miny + 2*pad
	s.viewBox = fmt.Sprintf("%g %g %g %g", minx-pad, miny-pad, w, h)
	if s.autoSize {
		s.width = w
		s.height = h
	}
	return s
}

// AddPathFromPath stores p for rendering, using its own Style if the caller
// set one, falling back to the builder defaults at write time.
func (s *Builder) AddPathFromPath(p *mp.Path) *Builder {
	if p == nil {
		return s
	}
	s.paths = append(s.paths, p)
	return s
}

// AddLabel adds a text label to the SVG output.
func (s *Builder) AddLabel(label *mp.Label) *Builder {
	if label != nil {
		s.labels = append(s.labels, label)
	}
	return s
}

// WriteTo writes the accumulated paths and labels as a complete SVG document.
func (s *Builder) WriteTo(w io.Writer) error {
	if !s.viewBoxSet && (len(s.paths) > 0 || len(s.labels) > 0) {
		s.FitViewBoxToPaths(s.paths...)
	}
	vb := s.viewBox
	if vb == "" {
		vb = fmt.Sprintf("0 0 %g %g", s.width, s.height)
	}
	if s.autoSize {
		if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s">`, vb); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="%s">`, s.width, s.height, vb); err != nil {
		return err
	}
	if s.bg != "" {
		if _, err := fmt.Fprintf(w, `<rect x="0" y="0" width="100%%" height="100%%" fill="%s"/>`, s.bg); err != nil {
			return err
		}
	}
	for _, p := range s.paths {
		if err := s.writePathElement(w, p); err != nil {
			return err
		}
	}
	for _, label := range s.labels {
		if err := s.writeLabelElement(w, label); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}

func (s *Builder) writePathElement(w io.Writer, p *mp.Path) error {
	pathData := PathToSVG(p)
	fill := s.fill
	color := s.stroke
	if p.Style.Fill.CSS() != "" {
		fill = p.Style.Fill
	}
	if p.Style.Stroke.CSS() != "" {
		color = p.Style.Stroke
	}
	width := s.strokeWidth
	if p.Style.StrokeWidth > 0 {
		width = p.Style.StrokeWidth
	}
	if color.CSS() == "none" {
		_, err := fmt.Fprintf(w, `<path d="%s" fill="%s" stroke="none"/>`, pathData, fill.CSS())
		return err
	}
	_, err := fmt.Fprintf(w, `<path d="%s" fill="%s" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"/>`,
		pathData, fill.CSS(), color.CSS(), width)
	return err
}

// textAnchor and dominantBaseline map an Anchor to the SVG attributes that
// position text relative to its reference coordinate.
func textAnchor(a mp.Anchor) string {
	switch a {
	case mp.AnchorLeft, mp.AnchorUpperLeft, mp.AnchorLowerLeft:
		return "end"
	case mp.AnchorRight, mp.AnchorUpperRight, mp.AnchorLowerRight:
		return "start"
	default:
		return "middle"
	}
}

func dominantBaseline(a mp.Anchor) string {
	switch a {
	case mp.AnchorTop, mp.AnchorUpperLeft, mp.AnchorUpperRight:
		return "text-after-edge"
	case mp.AnchorBottom, mp.AnchorLowerLeft, mp.AnchorLowerRight:
		return "hanging"
	default:
		return "central"
	}
}

func (s *Builder) writeLabelElement(w io.Writer, label *mp.Label) error {
	if label == nil {
		return nil
	}
	dx, dy := mp.LabelOffsetVector(label.Anchor)
	offset := label.LabelOffset
	if offset == 0 {
		offset = mp.DefaultLabelOffset
	}
	x := label.Position.X + dx*offset
	y := label.Position.Y - dy*offset // laboff pairs are y-up; SVG's y grows downward

	fontSize := label.FontSize
	if fontSize == 0 {
		fontSize = mp.DefaultFontSize
	}
	fontFamily := label.FontFamily
	if fontFamily == "" {
		fontFamily = "sans-serif"
	}
	color := label.Color
	if color.CSS() == "" {
		color = mp.ColorCSS("black")
	}

	_, err := fmt.Fprintf(w, `<text x="%.3f" y="%.3f" font-family="%s" font-size="%.2f" fill="%s" text-anchor="%s" dominant-baseline="%s">%s</text>`,
		x, y, fontFamily, fontSize, color.CSS(), textAnchor(label.Anchor), dominantBaseline(label.Anchor), escapeXML(label.Text))
	return err
}

// escapeXML escapes special characters for XML/SVG text content.
func escapeXML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
