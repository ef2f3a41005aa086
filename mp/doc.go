// Package mp provides the small geometric and styling vocabulary package plot
// uses to describe a chart: points, colors, knots strung into straight-line
// paths, and text labels. It began as a port of MetaPost's Hobby-Knuth curve
// solver; the curve-fitting machinery has been removed, and paths here are
// straight polylines through given points.
//
// # Points and Colors
//
//	mp.P(x, y)         // Create a point
//	mp.ColorCSS("red") // CSS color string, used verbatim by package svg
//
// # Paths
//
// A Path is a linked ring of [Knot]s. [Polyline] builds one through a
// sequence of points as straight segments, which is all a chart of sampled
// trajectory values needs:
//
//	path := mp.Polyline([]mp.Point{mp.P(0, 0), mp.P(1, 2), mp.P(2, 1)})
//	path.Style.Stroke = mp.ColorCSS("blue")
//	path.Style.StrokeWidth = 1.5
//
// # Labels
//
// Text labels attach to a point with anchor positioning, matching MetaPost's
// label suffixes:
//
//	label := mp.NewLabel("v(t)", mp.P(0, 0), mp.AnchorLowerLeft)
//
//	mp.AnchorCenter      // label(s, z)
//	mp.AnchorLeft        // label.lft(s, z)
//	mp.AnchorRight       // label.rt(s, z)
//	mp.AnchorTop         // label.top(s, z)
//	mp.AnchorBottom      // label.bot(s, z)
//	mp.AnchorUpperLeft   // label.ulft(s, z)
//	mp.AnchorUpperRight  // label.urt(s, z)
//	mp.AnchorLowerLeft   // label.llft(s, z)
//	mp.AnchorLowerRight  // label.lrt(s, z)
//
// Labels render as native SVG <text> elements (package svg); there is no
// glyph-outline conversion here.
package mp
