package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// outcode bits for Cohen-Sutherland, in (left, right, bottom, top) order.
const (
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func outcode(p pathdata.Point, v ViewBox, ctx decimal.Context) int {
	code := 0
	xMax := ctx.Add(v.X, v.Width)
	yMax := ctx.Add(v.Y, v.Height)
	if p.X.LessThan(v.X) {
		code |= outLeft
	} else if p.X.GreaterThan(xMax) {
		code |= outRight
	}
	if p.Y.LessThan(v.Y) {
		code |= outBottom
	} else if p.Y.GreaterThan(yMax) {
		code |= outTop
	}
	return code
}

// ClipLine clips the segment p0-p1 to v using Cohen-Sutherland. accepted is
// false when the entire segment lies outside v. Lines within EPSILON of
// horizontal or vertical are clipped along a single axis to sidestep
// division by a near-zero dx or dy.
func ClipLine(p0, p1 pathdata.Point, v ViewBox, ctx decimal.Context) (start, end pathdata.Point, accepted bool) {
	dx := ctx.Sub(p1.X, p0.X)
	dy := ctx.Sub(p1.Y, p0.Y)
	xMax := ctx.Add(v.X, v.Width)
	yMax := ctx.Add(v.Y, v.Height)

	if dy.Abs().LessThan(decimal.Epsilon) {
		if p0.Y.LessThan(v.Y) || p0.Y.GreaterThan(yMax) {
			return pathdata.Point{}, pathdata.Point{}, false
		}
		return clampAxis(p0, p1, v.X, xMax, ctx, true)
	}
	if dx.Abs().LessThan(decimal.Epsilon) {
		if p0.X.LessThan(v.X) || p0.X.GreaterThan(xMax) {
			return pathdata.Point{}, pathdata.Point{}, false
		}
		return clampAxis(p0, p1, v.Y, yMax, ctx, false)
	}

	const maxIterations = 16
	for i := 0; i < maxIterations; i++ {
		code0 := outcode(p0, v, ctx)
		code1 := outcode(p1, v, ctx)
		if code0 == 0 && code1 == 0 {
			return p0, p1, true
		}
		if code0&code1 != 0 {
			return pathdata.Point{}, pathdata.Point{}, false
		}

		outside := code0
		outsideIsP0 := true
		if code0 == 0 {
			outside = code1
			outsideIsP0 = false
		}

		var clipped pathdata.Point
		switch {
		case outside&outTop != 0:
			clipped = pathdata.Point{
				X: ctx.Add(p0.X, ctx.Mul(ctx.MustDiv(dx, dy), ctx.Sub(yMax, p0.Y))),
				Y: yMax,
			}
		case outside&outBottom != 0:
			clipped = pathdata.Point{
				X: ctx.Add(p0.X, ctx.Mul(ctx.MustDiv(dx, dy), ctx.Sub(v.Y, p0.Y))),
				Y: v.Y,
			}
		case outside&outRight != 0:
			clipped = pathdata.Point{
				X: xMax,
				Y: ctx.Add(p0.Y, ctx.Mul(ctx.MustDiv(dy, dx), ctx.Sub(xMax, p0.X))),
			}
		case outside&outLeft != 0:
			clipped = pathdata.Point{
				X: v.X,
				Y: ctx.Add(p0.Y, ctx.Mul(ctx.MustDiv(dy, dx), ctx.Sub(v.X, p0.X))),
			}
		}

		if outsideIsP0 {
			p0 = clipped
		} else {
			p1 = clipped
		}
		dx = ctx.Sub(p1.X, p0.X)
		dy = ctx.Sub(p1.Y, p0.Y)
	}
	return pathdata.Point{}, pathdata.Point{}, false
}

// clampAxis clips the varying coordinate (x when alongX, else y) of both
// endpoints to [lo, hi], used for the horizontal/vertical degenerate cases.
func clampAxis(p0, p1 pathdata.Point, lo, hi decimal.Decimal, ctx decimal.Context, alongX bool) (pathdata.Point, pathdata.Point, bool) {
	clamp := func(v decimal.Decimal) decimal.Decimal {
		if v.LessThan(lo) {
			return lo
		}
		if v.GreaterThan(hi) {
			return hi
		}
		return v
	}
	a, b := p0.Y, p1.Y
	if alongX {
		a, b = p0.X, p1.X
	}
	if (a.LessThan(lo) && b.LessThan(lo)) || (a.GreaterThan(hi) && b.GreaterThan(hi)) {
		return pathdata.Point{}, pathdata.Point{}, false
	}
	if alongX {
		return pathdata.Point{X: clamp(p0.X), Y: p0.Y}, pathdata.Point{X: clamp(p1.X), Y: p1.Y}, true
	}
	return pathdata.Point{X: p0.X, Y: clamp(p0.Y)}, pathdata.Point{X: p1.X, Y: clamp(p1.Y)}, true
}

// clipEdge is one of the four viewbox boundaries used by ClipPolygon.
type clipEdge struct {
	inside func(p pathdata.Point) bool
	cross  func(a, b pathdata.Point, ctx decimal.Context) pathdata.Point
}

// ClipPolygon clips a subject polygon against v via Sutherland-Hodgman:
// successive intersection against each of the four viewbox edges. The
// result may be empty if the subject lies entirely outside v.
func ClipPolygon(subject []pathdata.Point, v ViewBox, ctx decimal.Context) []pathdata.Point {
	xMax := ctx.Add(v.X, v.Width)
	yMax := ctx.Add(v.Y, v.Height)

	edges := []clipEdge{
		{ // left: x >= v.X
			inside: func(p pathdata.Point) bool { return p.X.GreaterThanOrEqual(v.X) },
			cross: func(a, b pathdata.Point, ctx decimal.Context) pathdata.Point {
				return lerpAtX(a, b, v.X, ctx)
			},
		},
		{ // right: x <= xMax
			inside: func(p pathdata.Point) bool { return p.X.LessThanOrEqual(xMax) },
			cross: func(a, b pathdata.Point, ctx decimal.Context) pathdata.Point {
				return lerpAtX(a, b, xMax, ctx)
			},
		},
		{ // bottom: y >= v.Y
			inside: func(p pathdata.Point) bool { return p.Y.GreaterThanOrEqual(v.Y) },
			cross: func(a, b pathdata.Point, ctx decimal.Context) pathdata.Point {
				return lerpAtY(a, b, v.Y, ctx)
			},
		},
		{ // top: y <= yMax
			inside: func(p pathdata.Point) bool { return p.Y.LessThanOrEqual(yMax) },
			cross: func(a, b pathdata.Point, ctx decimal.Context) pathdata.Point {
				return lerpAtY(a, b, yMax, ctx)
			},
		},
	}

	output := subject
	for _, edge := range edges {
		if len(output) == 0 {
			break
		}
		output = clipAgainstEdge(output, edge, ctx)
	}
	return output
}

func clipAgainstEdge(input []pathdata.Point, edge clipEdge, ctx decimal.Context) []pathdata.Point {
	var out []pathdata.Point
	n := len(input)
	for i := 0; i < n; i++ {
		current := input[i]
		prior := input[(i-1+n)%n]
		currentIn := edge.inside(current)
		priorIn := edge.inside(prior)

		switch {
		case currentIn && priorIn:
			out = append(out, current)
		case priorIn && !currentIn:
			out = append(out, edge.cross(prior, current, ctx))
		case !priorIn && currentIn:
			out = append(out, edge.cross(prior, current, ctx), current)
		}
		// both outside: emit nothing
	}
	return out
}

// lerpAtX finds the point on segment a-b where x == x0.
func lerpAtX(a, b pathdata.Point, x0 decimal.Decimal, ctx decimal.Context) pathdata.Point {
	dx := ctx.Sub(b.X, a.X)
	if dx.IsZero() {
		return pathdata.Point{X: x0, Y: a.Y}
	}
	t := ctx.MustDiv(ctx.Sub(x0, a.X), dx)
	return pathdata.Point{X: x0, Y: ctx.Add(a.Y, ctx.Mul(t, ctx.Sub(b.Y, a.Y)))}
}

// lerpAtY finds the point on segment a-b where y == y0.
func lerpAtY(a, b pathdata.Point, y0 decimal.Decimal, ctx decimal.Context) pathdata.Point {
	dy := ctx.Sub(b.Y, a.Y)
	if dy.IsZero() {
		return pathdata.Point{X: a.X, Y: y0}
	}
	t := ctx.MustDiv(ctx.Sub(y0, a.Y), dy)
	return pathdata.Point{X: ctx.Add(a.X, ctx.Mul(t, ctx.Sub(b.X, a.X))), Y: y0}
}

// ClipPolygonVerified clips subject against v and reports whether every
// output point lies inside v inflated by tolerance.
func ClipPolygonVerified(subject []pathdata.Point, v ViewBox, tolerance decimal.Decimal, ctx decimal.Context) ([]pathdata.Point, bool) {
	result := ClipPolygon(subject, v, ctx)
	box := BoundingBox{MinX: v.X, MinY: v.Y, MaxX: ctx.Add(v.X, v.Width), MaxY: ctx.Add(v.Y, v.Height)}
	for _, p := range result {
		if !box.Contains(p, tolerance) {
			return result, false
		}
	}
	return result, true
}
