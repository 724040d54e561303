package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// BoxToPolygon returns b's four vertices in counter-clockwise order, starting
// at (minX, minY).
func BoxToPolygon(b BoundingBox) []pathdata.Point {
	return []pathdata.Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

// ViewBoxToPolygon returns v's four vertices in counter-clockwise order.
func ViewBoxToPolygon(v ViewBox, ctx decimal.Context) []pathdata.Point {
	x2 := ctx.Add(v.X, v.Width)
	y2 := ctx.Add(v.Y, v.Height)
	return []pathdata.Point{
		{X: v.X, Y: v.Y},
		{X: x2, Y: v.Y},
		{X: x2, Y: y2},
		{X: v.X, Y: y2},
	}
}

// Intersects reports whether two convex polygons overlap, via GJK on their
// Minkowski difference: a simplex that comes to contain the origin proves
// overlap, an exhausted search direction proves disjointness. Edge contact
// counts as overlap, matching the reported support point's sign check using
// >= rather than strict >.
func Intersects(a, b []pathdata.Point, ctx decimal.Context) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	dir := pathdata.Point{X: decimal.NewFromInt64(1), Y: decimal.Zero()}
	first := minkowskiSupport(a, b, dir, ctx)
	simplex := []pathdata.Point{first}
	dir = negPoint(first)

	const maxIterations = 64
	for i := 0; i < maxIterations; i++ {
		p := minkowskiSupport(a, b, dir, ctx)
		if dot(p, dir, ctx).Sign() < 0 {
			return false
		}
		simplex = append(simplex, p)

		var contains bool
		simplex, dir, contains = evolveSimplex(simplex, dir, ctx)
		if contains {
			return true
		}
	}
	return false
}

func support(poly []pathdata.Point, dir pathdata.Point, ctx decimal.Context) pathdata.Point {
	best := poly[0]
	bestDot := dot(best, dir, ctx)
	for _, p := range poly[1:] {
		d := dot(p, dir, ctx)
		if d.GreaterThan(bestDot) {
			best = p
			bestDot = d
		}
	}
	return best
}

func minkowskiSupport(a, b []pathdata.Point, dir pathdata.Point, ctx decimal.Context) pathdata.Point {
	pa := support(a, dir, ctx)
	pb := support(b, negPoint(dir), ctx)
	return subPoint(pa, pb, ctx)
}

// evolveSimplex advances the GJK simplex toward the origin, returning the
// updated simplex, the next search direction, and whether the simplex (a
// triangle) has come to contain the origin.
func evolveSimplex(simplex []pathdata.Point, dir pathdata.Point, ctx decimal.Context) ([]pathdata.Point, pathdata.Point, bool) {
	if len(simplex) == 2 {
		return lineCase(simplex, ctx)
	}
	return triangleCase(simplex, ctx)
}

func lineCase(simplex []pathdata.Point, ctx decimal.Context) ([]pathdata.Point, pathdata.Point, bool) {
	a := simplex[1]
	b := simplex[0]
	ab := subPoint(b, a, ctx)
	ao := negPoint(a)
	if dot(ab, ao, ctx).Sign() > 0 {
		return simplex, tripleProduct(ab, ao, ab, ctx), false
	}
	return []pathdata.Point{a}, ao, false
}

func triangleCase(simplex []pathdata.Point, ctx decimal.Context) ([]pathdata.Point, pathdata.Point, bool) {
	a := simplex[2]
	b := simplex[1]
	c := simplex[0]
	ab := subPoint(b, a, ctx)
	ac := subPoint(c, a, ctx)
	ao := negPoint(a)

	abPerp := tripleProduct(ac, ab, ab, ctx)
	if dot(abPerp, ao, ctx).Sign() > 0 {
		return []pathdata.Point{b, a}, abPerp, false
	}

	acPerp := tripleProduct(ab, ac, ac, ctx)
	if dot(acPerp, ao, ctx).Sign() > 0 {
		return []pathdata.Point{c, a}, acPerp, false
	}

	return simplex, pathdata.Point{}, true
}

func dot(a, b pathdata.Point, ctx decimal.Context) decimal.Decimal {
	return ctx.Add(ctx.Mul(a.X, b.X), ctx.Mul(a.Y, b.Y))
}

func subPoint(a, b pathdata.Point, ctx decimal.Context) pathdata.Point {
	return pathdata.Point{X: ctx.Sub(a.X, b.X), Y: ctx.Sub(a.Y, b.Y)}
}

func negPoint(p pathdata.Point) pathdata.Point {
	return pathdata.Point{X: p.X.Neg(), Y: p.Y.Neg()}
}

// tripleProduct computes (a x b) x c in 2D, via the vector identity
// b*(a.c) - a*(b.c), yielding a vector perpendicular to ab on c's side.
func tripleProduct(a, b, c pathdata.Point, ctx decimal.Context) pathdata.Point {
	ac := dot(a, c, ctx)
	bc := dot(b, c, ctx)
	return pathdata.Point{
		X: ctx.Sub(ctx.Mul(b.X, ac), ctx.Mul(a.X, bc)),
		Y: ctx.Sub(ctx.Mul(b.Y, ac), ctx.Mul(a.Y, bc)),
	}
}

// BoxIntersectsViewBox reports whether b and v overlap, converting both to
// counter-clockwise polygons and running Intersects.
func BoxIntersectsViewBox(b BoundingBox, v ViewBox, ctx decimal.Context) bool {
	return Intersects(BoxToPolygon(b), ViewBoxToPolygon(v, ctx), ctx)
}
