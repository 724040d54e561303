package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// CubicBezierPoint evaluates a cubic Bézier at parameter t via the Bernstein
// form: B(t) = (1-t)^3*p0 + 3(1-t)^2*t*p1 + 3(1-t)*t^2*p2 + t^3*p3.
func CubicBezierPoint(p0, p1, p2, p3 pathdata.Point, t decimal.Decimal, ctx decimal.Context) pathdata.Point {
	one := decimal.NewFromInt64(1)
	three := decimal.NewFromInt64(3)
	u := ctx.Sub(one, t)

	uu := ctx.Mul(u, u)
	uuu := ctx.Mul(uu, u)
	tt := ctx.Mul(t, t)
	ttt := ctx.Mul(tt, t)

	c0 := uuu
	c1 := ctx.Mul(three, ctx.Mul(uu, t))
	c2 := ctx.Mul(three, ctx.Mul(u, tt))
	c3 := ttt

	x := ctx.Add(ctx.Add(ctx.Mul(c0, p0.X), ctx.Mul(c1, p1.X)), ctx.Add(ctx.Mul(c2, p2.X), ctx.Mul(c3, p3.X)))
	y := ctx.Add(ctx.Add(ctx.Mul(c0, p0.Y), ctx.Mul(c1, p1.Y)), ctx.Add(ctx.Mul(c2, p2.Y), ctx.Mul(c3, p3.Y)))
	return pathdata.Point{X: x, Y: y}
}

// QuadraticBezierPoint evaluates a quadratic Bézier at parameter t via the
// Bernstein form: B(t) = (1-t)^2*p0 + 2(1-t)*t*p1 + t^2*p2.
func QuadraticBezierPoint(p0, p1, p2 pathdata.Point, t decimal.Decimal, ctx decimal.Context) pathdata.Point {
	one := decimal.NewFromInt64(1)
	two := decimal.NewFromInt64(2)
	u := ctx.Sub(one, t)

	c0 := ctx.Mul(u, u)
	c1 := ctx.Mul(two, ctx.Mul(u, t))
	c2 := ctx.Mul(t, t)

	x := ctx.Add(ctx.Add(ctx.Mul(c0, p0.X), ctx.Mul(c1, p1.X)), ctx.Mul(c2, p2.X))
	y := ctx.Add(ctx.Add(ctx.Mul(c0, p0.Y), ctx.Mul(c1, p1.Y)), ctx.Mul(c2, p2.Y))
	return pathdata.Point{X: x, Y: y}
}

// perpendicularDistance returns the perpendicular distance from p to the
// line through a and b. Degenerate (a == b) falls back to the distance
// between p and a.
func perpendicularDistance(p, a, b pathdata.Point, ctx decimal.Context) decimal.Decimal {
	dx := ctx.Sub(b.X, a.X)
	dy := ctx.Sub(b.Y, a.Y)
	lengthSquared := ctx.Add(ctx.Mul(dx, dx), ctx.Mul(dy, dy))
	if lengthSquared.IsZero() {
		ex := ctx.Sub(p.X, a.X)
		ey := ctx.Sub(p.Y, a.Y)
		sq, err := ctx.Sqrt(ctx.Add(ctx.Mul(ex, ex), ctx.Mul(ey, ey)))
		if err != nil {
			return decimal.Zero()
		}
		return sq
	}
	// |cross(b-a, p-a)| / |b-a|
	cross := ctx.Sub(ctx.Mul(dx, ctx.Sub(p.Y, a.Y)), ctx.Mul(dy, ctx.Sub(p.X, a.X)))
	length, err := ctx.Sqrt(lengthSquared)
	if err != nil {
		return decimal.Zero()
	}
	return ctx.MustDiv(cross.Abs(), length)
}

// IsCubicBezierStraight reports whether the cubic is indistinguishable from
// its chord p0-p3 within tol: sample sampleCount interior points and measure
// the maximum perpendicular deviation. Four coincident control points are
// trivially straight.
func IsCubicBezierStraight(p0, p1, p2, p3 pathdata.Point, tol decimal.Decimal, ctx decimal.Context) bool {
	if pointsCoincide(p0, p1, ctx) && pointsCoincide(p1, p2, ctx) && pointsCoincide(p2, p3, ctx) {
		return true
	}
	for i := 1; i < sampleCount; i++ {
		t := ctx.MustDiv(decimal.NewFromInt64(int64(i)), decimal.NewFromInt64(sampleCount))
		sample := CubicBezierPoint(p0, p1, p2, p3, t, ctx)
		if perpendicularDistance(sample, p0, p3, ctx).GreaterThan(tol) {
			return false
		}
	}
	return true
}

func pointsCoincide(a, b pathdata.Point, ctx decimal.Context) bool {
	return a.X.Equals(b.X) && a.Y.Equals(b.Y)
}

// CubicBezierToLine returns the chord endpoints when the cubic is straight.
// Callers should check IsCubicBezierStraight first.
func CubicBezierToLine(p0, p3 pathdata.Point) (start, end pathdata.Point) {
	return p0, p3
}

// CanLowerCubicToQuadratic reports whether the cubic p0,p1,p2,p3 is a
// degree-elevated quadratic: p1 = p0 + 2/3*(Q1-p0) and p2 = p3 + 2/3*(Q1-p3)
// for the same Q1. Both implied Q1 values are computed and compared within
// tol; on success the shared Q1 control point is returned.
func CanLowerCubicToQuadratic(p0, p1, p2, p3 pathdata.Point, tol decimal.Decimal, ctx decimal.Context) (pathdata.Point, bool) {
	// Solve p1 = p0 + (2/3)(Q1-p0)  =>  Q1 = p0 + (3/2)(p1-p0)
	threeHalves := ctx.MustDiv(decimal.NewFromInt64(3), decimal.NewFromInt64(2))
	q1FromStart := pathdata.Point{
		X: ctx.Add(p0.X, ctx.Mul(threeHalves, ctx.Sub(p1.X, p0.X))),
		Y: ctx.Add(p0.Y, ctx.Mul(threeHalves, ctx.Sub(p1.Y, p0.Y))),
	}
	q1FromEnd := pathdata.Point{
		X: ctx.Add(p3.X, ctx.Mul(threeHalves, ctx.Sub(p2.X, p3.X))),
		Y: ctx.Add(p3.Y, ctx.Mul(threeHalves, ctx.Sub(p2.Y, p3.Y))),
	}
	dx := ctx.Sub(q1FromStart.X, q1FromEnd.X).Abs()
	dy := ctx.Sub(q1FromStart.Y, q1FromEnd.Y).Abs()
	if dx.LessThanOrEqual(tol) && dy.LessThanOrEqual(tol) {
		return q1FromStart, true
	}
	return pathdata.Point{}, false
}

// IsQuadraticBezierStraight measures the perpendicular distance from p1 to
// the chord p0-p2.
func IsQuadraticBezierStraight(p0, p1, p2 pathdata.Point, tol decimal.Decimal, ctx decimal.Context) bool {
	return perpendicularDistance(p1, p0, p2, ctx).LessThanOrEqual(tol)
}
