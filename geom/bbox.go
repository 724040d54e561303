package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// BoundingBox is an axis-aligned box with a verification flag: Verified is
// true iff every sampled point of the source geometry satisfies
// minX <= x <= maxX and minY <= y <= maxY within DEFAULT_TOLERANCE.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY decimal.Decimal
	Verified               bool
}

// Width returns maxX - minX.
func (b BoundingBox) Width(ctx decimal.Context) decimal.Decimal {
	return ctx.Sub(b.MaxX, b.MinX)
}

// Height returns maxY - minY.
func (b BoundingBox) Height(ctx decimal.Context) decimal.Decimal {
	return ctx.Sub(b.MaxY, b.MinY)
}

// Contains reports whether p lies within b, inflated by tolerance.
func (b BoundingBox) Contains(p pathdata.Point, tolerance decimal.Decimal) bool {
	ctx := decimal.DefaultContext
	minX := ctx.Sub(b.MinX, tolerance)
	minY := ctx.Sub(b.MinY, tolerance)
	maxX := ctx.Add(b.MaxX, tolerance)
	maxY := ctx.Add(b.MaxY, tolerance)
	return p.X.GreaterThanOrEqual(minX) && p.X.LessThanOrEqual(maxX) &&
		p.Y.GreaterThanOrEqual(minY) && p.Y.LessThanOrEqual(maxY)
}

// accumulator tracks running min/max while sampled points are collected for
// later verification.
type accumulator struct {
	ctx     decimal.Context
	minX    decimal.Decimal
	minY    decimal.Decimal
	maxX    decimal.Decimal
	maxY    decimal.Decimal
	samples []pathdata.Point
	started bool
}

func newAccumulator(ctx decimal.Context) *accumulator {
	return &accumulator{ctx: ctx}
}

func (a *accumulator) add(p pathdata.Point) {
	a.samples = append(a.samples, p)
	if !a.started {
		a.minX, a.maxX = p.X, p.X
		a.minY, a.maxY = p.Y, p.Y
		a.started = true
		return
	}
	a.minX = decimal.Min(a.minX, p.X)
	a.maxX = decimal.Max(a.maxX, p.X)
	a.minY = decimal.Min(a.minY, p.Y)
	a.maxY = decimal.Max(a.maxY, p.Y)
}

func (a *accumulator) bbox(tolerance decimal.Decimal) BoundingBox {
	b := BoundingBox{MinX: a.minX, MinY: a.minY, MaxX: a.maxX, MaxY: a.maxY}
	b.Verified = true
	for _, p := range a.samples {
		if !b.Contains(p, tolerance) {
			b.Verified = false
			break
		}
	}
	return b
}

// PathBBox walks a command stream per §4.3.1's per-command-family sampling
// rules, accumulating candidate points into min/max and verifying the
// result contains every sample within tolerance.
func PathBBox(commands []pathdata.Command, ctx decimal.Context, tolerance decimal.Decimal) BoundingBox {
	acc := newAccumulator(ctx)
	current := pathdata.Point{X: decimal.Zero(), Y: decimal.Zero()}
	subpathStart := current
	var lastControl pathdata.Point
	hasLastCubicControl := false
	hasLastQuadControl := false

	for _, cmd := range commands {
		switch c := cmd.(type) {
		case pathdata.Move:
			next := pathdata.EndPoint(c, current, subpathStart)
			acc.add(next)
			current = next
			subpathStart = next
			hasLastCubicControl, hasLastQuadControl = false, false

		case pathdata.Line, pathdata.Horizontal, pathdata.Vertical:
			next := pathdata.EndPoint(cmd, current, subpathStart)
			acc.add(next)
			current = next
			hasLastCubicControl, hasLastQuadControl = false, false

		case pathdata.Cubic:
			p1 := resolvePoint(c.X1, c.Y1, c.Relative, current)
			p2 := resolvePoint(c.X2, c.Y2, c.Relative, current)
			p3 := pathdata.EndPoint(c, current, subpathStart)
			sampleCubic(acc, ctx, current, p1, p2, p3)
			current = p3
			lastControl = p2
			hasLastCubicControl, hasLastQuadControl = true, false

		case pathdata.SmoothCubic:
			p1 := reflectedControl(current, lastControl, hasLastCubicControl)
			p2 := resolvePoint(c.X2, c.Y2, c.Relative, current)
			p3 := pathdata.EndPoint(c, current, subpathStart)
			sampleCubic(acc, ctx, current, p1, p2, p3)
			current = p3
			lastControl = p2
			hasLastCubicControl, hasLastQuadControl = true, false

		case pathdata.Quadratic:
			p1 := resolvePoint(c.X1, c.Y1, c.Relative, current)
			p2 := pathdata.EndPoint(c, current, subpathStart)
			sampleQuadratic(acc, ctx, current, p1, p2)
			current = p2
			lastControl = p1
			hasLastCubicControl, hasLastQuadControl = false, true

		case pathdata.SmoothQuadratic:
			p1 := reflectedControl(current, lastControl, hasLastQuadControl)
			p2 := pathdata.EndPoint(c, current, subpathStart)
			sampleQuadratic(acc, ctx, current, p1, p2)
			current = p2
			lastControl = p1
			hasLastCubicControl, hasLastQuadControl = false, true

		case pathdata.Arc:
			end := pathdata.EndPoint(c, current, subpathStart)
			sampleArc(acc, ctx, current, c, end)
			current = end
			hasLastCubicControl, hasLastQuadControl = false, false

		case pathdata.Close:
			current = subpathStart
			hasLastCubicControl, hasLastQuadControl = false, false
		}
	}

	return acc.bbox(tolerance)
}

func resolvePoint(x, y decimal.Decimal, relative bool, current pathdata.Point) pathdata.Point {
	if !relative {
		return pathdata.Point{X: x, Y: y}
	}
	return pathdata.Point{
		X: decimal.DefaultContext.Add(current.X, x),
		Y: decimal.DefaultContext.Add(current.Y, y),
	}
}

// reflectedControl mirrors prior around current, or returns current itself
// when there is no eligible prior control point (the §3 smooth-command rule).
func reflectedControl(current, prior pathdata.Point, hasPrior bool) pathdata.Point {
	if !hasPrior {
		return current
	}
	ctx := decimal.DefaultContext
	two := decimal.NewFromInt64(2)
	return pathdata.Point{
		X: ctx.Sub(ctx.Mul(two, current.X), prior.X),
		Y: ctx.Sub(ctx.Mul(two, current.Y), prior.Y),
	}
}

// sampleCount is the number of interior samples taken per curve command,
// per §4.3.5.
const sampleCount = 20

func sampleCubic(acc *accumulator, ctx decimal.Context, p0, p1, p2, p3 pathdata.Point) {
	for i := 0; i <= sampleCount; i++ {
		t := ctx.MustDiv(decimal.NewFromInt64(int64(i)), decimal.NewFromInt64(sampleCount))
		acc.add(CubicBezierPoint(p0, p1, p2, p3, t, ctx))
	}
}

func sampleQuadratic(acc *accumulator, ctx decimal.Context, p0, p1, p2 pathdata.Point) {
	for i := 0; i <= sampleCount; i++ {
		t := ctx.MustDiv(decimal.NewFromInt64(int64(i)), decimal.NewFromInt64(sampleCount))
		acc.add(QuadraticBezierPoint(p0, p1, p2, t, ctx))
	}
}
