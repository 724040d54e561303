package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// ArcCenter is the center-parameterization of an elliptical arc, converted
// from the endpoint form the SVG `A` command carries. RotationRad,
// StartAngle, and DeltaAngle are all in radians.
type ArcCenter struct {
	CX, CY       decimal.Decimal
	RX, RY       decimal.Decimal
	RotationRad  decimal.Decimal
	StartAngle   decimal.Decimal
	DeltaAngle   decimal.Decimal
}

// degreesToRadians converts phi (degrees) to radians.
func degreesToRadians(phi decimal.Decimal, ctx decimal.Context) decimal.Decimal {
	piOver180 := ctx.MustDiv(ctx.Pi(), decimal.NewFromInt64(180))
	return ctx.Mul(phi, piOver180)
}

// EndpointToCenter implements the SVG 1.1 Appendix F.6.5 endpoint-to-center
// arc parameterization. ok is false when start equals end (the arc degenerates
// to nothing) or either radius is zero (the arc degenerates to a line, and
// callers should treat it as such rather than parameterizing an ellipse).
func EndpointToCenter(start, end pathdata.Point, rx, ry, rotationDeg decimal.Decimal, largeArc, sweep bool, ctx decimal.Context) (ArcCenter, bool) {
	if start.X.Equals(end.X) && start.Y.Equals(end.Y) {
		return ArcCenter{}, false
	}
	rx = rx.Abs()
	ry = ry.Abs()
	if rx.IsZero() || ry.IsZero() {
		return ArcCenter{}, false
	}

	phi := degreesToRadians(rotationDeg, ctx)
	cosPhi := ctx.Cos(phi)
	sinPhi := ctx.Sin(phi)

	two := decimal.NewFromInt64(2)
	dx2 := ctx.MustDiv(ctx.Sub(start.X, end.X), two)
	dy2 := ctx.MustDiv(ctx.Sub(start.Y, end.Y), two)

	// (x1', y1') = R(-phi) . (dx2, dy2)
	x1p := ctx.Add(ctx.Mul(cosPhi, dx2), ctx.Mul(sinPhi, dy2))
	y1p := ctx.Add(ctx.Mul(sinPhi.Neg(), dx2), ctx.Mul(cosPhi, dy2))

	// Correct radii if the ellipse is too small for the chord.
	rxSq := ctx.Mul(rx, rx)
	rySq := ctx.Mul(ry, ry)
	x1pSq := ctx.Mul(x1p, x1p)
	y1pSq := ctx.Mul(y1p, y1p)
	lambda := ctx.Add(ctx.MustDiv(x1pSq, rxSq), ctx.MustDiv(y1pSq, rySq))
	if lambda.GreaterThan(decimal.NewFromInt64(1)) {
		scale, err := ctx.Sqrt(lambda)
		if err == nil && scale.Sign() > 0 {
			rx = ctx.Mul(rx, scale)
			ry = ctx.Mul(ry, scale)
			rxSq = ctx.Mul(rx, rx)
			rySq = ctx.Mul(ry, ry)
		}
	}

	// c' = sign * sqrt(num/denom) * (rx*y1'/ry, -ry*x1'/rx)
	num := ctx.Sub(ctx.Sub(ctx.Mul(rxSq, rySq), ctx.Mul(rxSq, y1pSq)), ctx.Mul(rySq, x1pSq))
	denom := ctx.Add(ctx.Mul(rxSq, y1pSq), ctx.Mul(rySq, x1pSq))
	radicand := decimal.Zero()
	if !denom.IsZero() {
		radicand = ctx.MustDiv(num, denom)
	}
	if radicand.Sign() < 0 {
		radicand = decimal.Zero() // numerical noise near a degenerate ellipse
	}
	coef, _ := ctx.Sqrt(radicand)
	if largeArc == sweep {
		coef = coef.Neg()
	}

	cxp := ctx.Mul(coef, ctx.MustDiv(ctx.Mul(rx, y1p), ry))
	cyp := ctx.Mul(coef, ctx.MustDiv(ctx.Mul(ry, x1p), rx)).Neg()

	// center = R(phi) . (cx', cy') + midpoint(start, end)
	midX := ctx.MustDiv(ctx.Add(start.X, end.X), two)
	midY := ctx.MustDiv(ctx.Add(start.Y, end.Y), two)
	cx := ctx.Add(ctx.Sub(ctx.Mul(cosPhi, cxp), ctx.Mul(sinPhi, cyp)), midX)
	cy := ctx.Add(ctx.Add(ctx.Mul(sinPhi, cxp), ctx.Mul(cosPhi, cyp)), midY)

	ux := ctx.MustDiv(ctx.Sub(x1p, cxp), rx)
	uy := ctx.MustDiv(ctx.Sub(y1p, cyp), ry)
	vx := ctx.MustDiv(ctx.Add(x1p, cxp).Neg(), rx)
	vy := ctx.MustDiv(ctx.Add(y1p, cyp).Neg(), ry)

	theta1 := angleBetween(decimal.NewFromInt64(1), decimal.Zero(), ux, uy, ctx)
	deltaTheta := angleBetween(ux, uy, vx, vy, ctx)

	twoPi := ctx.Mul(decimal.NewFromInt64(2), ctx.Pi())
	if !sweep && deltaTheta.Sign() > 0 {
		deltaTheta = ctx.Sub(deltaTheta, twoPi)
	} else if sweep && deltaTheta.Sign() < 0 {
		deltaTheta = ctx.Add(deltaTheta, twoPi)
	}

	return ArcCenter{CX: cx, CY: cy, RX: rx, RY: ry, RotationRad: phi, StartAngle: theta1, DeltaAngle: deltaTheta}, true
}

// angleBetween returns the signed angle (radians) from vector (ux,uy) to
// vector (vx,vy), via acos(dot/(|u||v|)) with sign from the 2D cross
// product — the standard "angle between vectors" helper the endpoint-to-
// center conversion needs in place of atan2.
func angleBetween(ux, uy, vx, vy decimal.Decimal, ctx decimal.Context) decimal.Decimal {
	dot := ctx.Add(ctx.Mul(ux, vx), ctx.Mul(uy, vy))
	lenU, errU := ctx.Sqrt(ctx.Add(ctx.Mul(ux, ux), ctx.Mul(uy, uy)))
	lenV, errV := ctx.Sqrt(ctx.Add(ctx.Mul(vx, vx), ctx.Mul(vy, vy)))
	if errU != nil || errV != nil || lenU.IsZero() || lenV.IsZero() {
		return decimal.Zero()
	}
	cosAngle := ctx.MustDiv(dot, ctx.Mul(lenU, lenV))
	one := decimal.NewFromInt64(1)
	if cosAngle.GreaterThan(one) {
		cosAngle = one
	} else if cosAngle.LessThan(one.Neg()) {
		cosAngle = one.Neg()
	}
	angle, err := ctx.Acos(cosAngle)
	if err != nil {
		return decimal.Zero()
	}
	cross := ctx.Sub(ctx.Mul(ux, vy), ctx.Mul(uy, vx))
	if cross.Sign() < 0 {
		return angle.Neg()
	}
	return angle
}

// PointAtAngle evaluates the parameterized ellipse at absolute angle theta
// (radians): x = cx + rx*cos(phi)*cos(theta) - ry*sin(phi)*sin(theta), and
// the analogous y form.
func (a ArcCenter) PointAtAngle(theta decimal.Decimal, ctx decimal.Context) pathdata.Point {
	cosPhi := ctx.Cos(a.RotationRad)
	sinPhi := ctx.Sin(a.RotationRad)
	cosT := ctx.Cos(theta)
	sinT := ctx.Sin(theta)

	x := ctx.Add(a.CX, ctx.Sub(ctx.Mul(ctx.Mul(a.RX, cosPhi), cosT), ctx.Mul(ctx.Mul(a.RY, sinPhi), sinT)))
	y := ctx.Add(a.CY, ctx.Add(ctx.Mul(ctx.Mul(a.RX, sinPhi), cosT), ctx.Mul(ctx.Mul(a.RY, cosPhi), sinT)))
	return pathdata.Point{X: x, Y: y}
}

// sampleArc contributes bounding-box candidates for an A/a command: the
// endpoints, sampleCount parametric samples along the sweep, and (per the
// resolved arc-bbox open question) any axis-aligned cardinal angle {0, 90,
// 180, 270 degrees} that falls within the swept angular range — a
// conservative superset of the true box, exact for unrotated ellipses.
func sampleArc(acc *accumulator, ctx decimal.Context, start pathdata.Point, cmd pathdata.Arc, end pathdata.Point) {
	acc.add(start)
	acc.add(end)

	center, ok := EndpointToCenter(start, end, cmd.RX, cmd.RY, cmd.Rotation, cmd.LargeArc, cmd.Sweep, ctx)
	if !ok {
		// Degenerate: either a zero-length arc or a zero radius, both of
		// which behave like the straight chord already captured above.
		return
	}

	for i := 1; i < sampleCount; i++ {
		frac := ctx.MustDiv(decimal.NewFromInt64(int64(i)), decimal.NewFromInt64(sampleCount))
		theta := ctx.Add(center.StartAngle, ctx.Mul(frac, center.DeltaAngle))
		acc.add(center.PointAtAngle(theta, ctx))
	}

	for _, cardinalDeg := range []int64{0, 90, 180, 270} {
		cardinal := degreesToRadians(decimal.NewFromInt64(cardinalDeg), ctx)
		if angleWithinSweep(cardinal, center.StartAngle, center.DeltaAngle, ctx) {
			acc.add(center.PointAtAngle(cardinal, ctx))
		}
	}
}

// angleWithinSweep reports whether angle (mod 2*pi) falls within the arc
// from start through start+delta, in delta's direction.
func angleWithinSweep(angle, start, delta decimal.Decimal, ctx decimal.Context) bool {
	twoPi := ctx.Mul(decimal.NewFromInt64(2), ctx.Pi())
	normalize := func(a decimal.Decimal) decimal.Decimal {
		for a.LessThan(decimal.Zero()) {
			a = ctx.Add(a, twoPi)
		}
		for a.GreaterThanOrEqual(twoPi) {
			a = ctx.Sub(a, twoPi)
		}
		return a
	}

	rel := normalize(ctx.Sub(angle, start))
	sweep := delta.Abs()
	if delta.Sign() < 0 {
		rel = normalize(ctx.Sub(twoPi, rel))
	}
	return rel.LessThanOrEqual(sweep)
}

// CalculateSagitta returns r - sqrt(r^2 - (chord/2)^2), or (zero, false)
// when chord exceeds the diameter (no real sagitta).
func CalculateSagitta(r, chord decimal.Decimal, ctx decimal.Context) (decimal.Decimal, bool) {
	half := ctx.MustDiv(chord, decimal.NewFromInt64(2))
	inner := ctx.Sub(ctx.Mul(r, r), ctx.Mul(half, half))
	if inner.Sign() < 0 {
		return decimal.Zero(), false
	}
	root, err := ctx.Sqrt(inner)
	if err != nil {
		return decimal.Zero(), false
	}
	return ctx.Sub(r, root), true
}

// IsArcStraight reports whether an arc is visually indistinguishable from
// its chord: true when rx is zero, or when the sagitta computed from the
// larger radius and the chord length is below tol. A set large-arc flag on
// a non-trivial sweep forces false, since a large arc always bulges
// visibly regardless of sagitta.
func IsArcStraight(rx, ry decimal.Decimal, chord decimal.Decimal, largeArc bool, tol decimal.Decimal, ctx decimal.Context) bool {
	if rx.Abs().IsZero() {
		return true
	}
	if largeArc && chord.Sign() > 0 {
		return false
	}
	r := decimal.Max(rx.Abs(), ry.Abs())
	sagitta, ok := CalculateSagitta(r, chord, ctx)
	if !ok {
		return false
	}
	return sagitta.Abs().LessThanOrEqual(tol)
}
