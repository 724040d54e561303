package pathdata

import (
	"github.com/vectorforge/svgcore/decimal"
)

// Kappa is 4*(sqrt(2)-1)/3, the control-point offset that makes a cubic
// Bézier approximate a quarter-circle. It is computed at ctx's precision on
// every call; the value is not cached.
func Kappa(ctx decimal.Context) decimal.Decimal {
	two := decimal.NewFromInt64(2)
	sqrt2, err := ctx.Sqrt(two)
	if err != nil {
		// two is never negative; Sqrt cannot fail here.
		panic("pathdata: unreachable: " + err.Error())
	}
	numerator := ctx.Mul(decimal.NewFromInt64(4), ctx.Sub(sqrt2, decimal.NewFromInt64(1)))
	kappa, err := ctx.Div(numerator, decimal.NewFromInt64(3))
	if err != nil {
		panic("pathdata: unreachable: " + err.Error())
	}
	return kappa
}

// ToPath lowers a shape record to its deterministic path-command form.
func ToPath(shape Shape, ctx decimal.Context) []Command {
	switch s := shape.(type) {
	case Rect:
		return rectToPath(s, ctx)
	case Circle:
		return ellipseToPath(s.CX, s.CY, s.R, s.R, ctx)
	case Ellipse:
		return ellipseToPath(s.CX, s.CY, s.RX, s.RY, ctx)
	case LineShape:
		return []Command{
			Move{X: s.X1, Y: s.Y1},
			Line{X: s.X2, Y: s.Y2},
		}
	case Polygon:
		return polyPath(s.Points, true)
	case Polyline:
		return polyPath(s.Points, false)
	default:
		return nil
	}
}

func rectToPath(r Rect, ctx decimal.Context) []Command {
	x1 := ctx.Add(r.X, r.Width)
	y1 := ctx.Add(r.Y, r.Height)

	if !r.HasCornerRadius {
		return []Command{
			Move{X: r.X, Y: r.Y},
			Horizontal{X: x1},
			Vertical{Y: y1},
			Horizontal{X: r.X},
			Close{},
		}
	}

	rx, ry := r.RX, r.RY
	xStart := ctx.Add(r.X, rx)
	xEnd := ctx.Sub(x1, rx)
	yStart := ctx.Add(r.Y, ry)
	yEnd := ctx.Sub(y1, ry)

	return []Command{
		Move{X: xStart, Y: r.Y},
		Line{X: xEnd, Y: r.Y},
		Arc{RX: rx, RY: ry, Sweep: true, X: x1, Y: yStart},
		Line{X: x1, Y: yEnd},
		Arc{RX: rx, RY: ry, Sweep: true, X: xEnd, Y: y1},
		Line{X: xStart, Y: y1},
		Arc{RX: rx, RY: ry, Sweep: true, X: r.X, Y: yEnd},
		Line{X: r.X, Y: yStart},
		Arc{RX: rx, RY: ry, Sweep: true, X: xStart, Y: r.Y},
		Close{},
	}
}

// ellipseToPath emits four cubic Béziers, one per quadrant, forming a
// closed ring — the standard circle/ellipse-as-cubics construction, using
// Kappa as the control-point offset for each quadrant.
func ellipseToPath(cx, cy, rx, ry decimal.Decimal, ctx decimal.Context) []Command {
	k := Kappa(ctx)
	rxk := ctx.Mul(rx, k)
	ryk := ctx.Mul(ry, k)

	right := ctx.Add(cx, rx)
	left := ctx.Sub(cx, rx)
	top := ctx.Sub(cy, ry) // SVG y grows downward; "top" is the lesser y.
	bottom := ctx.Add(cy, ry)

	rightPlusK := ctx.Add(cx, rxk)
	leftMinusK := ctx.Sub(cx, rxk)
	cyPlusRyk := ctx.Add(cy, ryk)
	cyMinusRyk := ctx.Sub(cy, ryk)

	return []Command{
		Move{X: right, Y: cy},
		Cubic{X1: right, Y1: cyPlusRyk, X2: rightPlusK, Y2: bottom, X: cx, Y: bottom},
		Cubic{X1: leftMinusK, Y1: bottom, X2: left, Y2: cyPlusRyk, X: left, Y: cy},
		Cubic{X1: left, Y1: cyMinusRyk, X2: leftMinusK, Y2: top, X: cx, Y: top},
		Cubic{X1: rightPlusK, Y1: top, X2: right, Y2: cyMinusRyk, X: right, Y: cy},
		Close{},
	}
}

func polyPath(points []Point, closed bool) []Command {
	if len(points) == 0 {
		return nil
	}
	cmds := make([]Command, 0, len(points)+1)
	cmds = append(cmds, Move{X: points[0].X, Y: points[0].Y})
	for _, p := range points[1:] {
		cmds = append(cmds, Line{X: p.X, Y: p.Y})
	}
	if closed {
		cmds = append(cmds, Close{})
	}
	return cmds
}
