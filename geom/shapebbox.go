package geom

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// ShapeBBox computes the closed-form bounding box for a basic shape: no
// sampling or verification is needed since each shape's extent is exact.
func ShapeBBox(shape pathdata.Shape, ctx decimal.Context) BoundingBox {
	switch s := shape.(type) {
	case pathdata.Rect:
		return BoundingBox{
			MinX: s.X, MinY: s.Y,
			MaxX: ctx.Add(s.X, s.Width), MaxY: ctx.Add(s.Y, s.Height),
			Verified: true,
		}

	case pathdata.Circle:
		return BoundingBox{
			MinX: ctx.Sub(s.CX, s.R), MinY: ctx.Sub(s.CY, s.R),
			MaxX: ctx.Add(s.CX, s.R), MaxY: ctx.Add(s.CY, s.R),
			Verified: true,
		}

	case pathdata.Ellipse:
		return BoundingBox{
			MinX: ctx.Sub(s.CX, s.RX), MinY: ctx.Sub(s.CY, s.RY),
			MaxX: ctx.Add(s.CX, s.RX), MaxY: ctx.Add(s.CY, s.RY),
			Verified: true,
		}

	case pathdata.LineShape:
		acc := newAccumulator(ctx)
		acc.add(pathdata.Point{X: s.X1, Y: s.Y1})
		acc.add(pathdata.Point{X: s.X2, Y: s.Y2})
		return acc.bbox(decimal.DefaultTolerance)

	case pathdata.Polygon:
		return pointsBBox(s.Points, ctx)

	case pathdata.Polyline:
		return pointsBBox(s.Points, ctx)

	default:
		return BoundingBox{}
	}
}

func pointsBBox(points []pathdata.Point, ctx decimal.Context) BoundingBox {
	acc := newAccumulator(ctx)
	for _, p := range points {
		acc.add(p)
	}
	return acc.bbox(decimal.DefaultTolerance)
}
