package rewrite

import (
	"github.com/vectorforge/svgcore/geom"
	"github.com/vectorforge/svgcore/pathdata"
)

// StraightCurvesToLines replaces any Cubic, SmoothCubic, Quadratic, or
// SmoothQuadratic whose curve is indistinguishable from its chord (per
// geom.IsCubicBezierStraight / geom.IsQuadraticBezierStraight) with an
// equivalent Line. The replacement Line carries the curve's own endpoint, so
// verification — that the rewritten endpoint matches the original within
// tolerance — holds by construction; MergeCount here repurposes the field to
// record how many curves were flattened.
func StraightCurvesToLines(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	ctx := opts.Context
	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	flattened := 0
	verified := true

	for _, cmd := range commands {
		before := state.current
		p1, p2, end := state.advance(cmd)

		switch c := cmd.(type) {
		case pathdata.Cubic:
			if geom.IsCubicBezierStraight(before, p1, p2, end, tol, ctx) {
				line := pathdata.Line{X: c.X, Y: c.Y, Relative: c.Relative}
				if !pointsWithinTol(pathdata.EndPoint(line, before, before), end, tol) {
					verified = false
				}
				out = append(out, line)
				flattened++
				continue
			}
		case pathdata.SmoothCubic:
			if geom.IsCubicBezierStraight(before, p1, p2, end, tol, ctx) {
				line := pathdata.Line{X: c.X, Y: c.Y, Relative: c.Relative}
				if !pointsWithinTol(pathdata.EndPoint(line, before, before), end, tol) {
					verified = false
				}
				out = append(out, line)
				flattened++
				continue
			}
		case pathdata.Quadratic:
			if geom.IsQuadraticBezierStraight(before, p1, end, tol, ctx) {
				line := pathdata.Line{X: c.X, Y: c.Y, Relative: c.Relative}
				if !pointsWithinTol(pathdata.EndPoint(line, before, before), end, tol) {
					verified = false
				}
				out = append(out, line)
				flattened++
				continue
			}
		case pathdata.SmoothQuadratic:
			if geom.IsQuadraticBezierStraight(before, p1, end, tol, ctx) {
				line := pathdata.Line{X: c.X, Y: c.Y, Relative: c.Relative}
				if !pointsWithinTol(pathdata.EndPoint(line, before, before), end, tol) {
					verified = false
				}
				out = append(out, line)
				flattened++
				continue
			}
		}
		out = append(out, cmd)
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    flattened,
	}
}
