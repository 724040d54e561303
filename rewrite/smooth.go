package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/geom"
	"github.com/vectorforge/svgcore/pathdata"
)

// CurveToSmooth replaces a Cubic whose first control point is the reflection
// of the preceding C/S command's second control around the current point
// with the equivalent SmoothCubic, and a Quadratic whose control reflects
// the preceding Q/T command's control with the equivalent SmoothQuadratic.
// Verification reconstructs the implied control from the rewritten command
// directly — via the same reflectedControl rule the parser itself applies —
// rather than by invoking the inverse (expand-smooth) transform, which is
// the recursion this design avoids.
func CurveToSmooth(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	converted := 0
	verified := true

	for _, cmd := range commands {
		priorControl := state.lastControl
		hasPriorCubic := state.hasLastCubicCtrl
		hasPriorQuad := state.hasLastQuadCtrl
		before := state.current
		p1, _, _ := state.advance(cmd)

		switch c := cmd.(type) {
		case pathdata.Cubic:
			if hasPriorCubic && pointsWithinTol(p1, reflectedControl(before, priorControl, true), tol) {
				s := pathdata.SmoothCubic{X2: c.X2, Y2: c.Y2, X: c.X, Y: c.Y, Relative: c.Relative}
				implied := reflectedControl(before, priorControl, true)
				if !pointsWithinTol(implied, p1, tol) {
					verified = false
				}
				out = append(out, s)
				converted++
				continue
			}
		case pathdata.Quadratic:
			if hasPriorQuad && pointsWithinTol(p1, reflectedControl(before, priorControl, true), tol) {
				t := pathdata.SmoothQuadratic{X: c.X, Y: c.Y, Relative: c.Relative}
				implied := reflectedControl(before, priorControl, true)
				if !pointsWithinTol(implied, p1, tol) {
					verified = false
				}
				out = append(out, t)
				converted++
				continue
			}
		}
		out = append(out, cmd)
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    converted,
	}
}

// CubicToQuadratic lowers a Cubic to a Quadratic wherever
// geom.CanLowerCubicToQuadratic finds a single implied control point that
// degree-elevates back to both of the cubic's controls within tolerance.
// Not part of Pipeline: it trades fidelity for size more aggressively
// than the other passes and is offered for callers that opt into it
// explicitly.
func CubicToQuadratic(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	ctx := opts.Context
	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	lowered := 0
	verified := true

	for _, cmd := range commands {
		before := state.current
		p1, p2, end := state.advance(cmd)

		cubic, ok := cmd.(pathdata.Cubic)
		if !ok {
			out = append(out, cmd)
			continue
		}
		q1, ok := geom.CanLowerCubicToQuadratic(before, p1, p2, end, tol, ctx)
		if !ok {
			out = append(out, cmd)
			continue
		}
		q := pathdata.Quadratic{X1: toRelativeOrAbsolute(q1.X, cubic.Relative, before.X, ctx),
			Y1: toRelativeOrAbsolute(q1.Y, cubic.Relative, before.Y, ctx), X: cubic.X, Y: cubic.Y, Relative: cubic.Relative}
		gotQ1 := resolvePoint(q.X1, q.Y1, q.Relative, before)
		if !pointsWithinTol(gotQ1, q1, tol) {
			verified = false
		}
		out = append(out, q)
		lowered++
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    lowered,
	}
}

func toRelativeOrAbsolute(absVal decimal.Decimal, relative bool, currentAxis decimal.Decimal, ctx decimal.Context) decimal.Decimal {
	if !relative {
		return absVal
	}
	return ctx.Sub(absVal, currentAxis)
}
