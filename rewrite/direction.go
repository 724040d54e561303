package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// ChooseAbsoluteOrRelative picks, independently for each coordinate-bearing
// command, whichever of its absolute or relative encoding serializes to
// fewer bytes at the configured precision, breaking ties toward absolute.
// Close carries no coordinates and is left untouched. Verification
// reconstructs the chosen command's absolute endpoint from its own fields
// and the running current point and compares it to the endpoint the
// original command produced — a direct check, not a call into a
// relative<->absolute conversion helper that could recurse into this pass.
func ChooseAbsoluteOrRelative(commands []pathdata.Command, opts Options) Diagnostic {
	ctx := opts.Context
	tol := opts.Tolerance
	serOpts := pathdata.SerializeOptions{Minify: true, FractionalDigits: opts.FractionalDigits}

	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	flipped := 0
	savedBytes := 0
	verified := true

	for _, cmd := range commands {
		before := state.current
		p1, p2, end := state.advance(cmd)

		if _, isClose := cmd.(pathdata.Close); isClose {
			out = append(out, cmd)
			continue
		}

		abs := makeVariant(cmd, before, p1, p2, end, false, ctx)
		rel := makeVariant(cmd, before, p1, p2, end, true, ctx)

		absLen := len(pathdata.Serialize([]pathdata.Command{abs}, serOpts))
		relLen := len(pathdata.Serialize([]pathdata.Command{rel}, serOpts))

		chosen := abs
		if relLen < absLen {
			chosen = rel
			flipped++
			savedBytes += absLen - relLen
		}

		gotEnd := pathdata.EndPoint(chosen, before, before)
		if !pointsWithinTol(gotEnd, end, tol) {
			verified = false
		}
		out = append(out, chosen)
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    flipped,
		HasSavedBytes: true,
		SavedBytes:    savedBytes,
	}
}

// makeVariant rebuilds cmd with the requested relative-ness, recomputing
// every coordinate field as an offset from before (relative) or as the
// already-resolved absolute value (absolute). p1/p2/end are the command's
// already-resolved control/end points.
func makeVariant(cmd pathdata.Command, before, p1, p2, end pathdata.Point, relative bool, ctx decimal.Context) pathdata.Command {
	pick := func(abs, base decimal.Decimal) decimal.Decimal {
		if !relative {
			return abs
		}
		return ctx.Sub(abs, base)
	}

	switch c := cmd.(type) {
	case pathdata.Move:
		return pathdata.Move{X: pick(end.X, before.X), Y: pick(end.Y, before.Y), Relative: relative}
	case pathdata.Line:
		return pathdata.Line{X: pick(end.X, before.X), Y: pick(end.Y, before.Y), Relative: relative}
	case pathdata.Horizontal:
		return pathdata.Horizontal{X: pick(end.X, before.X), Relative: relative}
	case pathdata.Vertical:
		return pathdata.Vertical{Y: pick(end.Y, before.Y), Relative: relative}
	case pathdata.Cubic:
		return pathdata.Cubic{
			X1: pick(p1.X, before.X), Y1: pick(p1.Y, before.Y),
			X2: pick(p2.X, before.X), Y2: pick(p2.Y, before.Y),
			X: pick(end.X, before.X), Y: pick(end.Y, before.Y),
			Relative: relative,
		}
	case pathdata.SmoothCubic:
		return pathdata.SmoothCubic{
			X2: pick(p2.X, before.X), Y2: pick(p2.Y, before.Y),
			X: pick(end.X, before.X), Y: pick(end.Y, before.Y),
			Relative: relative,
		}
	case pathdata.Quadratic:
		return pathdata.Quadratic{
			X1: pick(p1.X, before.X), Y1: pick(p1.Y, before.Y),
			X: pick(end.X, before.X), Y: pick(end.Y, before.Y),
			Relative: relative,
		}
	case pathdata.SmoothQuadratic:
		return pathdata.SmoothQuadratic{X: pick(end.X, before.X), Y: pick(end.Y, before.Y), Relative: relative}
	case pathdata.Arc:
		return pathdata.Arc{
			RX: c.RX, RY: c.RY, Rotation: c.Rotation, LargeArc: c.LargeArc, Sweep: c.Sweep,
			X: pick(end.X, before.X), Y: pick(end.Y, before.Y),
			Relative: relative,
		}
	default:
		return cmd
	}
}
