package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// NumericFormat rounds every coordinate field in the stream to
// opts.FractionalDigits, the same rounding Serialize applies at output
// time, so a caller inspecting Diagnostic.Commands sees exactly the values
// that will be written out rather than the unrounded arithmetic result of
// the passes before it. Verification compares each rounded field against
// its original value: RoundToFractionalDigits moves a value by at most half
// a unit in the last configured digit, so Verified = false here means
// tolerance is configured tighter than the requested precision can satisfy,
// not a bug in the rounding itself.
func NumericFormat(commands []pathdata.Command, opts Options) Diagnostic {
	k := opts.FractionalDigits
	if k <= 0 {
		k = 6
	}
	tol := opts.Tolerance
	out := make([]pathdata.Command, len(commands))
	verified := true
	rounded := 0

	for i, cmd := range commands {
		nc, changed := roundCommand(cmd, k)
		out[i] = nc
		if changed {
			rounded++
		}
		if !fieldsWithinTol(cmd, nc, tol) {
			verified = false
		}
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    rounded,
	}
}

func roundAxis(d decimal.Decimal, k int) (decimal.Decimal, bool) {
	out := d.RoundToFractionalDigits(k)
	return out, !out.Equals(d)
}

// roundCommand returns a copy of cmd with every numeric field rounded to k
// fractional digits, and whether any field actually changed.
func roundCommand(cmd pathdata.Command, k int) (pathdata.Command, bool) {
	changed := false
	mark := func(c bool) {
		if c {
			changed = true
		}
	}

	switch c := cmd.(type) {
	case pathdata.Move:
		var cx, cy bool
		c.X, cx = roundAxis(c.X, k)
		c.Y, cy = roundAxis(c.Y, k)
		mark(cx || cy)
		return c, changed
	case pathdata.Line:
		var cx, cy bool
		c.X, cx = roundAxis(c.X, k)
		c.Y, cy = roundAxis(c.Y, k)
		mark(cx || cy)
		return c, changed
	case pathdata.Horizontal:
		var cx bool
		c.X, cx = roundAxis(c.X, k)
		mark(cx)
		return c, changed
	case pathdata.Vertical:
		var cy bool
		c.Y, cy = roundAxis(c.Y, k)
		mark(cy)
		return c, changed
	case pathdata.Cubic:
		var a, b, d, e, f, g bool
		c.X1, a = roundAxis(c.X1, k)
		c.Y1, b = roundAxis(c.Y1, k)
		c.X2, d = roundAxis(c.X2, k)
		c.Y2, e = roundAxis(c.Y2, k)
		c.X, f = roundAxis(c.X, k)
		c.Y, g = roundAxis(c.Y, k)
		mark(a || b || d || e || f || g)
		return c, changed
	case pathdata.SmoothCubic:
		var a, b, d, e bool
		c.X2, a = roundAxis(c.X2, k)
		c.Y2, b = roundAxis(c.Y2, k)
		c.X, d = roundAxis(c.X, k)
		c.Y, e = roundAxis(c.Y, k)
		mark(a || b || d || e)
		return c, changed
	case pathdata.Quadratic:
		var a, b, d, e bool
		c.X1, a = roundAxis(c.X1, k)
		c.Y1, b = roundAxis(c.Y1, k)
		c.X, d = roundAxis(c.X, k)
		c.Y, e = roundAxis(c.Y, k)
		mark(a || b || d || e)
		return c, changed
	case pathdata.SmoothQuadratic:
		var cx, cy bool
		c.X, cx = roundAxis(c.X, k)
		c.Y, cy = roundAxis(c.Y, k)
		mark(cx || cy)
		return c, changed
	case pathdata.Arc:
		var rx, ry, rot, x, y bool
		c.RX, rx = roundAxis(c.RX, k)
		c.RY, ry = roundAxis(c.RY, k)
		c.Rotation, rot = roundAxis(c.Rotation, k)
		c.X, x = roundAxis(c.X, k)
		c.Y, y = roundAxis(c.Y, k)
		mark(rx || ry || rot || x || y)
		return c, changed
	default:
		return cmd, false
	}
}

// fieldsWithinTol reports whether every rounded field of rewritten differs
// from original by at most tol, type-switching on the shared concrete type.
func fieldsWithinTol(original, rewritten pathdata.Command, tol decimal.Decimal) bool {
	near := func(a, b decimal.Decimal) bool { return decimal.DefaultContext.Sub(a, b).Abs().LessThanOrEqual(tol) }

	switch o := original.(type) {
	case pathdata.Move:
		n := rewritten.(pathdata.Move)
		return near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.Line:
		n := rewritten.(pathdata.Line)
		return near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.Horizontal:
		n := rewritten.(pathdata.Horizontal)
		return near(o.X, n.X)
	case pathdata.Vertical:
		n := rewritten.(pathdata.Vertical)
		return near(o.Y, n.Y)
	case pathdata.Cubic:
		n := rewritten.(pathdata.Cubic)
		return near(o.X1, n.X1) && near(o.Y1, n.Y1) && near(o.X2, n.X2) && near(o.Y2, n.Y2) && near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.SmoothCubic:
		n := rewritten.(pathdata.SmoothCubic)
		return near(o.X2, n.X2) && near(o.Y2, n.Y2) && near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.Quadratic:
		n := rewritten.(pathdata.Quadratic)
		return near(o.X1, n.X1) && near(o.Y1, n.Y1) && near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.SmoothQuadratic:
		n := rewritten.(pathdata.SmoothQuadratic)
		return near(o.X, n.X) && near(o.Y, n.Y)
	case pathdata.Arc:
		n := rewritten.(pathdata.Arc)
		return near(o.RX, n.RX) && near(o.RY, n.RY) && near(o.Rotation, n.Rotation) && near(o.X, n.X) && near(o.Y, n.Y)
	default:
		return true
	}
}
