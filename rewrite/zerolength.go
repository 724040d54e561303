package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// RemoveZeroLength drops any drawing command (everything but M and Z) whose
// entire payload — endpoint and, for curves, every control point — coincides
// with the current point within tolerance: a segment that would draw nothing
// a renderer could distinguish from no segment at all. Z is never dropped,
// since it carries the close-path semantics (and any fill/stroke join it
// implies) independent of how far it travels.
func RemoveZeroLength(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	removed := 0

	for _, cmd := range commands {
		before := state.current
		p1, p2, end := state.advance(cmd)

		if isZeroLength(cmd, before, p1, p2, end, tol) {
			removed++
			continue
		}
		out = append(out, cmd)
	}

	// Re-run the same test over the result: a correct pass leaves nothing
	// further to remove, which is the direct-reconstruction check for this
	// pass rather than a round trip through a sibling transform.
	verified := removed == 0 || countRemovable(out, tol) == 0

	return Diagnostic{
		Commands:       out,
		Verified:       verified,
		HasRemoveCount: true,
		RemoveCount:    removed,
	}
}

func isZeroLength(cmd pathdata.Command, before, p1, p2, end pathdata.Point, tol decimal.Decimal) bool {
	switch cmd.(type) {
	case pathdata.Move, pathdata.Close:
		return false
	case pathdata.Cubic, pathdata.SmoothCubic:
		return pointsWithinTol(end, before, tol) && pointsWithinTol(p1, before, tol) && pointsWithinTol(p2, before, tol)
	case pathdata.Quadratic, pathdata.SmoothQuadratic:
		return pointsWithinTol(end, before, tol) && pointsWithinTol(p1, before, tol)
	default: // Line, Horizontal, Vertical, Arc
		return pointsWithinTol(end, before, tol)
	}
}

func countRemovable(commands []pathdata.Command, tol decimal.Decimal) int {
	state := newCursorState()
	n := 0
	for _, cmd := range commands {
		before := state.current
		p1, p2, end := state.advance(cmd)
		if isZeroLength(cmd, before, p1, p2, end, tol) {
			n++
		}
	}
	return n
}
