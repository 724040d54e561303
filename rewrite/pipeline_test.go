package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// TestPipelineRewritesRectangleComposition exercises the default pipeline on
// a rectangle traced with a redundant colinear waypoint and a duplicated
// zero-length segment, confirming the composed passes shrink it to an
// equivalent form: the duplicate point gone, the axis-aligned segments as
// H/V shorthand, and the subpath closed with Z. The exact encoding is not
// pinned (the source allows "equivalent minimal form"); what's checked is
// that every corner of the traced rectangle survives within tolerance.
func TestPipelineRewritesRectangleComposition(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L20 0 L20 0 L20 10 L0 10 Z")
	out, steps := Pipeline(cmds, DefaultOptions())

	for _, s := range steps {
		if !s.Diagnostic.Verified {
			t.Fatalf("pass %s failed to verify", s.Name)
		}
	}

	if last := out[len(out)-1]; letterOf(last) != 'Z' {
		t.Fatalf("expected stream to end with Close, got %c", letterOf(last))
	}

	sawH, sawV := false, false
	for _, c := range out {
		switch c.(type) {
		case pathdata.Horizontal:
			sawH = true
		case pathdata.Vertical:
			sawV = true
		case pathdata.Line:
			t.Fatalf("expected no axis-aligned Line to survive shorthand, found one")
		}
	}
	if !sawH || !sawV {
		t.Fatalf("expected both H and V shorthand commands, sawH=%v sawV=%v", sawH, sawV)
	}

	corners := traceCorners(t, out)
	want := []pathdata.Point{pt2(0, 0), pt2(20, 0), pt2(20, 10), pt2(0, 10)}
	for _, w := range want {
		if !visitsNear(corners, w, decimal.DefaultTolerance) {
			t.Fatalf("expected rewritten path to pass through %+v, corners=%+v", w, corners)
		}
	}
}

func TestPipelineIdempotent(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L20 0 L20 0 L20 10 L0 10 Z")
	once, _ := Pipeline(cmds, DefaultOptions())
	twice, steps := Pipeline(once, DefaultOptions())

	for _, s := range steps {
		if !s.Diagnostic.Verified {
			t.Fatalf("second pipeline pass %s failed to verify", s.Name)
		}
	}
	if len(once) != len(twice) {
		t.Fatalf("expected idempotent command count, first=%d second=%d", len(once), len(twice))
	}
	for i := range once {
		if letterOf(once[i]) != letterOf(twice[i]) {
			t.Fatalf("expected idempotent command letters at %d: %c vs %c", i, letterOf(once[i]), letterOf(twice[i]))
		}
	}
}

func letterOf(cmd pathdata.Command) byte { return cmd.Letter() }

func pt2(x, y int64) pathdata.Point {
	return pathdata.Point{X: decimal.NewFromInt64(x), Y: decimal.NewFromInt64(y)}
}

func traceCorners(t *testing.T, cmds []pathdata.Command) []pathdata.Point {
	t.Helper()
	state := newCursorState()
	var pts []pathdata.Point
	for _, cmd := range cmds {
		_, _, end := state.advance(cmd)
		pts = append(pts, end)
	}
	return pts
}

func visitsNear(pts []pathdata.Point, target pathdata.Point, tol decimal.Decimal) bool {
	for _, p := range pts {
		if pointsWithinTol(p, target, tol) {
			return true
		}
	}
	return false
}
