package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

func TestStraightCurvesToLinesFlattensColinearCubic(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 C5 5 10 10 15 15")
	diag := StraightCurvesToLines(cmds, DefaultOptions())
	if !diag.Verified {
		t.Fatalf("expected verified flattening")
	}
	if diag.MergeCount != 1 {
		t.Fatalf("expected 1 curve flattened, got %d", diag.MergeCount)
	}
	line, ok := diag.Commands[1].(pathdata.Line)
	if !ok {
		t.Fatalf("expected second command to become a Line, got %T", diag.Commands[1])
	}
	if !line.X.Equals(decimal.NewFromInt64(15)) {
		t.Fatalf("unexpected flattened endpoint x=%s", line.X)
	}
}

func TestStraightCurvesToLinesKeepsBulgingCubic(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 C0 100 100 100 100 0")
	diag := StraightCurvesToLines(cmds, DefaultOptions())
	if diag.MergeCount != 0 {
		t.Fatalf("expected bulging cubic to be kept, flattened=%d", diag.MergeCount)
	}
	if _, ok := diag.Commands[1].(pathdata.Cubic); !ok {
		t.Fatalf("expected cubic to survive, got %T", diag.Commands[1])
	}
}

func TestStraightCurvesToLinesFlattensColinearQuadratic(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 Q5 5 10 10")
	diag := StraightCurvesToLines(cmds, DefaultOptions())
	if diag.MergeCount != 1 {
		t.Fatalf("expected 1 quadratic flattened, got %d", diag.MergeCount)
	}
	if _, ok := diag.Commands[1].(pathdata.Line); !ok {
		t.Fatalf("expected Line, got %T", diag.Commands[1])
	}
}
