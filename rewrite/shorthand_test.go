package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/pathdata"
)

func TestLineShorthandsHorizontalAndVertical(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L10 10")
	diag := LineShorthands(cmds, DefaultOptions())
	if !diag.Verified {
		t.Fatalf("expected verified rewrite")
	}
	if diag.MergeCount != 2 {
		t.Fatalf("expected 2 commands shortened, got %d", diag.MergeCount)
	}
	if _, ok := diag.Commands[1].(pathdata.Horizontal); !ok {
		t.Fatalf("expected Horizontal, got %T", diag.Commands[1])
	}
	if _, ok := diag.Commands[2].(pathdata.Vertical); !ok {
		t.Fatalf("expected Vertical, got %T", diag.Commands[2])
	}
}

func TestLineShorthandsLeavesDiagonalAlone(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 10")
	diag := LineShorthands(cmds, DefaultOptions())
	if diag.MergeCount != 0 {
		t.Fatalf("expected diagonal line untouched, got %d merges", diag.MergeCount)
	}
	if _, ok := diag.Commands[1].(pathdata.Line); !ok {
		t.Fatalf("expected Line to survive, got %T", diag.Commands[1])
	}
}

func TestLineToZReplacesClosingLine(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L10 10 L0 10 L0 0")
	diag := LineToZ(cmds, DefaultOptions())
	if !diag.Verified {
		t.Fatalf("expected verified rewrite")
	}
	if diag.MergeCount != 1 {
		t.Fatalf("expected 1 line converted to Z, got %d", diag.MergeCount)
	}
	last := diag.Commands[len(diag.Commands)-1]
	if _, ok := last.(pathdata.Close); !ok {
		t.Fatalf("expected final command to become Close, got %T", last)
	}
}

func TestLineToZSkipsWhenAlreadyClosed(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L10 10 L0 10 Z")
	diag := LineToZ(cmds, DefaultOptions())
	if diag.MergeCount != 0 {
		t.Fatalf("expected no change when Z already follows, got %d", diag.MergeCount)
	}
}

func TestLineToZSkipsWhenNotReturningToStart(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L20 5")
	diag := LineToZ(cmds, DefaultOptions())
	if diag.MergeCount != 0 {
		t.Fatalf("expected no change when endpoint isn't near subpath start, got %d", diag.MergeCount)
	}
}
