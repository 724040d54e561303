package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/pathdata"
)

func TestRemoveZeroLengthDropsRepeatedPoint(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L20 0 L20 0 L20 10")
	diag := RemoveZeroLength(cmds, DefaultOptions())
	if !diag.Verified {
		t.Fatalf("expected verified result")
	}
	if diag.RemoveCount != 1 {
		t.Fatalf("expected 1 removed command, got %d", diag.RemoveCount)
	}
	if len(diag.Commands) != len(cmds)-1 {
		t.Fatalf("expected %d commands, got %d", len(cmds)-1, len(diag.Commands))
	}
}

func TestRemoveZeroLengthKeepsNonDegenerateCurve(t *testing.T) {
	// A cubic whose endpoint equals the start but whose controls bulge away
	// draws a visible loop and must survive.
	cmds := mustParsePath(t, "M0 0 C10 10 -10 10 0 0")
	diag := RemoveZeroLength(cmds, DefaultOptions())
	if diag.RemoveCount != 0 {
		t.Fatalf("expected the looping cubic to be kept, removed=%d", diag.RemoveCount)
	}
}

func TestRemoveZeroLengthDropsDegenerateCubic(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 C0 0 0 0 0 0 L10 0")
	diag := RemoveZeroLength(cmds, DefaultOptions())
	if diag.RemoveCount != 1 {
		t.Fatalf("expected the fully-degenerate cubic to be removed, got %d", diag.RemoveCount)
	}
	if _, ok := diag.Commands[0].(pathdata.Move); !ok {
		t.Fatalf("expected first command to remain Move")
	}
	if _, ok := diag.Commands[1].(pathdata.Line); !ok {
		t.Fatalf("expected second command to be the surviving Line")
	}
}

func TestRemoveZeroLengthNeverDropsClose(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 L10 10 Z")
	diag := RemoveZeroLength(cmds, DefaultOptions())
	if diag.RemoveCount != 0 {
		t.Fatalf("expected nothing to remove, got %d", diag.RemoveCount)
	}
	last := diag.Commands[len(diag.Commands)-1]
	if _, ok := last.(pathdata.Close); !ok {
		t.Fatalf("expected Close to survive untouched")
	}
}
