package rewrite

import (
	"testing"

	"github.com/vectorforge/svgcore/pathdata"
)

func TestChooseAbsoluteOrRelativePrefersShorterRelative(t *testing.T) {
	// Absolute endpoint (1000,1000) is long; the relative delta from
	// (999,999) is a single-digit "1,1" — strictly shorter.
	cmds := mustParsePath(t, "M999 999 L1000 1000")
	diag := ChooseAbsoluteOrRelative(cmds, DefaultOptions())
	if !diag.Verified {
		t.Fatalf("expected verified rewrite")
	}
	line, ok := diag.Commands[1].(pathdata.Line)
	if !ok {
		t.Fatalf("expected Line, got %T", diag.Commands[1])
	}
	if !line.Relative {
		t.Fatalf("expected the shorter relative encoding to be chosen")
	}
	if diag.MergeCount != 1 {
		t.Fatalf("expected 1 command flipped to relative, got %d", diag.MergeCount)
	}
}

func TestChooseAbsoluteOrRelativeTiesPreferAbsolute(t *testing.T) {
	// From (0,0) to (5,5): absolute "5,5" and relative "5,5" are equal
	// length, so absolute must win.
	cmds := mustParsePath(t, "M0 0 L5 5")
	diag := ChooseAbsoluteOrRelative(cmds, DefaultOptions())
	line, ok := diag.Commands[1].(pathdata.Line)
	if !ok {
		t.Fatalf("expected Line, got %T", diag.Commands[1])
	}
	if line.Relative {
		t.Fatalf("expected a tie to resolve to absolute")
	}
}

func TestChooseAbsoluteOrRelativeLeavesCloseAlone(t *testing.T) {
	cmds := mustParsePath(t, "M0 0 L10 0 Z")
	diag := ChooseAbsoluteOrRelative(cmds, DefaultOptions())
	if _, ok := diag.Commands[2].(pathdata.Close); !ok {
		t.Fatalf("expected Close to pass through untouched, got %T", diag.Commands[2])
	}
}
