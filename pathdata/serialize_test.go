package pathdata

import "testing"

func TestSerializeBasic(t *testing.T) {
	cmds, err := ParsePath("M0 0 L100 0 L100 50 L0 50 Z")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{})
	want := "M 0 0 L 100 0 L 100 50 L 0 50 Z"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeLeadingZeroStripped(t *testing.T) {
	cmds, err := ParsePath("M0.5 -0.5 L1 1")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{})
	want := "M .5 -.5 L 1 1"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeMinify(t *testing.T) {
	cmds, err := ParsePath("M0 0 L10-5")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{Minify: true})
	want := "M0 0L10-5"
	if got != want {
		t.Errorf("Serialize(minify) = %q, want %q", got, want)
	}
}

func TestSerializeArcFlags(t *testing.T) {
	cmds, err := ParsePath("M0 0 A25 25 -30 0 1 50 -25")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{})
	want := "M 0 0 A 25 25 -30 0 1 50 -25"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeCollapseRepeatedLetters(t *testing.T) {
	cmds, err := ParsePath("M0 0 L10 0 L20 0 L20 10")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{Minify: true, CollapseRepeatedLetters: true})
	want := "M0 0L10 0 20 0 20 10"
	if got != want {
		t.Errorf("Serialize(collapse) = %q, want %q", got, want)
	}
}

func TestSerializeCollapseDoesNotMergeZ(t *testing.T) {
	cmds, err := ParsePath("M0 0 L10 0 Z")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{Minify: true, CollapseRepeatedLetters: true})
	want := "M0 0L10 0Z"
	if got != want {
		t.Errorf("Serialize(collapse) = %q, want %q", got, want)
	}
}

func TestSerializeCollapseNeedsSeparatorAcrossGroup(t *testing.T) {
	cmds, err := ParsePath("M0 0 L10 5 L-10 5")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{Minify: true, CollapseRepeatedLetters: true})
	want := "M0 0L10 5-10 5"
	if got != want {
		t.Errorf("Serialize(collapse) = %q, want %q", got, want)
	}
}

func TestFormatNumberRounding(t *testing.T) {
	cmds, err := ParsePath("M1.23456789 0")
	if err != nil {
		t.Fatalf("ParsePath error: %v", err)
	}
	got := Serialize(cmds, SerializeOptions{FractionalDigits: 3})
	want := "M 1.235 0"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}
