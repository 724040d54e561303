package geom

import "testing"

func TestParseViewBox(t *testing.T) {
	vb, err := ParseViewBox("0 0 100 100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vb.Width.String() != "100" || vb.Height.String() != "100" {
		t.Fatalf("unexpected dimensions: %+v", vb)
	}
	if !vb.Verified {
		t.Fatalf("expected verified viewBox")
	}
}

func TestParseViewBoxCommaSeparated(t *testing.T) {
	vb, err := ParseViewBox("10,20,30,40")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vb.X.String() != "10" || vb.Y.String() != "20" || vb.Width.String() != "30" || vb.Height.String() != "40" {
		t.Fatalf("unexpected viewBox: %+v", vb)
	}
}

func TestParseViewBoxNonPositiveDimension(t *testing.T) {
	if _, err := ParseViewBox("0 0 0 100"); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := ParseViewBox("0 0 100 -5"); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestParseViewBoxWrongFieldCount(t *testing.T) {
	if _, err := ParseViewBox("0 0 100"); err == nil {
		t.Fatalf("expected error for too few fields")
	}
	if _, err := ParseViewBox("0 0 100 100 5"); err == nil {
		t.Fatalf("expected error for too many fields")
	}
}

func TestViewBoxStringRoundTrip(t *testing.T) {
	vb, err := ParseViewBox("0 0 200.5 100.25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	reparsed, err := ParseViewBox(vb.String())
	if err != nil {
		t.Fatalf("unexpected error reparsing: %v", err)
	}
	if !reparsed.Width.Equals(vb.Width) || !reparsed.Height.Equals(vb.Height) {
		t.Fatalf("round trip mismatch: %+v vs %+v", vb, reparsed)
	}
}
