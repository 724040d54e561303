package decimal

import "testing"

func TestSinCosZero(t *testing.T) {
	zero := Zero()
	if got := DefaultContext.Sin(zero); !got.Equals(zero) {
		t.Errorf("Sin(0) = %v, want 0", got)
	}
	one := NewFromInt64(1)
	if got := DefaultContext.Cos(zero); !WithinTolerance(got, one, MustParse("1e-70")) {
		t.Errorf("Cos(0) = %v, want 1", got)
	}
}

func TestSinCosPiOverTwo(t *testing.T) {
	ctx := Context{Precision: 50}
	piOverTwo, err := ctx.Div(ctx.Pi(), NewFromInt64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	one := NewFromInt64(1)
	zero := Zero()
	tol := MustParse("1e-40")

	if got := ctx.Sin(piOverTwo); !WithinTolerance(got, one, tol) {
		t.Errorf("Sin(pi/2) = %v, want ~1", got)
	}
	if got := ctx.Cos(piOverTwo); !WithinTolerance(got, zero, tol) {
		t.Errorf("Cos(pi/2) = %v, want ~0", got)
	}
}

func TestAcosBounds(t *testing.T) {
	ctx := Context{Precision: 50}
	zero := Zero()
	one := NewFromInt64(1)

	got, err := ctx.Acos(one)
	if err != nil {
		t.Fatalf("Acos(1) error: %v", err)
	}
	if !got.Equals(zero) {
		t.Errorf("Acos(1) = %v, want 0", got)
	}

	got, err = ctx.Acos(one.Neg())
	if err != nil {
		t.Fatalf("Acos(-1) error: %v", err)
	}
	if !WithinTolerance(got, ctx.Pi(), MustParse("1e-40")) {
		t.Errorf("Acos(-1) = %v, want pi", got)
	}
}

func TestAcosRoundTrip(t *testing.T) {
	ctx := Context{Precision: 40}
	half := MustParse("0.5")
	theta, err := ctx.Acos(half)
	if err != nil {
		t.Fatalf("Acos(0.5) error: %v", err)
	}
	cosTheta := ctx.Cos(theta)
	if !WithinTolerance(cosTheta, half, MustParse("1e-30")) {
		t.Errorf("cos(acos(0.5)) = %v, want ~0.5", cosTheta)
	}
}

func TestAcosOutOfDomain(t *testing.T) {
	if _, err := DefaultContext.Acos(NewFromInt64(2)); err == nil {
		t.Errorf("Acos(2): expected error, got none")
	}
}
