package decimal

import "testing"

func TestAddSub(t *testing.T) {
	a := MustParse("1.1")
	b := MustParse("2.2")
	if got := DefaultContext.Add(a, b); got.String() != "3.3" {
		t.Errorf("Add(1.1, 2.2) = %v, want 3.3", got)
	}
	if got := DefaultContext.Sub(b, a); got.String() != "1.1" {
		t.Errorf("Sub(2.2, 1.1) = %v, want 1.1", got)
	}
}

func TestAddCommutative(t *testing.T) {
	a := MustParse("123.456789")
	b := MustParse("-98.7654321")
	x := DefaultContext.Add(a, b)
	y := DefaultContext.Add(b, a)
	if !x.Equals(y) {
		t.Errorf("addition is not commutative: %v != %v", x, y)
	}
}

func TestMul(t *testing.T) {
	a := MustParse("2.5")
	b := MustParse("4")
	if got := DefaultContext.Mul(a, b); got.String() != "10" {
		t.Errorf("Mul(2.5, 4) = %v, want 10", got)
	}
}

func TestDiv(t *testing.T) {
	a := MustParse("10")
	b := MustParse("4")
	got, err := DefaultContext.Div(a, b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if got.String() != "2.5" {
		t.Errorf("Div(10, 4) = %v, want 2.5", got)
	}
}

func TestDivByZero(t *testing.T) {
	a := MustParse("1")
	zero := Zero()
	if _, err := DefaultContext.Div(a, zero); err == nil {
		t.Errorf("Div by zero: expected error, got none")
	}
}

func TestDivRepeatingDecimal(t *testing.T) {
	a := MustParse("1")
	b := MustParse("3")
	got, err := DefaultContext.Div(a, b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	want := MustParse("0." + repeat("3", 90))
	if !WithinTolerance(got, want, MustParse("1e-75")) {
		t.Errorf("1/3 = %v, want ~0.333...", got)
	}
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"4", "2"},
		{"9", "3"},
		{"2", "1.41421356237309504880168872420969807856967187537694807317667973799073247846210703885038753432764157"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ctx := Context{Precision: 80}
			got, err := ctx.Sqrt(MustParse(tt.in))
			if err != nil {
				t.Fatalf("Sqrt(%q) error: %v", tt.in, err)
			}
			want := MustParse(tt.want).Round(80)
			if !WithinTolerance(got, want, MustParse("1e-70")) {
				t.Errorf("Sqrt(%q) = %v, want ~%v", tt.in, got, want)
			}
		})
	}
}

func TestSqrtNegative(t *testing.T) {
	if _, err := DefaultContext.Sqrt(MustParse("-1")); err == nil {
		t.Errorf("Sqrt(-1): expected error, got none")
	}
}
