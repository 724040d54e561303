package decimal

import (
	"math"
	"math/big"

	"github.com/vectorforge/svgcore/cerr"
)

// Add returns a+b rounded to ctx's precision.
func (c Context) Add(a, b Decimal) Decimal {
	au, bu, exp := alignedUnscaled(a, b)
	sum := new(big.Int).Add(au, bu)
	u, e := round(sum, exp, c.precision())
	return Decimal{unscaled: u, exp: e}
}

// Sub returns a-b rounded to ctx's precision.
func (c Context) Sub(a, b Decimal) Decimal {
	return c.Add(a, b.Neg())
}

// Mul returns a*b rounded to ctx's precision.
func (c Context) Mul(a, b Decimal) Decimal {
	product := new(big.Int).Mul(a.unscaled, b.unscaled)
	u, e := round(product, a.exp+b.exp, c.precision())
	return Decimal{unscaled: u, exp: e}
}

// Div returns a/b rounded to ctx's precision. Division by zero fails with
// cerr.NumericDomain, as does Sqrt of a negative value.
func (c Context) Div(a, b Decimal) (Decimal, error) {
	if b.IsZero() {
		return Decimal{}, cerr.New(cerr.NumericDomain, "division by zero")
	}
	if a.IsZero() {
		return Zero(), nil
	}

	prec := c.precision()
	// Scale the dividend up so long division yields at least prec+guard
	// significant digits before rounding down to prec.
	workingDigits := prec + GuardDigits
	shift := workingDigits + numDigits(b.unscaled) - numDigits(a.unscaled) + 2
	if shift < 0 {
		shift = 0
	}
	numerator := scaleUp(new(big.Int).Abs(a.unscaled), shift)
	quotient := new(big.Int).Quo(numerator, new(big.Int).Abs(b.unscaled))
	if a.unscaled.Sign()*b.unscaled.Sign() < 0 {
		quotient.Neg(quotient)
	}
	exp := a.exp - b.exp - shift
	u, e := round(quotient, exp, prec)
	return Decimal{unscaled: u, exp: e}, nil
}

// MustDiv is Div, panicking on error. For call sites dividing by a
// compile-time-known nonzero constant (e.g. a fixed sample count), where a
// returned error would only ever indicate a bug, not a runtime condition.
func (c Context) MustDiv(a, b Decimal) Decimal {
	d, err := c.Div(a, b)
	if err != nil {
		panic("decimal: unreachable: " + err.Error())
	}
	return d
}

// Sqrt returns the square root of d rounded to ctx's precision, computed
// via Newton-Raphson at guard precision. Negative input fails with
// cerr.NumericDomain (this package never produces a complex result).
func (c Context) Sqrt(d Decimal) (Decimal, error) {
	if d.Sign() < 0 {
		return Decimal{}, cerr.New(cerr.NumericDomain, "square root of a negative value")
	}
	if d.IsZero() {
		return Zero(), nil
	}

	guard := Context{Precision: c.guardPrecision()}
	one := NewFromInt64(1)
	two := NewFromInt64(2)

	// Seed from a float64 approximation; Newton-Raphson roughly doubles
	// the number of correct digits per iteration, so a float64 seed
	// (~15 correct digits) converges to 200+ digits within ~5 iterations.
	x := NewFromFloat64(math.Sqrt(d.Float64()))
	if x.IsZero() || x.Sign() < 0 {
		x = one
	}

	iterations := 0
	for iterations < 64 {
		iterations++
		quotient, err := guard.Div(d, x)
		if err != nil {
			return Decimal{}, err
		}
		sum := guard.Add(x, quotient)
		next, err := guard.Div(sum, two)
		if err != nil {
			return Decimal{}, err
		}
		diff := guard.Sub(next, x).Abs()
		x = next
		if diff.LessThan(epsilonAt(guard.precision())) {
			break
		}
	}
	return x.Round(c.precision()), nil
}

// epsilonAt returns a small Decimal (10^-(prec-2)) used as a Newton
// iteration convergence threshold at the given working precision.
func epsilonAt(prec int) Decimal {
	return Decimal{unscaled: big.NewInt(1), exp: -(prec - 2)}
}
