package decimal

import (
	"math"

	"github.com/vectorforge/svgcore/cerr"
)

// piDigits is pi to 200 decimal places, used to seed range reduction and
// the Taylor summations below. MaxPrecision + GuardDigits is 210, so at
// working precisions above 200 digits this constant, not the context,
// limits the accuracy of the reduction.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196"

var pi = MustParse(piDigits)
var twoPi = DefaultContext.mulInt(pi, 2)

func (c Context) mulInt(d Decimal, n int64) Decimal {
	return c.Mul(d, NewFromInt64(n))
}

// Pi returns pi rounded to ctx's precision.
func (c Context) Pi() Decimal {
	return pi.Round(c.precision())
}

// Sin returns sin(x) (x in radians) rounded to ctx's precision, computed at
// precision+guard internally per spec.md's trigonometric accuracy rule.
func (c Context) Sin(x Decimal) Decimal {
	guard := Context{Precision: c.guardPrecision()}
	reduced := guard.reduceAngle(x)
	return guard.sinSeries(reduced).Round(c.precision())
}

// Cos returns cos(x) (x in radians) rounded to ctx's precision.
func (c Context) Cos(x Decimal) Decimal {
	guard := Context{Precision: c.guardPrecision()}
	reduced := guard.reduceAngle(x)
	return guard.cosSeries(reduced).Round(c.precision())
}

// Acos returns the principal value of acos(x) in [0, pi], rounded to ctx's
// precision. x outside [-1, 1] fails with cerr.NumericDomain. Computed by
// Newton-Raphson refinement of a float64 seed against Sin/Cos at guard
// precision, since no closed-form series converges acceptably near ±1.
func (c Context) Acos(x Decimal) (Decimal, error) {
	one := NewFromInt64(1)
	if x.Abs().GreaterThan(one) {
		return Decimal{}, cerr.New(cerr.NumericDomain, "acos argument outside [-1, 1]")
	}

	guard := Context{Precision: c.guardPrecision()}
	if x.Equals(one) {
		return Zero(), nil
	}
	if x.Equals(one.Neg()) {
		return guard.Pi().Round(c.precision()), nil
	}

	theta := NewFromFloat64(math.Acos(x.Float64()))
	threshold := epsilonAt(guard.precision())

	for i := 0; i < 64; i++ {
		cosT := guard.cosSeries(guard.reduceAngle(theta))
		sinT := guard.sinSeries(guard.reduceAngle(theta))
		if sinT.Abs().LessThan(threshold) {
			break
		}
		diff := guard.Sub(cosT, x)
		delta, err := guard.Div(diff, sinT)
		if err != nil {
			return Decimal{}, err
		}
		next := guard.Add(theta, delta)
		converged := guard.Sub(next, theta).Abs().LessThan(threshold)
		theta = next
		if converged {
			break
		}
	}
	return theta.Round(c.precision()), nil
}

// reduceAngle reduces x to (-pi, pi] by subtracting the nearest multiple of
// 2*pi, so the Taylor summations below converge quickly regardless of how
// large the input angle is.
func (c Context) reduceAngle(x Decimal) Decimal {
	twoPiAtPrec := twoPi.Round(c.precision())
	quotient, err := c.Div(x, twoPiAtPrec)
	if err != nil {
		return x
	}
	n := quotient.roundToInt()
	reduced := c.Sub(x, c.Mul(n, twoPiAtPrec))
	piAtPrec := c.Pi()
	if reduced.GreaterThan(piAtPrec) {
		reduced = c.Sub(reduced, twoPiAtPrec)
	} else if reduced.LessThanOrEqual(piAtPrec.Neg()) {
		reduced = c.Add(reduced, twoPiAtPrec)
	}
	return reduced
}

// roundToInt rounds d to the nearest integer, half-up, returning it as a
// (zero-exponent) Decimal.
func (d Decimal) roundToInt() Decimal {
	return d.RoundToFractionalDigits(0)
}

// sinSeries sums the Maclaurin series for sin(x) at ctx's precision. Valid
// for any x but converges fastest for |x| <= pi, which reduceAngle ensures.
func (c Context) sinSeries(x Decimal) Decimal {
	threshold := epsilonAt(c.precision())
	xSquared := c.Mul(x, x)

	term := x
	sum := x
	for n := 0; n < 200; n++ {
		denom := NewFromInt64(int64((2*n + 2) * (2*n + 3)))
		next, err := c.Div(c.Mul(term, xSquared).Neg(), denom)
		if err != nil {
			break
		}
		term = next
		sum = c.Add(sum, term)
		if term.Abs().LessThan(threshold) {
			break
		}
	}
	return sum
}

// cosSeries sums the Maclaurin series for cos(x) at ctx's precision.
func (c Context) cosSeries(x Decimal) Decimal {
	threshold := epsilonAt(c.precision())
	xSquared := c.Mul(x, x)

	term := NewFromInt64(1)
	sum := term
	for n := 0; n < 200; n++ {
		denom := NewFromInt64(int64((2*n + 1) * (2*n + 2)))
		next, err := c.Div(c.Mul(term, xSquared).Neg(), denom)
		if err != nil {
			break
		}
		term = next
		sum = c.Add(sum, term)
		if term.Abs().LessThan(threshold) {
			break
		}
	}
	return sum
}
