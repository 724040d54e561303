// Package decimal provides arbitrary-precision signed decimal arithmetic.
//
// Precision is not a performance optimization here — it is a correctness
// property. Every downstream subsystem (bounding boxes, Bézier sampling,
// path rewriting) depends on a + b == b + a holding exactly and on the
// absence of round-to-even float drift across nested transforms. No decimal
// library appears anywhere in the example pack this repository was grown
// from (see DESIGN.md); this type is built directly on math/big, the
// nearest standard-library tool for exact arbitrary-precision arithmetic,
// storing a sign-carrying significand and a decimal exponent exactly as
// spec.md's own design notes suggest.
//
// Conversions from native floating point happen only at system boundaries
// (attribute parsing, final serialization) — never inside the geometric or
// rewriting engines.
package decimal

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// DefaultPrecision is the number of significant digits carried when a
// Context specifies none.
const DefaultPrecision = 80

// GuardDigits is the extra precision trigonometric operations compute at
// internally before rounding down to the requested precision.
const GuardDigits = 10

// MaxPrecision bounds a configurable Context.Precision.
const MaxPrecision = 200

// Decimal is an arbitrary-precision signed decimal value: unscaled * 10^exp.
// The zero value is not a valid Decimal; use Zero() or a parsing/conversion
// constructor. Decimal is treated as a value type by convention — no
// exported method mutates the *big.Int in place.
type Decimal struct {
	unscaled *big.Int
	exp      int
}

// Context carries the precision (significant digits) operations are
// rounded to. It is passed explicitly into every arithmetic call rather
// than held as global state, per the core's "no persisted state" design.
type Context struct {
	Precision int
}

// DefaultContext rounds to DefaultPrecision significant digits.
var DefaultContext = Context{Precision: DefaultPrecision}

func (c Context) precision() int {
	if c.Precision <= 0 {
		return DefaultPrecision
	}
	return c.Precision
}

func (c Context) guardPrecision() int {
	return c.precision() + GuardDigits
}

// Zero returns the Decimal 0.
func Zero() Decimal {
	return Decimal{unscaled: big.NewInt(0), exp: 0}
}

// NewFromInt64 constructs a Decimal from an integer.
func NewFromInt64(v int64) Decimal {
	return Decimal{unscaled: big.NewInt(v), exp: 0}
}

// NewFromFloat64 constructs a Decimal from a float64. This is a system
// boundary conversion (attribute parsing) — never used internally by the
// geometric engine or rewriter, which operate on Decimal throughout.
func NewFromFloat64(v float64) Decimal {
	d, err := Parse(strconv.FormatFloat(v, 'g', -1, 64))
	if err != nil {
		// strconv's own formatting is always a valid decimal literal.
		panic("decimal: unreachable: " + err.Error())
	}
	return d
}

// Float64 converts d to the nearest float64. A system-boundary conversion
// for final serialization or interop with non-Decimal collaborators.
func (d Decimal) Float64() float64 {
	f := new(big.Float).SetPrec(256).SetInt(d.unscaled)
	if d.exp != 0 {
		scale := new(big.Float).SetPrec(256)
		ten := big.NewFloat(10)
		scale.SetInt64(1)
		if d.exp > 0 {
			for i := 0; i < d.exp; i++ {
				scale.Mul(scale, ten)
			}
			f.Mul(f, scale)
		} else {
			for i := 0; i < -d.exp; i++ {
				scale.Mul(scale, ten)
			}
			f.Quo(f, scale)
		}
	}
	out, _ := f.Float64()
	return out
}

// Parse parses a decimal literal: optional sign, digits, optional '.'
// fraction, optional [eE][sign]exponent. Whitespace is trimmed. This is
// the numeric-literal grammar shared with the path-data number scanner
// (pathdata.scanNumber) minus the path grammar's comma/letter terminators.
func Parse(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("decimal: empty literal")
	}

	i := 0
	neg := false
	if s[i] == '+' || s[i] == '-' {
		neg = s[i] == '-'
		i++
	}

	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := s[start:i]

	fracDigits := ""
	if i < len(s) && s[i] == '.' {
		i++
		fstart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		fracDigits = s[fstart:i]
	}

	if intDigits == "" && fracDigits == "" {
		return Decimal{}, fmt.Errorf("decimal: %q has no digits", s)
	}

	exp := 0
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expStart := i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digitStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == digitStart {
			return Decimal{}, fmt.Errorf("decimal: %q has malformed exponent", s)
		}
		e, err := strconv.Atoi(s[expStart:i])
		if err != nil {
			return Decimal{}, fmt.Errorf("decimal: %q has malformed exponent: %w", s, err)
		}
		exp = e
	}

	if i != len(s) {
		return Decimal{}, fmt.Errorf("decimal: %q has trailing garbage at index %d", s, i)
	}

	digits := intDigits + fracDigits
	if digits == "" {
		digits = "0"
	}
	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("decimal: %q is not a valid numeral", s)
	}
	if neg {
		unscaled.Neg(unscaled)
	}

	return Decimal{unscaled: unscaled, exp: exp - len(fracDigits)}, nil
}

// MustParse is Parse, panicking on error. Intended for package-level
// constants built from literal strings.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsFinite always reports true: this package never constructs an infinite
// or NaN value, so every Decimal obtained from a successful operation is
// finite by construction. Domain failures (÷0, √negative) are returned as
// errors instead of producing a non-finite result.
func (d Decimal) IsFinite() bool { return true }

// Sign returns -1, 0, or 1.
func (d Decimal) Sign() int {
	return d.unscaled.Sign()
}

// IsZero reports whether d == 0.
func (d Decimal) IsZero() bool {
	return d.unscaled.Sign() == 0
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{unscaled: new(big.Int).Neg(d.unscaled), exp: d.exp}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.unscaled.Sign() < 0 {
		return d.Neg()
	}
	return d
}

// alignedUnscaled returns the two significands scaled to a common exponent
// (the smaller of the two), for comparison and addition.
func alignedUnscaled(a, b Decimal) (au, bu *big.Int, exp int) {
	exp = a.exp
	if b.exp < exp {
		exp = b.exp
	}
	au = scaleUp(a.unscaled, a.exp-exp)
	bu = scaleUp(b.unscaled, b.exp-exp)
	return au, bu, exp
}

// scaleUp returns v * 10^shift (shift must be >= 0).
func scaleUp(v *big.Int, shift int) *big.Int {
	if shift == 0 {
		return new(big.Int).Set(v)
	}
	factor := pow10(shift)
	return new(big.Int).Mul(v, factor)
}

var pow10Cache = map[int]*big.Int{}

func pow10(n int) *big.Int {
	if n < 0 {
		panic("decimal: pow10 of negative exponent")
	}
	if v, ok := pow10Cache[n]; ok {
		return v
	}
	v := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	pow10Cache[n] = v
	return v
}

// Cmp returns -1, 0, or 1 as d < other, d == other, or d > other.
func (d Decimal) Cmp(other Decimal) int {
	au, bu, _ := alignedUnscaled(d, other)
	return au.Cmp(bu)
}

// Equals reports whether d == other, exactly (not within a tolerance).
func (d Decimal) Equals(other Decimal) bool {
	return d.Cmp(other) == 0
}

// LessThan reports d < other.
func (d Decimal) LessThan(other Decimal) bool {
	return d.Cmp(other) < 0
}

// LessThanOrEqual reports d <= other.
func (d Decimal) LessThanOrEqual(other Decimal) bool {
	return d.Cmp(other) <= 0
}

// GreaterThan reports d > other.
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Cmp(other) > 0
}

// GreaterThanOrEqual reports d >= other.
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.Cmp(other) >= 0
}

// Min returns the smaller of a and b.
func Min(a, b Decimal) Decimal {
	if a.LessThanOrEqual(b) {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Decimal) Decimal {
	if a.GreaterThanOrEqual(b) {
		return a
	}
	return b
}

// round rounds unscaled*10^exp to at most prec significant digits using
// half-up rounding, returning the rounded significand and its exponent.
// half-up: a tie (exactly .5) always rounds away from zero.
func round(unscaled *big.Int, exp int, prec int) (*big.Int, int) {
	if unscaled.Sign() == 0 || prec <= 0 {
		return new(big.Int).Set(unscaled), exp
	}
	digits := numDigits(unscaled)
	if digits <= prec {
		return new(big.Int).Set(unscaled), exp
	}
	drop := digits - prec
	divisor := pow10(drop)

	neg := unscaled.Sign() < 0
	abs := new(big.Int).Abs(unscaled)

	quotient, remainder := new(big.Int).QuoRem(abs, divisor, new(big.Int))
	twice := new(big.Int).Lsh(remainder, 1) // remainder * 2
	if twice.Cmp(divisor) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	if neg {
		quotient.Neg(quotient)
	}
	return quotient, exp + drop
}

func numDigits(v *big.Int) int {
	if v.Sign() == 0 {
		return 1
	}
	abs := new(big.Int).Abs(v)
	return len(abs.Text(10))
}

// Round rounds d to prec significant digits (half-up).
func (d Decimal) Round(prec int) Decimal {
	u, e := round(d.unscaled, d.exp, prec)
	return Decimal{unscaled: u, exp: e}
}

// RoundToFractionalDigits rounds d to k digits after the decimal point,
// half-up, as used by Format.
func (d Decimal) RoundToFractionalDigits(k int) Decimal {
	// value * 10^k is an integer iff we round at the (k) fractional-digit
	// boundary; compute target exponent directly instead of working from
	// significant-digit count.
	targetExp := -k
	if d.exp >= targetExp {
		return d // already at or coarser than the target scale
	}
	shift := targetExp - d.exp // > 0
	divisor := pow10(shift)

	neg := d.unscaled.Sign() < 0
	abs := new(big.Int).Abs(d.unscaled)
	quotient, remainder := new(big.Int).QuoRem(abs, divisor, new(big.Int))
	twice := new(big.Int).Lsh(remainder, 1)
	if twice.Cmp(divisor) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}
	if neg {
		quotient.Neg(quotient)
	}
	return Decimal{unscaled: quotient, exp: targetExp}
}

// Format renders d rounded to k fractional digits (half-up), strips
// trailing zeros after the decimal point and a trailing bare decimal
// point, and never emits a decimal point for an integer result. -0
// formats as "0".
func Format(d Decimal, k int) string {
	rounded := d.RoundToFractionalDigits(k)
	return rounded.string(true)
}

// String renders d at full precision with no rounding, still trimming
// trailing zeros per the §4.1 formatting rule.
func (d Decimal) String() string {
	return d.string(true)
}

func (d Decimal) string(trim bool) string {
	u := d.unscaled
	if u.Sign() == 0 {
		return "0"
	}
	neg := u.Sign() < 0
	digits := new(big.Int).Abs(u).Text(10)
	exp := d.exp

	var intPart, fracPart string
	if exp >= 0 {
		intPart = digits + strings.Repeat("0", exp)
		fracPart = ""
	} else {
		point := len(digits) + exp
		if point <= 0 {
			intPart = "0"
			fracPart = strings.Repeat("0", -point) + digits
		} else {
			intPart = digits[:point]
			fracPart = digits[point:]
		}
	}

	if trim {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	var sb strings.Builder
	if neg && !(intPart == "0" && fracPart == "") {
		sb.WriteByte('-')
	}
	sb.WriteString(intPart)
	if fracPart != "" {
		sb.WriteByte('.')
		sb.WriteString(fracPart)
	}
	return sb.String()
}
