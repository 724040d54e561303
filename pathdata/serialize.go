package pathdata

import (
	"strings"

	"github.com/vectorforge/svgcore/decimal"
)

// SerializeOptions configures path-data serialization.
type SerializeOptions struct {
	// FractionalDigits is the number of fractional digits each number is
	// rounded to via decimal.Format. Zero means 6, the upper end of the
	// §4.3.5 "default 3-6" recommendation, chosen so round-tripping a parsed
	// path back to text never loses precision a human would notice.
	FractionalDigits int
	// Minify removes the single space before and after each command letter
	// and between arguments where a sign or decimal point can serve as its
	// own separator.
	Minify bool
	// CollapseRepeatedLetters omits a command's letter when it is identical
	// (same letter, same absolute/relative case) to the immediately
	// preceding command's letter, folding the argument groups together the
	// way the path grammar's implicit-repeat rule already lets ParsePath
	// read them back (Z is never collapsed, since repeating it is
	// meaningless and some consumers treat bare Z runs specially).
	CollapseRepeatedLetters bool
}

func (o SerializeOptions) digits() int {
	if o.FractionalDigits <= 0 {
		return 6
	}
	return o.FractionalDigits
}

// Serialize renders a command stream back to `d`-attribute text.
func Serialize(commands []Command, opts SerializeOptions) string {
	var sb strings.Builder
	k := opts.digits()
	var prevLetter byte
	var lastToken string
	havePrevLetter := false
	haveLastToken := false

	for _, cmd := range commands {
		letter := commandLetter(cmd)
		collapsed := opts.CollapseRepeatedLetters && havePrevLetter && letter == prevLetter && cmd.Letter() != 'Z'
		if !collapsed {
			if !opts.Minify && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(letter)
			haveLastToken = false // the letter itself disambiguates the next token
		}
		nums := commandArgs(cmd, k)
		lastToken, haveLastToken = writeArgs(&sb, nums, opts.Minify, lastToken, haveLastToken)
		prevLetter = letter
		havePrevLetter = true
	}
	return sb.String()
}

func commandLetter(cmd Command) byte {
	letter := cmd.Letter()
	if cmd.IsRelative() {
		return letter + ('a' - 'A')
	}
	return letter
}

// commandArgs returns the formatted argument tokens for a command, in
// emission order. Flags (large-arc, sweep) are emitted as bare "0"/"1".
func commandArgs(cmd Command, k int) []string {
	f := func(d decimal.Decimal) string { return formatNumber(d, k) }
	flag := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}

	switch c := cmd.(type) {
	case Move:
		return []string{f(c.X), f(c.Y)}
	case Line:
		return []string{f(c.X), f(c.Y)}
	case Horizontal:
		return []string{f(c.X)}
	case Vertical:
		return []string{f(c.Y)}
	case Cubic:
		return []string{f(c.X1), f(c.Y1), f(c.X2), f(c.Y2), f(c.X), f(c.Y)}
	case SmoothCubic:
		return []string{f(c.X2), f(c.Y2), f(c.X), f(c.Y)}
	case Quadratic:
		return []string{f(c.X1), f(c.Y1), f(c.X), f(c.Y)}
	case SmoothQuadratic:
		return []string{f(c.X), f(c.Y)}
	case Arc:
		return []string{f(c.RX), f(c.RY), f(c.Rotation), flag(c.LargeArc), flag(c.Sweep), f(c.X), f(c.Y)}
	case Close:
		return nil
	}
	return nil
}

// formatNumber applies §4.1 rounding/trimming and then strips a leading
// zero before the decimal point (`0.5 → .5`, `-0.5 → -.5`) as a direct
// prefix transform — never a regex over arbitrary digit runs, which is
// exactly the bug class (`400 → 4`) the spec calls out to avoid.
func formatNumber(d decimal.Decimal, k int) string {
	s := decimal.Format(d, k)
	if strings.HasPrefix(s, "0.") {
		return s[1:]
	}
	if strings.HasPrefix(s, "-0.") {
		return "-" + s[2:]
	}
	return s
}

// writeArgs joins formatted argument tokens with the separator rule: a
// single space in non-minified mode; in minified mode, a space is only
// emitted when omitting it would make two tokens run together (a leading
// '-' always serves as its own separator; a leading '.' does so only after
// a token that already contains a decimal point). prevToken/havePrevToken carry the
// last token written so far, so a collapsed command's first argument (with
// no letter ahead of it to disambiguate) is checked against the previous
// command's trailing number the same way any two adjacent numbers are.
// Returns the updated last-token state for the next call.
func writeArgs(sb *strings.Builder, args []string, minify bool, prevToken string, havePrevToken bool) (string, bool) {
	for _, a := range args {
		if havePrevToken {
			if minify {
				if needsSeparator(prevToken, a) {
					sb.WriteByte(' ')
				}
			} else {
				sb.WriteByte(' ')
			}
		} else if !minify {
			sb.WriteByte(' ')
		}
		sb.WriteString(a)
		prevToken = a
		havePrevToken = true
	}
	return prevToken, havePrevToken
}

// needsSeparator reports whether a space must be kept between prev and next
// in minified output: unnecessary when next starts with '-', or when it
// starts with '.' and prev already contains a decimal point, so the second
// '.' cannot be read as part of prev.
func needsSeparator(prev, next string) bool {
	if next == "" {
		return false
	}
	if next[0] == '.' {
		return !strings.Contains(prev, ".")
	}
	return next[0] != '-'
}

// FormatViewBoxNumber formats a single number the way the numeric pass
// would, for callers (geom's ViewBox serializer) that need the same
// leading-zero-stripped rendering outside a command stream.
func FormatViewBoxNumber(d decimal.Decimal, k int) string {
	return formatNumber(d, k)
}
