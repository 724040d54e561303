// Package geom implements the geometric engine: bounding boxes, Bézier and
// arc analysis, and the three classic intersection/clipping algorithms named
// in the specification (GJK convex overlap, Cohen–Sutherland line clipping,
// Sutherland–Hodgman polygon clipping). None of this exists in the teacher
// repository — it is grounded on the algorithms named in the specification
// itself and written in the teacher's small-function, per-case style.
package geom

import (
	"strings"

	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// ViewBox is a parsed `viewBox` attribute.
type ViewBox struct {
	X, Y, Width, Height decimal.Decimal
	Verified            bool
}

// ParseViewBox parses a viewBox attribute value: four numbers separated by
// whitespace and/or commas. Width and height must be strictly positive.
func ParseViewBox(s string) (ViewBox, error) {
	nums, err := scanFourNumbers(s)
	if err != nil {
		return ViewBox{}, err
	}
	vb := ViewBox{X: nums[0], Y: nums[1], Width: nums[2], Height: nums[3]}
	if vb.Width.Sign() <= 0 {
		return ViewBox{}, cerr.New(cerr.MalformedInput, "viewBox width must be positive")
	}
	if vb.Height.Sign() <= 0 {
		return ViewBox{}, cerr.New(cerr.MalformedInput, "viewBox height must be positive")
	}

	// Verification reconstructs the canonical string directly from the
	// parsed values and re-scans it, confirming the four numbers it yields
	// equal the originals — independent reconstruction, not a recursive
	// call into ParseViewBox.
	reparsed, err := scanFourNumbers(vb.String())
	vb.Verified = err == nil &&
		reparsed[0].Equals(vb.X) && reparsed[1].Equals(vb.Y) &&
		reparsed[2].Equals(vb.Width) && reparsed[3].Equals(vb.Height)
	return vb, nil
}

// String renders the canonical "x y width height" form.
func (v ViewBox) String() string {
	f := func(d decimal.Decimal) string { return pathdata.FormatViewBoxNumber(d, 6) }
	return f(v.X) + " " + f(v.Y) + " " + f(v.Width) + " " + f(v.Height)
}

func scanFourNumbers(s string) ([4]decimal.Decimal, error) {
	var out [4]decimal.Decimal
	fields := splitNumberTokens(s)
	if len(fields) != 4 {
		return out, cerr.New(cerr.MalformedInput, "viewBox requires exactly four numbers")
	}
	for i, f := range fields {
		d, err := decimal.Parse(f)
		if err != nil {
			return out, cerr.Wrap(cerr.MalformedInput, "viewBox value is not numeric", err)
		}
		out[i] = d
	}
	return out, nil
}

// splitNumberTokens splits a numeral list on whitespace/commas, honoring the
// same "minus starts a new number" rule the path-data grammar uses: a '-'
// that immediately follows a digit or '.' begins a new token even with no
// separator.
func splitNumberTokens(s string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',':
			flush()
		case c == '-' && cur.Len() > 0 && (s[i-1] >= '0' && s[i-1] <= '9' || s[i-1] == '.'):
			flush()
			cur.WriteByte(c)
		default:
			cur.WriteByte(c)
		}
	}
	flush()
	return tokens
}
