package validate

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
	"github.com/vectorforge/svgcore/dom"
)

// numberToken matches one signed decimal or scientific-notation number.
const numberToken = `-?\d+(\.\d+)?([eE]-?\d+)?`

// viewBoxGrammar checks the token-count-and-shape half of spec.md §4.5's
// "Malformed viewBox ... Token counts and regex conformance" rule; the
// numeric parse and width/height positivity half is covered by
// geom.ParseViewBox, called separately.
var viewBoxGrammar = regexp2.MustCompile(`^\s*`+numberToken+`([\s,]+`+numberToken+`){3}\s*$`, regexp2.None)

// pointsGrammar checks a `points` attribute: one or more coordinate pairs.
var pointsGrammar = regexp2.MustCompile(`^\s*`+numberToken+`[\s,]+`+numberToken+`([\s,]+`+numberToken+`[\s,]+`+numberToken+`)*\s*,?\s*$`, regexp2.None)

// transformGrammar checks a `transform` attribute: one or more of the six
// SVG transform functions, each taking a comma/whitespace-separated
// argument list, optionally chained with whitespace between functions.
var transformFunc = `(?:translate|scale|rotate|skewX|skewY|matrix)\(\s*` + numberToken + `(?:[\s,]+` + numberToken + `)*\s*\)`
var transformGrammar = regexp2.MustCompile(`^\s*`+transformFunc+`(\s+`+transformFunc+`)*\s*$`, regexp2.None)

// colorFunction matches rgb()/rgba()/hsl()/hsla() with numeric or
// percentage arguments.
var colorFunction = regexp2.MustCompile(`^(rgb|rgba|hsl|hsla)\(\s*-?[\d.]+%?(\s*[,\s]\s*-?[\d.]+%?){2,3}\s*\)$`, regexp2.IgnoreCase)

// hexColor matches #RGB, #RRGGBB, #RGBA, or #RRGGBBAA.
var hexColor = regexp2.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`, regexp2.None)

// trailingDecimalPattern matches a number ending in "." with no following
// digit, e.g. "10." — spec.md §4.5's "trailing decimal" lexical check.
var trailingDecimalPattern = regexp2.MustCompile(`\d+\.(\D|$)`, regexp2.None)

// unitCanonical maps a lowercased unit suffix to its canonical spelling.
// Every unit is canonically lowercase except "Q" (quarter-millimeters),
// per spec.md §6's explicit "%|em|rem|px|pt|cm|mm|in|pc|ex|ch|vw|vh|vmin|
// vmax|Q" list.
var unitCanonical = map[string]string{
	"%": "%", "em": "em", "rem": "rem", "px": "px", "pt": "pt", "cm": "cm",
	"mm": "mm", "in": "in", "pc": "pc", "ex": "ex", "ch": "ch", "vw": "vw",
	"vh": "vh", "vmin": "vmin", "vmax": "vmax", "q": "Q",
}

// uppercaseUnit inspects value for a trailing unit suffix and reports
// whether it is spelled with the wrong case relative to unitCanonical.
func uppercaseUnit(value string) (canonical, bad string, has bool) {
	v := strings.TrimSpace(value)
	i := len(v)
	for i > 0 && (isAlpha(v[i-1]) || v[i-1] == '%') {
		i--
	}
	suffix := v[i:]
	if suffix == "" || i == 0 {
		return "", "", false
	}
	canon, known := unitCanonical[strings.ToLower(suffix)]
	if !known || suffix == canon {
		return "", "", false
	}
	return canon, suffix, true
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// parseNumericWithUnit splits a value into its leading numeric part and
// trailing unit suffix (possibly empty), returning ok=false if the leading
// part isn't a valid number at all.
func parseNumericWithUnit(value string) (num float64, unit string, ok bool) {
	v := strings.TrimSpace(value)
	i := len(v)
	for i > 0 && (isAlpha(v[i-1]) || v[i-1] == '%') {
		i--
	}
	numPart, unitPart := v[:i], v[i:]
	n, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, "", false
	}
	return n, unitPart, true
}

func regexMatches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// isWellFormedColor checks the grammar named in spec.md §4.5's "Invalid
// color literal" row: named set ∪ hex ∪ rgb()/rgba()/hsl()/hsla() ∪
// url(#…) ∪ the special keywords.
func isWellFormedColor(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}
	if colorKeywords[v] {
		return true
	}
	if namedColors[strings.ToLower(v)] {
		return true
	}
	if regexMatches(hexColor, v) {
		return true
	}
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		_, ok := dom.ParseFragmentReference(v)
		return ok
	}
	return regexMatches(colorFunction, v)
}
