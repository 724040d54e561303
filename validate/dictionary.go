package validate

import (
	"sort"
	"unicode"
)

// knownElements is the union of SVG 1.1 and SVG 2.0 element names, used to
// decide whether an element name is simply unrecognized (and therefore a
// candidate for the mistyped-name check) — SVG 2.0-only names are included
// directly so they are never flagged as mistyped even though they postdate
// SVG 1.1 (spec.md §4.5 "SVG 2.0 awareness").
var knownElements = map[string]bool{
	"svg": true, "g": true, "defs": true, "symbol": true, "use": true,
	"switch": true, "a": true, "path": true, "rect": true, "circle": true,
	"ellipse": true, "line": true, "polyline": true, "polygon": true,
	"text": true, "tspan": true, "tref": true, "textPath": true,
	"image": true, "foreignObject": true, "marker": true, "pattern": true,
	"clipPath": true, "mask": true, "linearGradient": true,
	"radialGradient": true, "stop": true, "filter": true, "title": true,
	"desc": true, "metadata": true, "style": true, "script": true,
	"animate": true, "animateTransform": true, "animateMotion": true,
	"animateColor": true, "set": true, "mpath": true, "view": true,
	"cursor": true, "font": true, "font-face": true, "glyph": true,
	// SVG 2.0 additions/renames: valid per §4.5's SVG 2.0 awareness
	// requirement, so they are never flagged as mistyped even though they
	// are absent from the SVG 1.1 vocabulary.
	"hatch": true, "hatchpath": true, "solidcolor": true,
	"feDropShadow": true, "discard": true,
}

// knownAttributes is the union of SVG 1.1 and SVG 2.0 presentation and
// geometry attribute names recognized by the dictionary check.
var knownAttributes = map[string]bool{
	"id": true, "class": true, "style": true, "transform": true,
	"x": true, "y": true, "width": true, "height": true, "r": true,
	"rx": true, "ry": true, "cx": true, "cy": true, "x1": true, "y1": true,
	"x2": true, "y2": true, "d": true, "points": true, "viewBox": true,
	"preserveAspectRatio": true, "fill": true, "fill-rule": true,
	"fill-opacity": true, "stroke": true, "stroke-width": true,
	"stroke-linecap": true, "stroke-linejoin": true, "stroke-dasharray": true,
	"stroke-dashoffset": true, "stroke-opacity": true, "stroke-miterlimit": true,
	"opacity": true, "visibility": true, "display": true, "overflow": true,
	"clip-path": true, "clip-rule": true, "mask": true, "filter": true,
	"href": true, "xlink:href": true, "xmlns": true, "xmlns:xlink": true,
	"offset": true, "stop-color": true, "stop-opacity": true,
	"gradientUnits": true, "gradientTransform": true, "spreadMethod": true,
	"patternUnits": true, "patternContentUnits": true, "patternTransform": true,
	"text-anchor": true, "dominant-baseline": true, "font-family": true,
	"font-size": true, "font-weight": true, "font-style": true,
	"color": true, "pointer-events": true, "shape-rendering": true,
	"text-rendering": true, "image-rendering": true,
	"requiredFeatures": true, "requiredExtensions": true, "systemLanguage": true,
	// SVG 2.0 additions
	"paint-order": true, "vector-effect": true,
}

// isNameStart and isNameChar follow the css tokenizer's character
// classification (css.isNameStart/isNameChar), except that ':' is also a
// name character here and a non-letter rune above 127 cannot start a
// name. They serve as the "is this even
// name-shaped" pre-filter spec.md §4.5 calls for before paying for an
// O(n·m) edit-distance computation: a value containing digits-only or
// punctuation-only content is never a mistyped element/attribute name, it's
// simply not a name.
func isNameStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_' || c == '-'
}

func isNameChar(c rune) bool {
	return isNameStart(c) || unicode.IsDigit(c) || c == ':'
}

// looksLikeName reports whether s is shaped like an identifier at all.
func looksLikeName(s string) bool {
	if s == "" {
		return false
	}
	runes := []rune(s)
	if !isNameStart(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// levenshtein computes the classic edit distance between a and b via
// dynamic programming over a rolling two-row table.
func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// closestName returns the known name in dict within maxDist of name, and the
// distance, or ok=false if none qualifies. Candidates are visited in sorted
// order so a tie between two equally-close names resolves deterministically.
func closestName(name string, dict map[string]bool, maxDist int) (match string, dist int, ok bool) {
	candidates := make([]string, 0, len(dict))
	for candidate := range dict {
		candidates = append(candidates, candidate)
	}
	sort.Strings(candidates)

	best := maxDist + 1
	for _, candidate := range candidates {
		d := levenshtein(name, candidate)
		if d > 0 && d < best {
			best = d
			match = candidate
		}
	}
	if best <= maxDist {
		return match, best, true
	}
	return "", 0, false
}
