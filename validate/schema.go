package validate

// requiredAttributes lists the attributes each element must carry, per
// spec.md §4.5's "Per-element required-set table (e.g., path requires d)".
// For rect, circle, ellipse, polygon and polyline this matches what
// pathdata's shape parsers (ParseRect/ParseCircle/...) enforce one layer
// down; ParseLine instead defaults a missing x1/y1/x2/y2 to 0, while this
// table requires all four.
var requiredAttributes = map[string][]string{
	"path":     {"d"},
	"rect":     {"width", "height"},
	"circle":   {"r"},
	"ellipse":  {"rx", "ry"},
	"line":     {"x1", "y1", "x2", "y2"},
	"polygon":  {"points"},
	"polyline": {"points"},
}

// hrefAttributes is the set of attribute names that can carry a fragment
// reference for <use>, satisfied by either form.
var hrefAttributes = []string{"href", "xlink:href"}

// restrictedParents maps a parent element to the exact set of child
// elements SVG allows inside it. Parents not listed here allow any child
// (the validator only flags the containers with a genuinely closed content
// model, rather than encoding the full SVG content-model table).
var restrictedParents = map[string]map[string]bool{
	"linearGradient": {"stop": true, "animate": true, "set": true},
	"radialGradient": {"stop": true, "animate": true, "set": true},
	"tspan":          {"tspan": true, "tref": true, "textPath": true, "animate": true, "set": true},
	"switch":         {}, // populated lazily below to avoid repeating the renderable-elements list
}

// renderableElements are the shape/structure elements allowed as direct
// children of <switch>, per SVG's "each child of switch is a graphics or
// container element" rule.
var renderableElements = []string{
	"rect", "circle", "ellipse", "line", "polygon", "polyline", "path",
	"text", "image", "use", "g", "svg", "a", "foreignObject",
}

func init() {
	allowed := make(map[string]bool, len(renderableElements))
	for _, e := range renderableElements {
		allowed[e] = true
	}
	restrictedParents["switch"] = allowed
}

// emptyElements are DTD-EMPTY in the SVG content model: they can carry no
// children at all, so an animation element nested inside one is always
// invalid (spec.md §4.5 "Animation element inside truly empty parent").
var emptyElements = map[string]bool{
	"path": true, "rect": true, "circle": true, "ellipse": true,
	"line": true, "polygon": true, "polyline": true, "image": true,
	"use": true, "stop": true,
}

// animationElements are the SMIL animation element names.
var animationElements = map[string]bool{
	"animate": true, "animateTransform": true, "animateMotion": true,
	"animateColor": true, "set": true,
}

// denyListedAttributes maps an element to attributes it should never carry
// (spec.md §4.5 "Attribute on disallowed element (g with x, y, …)").
var denyListedAttributes = map[string][]string{
	"g":    {"x", "y", "width", "height", "r", "rx", "ry"},
	"defs": {"x", "y", "width", "height"},
}

// enumeratedAttributes maps an attribute name to its closed set of valid
// values (case-folded at comparison time via golang.org/x/text/cases).
var enumeratedAttributes = map[string][]string{
	"stroke-linecap":     {"butt", "round", "square"},
	"stroke-linejoin":    {"miter", "round", "bevel", "miter-clip", "arcs"},
	"fill-rule":          {"nonzero", "evenodd"},
	"clip-rule":          {"nonzero", "evenodd"},
	"text-anchor":        {"start", "middle", "end"},
	"visibility":         {"visible", "hidden", "collapse"},
	"overflow":           {"visible", "hidden", "scroll", "auto"},
	"pointer-events":     {"auto", "none", "visiblePainted", "visibleFill", "visibleStroke", "visible", "painted", "fill", "stroke", "all"},
	"dominant-baseline":  {"auto", "middle", "central", "hanging", "mathematical", "text-top", "text-bottom", "ideographic", "alphabetic"},
	"text-rendering":     {"auto", "optimizeSpeed", "optimizeLegibility", "geometricPrecision"},
	"shape-rendering":    {"auto", "optimizeSpeed", "crispEdges", "geometricPrecision"},
	"image-rendering":    {"auto", "optimizeSpeed", "optimizeQuality", "pixelated"},
	"preserveAspectRatio": {
		"none", "xMinYMin", "xMidYMin", "xMaxYMin", "xMinYMid", "xMidYMid",
		"xMaxYMid", "xMinYMax", "xMidYMax", "xMaxYMax",
	},
}

// numericRangeAttributes maps an attribute name to an inclusive [min, max]
// range (spec.md §4.5 "Numeric constraint violation", e.g. opacity ∈ [0,1]).
// A missing bound is unbounded in that direction.
type numericRange struct {
	hasMin, hasMax bool
	min, max       float64
}

var numericRangeAttributes = map[string]numericRange{
	"opacity":        {hasMin: true, min: 0, hasMax: true, max: 1},
	"fill-opacity":   {hasMin: true, min: 0, hasMax: true, max: 1},
	"stroke-opacity": {hasMin: true, min: 0, hasMax: true, max: 1},
	"stop-opacity":   {hasMin: true, min: 0, hasMax: true, max: 1},
	"stroke-width":   {hasMin: true, min: 0},
	"stroke-miterlimit": {hasMin: true, min: 1},
	"r":              {hasMin: true, min: 0},
	"rx":             {hasMin: true, min: 0},
	"ry":             {hasMin: true, min: 0},
	"width":          {hasMin: true, min: 0},
	"height":         {hasMin: true, min: 0},
}

// colorAttributes lists attributes whose value is a color literal (spec.md
// §4.5 "Invalid color literal").
var colorAttributes = map[string]bool{
	"fill": true, "stroke": true, "stop-color": true, "color": true,
	"flood-color": true, "lighting-color": true,
}

// namedColors is a representative subset of the CSS/SVG named-color
// keyword set, enough to exercise the grammar without reproducing the full
// 148-entry CSS Color Module table.
var namedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "orange": true, "purple": true, "gray": true, "grey": true,
	"silver": true, "maroon": true, "olive": true, "lime": true, "teal": true,
	"navy": true, "fuchsia": true, "aqua": true, "pink": true, "brown": true,
	"cyan": true, "magenta": true, "gold": true, "indigo": true, "violet": true,
	"coral": true, "salmon": true, "khaki": true, "orchid": true, "plum": true,
	"tan": true, "crimson": true, "chocolate": true, "darkgreen": true,
	"lightblue": true, "darkblue": true, "lightgray": true, "lightgrey": true,
	"darkgray": true, "darkgrey": true, "beige": true, "ivory": true,
}

// colorKeywords are non-hex, non-function special color values.
var colorKeywords = map[string]bool{
	"none": true, "inherit": true, "currentColor": true, "transparent": true,
}
