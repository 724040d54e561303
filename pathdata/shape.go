package pathdata

import (
	"strings"

	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/decimal"
)

// Shape is a tagged variant over the six basic SVG shapes, matched by type
// switch like Command.
type Shape interface {
	shapeTag() string
}

// Rect is a <rect> shape. RX/RY are zero when the shape has no corner radii.
type Rect struct {
	X, Y, Width, Height decimal.Decimal
	RX, RY              decimal.Decimal
	HasCornerRadius     bool
}

func (Rect) shapeTag() string { return "rect" }

// Circle is a <circle> shape.
type Circle struct {
	CX, CY, R decimal.Decimal
}

func (Circle) shapeTag() string { return "circle" }

// Ellipse is an <ellipse> shape.
type Ellipse struct {
	CX, CY, RX, RY decimal.Decimal
}

func (Ellipse) shapeTag() string { return "ellipse" }

// LineShape is a <line> shape. Named LineShape (not Line) to avoid
// colliding with the path command of the same conceptual name.
type LineShape struct {
	X1, Y1, X2, Y2 decimal.Decimal
}

func (LineShape) shapeTag() string { return "line" }

// Polygon is a <polygon> shape: a closed point sequence.
type Polygon struct {
	Points []Point
}

func (Polygon) shapeTag() string { return "polygon" }

// Polyline is a <polyline> shape: an open point sequence.
type Polyline struct {
	Points []Point
}

func (Polyline) shapeTag() string { return "polyline" }

// AttributeSource is the minimal read surface shape parsing needs from an
// element tree node; dom.Node satisfies it directly.
type AttributeSource interface {
	GetAttribute(name string) string
	HasAttribute(name string) bool
}

func attrDecimal(src AttributeSource, name string, def decimal.Decimal) (decimal.Decimal, error) {
	if !src.HasAttribute(name) {
		return def, nil
	}
	v := strings.TrimSpace(src.GetAttribute(name))
	if v == "" {
		return def, nil
	}
	d, err := decimal.Parse(v)
	if err != nil {
		return decimal.Decimal{}, cerr.Wrap(cerr.MalformedInput, "attribute '"+name+"' is not numeric", err)
	}
	return d, nil
}

func requireNonNegative(name string, d decimal.Decimal) error {
	if d.Sign() < 0 {
		return cerr.New(cerr.MalformedInput, "attribute '"+name+"' must not be negative")
	}
	return nil
}

// ParseRect parses a <rect>'s geometry attributes.
func ParseRect(src AttributeSource) (Rect, error) {
	zero := decimal.Zero()
	x, err := attrDecimal(src, "x", zero)
	if err != nil {
		return Rect{}, err
	}
	y, err := attrDecimal(src, "y", zero)
	if err != nil {
		return Rect{}, err
	}
	if !src.HasAttribute("width") {
		return Rect{}, cerr.New(cerr.MalformedInput, "rect requires a width attribute")
	}
	if !src.HasAttribute("height") {
		return Rect{}, cerr.New(cerr.MalformedInput, "rect requires a height attribute")
	}
	width, err := attrDecimal(src, "width", zero)
	if err != nil {
		return Rect{}, err
	}
	height, err := attrDecimal(src, "height", zero)
	if err != nil {
		return Rect{}, err
	}
	if err := requireNonNegative("width", width); err != nil {
		return Rect{}, err
	}
	if err := requireNonNegative("height", height); err != nil {
		return Rect{}, err
	}

	rx, err := attrDecimal(src, "rx", zero)
	if err != nil {
		return Rect{}, err
	}
	ry, err := attrDecimal(src, "ry", zero)
	if err != nil {
		return Rect{}, err
	}
	hasRadius := src.HasAttribute("rx") || src.HasAttribute("ry")
	if hasRadius {
		if !src.HasAttribute("ry") {
			ry = rx
		}
		if !src.HasAttribute("rx") {
			rx = ry
		}
	}
	if err := requireNonNegative("rx", rx); err != nil {
		return Rect{}, err
	}
	if err := requireNonNegative("ry", ry); err != nil {
		return Rect{}, err
	}

	return Rect{X: x, Y: y, Width: width, Height: height, RX: rx, RY: ry, HasCornerRadius: hasRadius && (rx.Sign() > 0 && ry.Sign() > 0)}, nil
}

// ParseCircle parses a <circle>'s geometry attributes.
func ParseCircle(src AttributeSource) (Circle, error) {
	zero := decimal.Zero()
	cx, err := attrDecimal(src, "cx", zero)
	if err != nil {
		return Circle{}, err
	}
	cy, err := attrDecimal(src, "cy", zero)
	if err != nil {
		return Circle{}, err
	}
	if !src.HasAttribute("r") {
		return Circle{}, cerr.New(cerr.MalformedInput, "circle requires an r attribute")
	}
	r, err := attrDecimal(src, "r", zero)
	if err != nil {
		return Circle{}, err
	}
	if err := requireNonNegative("r", r); err != nil {
		return Circle{}, err
	}
	return Circle{CX: cx, CY: cy, R: r}, nil
}

// ParseEllipse parses an <ellipse>'s geometry attributes.
func ParseEllipse(src AttributeSource) (Ellipse, error) {
	zero := decimal.Zero()
	cx, err := attrDecimal(src, "cx", zero)
	if err != nil {
		return Ellipse{}, err
	}
	cy, err := attrDecimal(src, "cy", zero)
	if err != nil {
		return Ellipse{}, err
	}
	if !src.HasAttribute("rx") {
		return Ellipse{}, cerr.New(cerr.MalformedInput, "ellipse requires an rx attribute")
	}
	if !src.HasAttribute("ry") {
		return Ellipse{}, cerr.New(cerr.MalformedInput, "ellipse requires a ry attribute")
	}
	rx, err := attrDecimal(src, "rx", zero)
	if err != nil {
		return Ellipse{}, err
	}
	ry, err := attrDecimal(src, "ry", zero)
	if err != nil {
		return Ellipse{}, err
	}
	if err := requireNonNegative("rx", rx); err != nil {
		return Ellipse{}, err
	}
	if err := requireNonNegative("ry", ry); err != nil {
		return Ellipse{}, err
	}
	return Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}, nil
}

// ParseLine parses a <line>'s geometry attributes.
func ParseLine(src AttributeSource) (LineShape, error) {
	zero := decimal.Zero()
	x1, err := attrDecimal(src, "x1", zero)
	if err != nil {
		return LineShape{}, err
	}
	y1, err := attrDecimal(src, "y1", zero)
	if err != nil {
		return LineShape{}, err
	}
	x2, err := attrDecimal(src, "x2", zero)
	if err != nil {
		return LineShape{}, err
	}
	y2, err := attrDecimal(src, "y2", zero)
	if err != nil {
		return LineShape{}, err
	}
	return LineShape{X1: x1, Y1: y1, X2: x2, Y2: y2}, nil
}

// parsePoints parses a `points` attribute value: pairs of numbers separated
// by whitespace and/or commas, sharing the path-data number scanner.
func parsePoints(value string) ([]Point, error) {
	sc := newScanner(value)
	var pts []Point
	for {
		sc.skipSeparators()
		if sc.eof() {
			break
		}
		x, err := sc.scanNumber()
		if err != nil {
			return nil, err
		}
		sc.skipSeparators()
		y, err := sc.scanNumber()
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{X: x, Y: y})
	}
	if len(pts) == 0 {
		return nil, cerr.New(cerr.MalformedInput, "points attribute has no coordinate pairs")
	}
	return pts, nil
}

// ParsePolygon parses a <polygon>'s points attribute.
func ParsePolygon(src AttributeSource) (Polygon, error) {
	if !src.HasAttribute("points") {
		return Polygon{}, cerr.New(cerr.MalformedInput, "polygon requires a points attribute")
	}
	pts, err := parsePoints(src.GetAttribute("points"))
	if err != nil {
		return Polygon{}, err
	}
	return Polygon{Points: pts}, nil
}

// ParsePolyline parses a <polyline>'s points attribute.
func ParsePolyline(src AttributeSource) (Polyline, error) {
	if !src.HasAttribute("points") {
		return Polyline{}, cerr.New(cerr.MalformedInput, "polyline requires a points attribute")
	}
	pts, err := parsePoints(src.GetAttribute("points"))
	if err != nil {
		return Polyline{}, err
	}
	return Polyline{Points: pts}, nil
}
