// Package pathdata implements the path-and-shape data model: a tagged
// command stream for SVG path `d` data, tagged shape records for the six
// basic shapes, a parser for both, a serializer, and the deterministic
// shape→path lowering table.
//
// This is a direct descendant of the teacher's svg.parsePath/extractNumbers
// number-scanning loop, generalized from a polygon-points producer into a
// typed command stream over the full M/L/H/V/C/S/Q/T/A/Z alphabet.
package pathdata

import "github.com/vectorforge/svgcore/decimal"

// Point is an immutable (x, y) pair of Decimals. Ownership is by value, not
// by reference — every function that returns a Point returns a fresh copy.
type Point struct {
	X, Y decimal.Decimal
}

// NewPoint constructs a Point.
func NewPoint(x, y decimal.Decimal) Point {
	return Point{X: x, Y: y}
}
