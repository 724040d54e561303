package pathdata

import "github.com/vectorforge/svgcore/decimal"

// Command is a single drawing instruction from a path's `d` attribute. It is
// a tagged variant: one concrete struct type per command letter, matched by
// a type switch rather than by a subtyping hierarchy, per the core's "small
// struct per variant" design note. Every variant records whether the
// original letter was uppercase (absolute) or lowercase (relative), needed
// so the rewriter can choose between the two forms.
type Command interface {
	// Letter returns the canonical uppercase command letter (M, L, H, V, C,
	// S, Q, T, A, or Z).
	Letter() byte
	// IsRelative reports whether the original source letter was lowercase.
	IsRelative() bool
}

// Move is an M/m command: sets the start-of-subpath.
type Move struct {
	X, Y     decimal.Decimal
	Relative bool
}

func (c Move) Letter() byte     { return 'M' }
func (c Move) IsRelative() bool { return c.Relative }

// Line is an L/l command.
type Line struct {
	X, Y     decimal.Decimal
	Relative bool
}

func (c Line) Letter() byte     { return 'L' }
func (c Line) IsRelative() bool { return c.Relative }

// Horizontal is an H/h command.
type Horizontal struct {
	X        decimal.Decimal
	Relative bool
}

func (c Horizontal) Letter() byte     { return 'H' }
func (c Horizontal) IsRelative() bool { return c.Relative }

// Vertical is a V/v command.
type Vertical struct {
	Y        decimal.Decimal
	Relative bool
}

func (c Vertical) Letter() byte     { return 'V' }
func (c Vertical) IsRelative() bool { return c.Relative }

// Cubic is a C/c command.
type Cubic struct {
	X1, Y1, X2, Y2, X, Y decimal.Decimal
	Relative             bool
}

func (c Cubic) Letter() byte     { return 'C' }
func (c Cubic) IsRelative() bool { return c.Relative }

// SmoothCubic is an S/s command. Its first control point reflects the prior
// C/S command's second control point around the current point; if the
// prior command was not C/S, the reflected control equals the current point.
type SmoothCubic struct {
	X2, Y2, X, Y decimal.Decimal
	Relative     bool
}

func (c SmoothCubic) Letter() byte     { return 'S' }
func (c SmoothCubic) IsRelative() bool { return c.Relative }

// Quadratic is a Q/q command.
type Quadratic struct {
	X1, Y1, X, Y decimal.Decimal
	Relative     bool
}

func (c Quadratic) Letter() byte     { return 'Q' }
func (c Quadratic) IsRelative() bool { return c.Relative }

// SmoothQuadratic is a T/t command. Its control reflects the prior Q/T
// command's control point; if the prior command was not Q/T, the reflected
// control equals the current point.
type SmoothQuadratic struct {
	X, Y     decimal.Decimal
	Relative bool
}

func (c SmoothQuadratic) Letter() byte     { return 'T' }
func (c SmoothQuadratic) IsRelative() bool { return c.Relative }

// Arc is an A/a command.
type Arc struct {
	RX, RY, Rotation decimal.Decimal
	LargeArc, Sweep  bool
	X, Y             decimal.Decimal
	Relative         bool
}

func (c Arc) Letter() byte     { return 'A' }
func (c Arc) IsRelative() bool { return c.Relative }

// Close is a Z/z command: returns the current point to the start-of-subpath.
type Close struct {
	Relative bool
}

func (c Close) Letter() byte     { return 'Z' }
func (c Close) IsRelative() bool { return c.Relative }

// EndPoint reports the absolute end-coordinate a command moves to, given the
// current point and start-of-subpath. Close has no payload coordinates of
// its own; its endpoint is the start-of-subpath.
func EndPoint(cmd Command, current, subpathStart Point) Point {
	switch c := cmd.(type) {
	case Move:
		return resolve(c.X, c.Y, c.Relative, current)
	case Line:
		return resolve(c.X, c.Y, c.Relative, current)
	case Horizontal:
		x := c.X
		if c.Relative {
			x = decimal.DefaultContext.Add(current.X, c.X)
		}
		return Point{X: x, Y: current.Y}
	case Vertical:
		y := c.Y
		if c.Relative {
			y = decimal.DefaultContext.Add(current.Y, c.Y)
		}
		return Point{X: current.X, Y: y}
	case Cubic:
		return resolve(c.X, c.Y, c.Relative, current)
	case SmoothCubic:
		return resolve(c.X, c.Y, c.Relative, current)
	case Quadratic:
		return resolve(c.X, c.Y, c.Relative, current)
	case SmoothQuadratic:
		return resolve(c.X, c.Y, c.Relative, current)
	case Arc:
		return resolve(c.X, c.Y, c.Relative, current)
	case Close:
		return subpathStart
	default:
		return current
	}
}

func resolve(x, y decimal.Decimal, relative bool, current Point) Point {
	if !relative {
		return Point{X: x, Y: y}
	}
	return Point{
		X: decimal.DefaultContext.Add(current.X, x),
		Y: decimal.DefaultContext.Add(current.Y, y),
	}
}
