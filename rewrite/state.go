package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// resolvePoint resolves a (possibly relative) coordinate pair against the
// current point, duplicating geom's unexported helper of the same name:
// each pass walks its own input independently, so this stays a small
// package-local copy rather than an exported cross-package dependency.
func resolvePoint(x, y decimal.Decimal, relative bool, current pathdata.Point) pathdata.Point {
	if !relative {
		return pathdata.Point{X: x, Y: y}
	}
	ctx := decimal.DefaultContext
	return pathdata.Point{X: ctx.Add(current.X, x), Y: ctx.Add(current.Y, y)}
}

// reflectedControl mirrors prior around current; with no eligible prior
// control point (the preceding command wasn't the matching curve family)
// the reflected control is current itself, per §3's smooth-command rule.
func reflectedControl(current, prior pathdata.Point, hasPrior bool) pathdata.Point {
	if !hasPrior {
		return current
	}
	ctx := decimal.DefaultContext
	two := decimal.NewFromInt64(2)
	return pathdata.Point{
		X: ctx.Sub(ctx.Mul(two, current.X), prior.X),
		Y: ctx.Sub(ctx.Mul(two, current.Y), prior.Y),
	}
}

// pointsWithinTol reports whether a and b agree on both axes within tol.
func pointsWithinTol(a, b pathdata.Point, tol decimal.Decimal) bool {
	ctx := decimal.DefaultContext
	return ctx.Sub(a.X, b.X).Abs().LessThanOrEqual(tol) && ctx.Sub(a.Y, b.Y).Abs().LessThanOrEqual(tol)
}

// cursorState threads the running current-point / subpath-start / last-control
// bookkeeping every pass needs to resolve relative coordinates and reflected
// smooth-command controls, mirroring geom.PathBBox's walk.
type cursorState struct {
	current          pathdata.Point
	subpathStart     pathdata.Point
	lastControl      pathdata.Point
	hasLastCubicCtrl bool
	hasLastQuadCtrl  bool
}

func newCursorState() cursorState {
	origin := pathdata.Point{X: decimal.Zero(), Y: decimal.Zero()}
	return cursorState{current: origin, subpathStart: origin}
}

// advance resolves cmd's control points and endpoint against the current
// state and returns them, then mutates the state for the next command. For
// command families without curve controls, p1/p2 are zero-valued and unused.
func (s *cursorState) advance(cmd pathdata.Command) (p1, p2, end pathdata.Point) {
	switch c := cmd.(type) {
	case pathdata.Move:
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.subpathStart = end
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, false

	case pathdata.Line, pathdata.Horizontal, pathdata.Vertical:
		end = pathdata.EndPoint(cmd, s.current, s.subpathStart)
		s.current = end
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, false

	case pathdata.Cubic:
		p1 = resolvePoint(c.X1, c.Y1, c.Relative, s.current)
		p2 = resolvePoint(c.X2, c.Y2, c.Relative, s.current)
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.lastControl = p2
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = true, false

	case pathdata.SmoothCubic:
		p1 = reflectedControl(s.current, s.lastControl, s.hasLastCubicCtrl)
		p2 = resolvePoint(c.X2, c.Y2, c.Relative, s.current)
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.lastControl = p2
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = true, false

	case pathdata.Quadratic:
		p1 = resolvePoint(c.X1, c.Y1, c.Relative, s.current)
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.lastControl = p1
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, true

	case pathdata.SmoothQuadratic:
		p1 = reflectedControl(s.current, s.lastControl, s.hasLastQuadCtrl)
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.lastControl = p1
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, true

	case pathdata.Arc:
		end = pathdata.EndPoint(c, s.current, s.subpathStart)
		s.current = end
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, false

	case pathdata.Close:
		end = s.subpathStart
		s.current = end
		s.hasLastCubicCtrl, s.hasLastQuadCtrl = false, false
	}
	return p1, p2, end
}
