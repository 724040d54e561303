// Package rewrite implements the path-rewriter: a sequence of idempotent
// passes over a parsed command stream, each shrinking or canonicalizing the
// encoding without changing the drawn geometry. Every pass returns a new
// stream plus a Diagnostic describing what changed, grounded on the same
// per-command-family walk geom.PathBBox already uses, and verifies its
// output by direct coordinate reconstruction rather than by invoking its
// sibling pass (the §9 "toRelative/toAbsolute recurse unboundedly" issue
// this design note calls out and requires breaking).
package rewrite

import (
	"github.com/vectorforge/svgcore/decimal"
	"github.com/vectorforge/svgcore/pathdata"
)

// Options configures every pass: the arithmetic context, the positional
// tolerance used by straightness/zero-length/reflection checks, and the
// fractional-digit precision the numeric-format pass rounds to.
type Options struct {
	Context          decimal.Context
	Tolerance        decimal.Decimal
	FractionalDigits int
}

// DefaultOptions returns the core's default tolerance and precision.
func DefaultOptions() Options {
	return Options{
		Context:          decimal.DefaultContext,
		Tolerance:        decimal.DefaultTolerance,
		FractionalDigits: 6,
	}
}

// Diagnostic is the per-pass report: the rewritten stream, whether its
// verification step succeeded, and whichever counters that pass tracks.
// A pass that fails to verify returns its input unchanged with
// Verified = false, never a partially-applied rewrite.
type Diagnostic struct {
	Commands []pathdata.Command
	Verified bool

	HasSavedBytes bool
	SavedBytes    int

	HasMergeCount bool
	MergeCount    int

	HasCollapseCount bool
	CollapseCount    int

	HasRemoveCount bool
	RemoveCount    int
}

// PassName identifies one rewrite pass, for Pipeline's step-by-step report.
type PassName string

const (
	PassCollapseRepeated       PassName = "collapse-repeated"
	PassRemoveZeroLength       PassName = "remove-zero-length"
	PassStraightCurvesToLines  PassName = "straight-curves-to-lines"
	PassLineShorthands         PassName = "line-shorthands"
	PassCurveToSmooth          PassName = "curve-to-smooth"
	PassLineToZ                PassName = "line-to-z"
	PassChooseAbsoluteRelative PassName = "choose-absolute-or-relative"
	PassNumericFormat          PassName = "numeric-format"
)

// Step pairs a pass's name with its diagnostic, in pipeline order.
type Step struct {
	Name       PassName
	Diagnostic Diagnostic
}

// Pipeline runs the default pass order from §4.4: collapse-repeated,
// remove-zero-length, straight-curves-to-lines, line-shorthands,
// curve-to-smooth, collapse-repeated again, line-to-Z,
// choose-absolute-or-relative, numeric-format. Each pass consumes the
// previous pass's output. cubic-to-quadratic is a real pass
// (CubicToQuadratic) but is not part of this default order, matching the
// spec's own pass list versus its narrower default-pipeline sentence.
func Pipeline(commands []pathdata.Command, opts Options) ([]pathdata.Command, []Step) {
	steps := []struct {
		name PassName
		run  func([]pathdata.Command, Options) Diagnostic
	}{
		{PassCollapseRepeated, CollapseRepeated},
		{PassRemoveZeroLength, RemoveZeroLength},
		{PassStraightCurvesToLines, StraightCurvesToLines},
		{PassLineShorthands, LineShorthands},
		{PassCurveToSmooth, CurveToSmooth},
		{PassCollapseRepeated, CollapseRepeated},
		{PassLineToZ, LineToZ},
		{PassChooseAbsoluteRelative, ChooseAbsoluteOrRelative},
		{PassNumericFormat, NumericFormat},
	}

	current := commands
	report := make([]Step, 0, len(steps))
	for _, s := range steps {
		diag := s.run(current, opts)
		report = append(report, Step{Name: s.name, Diagnostic: diag})
		current = diag.Commands
	}
	return current, report
}
