package decimal

// Epsilon is the threshold below which a difference is treated as zero:
// geom.ClipLine uses it to detect horizontal and vertical segments. The
// Newton-Raphson and series loops in this package stop on their own
// precision-dependent threshold instead. It is not a general-purpose
// comparison tolerance — see DefaultTolerance for that.
var Epsilon = MustParse("1e-40")

// DefaultTolerance is the default "close enough" threshold the geometric
// and rewriting engines use when comparing reconstructed coordinates
// (e.g. the rewrite package's independent-reconstruction verification).
var DefaultTolerance = MustParse("1e-10")

// WithinTolerance reports whether |a-b| <= tolerance.
func WithinTolerance(a, b, tolerance Decimal) bool {
	diff := DefaultContext.Sub(a, b).Abs()
	return diff.LessThanOrEqual(tolerance)
}
