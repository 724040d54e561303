package rewrite

import "github.com/vectorforge/svgcore/pathdata"

// LineShorthands replaces a Line whose movement is purely horizontal or
// purely vertical (within tolerance) with the equivalent Horizontal or
// Vertical command. Horizontal/Vertical snap the untouched axis to the
// current point exactly, so a line whose "flat" axis drifted by less than
// tolerance is intentionally pulled flush — the same tolerance budget every
// other pass spends to shrink the encoding.
func LineShorthands(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	state := newCursorState()
	out := make([]pathdata.Command, 0, len(commands))
	merged := 0
	verified := true

	for _, cmd := range commands {
		before := state.current
		_, _, end := state.advance(cmd)

		line, ok := cmd.(pathdata.Line)
		if !ok {
			out = append(out, cmd)
			continue
		}

		dy := opts.Context.Sub(end.Y, before.Y)
		dx := opts.Context.Sub(end.X, before.X)
		flatY := dy.Abs().LessThanOrEqual(tol)
		flatX := dx.Abs().LessThanOrEqual(tol)

		switch {
		case flatY && !flatX:
			h := pathdata.Horizontal{X: line.X, Relative: line.Relative}
			if !pointsWithinTol(pathdata.EndPoint(h, before, before), end, tol) {
				verified = false
			}
			out = append(out, h)
			merged++
		case flatX && !flatY:
			v := pathdata.Vertical{Y: line.Y, Relative: line.Relative}
			if !pointsWithinTol(pathdata.EndPoint(v, before, before), end, tol) {
				verified = false
			}
			out = append(out, v)
			merged++
		default:
			out = append(out, cmd)
		}
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    merged,
	}
}

// LineToZ replaces the final Line of a subpath with Close when its endpoint
// lands within tolerance of that subpath's start and no Close already
// follows it. A subpath's end is the command immediately before the next
// Move or the end of the stream.
func LineToZ(commands []pathdata.Command, opts Options) Diagnostic {
	tol := opts.Tolerance
	state := newCursorState()
	out := make([]pathdata.Command, len(commands))
	copy(out, commands)
	converted := 0
	verified := true

	for i, cmd := range commands {
		subpathStart := state.subpathStart
		_, _, end := state.advance(cmd)

		if _, ok := cmd.(pathdata.Line); !ok {
			continue
		}
		isSubpathEnd := i+1 >= len(commands)
		var nextIsClose bool
		if i+1 < len(commands) {
			switch commands[i+1].(type) {
			case pathdata.Move:
				isSubpathEnd = true
			case pathdata.Close:
				nextIsClose = true
			}
		}
		if !isSubpathEnd || nextIsClose {
			continue
		}
		if !pointsWithinTol(end, subpathStart, tol) {
			continue
		}
		closeCmd := pathdata.Close{}
		if !pointsWithinTol(pathdata.EndPoint(closeCmd, end, subpathStart), subpathStart, tol) {
			verified = false
		}
		out[i] = closeCmd
		converted++
	}

	return Diagnostic{
		Commands:      out,
		Verified:      verified,
		HasMergeCount: true,
		MergeCount:    converted,
	}
}
