package rewrite

import "github.com/vectorforge/svgcore/pathdata"

// CollapseRepeated counts adjacent commands sharing a letter and case, the
// condition under which Serialize's CollapseRepeatedLetters option can fold
// their argument groups together at output time. The command stream itself
// is untouched — nothing about a Command's in-memory representation changes
// when its letter is merely omitted from the text — so this pass verifies
// trivially and SavedBytes is an estimate (one byte per merge point for the
// omitted letter; actual separator savings vary with sign/decimal-point
// adjacency and are realized by Serialize, not predicted exactly here).
func CollapseRepeated(commands []pathdata.Command, opts Options) Diagnostic {
	out := make([]pathdata.Command, len(commands))
	copy(out, commands)

	mergeCount := 0
	var prevLetter byte
	havePrev := false
	for _, cmd := range commands {
		letter := letterCase(cmd)
		if havePrev && letter == prevLetter && cmd.Letter() != 'Z' {
			mergeCount++
		}
		prevLetter = letter
		havePrev = true
	}

	return Diagnostic{
		Commands:         out,
		Verified:         true,
		HasMergeCount:    true,
		MergeCount:       mergeCount,
		HasSavedBytes:    true,
		SavedBytes:       mergeCount,
		HasCollapseCount: true,
		CollapseCount:    mergeCount,
	}
}

// letterCase returns the command's letter with relative commands lowercased,
// matching Serialize's own case-sensitive repeat comparison.
func letterCase(cmd pathdata.Command) byte {
	letter := cmd.Letter()
	if cmd.IsRelative() {
		return letter + ('a' - 'A')
	}
	return letter
}
