package validate

import (
	"sort"

	"github.com/dlclark/regexp2"
)

// Position is a 1-based (line, column) source location, matching the
// (line, column) pairs the validator attaches to every issue.
type Position struct {
	Line, Column int
}

// tagOccurrence is one opening tag's position plus the positions of its
// attributes, keyed by attribute name.
type tagOccurrence struct {
	pos   Position
	attrs map[string]Position
}

// positionIndex maps a tag name to its occurrences in source order. The
// traversal consumes occurrences through next, one per visit to an element
// of that tag, mirroring spec.md §4.5's "per-tag occurrence counter".
type positionIndex struct {
	occurrences map[string][]tagOccurrence
	cursor      map[string]int
	lineStarts  []int
}

// tagPattern matches an opening tag `<name attrs?>`, capturing the name and
// the raw attribute source between the name and the closing `>`. Built on
// dlclark/regexp2; the pattern uses no lazy quantifier or lookaround. The
// unquoted-character alternative is tried first, so a '>' inside a quoted
// attribute value ends the match.
var tagPattern = regexp2.MustCompile(`<([A-Za-z][\w:.\-]*)((?:[^<>]|"[^"]*"|'[^']*')*)>`, regexp2.None)

// attrPattern matches one `name="value"` or `name='value'` pair within a
// tag's attribute source.
var attrPattern = regexp2.MustCompile(`([A-Za-z_:][\w:.\-]*)\s*=\s*("[^"]*"|'[^']*')`, regexp2.None)

// scanPositions builds a positionIndex from the original source text, per
// spec.md §4.5's "Before traversal, scan the source string for opening tags".
func scanPositions(source string) *positionIndex {
	idx := &positionIndex{
		occurrences: make(map[string][]tagOccurrence),
		cursor:      make(map[string]int),
		lineStarts:  computeLineStarts(source),
	}

	m, _ := tagPattern.FindStringMatch(source)
	for m != nil {
		nameGroup := m.GroupByNumber(1)
		name := nameGroup.String()
		occ := tagOccurrence{
			pos:   idx.positionAt(m.Index),
			attrs: make(map[string]Position),
		}

		attrsGroup := m.GroupByNumber(2)
		if attrsGroup != nil && attrsGroup.Length > 0 {
			base := attrsGroup.Index
			am, _ := attrPattern.FindStringMatch(attrsGroup.String())
			for am != nil {
				aname := am.GroupByNumber(1).String()
				occ.attrs[aname] = idx.positionAt(base + am.Index)
				am, _ = attrPattern.FindNextMatch(am)
			}
		}

		idx.occurrences[name] = append(idx.occurrences[name], occ)
		m, _ = tagPattern.FindNextMatch(m)
	}
	return idx
}

// next returns the position recorded for the next occurrence of tag (and its
// attribute positions), advancing that tag's cursor. If the scan found fewer
// occurrences than the tree walk visits (a hand-built element tree with no
// backing source text), it returns the zero Position, which issue-sorting
// treats as "position unknown" rather than failing.
func (idx *positionIndex) next(tag string) (Position, map[string]Position) {
	occs := idx.occurrences[tag]
	n := idx.cursor[tag]
	idx.cursor[tag] = n + 1
	if n >= len(occs) {
		return Position{}, nil
	}
	return occs[n].pos, occs[n].attrs
}

// peek returns the position recorded for the next occurrence of tag without
// advancing its cursor, for rules that need another element's position
// without consuming its turn in the walk (e.g. a parent inspecting a
// child's tag for an invalid-parent-child issue before the walk visits it).
func (idx *positionIndex) peek(tag string) Position {
	occs := idx.occurrences[tag]
	n := idx.cursor[tag]
	if n >= len(occs) {
		return Position{}
	}
	return occs[n].pos
}

// computeLineStarts records the byte offset each line begins at, for
// binary-searching an absolute offset down to a (line, column) pair.
func computeLineStarts(source string) []int {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (idx *positionIndex) positionAt(offset int) Position {
	i := sort.Search(len(idx.lineStarts), func(i int) bool { return idx.lineStarts[i] > offset }) - 1
	if i < 0 {
		i = 0
	}
	return Position{Line: i + 1, Column: offset - idx.lineStarts[i] + 1}
}

// sourceLineAt returns the full line of text an offset falls on, for the
// issue's optional SourceLine field.
func sourceLineAt(source string, lineStarts []int, line int) string {
	if line < 1 || line > len(lineStarts) {
		return ""
	}
	start := lineStarts[line-1]
	end := len(source)
	if line < len(lineStarts) {
		end = lineStarts[line] - 1
	}
	if start > end || start > len(source) {
		return ""
	}
	if end > len(source) {
		end = len(source)
	}
	return source[start:end]
}
