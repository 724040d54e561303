package validate

import (
	"strings"

	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/dom"
)

// validator threads the shared state every rule function reads: the
// position index, the document's id table, the set of declared xmlns
// prefixes, and the accumulating report.
type validator struct {
	idx              *positionIndex
	source           string
	ids              map[string][]*dom.Node
	declaredPrefixes map[string]bool
	opts             config.Options
	report           Report
}

// Validate runs every rule family in spec.md §4.5 over root and returns an
// ordered Report. source is the original markup text root was parsed from,
// used for position tracking; pass an empty string if root was built by
// hand rather than parsed (every issue then carries a zero Position).
// Validate never mutates root.
func Validate(root *dom.Node, source string, opts config.Options) (Report, error) {
	v := &validator{
		idx:              scanPositions(source),
		source:           source,
		ids:              collectIDs(root),
		declaredPrefixes: collectDeclaredPrefixes(root),
		opts:             opts,
	}

	dom.Walk(root, func(n *dom.Node) {
		if n.Type != dom.ElementNode {
			return
		}
		v.checkElement(n)
	})

	v.report.sortIssues()
	return v.report, nil
}

// collectIDs maps every id attribute value to the elements that carry it,
// in document order, supporting both the broken-reference and
// duplicate-id rule families.
func collectIDs(root *dom.Node) map[string][]*dom.Node {
	ids := make(map[string][]*dom.Node)
	dom.Walk(root, func(n *dom.Node) {
		if n.Type != dom.ElementNode {
			return
		}
		if id := n.ID(); id != "" {
			ids[id] = append(ids[id], n)
		}
	})
	return ids
}

// collectDeclaredPrefixes scans the whole tree for xmlns:<prefix>
// declarations, since SVG permits declaring a namespace on any ancestor,
// not only the document root.
func collectDeclaredPrefixes(root *dom.Node) map[string]bool {
	declared := make(map[string]bool)
	dom.Walk(root, func(n *dom.Node) {
		if n.Type != dom.ElementNode {
			return
		}
		for _, attr := range n.GetAttributeNames() {
			if prefix, ok := strings.CutPrefix(attr, "xmlns:"); ok {
				declared[prefix] = true
			}
		}
	})
	return declared
}

