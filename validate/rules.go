package validate

import (
	"strconv"
	"strings"

	"github.com/vectorforge/svgcore/dom"
	"golang.org/x/text/cases"
)

// elemCtx bundles one element visit's source position with its
// already-looked-up attribute positions, so every rule function for this
// element shares a single positionIndex.next call.
type elemCtx struct {
	node    *dom.Node
	pos     Position
	attrPos map[string]Position
}

func (c elemCtx) positionFor(attr string) Position {
	if p, ok := c.attrPos[attr]; ok {
		return p
	}
	return c.pos
}

var foldCaser = cases.Fold()

func foldCase(s string) string { return foldCaser.String(s) }

// checkElement runs every element-scoped rule family over n.
func (v *validator) checkElement(n *dom.Node) {
	pos, attrPos := v.idx.next(n.TagName())
	ctx := elemCtx{node: n, pos: pos, attrPos: attrPos}

	v.checkDuplicateID(ctx)
	v.checkRequiredAttributes(ctx)
	v.checkParentChild(ctx)
	v.checkEmptyParentAnimation(ctx)
	v.checkDeniedAttributes(ctx)
	v.checkEnumeratedValues(ctx)
	v.checkNumericConstraints(ctx)
	v.checkColorLiterals(ctx)
	v.checkGrammarAttributes(ctx)
	v.checkReferences(ctx)
	v.checkLexical(ctx)
	v.checkDictionary(ctx)
}

func (v *validator) addIssue(typ string, sev Severity, pos Position, element, attribute, value, reason string) {
	v.report.add(Issue{
		Type: typ, Severity: sev, Line: pos.Line, Column: pos.Column,
		Element: element, Attribute: attribute, Value: value, Reason: reason,
		SourceLine: sourceLineAt(v.source, v.idx.lineStarts, pos.Line),
	})
}

// checkDuplicateID: spec.md §4.5 "Duplicate IDs".
func (v *validator) checkDuplicateID(ctx elemCtx) {
	id := ctx.node.ID()
	if id == "" {
		return
	}
	if n := len(v.ids[id]); n > 1 {
		v.addIssue("duplicate-id", SeverityError, ctx.pos, ctx.node.TagName(), "id", id,
			"id '"+id+"' is used by "+strconv.Itoa(n)+" elements")
	}
}

// checkRequiredAttributes: spec.md §4.5 "Missing required attributes".
func (v *validator) checkRequiredAttributes(ctx elemCtx) {
	required, ok := requiredAttributes[ctx.node.TagName()]
	if ok {
		for _, attr := range required {
			if !ctx.node.HasAttribute(attr) {
				v.addIssue("missing-required-attribute", SeverityError, ctx.pos, ctx.node.TagName(), attr, "",
					ctx.node.TagName()+" requires a "+attr+" attribute")
			}
		}
	}
	if ctx.node.TagName() == "use" && !hasAny(ctx.node, hrefAttributes) {
		v.addIssue("missing-required-attribute", SeverityError, ctx.pos, "use", "href", "",
			"use requires an href or xlink:href attribute")
	}
}

func hasAny(n *dom.Node, attrs []string) bool {
	for _, a := range attrs {
		if n.HasAttribute(a) {
			return true
		}
	}
	return false
}

// checkParentChild: spec.md §4.5 "Invalid parent→child relationships".
func (v *validator) checkParentChild(ctx elemCtx) {
	allowed, restricted := restrictedParents[ctx.node.TagName()]
	if !restricted {
		return
	}
	for _, child := range ctx.node.Children {
		if child.Type != dom.ElementNode {
			continue
		}
		if !allowed[child.TagName()] {
			childPos := v.idx.peek(child.TagName())
			v.addIssue("invalid-parent-child", SeverityError, childPos, child.TagName(), "", "",
				"<"+child.TagName()+"> is not a valid child of <"+ctx.node.TagName()+">")
		}
	}
}

// checkEmptyParentAnimation: spec.md §4.5 "Animation element inside truly
// empty parent".
func (v *validator) checkEmptyParentAnimation(ctx elemCtx) {
	if !emptyElements[ctx.node.TagName()] {
		return
	}
	for _, child := range ctx.node.Children {
		if child.Type == dom.ElementNode && animationElements[child.TagName()] {
			v.addIssue("animation-in-empty-parent", SeverityError, ctx.pos, child.TagName(), "", "",
				"<"+child.TagName()+"> cannot appear inside the empty element <"+ctx.node.TagName()+">")
		}
	}
}

// checkDeniedAttributes: spec.md §4.5 "Attribute on disallowed element".
func (v *validator) checkDeniedAttributes(ctx elemCtx) {
	denied, ok := denyListedAttributes[ctx.node.TagName()]
	if !ok {
		return
	}
	for _, attr := range denied {
		if ctx.node.HasAttribute(attr) {
			v.addIssue("disallowed-attribute", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr,
				ctx.node.GetAttribute(attr), "attribute '"+attr+"' has no effect on <"+ctx.node.TagName()+">")
		}
	}
}

// checkEnumeratedValues: spec.md §4.5 "Invalid enumerated value". Comparison
// is case-folded via golang.org/x/text/cases, per §9's note that enumerated
// values should be compared case-insensitively where the SVG spec says so.
func (v *validator) checkEnumeratedValues(ctx elemCtx) {
	for _, attr := range ctx.node.GetAttributeNames() {
		allowed, ok := enumeratedAttributes[attr]
		if !ok {
			continue
		}
		value := ctx.node.GetAttribute(attr)
		folded := foldCase(strings.TrimSpace(value))
		valid := false
		for _, a := range allowed {
			if foldCase(a) == folded {
				valid = true
				break
			}
		}
		if !valid {
			v.addIssue("invalid-enumerated-value", SeverityError, ctx.positionFor(attr), ctx.node.TagName(), attr, value,
				"'"+value+"' is not a valid value for "+attr)
		}
	}
}

// checkNumericConstraints: spec.md §4.5 "Numeric constraint violation".
func (v *validator) checkNumericConstraints(ctx elemCtx) {
	for attr, rng := range numericRangeAttributes {
		if !ctx.node.HasAttribute(attr) {
			continue
		}
		value := ctx.node.GetAttribute(attr)
		num, _, ok := parseNumericWithUnit(value)
		if !ok {
			continue // malformed-number reporting belongs to the lexical rules
		}
		if rng.hasMin && num < rng.min {
			v.addIssue("numeric-constraint-violation", SeverityError, ctx.positionFor(attr), ctx.node.TagName(), attr, value,
				attr+" must be >= "+strconv.FormatFloat(rng.min, 'g', -1, 64))
		}
		if rng.hasMax && num > rng.max {
			v.addIssue("numeric-constraint-violation", SeverityError, ctx.positionFor(attr), ctx.node.TagName(), attr, value,
				attr+" must be <= "+strconv.FormatFloat(rng.max, 'g', -1, 64))
		}
	}
}

// checkColorLiterals: spec.md §4.5 "Invalid color literal".
func (v *validator) checkColorLiterals(ctx elemCtx) {
	for attr := range colorAttributes {
		if !ctx.node.HasAttribute(attr) {
			continue
		}
		value := ctx.node.GetAttribute(attr)
		if !isWellFormedColor(value) {
			v.addIssue("invalid-color-literal", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr, value,
				"'"+value+"' is not a recognized color literal")
		}
	}
}

// checkGrammarAttributes: spec.md §4.5 "Malformed viewBox / points /
// transform".
func (v *validator) checkGrammarAttributes(ctx elemCtx) {
	if ctx.node.HasAttribute("viewBox") {
		val := ctx.node.GetAttribute("viewBox")
		if !regexMatches(viewBoxGrammar, val) {
			v.addIssue("malformed-viewbox", SeverityError, ctx.positionFor("viewBox"), ctx.node.TagName(), "viewBox", val,
				"viewBox must be four numbers separated by whitespace or commas")
		}
	}
	if ctx.node.HasAttribute("points") {
		val := ctx.node.GetAttribute("points")
		if !regexMatches(pointsGrammar, val) {
			v.addIssue("malformed-points", SeverityError, ctx.positionFor("points"), ctx.node.TagName(), "points", val,
				"points must be a sequence of number pairs separated by whitespace or commas")
		}
	}
	if ctx.node.HasAttribute("transform") {
		val := ctx.node.GetAttribute("transform")
		if !regexMatches(transformGrammar, val) {
			v.addIssue("malformed-transform", SeverityError, ctx.positionFor("transform"), ctx.node.TagName(), "transform", val,
				"transform must be a whitespace-separated list of translate/scale/rotate/skewX/skewY/matrix calls")
		}
	}
}

// checkReferences: spec.md §4.5 "Broken ID/URL references". Every attribute
// that resolves to a fragment reference (via dom.ParseFragmentReference,
// shared with the harness's own reference resolution) must name an id that
// exists somewhere in the document.
func (v *validator) checkReferences(ctx elemCtx) {
	for _, attr := range ctx.node.GetAttributeNames() {
		val := ctx.node.GetAttribute(attr)
		id, ok := dom.ParseFragmentReference(val)
		if !ok {
			continue
		}
		if _, exists := v.ids[id]; !exists {
			v.addIssue("broken-reference", SeverityError, ctx.positionFor(attr), ctx.node.TagName(), attr, val,
				"reference to undefined id '"+id+"'")
		}
	}
}

// checkLexical: spec.md §4.5 "Uppercase unit, whitespace irregularity,
// trailing decimal".
func (v *validator) checkLexical(ctx elemCtx) {
	for _, attr := range ctx.node.GetAttributeNames() {
		val := ctx.node.GetAttribute(attr)
		if val != strings.TrimSpace(val) || strings.Contains(val, "  ") || strings.ContainsAny(val, "\t\n\r") {
			v.addIssue("whitespace-irregularity", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr, val,
				"attribute value has irregular whitespace")
		}
		if regexMatches(trailingDecimalPattern, val) {
			v.addIssue("trailing-decimal", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr, val,
				"numeric value has a trailing decimal point with no following digits")
		}
		if canonical, bad, has := uppercaseUnit(val); has {
			v.addIssue("uppercase-unit", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr, val,
				"unit '"+bad+"' should be written '"+canonical+"'")
		}
	}
	v.checkNamespace(ctx)
}

// checkNamespace: spec.md §4.5 "Missing namespace declaration when prefix
// used".
func (v *validator) checkNamespace(ctx elemCtx) {
	for _, attr := range ctx.node.GetAttributeNames() {
		prefix, _, hasPrefix := strings.Cut(attr, ":")
		if !hasPrefix || prefix == "xmlns" {
			continue
		}
		if !v.declaredPrefixes[prefix] {
			v.addIssue("missing-namespace-declaration", SeverityWarning, ctx.positionFor(attr), ctx.node.TagName(), attr,
				ctx.node.GetAttribute(attr), "attribute prefix '"+prefix+"' used without a matching xmlns:"+prefix+" declaration")
		}
	}
}

// checkDictionary: spec.md §4.5 "Mistyped element/attribute".
func (v *validator) checkDictionary(ctx elemCtx) {
	tag := ctx.node.TagName()
	if !knownElements[tag] && looksLikeName(tag) {
		if match, _, ok := closestName(tag, knownElements, 2); ok {
			v.addIssue("mistyped-element", SeverityWarning, ctx.pos, tag, "", "",
				"<"+tag+"> is not a recognized element; did you mean <"+match+">?")
		}
	}
	for _, attr := range ctx.node.GetAttributeNames() {
		local := attr
		if _, after, ok := strings.Cut(attr, ":"); ok {
			local = after
		}
		if knownAttributes[attr] || strings.HasPrefix(attr, "xmlns") || strings.HasPrefix(attr, "aria-") || strings.HasPrefix(attr, "data-") {
			continue
		}
		if !looksLikeName(local) {
			continue
		}
		if match, _, ok := closestName(attr, knownAttributes, 2); ok {
			v.addIssue("mistyped-attribute", SeverityWarning, ctx.positionFor(attr), tag, attr, ctx.node.GetAttribute(attr),
				"attribute '"+attr+"' is not recognized; did you mean '"+match+"'?")
		}
	}
}
