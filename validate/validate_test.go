package validate

import (
	"testing"

	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/dom"
)

func issuesOfType(r Report, typ string) []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.Type == typ {
			out = append(out, i)
		}
	}
	return out
}

func TestValidateMissingRequiredAttribute(t *testing.T) {
	root := dom.NewElement("svg")
	rect := dom.NewElement("rect")
	root.AppendChild(rect)

	r, err := Validate(root, "<svg><rect/></svg>", config.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := issuesOfType(r, "missing-required-attribute")
	if len(found) != 2 {
		t.Fatalf("expected 2 missing-required-attribute issues (width, height), got %d: %+v", len(found), found)
	}
}

func TestValidateDuplicateID(t *testing.T) {
	root := dom.NewElement("svg")
	a := dom.NewElement("rect")
	a.SetAttribute("width", "1")
	a.SetAttribute("height", "1")
	a.SetAttribute("id", "dup")
	b := dom.NewElement("circle")
	b.SetAttribute("r", "1")
	b.SetAttribute("id", "dup")
	root.AppendChild(a)
	root.AppendChild(b)

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "duplicate-id")
	if len(found) != 2 {
		t.Fatalf("expected both elements flagged, got %d", len(found))
	}
	for _, i := range found {
		if i.Severity != SeverityError {
			t.Fatalf("expected duplicate-id to be an error")
		}
	}
}

func TestValidateBrokenReference(t *testing.T) {
	root := dom.NewElement("svg")
	rect := dom.NewElement("rect")
	rect.SetAttribute("width", "1")
	rect.SetAttribute("height", "1")
	rect.SetAttribute("fill", "url(#missing)")
	root.AppendChild(rect)

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "broken-reference")
	if len(found) != 1 {
		t.Fatalf("expected 1 broken-reference issue, got %d: %+v", len(found), r.Issues)
	}
}

func TestValidateReferenceResolves(t *testing.T) {
	root := dom.NewElement("svg")
	grad := dom.NewElement("linearGradient")
	grad.SetAttribute("id", "g1")
	use := dom.NewElement("rect")
	use.SetAttribute("width", "1")
	use.SetAttribute("height", "1")
	use.SetAttribute("fill", "url(#g1)")
	root.AppendChild(grad)
	root.AppendChild(use)

	r, _ := Validate(root, "", config.Options{})
	if len(issuesOfType(r, "broken-reference")) != 0 {
		t.Fatalf("expected no broken-reference issue when id exists, got %+v", r.Issues)
	}
}

func TestValidateInvalidEnumeratedValue(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	root.SetAttribute("stroke-linecap", "pointy")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "invalid-enumerated-value")
	if len(found) != 1 {
		t.Fatalf("expected 1 invalid-enumerated-value issue, got %d", len(found))
	}
}

func TestValidateEnumeratedValueCaseFolded(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	root.SetAttribute("stroke-linecap", "ROUND")

	r, _ := Validate(root, "", config.Options{})
	if len(issuesOfType(r, "invalid-enumerated-value")) != 0 {
		t.Fatalf("expected case-folded match to be accepted, got %+v", r.Issues)
	}
}

func TestValidateNumericConstraintViolation(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	root.SetAttribute("opacity", "1.5")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "numeric-constraint-violation")
	if len(found) != 1 {
		t.Fatalf("expected 1 numeric-constraint-violation issue, got %d", len(found))
	}
}

func TestValidateMalformedViewBox(t *testing.T) {
	root := dom.NewElement("svg")
	root.SetAttribute("viewBox", "0 0 100")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "malformed-viewbox")
	if len(found) != 1 {
		t.Fatalf("expected 1 malformed-viewbox issue, got %d: %+v", len(found), r.Issues)
	}
}

func TestValidateWellFormedViewBoxPasses(t *testing.T) {
	root := dom.NewElement("svg")
	root.SetAttribute("viewBox", "0 0 100 50")

	r, _ := Validate(root, "", config.Options{})
	if len(issuesOfType(r, "malformed-viewbox")) != 0 {
		t.Fatalf("expected well-formed viewBox to pass, got %+v", r.Issues)
	}
}

func TestValidateMalformedTransform(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	root.SetAttribute("transform", "spin(45)")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "malformed-transform")
	if len(found) != 1 {
		t.Fatalf("expected 1 malformed-transform issue, got %d", len(found))
	}
}

func TestValidateDisallowedAttribute(t *testing.T) {
	root := dom.NewElement("g")
	root.SetAttribute("x", "5")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "disallowed-attribute")
	if len(found) != 1 {
		t.Fatalf("expected 1 disallowed-attribute issue, got %d", len(found))
	}
	if found[0].Severity != SeverityWarning {
		t.Fatalf("expected disallowed-attribute to be a warning")
	}
}

func TestValidateAnimationInEmptyParent(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	anim := dom.NewElement("animate")
	root.AppendChild(anim)

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "animation-in-empty-parent")
	if len(found) != 1 {
		t.Fatalf("expected 1 animation-in-empty-parent issue, got %d", len(found))
	}
}

func TestValidateInvalidParentChild(t *testing.T) {
	root := dom.NewElement("linearGradient")
	root.SetAttribute("id", "g1")
	bad := dom.NewElement("rect")
	bad.SetAttribute("width", "1")
	bad.SetAttribute("height", "1")
	root.AppendChild(bad)

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "invalid-parent-child")
	if len(found) != 1 {
		t.Fatalf("expected 1 invalid-parent-child issue, got %d: %+v", len(found), r.Issues)
	}
}

func TestValidateInvalidColorLiteral(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	root.SetAttribute("fill", "reddish")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "invalid-color-literal")
	if len(found) != 1 {
		t.Fatalf("expected 1 invalid-color-literal issue, got %d", len(found))
	}
}

func TestValidateColorLiteralVariants(t *testing.T) {
	for _, v := range []string{"red", "#fff", "#ffffff", "#ffff", "rgb(1,2,3)", "rgba(1,2,3,0.5)", "none", "currentColor", "url(#grad)"} {
		root := dom.NewElement("rect")
		root.SetAttribute("width", "1")
		root.SetAttribute("height", "1")
		root.SetAttribute("fill", v)
		grad := dom.NewElement("svg")
		gradChild := dom.NewElement("linearGradient")
		gradChild.SetAttribute("id", "grad")
		grad.AppendChild(gradChild)
		grad.AppendChild(root)

		r, _ := Validate(grad, "", config.Options{})
		if len(issuesOfType(r, "invalid-color-literal")) != 0 {
			t.Errorf("expected %q to be accepted as a color literal, got %+v", v, r.Issues)
		}
	}
}

func TestValidateMistypedElement(t *testing.T) {
	root := dom.NewElement("recta")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "mistyped-element")
	if len(found) != 1 {
		t.Fatalf("expected 1 mistyped-element issue, got %d", len(found))
	}
}

func TestValidateSVG2ElementNotMistyped(t *testing.T) {
	root := dom.NewElement("hatch")

	r, _ := Validate(root, "", config.Options{})
	if len(issuesOfType(r, "mistyped-element")) != 0 {
		t.Fatalf("expected SVG 2.0 element <hatch> to not be flagged as mistyped, got %+v", r.Issues)
	}
}

func TestValidateMissingNamespaceDeclaration(t *testing.T) {
	root := dom.NewElement("use")
	root.SetAttribute("xlink:href", "#foo")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "missing-namespace-declaration")
	if len(found) != 1 {
		t.Fatalf("expected 1 missing-namespace-declaration issue, got %d", len(found))
	}
}

func TestValidateNamespaceDeclaredSuppressesWarning(t *testing.T) {
	root := dom.NewElement("svg")
	root.SetAttribute("xmlns:xlink", "http://www.w3.org/1999/xlink")
	use := dom.NewElement("use")
	use.SetAttribute("xlink:href", "#foo")
	root.AppendChild(use)

	r, _ := Validate(root, "", config.Options{})
	if len(issuesOfType(r, "missing-namespace-declaration")) != 0 {
		t.Fatalf("expected declared xmlns:xlink to suppress the warning, got %+v", r.Issues)
	}
}

func TestValidateUppercaseUnit(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "10PX")
	root.SetAttribute("height", "1")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "uppercase-unit")
	if len(found) != 1 {
		t.Fatalf("expected 1 uppercase-unit issue, got %d", len(found))
	}
}

func TestValidateTrailingDecimal(t *testing.T) {
	root := dom.NewElement("rect")
	root.SetAttribute("width", "10.")
	root.SetAttribute("height", "1")

	r, _ := Validate(root, "", config.Options{})
	found := issuesOfType(r, "trailing-decimal")
	if len(found) != 1 {
		t.Fatalf("expected 1 trailing-decimal issue, got %d", len(found))
	}
}

func TestValidateOrdersIssuesByPosition(t *testing.T) {
	source := "<svg>\n  <rect stroke-linecap=\"bogus\"/>\n  <circle stroke-linecap=\"bogus2\" r=\"1\"/>\n</svg>"
	root := dom.NewElement("svg")
	rect := dom.NewElement("rect")
	rect.SetAttribute("width", "1")
	rect.SetAttribute("height", "1")
	rect.SetAttribute("stroke-linecap", "bogus")
	circle := dom.NewElement("circle")
	circle.SetAttribute("r", "1")
	circle.SetAttribute("stroke-linecap", "bogus2")
	root.AppendChild(rect)
	root.AppendChild(circle)

	r, _ := Validate(root, source, config.Options{})
	var lines []int
	for _, i := range r.Issues {
		lines = append(lines, i.Line)
	}
	for i := 1; i < len(lines); i++ {
		if lines[i] < lines[i-1] {
			t.Fatalf("expected non-decreasing line numbers, got %v", lines)
		}
	}
}
