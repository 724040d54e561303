package harness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/dom"
)

func TestRunValidateOverMarkup(t *testing.T) {
	h := New("", config.Options{})
	report, err := h.RunValidate(context.Background(), `<svg><rect/></svg>`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.IsValid() {
		t.Fatalf("expected issues for a rect with no width/height, got none")
	}
}

func TestRunValidateOverElementTree(t *testing.T) {
	h := New("", config.Options{})
	root := dom.NewElement("rect")
	root.SetAttribute("width", "1")
	root.SetAttribute("height", "1")
	report, err := h.RunValidate(context.Background(), root, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsValid() {
		t.Fatalf("expected a well-formed rect to validate cleanly, got %+v", report.Issues)
	}
}

func TestRunValidateOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.svg")
	if err := os.WriteFile(path, []byte(`<svg><circle r="5"/></svg>`), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	h := New("", config.Options{})
	report, err := h.RunValidate(context.Background(), path, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.IsValid() {
		t.Fatalf("expected a well-formed circle loaded from disk to validate cleanly, got %+v", report.Issues)
	}
}

func TestRunValidateOverSelector(t *testing.T) {
	h := New("", config.Options{})
	root := dom.NewElement("svg")
	rect := dom.NewElement("rect")
	rect.SetAttribute("id", "target")
	root.AppendChild(rect)

	report, err := h.RunValidate(context.Background(), "#target", root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, iss := range report.Issues {
		if iss.Type == "missing-required-attribute" && iss.Element == "rect" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected the selected rect (missing width/height) to be validated, got %+v", report.Issues)
	}
}

func TestRunValidateSelectorWithoutContextIsFilePath(t *testing.T) {
	h := New("", config.Options{})
	_, err := h.RunValidate(context.Background(), "#target", nil)
	if err == nil {
		t.Fatalf("expected an error: '#target' with no DOM context should be treated as an unreadable file path")
	}
}

func TestRunRewriteSimplifiesPath(t *testing.T) {
	h := New("", config.Options{})
	out, err := h.RunRewrite(context.Background(), `<svg><path d="M0 0 L10 0 L20 0 L20 0 L20 10 L0 10 Z"/></svg>`, nil, OutputMarkup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	markup, ok := out.(string)
	if !ok {
		t.Fatalf("expected markup output, got %T", out)
	}
	if strings.Contains(markup, "L10 0 L20 0 L20 0") {
		t.Fatalf("expected the redundant waypoints to be rewritten away, got %q", markup)
	}
	if !strings.Contains(markup, "H") || !strings.Contains(markup, "V") {
		t.Fatalf("expected H/V shorthand in the rewritten path, got %q", markup)
	}
}

func TestRunRewriteLowersShapeToPath(t *testing.T) {
	h := New("", config.Options{})
	out, err := h.RunRewrite(context.Background(), `<svg><rect width="10" height="10"/></svg>`, nil, OutputElementTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root, ok := out.(*dom.Node)
	if !ok {
		t.Fatalf("expected an element tree output, got %T", out)
	}
	rect := root.Children[0]
	if rect.TagName() != "path" {
		t.Fatalf("expected the rect to be lowered to a path, got <%s>", rect.TagName())
	}
	if !rect.HasAttribute("d") || rect.HasAttribute("width") {
		t.Fatalf("expected a d attribute and no leftover shape attributes, got %+v", rect.GetAttributeNames())
	}
}

func TestElementBBoxPath(t *testing.T) {
	h := New("", config.Options{})
	path := dom.NewElement("path")
	path.SetAttribute("d", "M0 0 L100 0 L100 50 L0 50 Z")
	bbox, err := h.ElementBBox(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bbox.MinX.String() != "0" || bbox.MaxX.String() != "100" || bbox.MaxY.String() != "50" {
		t.Fatalf("unexpected bbox: %+v", bbox)
	}
}

func TestElementBBoxShape(t *testing.T) {
	h := New("", config.Options{})
	rect := dom.NewElement("rect")
	rect.SetAttribute("width", "20")
	rect.SetAttribute("height", "10")
	bbox, err := h.ElementBBox(rect)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bbox.MaxX.String() != "20" || bbox.MaxY.String() != "10" {
		t.Fatalf("unexpected bbox: %+v", bbox)
	}
}

func TestEmitMatchInputMarkup(t *testing.T) {
	h := New("", config.Options{})
	node := dom.NewElement("rect")
	out, err := h.Emit(node, OutputMatchInput, KindFilePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(string); !ok {
		t.Fatalf("expected markup output for a file-path-origin input, got %T", out)
	}
}

func TestEmitMatchInputElementTree(t *testing.T) {
	h := New("", config.Options{})
	node := dom.NewElement("rect")
	out, err := h.Emit(node, OutputMatchInput, KindElementTree)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := out.(*dom.Node); !ok {
		t.Fatalf("expected an element tree output for a tree-origin input, got %T", out)
	}
}

func TestRunValidateResourceFailureFailFast(t *testing.T) {
	h := New("", config.Options{})
	_, err := h.RunValidate(context.Background(), "/nonexistent/does-not-exist.svg", nil)
	if err == nil {
		t.Fatalf("expected a resource failure for a nonexistent file")
	}
}

func TestRunValidateResourceFailureSkipPolicy(t *testing.T) {
	h := New("", config.Options{OnResourceFailure: config.FailSkip})
	report, err := h.RunValidate(context.Background(), "/nonexistent/does-not-exist.svg", nil)
	if err != nil {
		t.Fatalf("expected FailSkip to swallow the resource failure, got %v", err)
	}
	if report.IssueCount() != 0 {
		t.Fatalf("expected an empty report for a skipped failure, got %+v", report.Issues)
	}
}
