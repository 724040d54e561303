package harness

import (
	"testing"

	"github.com/vectorforge/svgcore/dom"
)

func TestClassifyElementTree(t *testing.T) {
	n := dom.NewElement("rect")
	if got := Classify(n, false); got != KindElementTree {
		t.Fatalf("expected KindElementTree, got %v", got)
	}
}

func TestClassifyMarkup(t *testing.T) {
	if got := Classify("<svg></svg>", false); got != KindMarkup {
		t.Fatalf("expected KindMarkup, got %v", got)
	}
}

func TestClassifyURL(t *testing.T) {
	if got := Classify("https://example.com/a.svg", false); got != KindURL {
		t.Fatalf("expected KindURL, got %v", got)
	}
	if got := Classify("http://example.com/a.svg", false); got != KindURL {
		t.Fatalf("expected KindURL, got %v", got)
	}
}

func TestClassifySelectorRequiresContext(t *testing.T) {
	if got := Classify("#foo", true); got != KindSelector {
		t.Fatalf("expected KindSelector with context, got %v", got)
	}
	if got := Classify("#foo", false); got != KindFilePath {
		t.Fatalf("expected #foo without a DOM context to fall back to KindFilePath, got %v", got)
	}
	if got := Classify(".bar", true); got != KindSelector {
		t.Fatalf("expected KindSelector for class selector, got %v", got)
	}
	if got := Classify("[data-x]", true); got != KindSelector {
		t.Fatalf("expected KindSelector for attribute selector, got %v", got)
	}
}

func TestClassifyFilePath(t *testing.T) {
	if got := Classify("icons/star.svg", false); got != KindFilePath {
		t.Fatalf("expected KindFilePath, got %v", got)
	}
}
