package main

import (
	"testing"

	"github.com/vectorforge/svgcore/config"
	"github.com/vectorforge/svgcore/harness"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected config.OutputFormat
	}{
		{"text", config.FormatText},
		{"json", config.FormatJSON},
		{"yaml", config.FormatYAML},
		{"xml", config.FormatXML},
	}
	for _, tt := range tests {
		got, err := parseFormat(tt.input)
		if err != nil {
			t.Errorf("parseFormat(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("parseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	if _, err := parseFormat("csv"); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
}

func TestParseOutputKind(t *testing.T) {
	tests := []struct {
		input    string
		expected harness.OutputKind
	}{
		{"markup", harness.OutputMarkup},
		{"tree", harness.OutputElementTree},
		{"xml", harness.OutputXMLDocument},
	}
	for _, tt := range tests {
		got, err := parseOutputKind(tt.input)
		if err != nil {
			t.Errorf("parseOutputKind(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("parseOutputKind(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseOutputKindRejectsUnknown(t *testing.T) {
	if _, err := parseOutputKind("pdf"); err == nil {
		t.Errorf("expected an error for an unknown output kind")
	}
}
