package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/config"
	"gopkg.in/yaml.v3"
)

// reportDoc is the wire shape named in spec.md §6's "Validator output":
// {isValid, hasErrors, hasWarnings, errorCount, warningCount, issueCount,
// summary: {type→count}, issues: [...]}. JSON and YAML marshal this struct
// directly; text and XML render it by hand.
type reportDoc struct {
	IsValid      bool           `json:"isValid" yaml:"isValid"`
	HasErrors    bool           `json:"hasErrors" yaml:"hasErrors"`
	HasWarnings  bool           `json:"hasWarnings" yaml:"hasWarnings"`
	ErrorCount   int            `json:"errorCount" yaml:"errorCount"`
	WarningCount int            `json:"warningCount" yaml:"warningCount"`
	IssueCount   int            `json:"issueCount" yaml:"issueCount"`
	Summary      map[string]int `json:"summary" yaml:"summary"`
	Issues       []issueDoc     `json:"issues" yaml:"issues"`
}

type issueDoc struct {
	Type       string `json:"type" yaml:"type"`
	Severity   string `json:"severity" yaml:"severity"`
	Line       int    `json:"line" yaml:"line"`
	Column     int    `json:"column" yaml:"column"`
	Element    string `json:"element,omitempty" yaml:"element,omitempty"`
	Attribute  string `json:"attribute,omitempty" yaml:"attribute,omitempty"`
	Value      string `json:"value,omitempty" yaml:"value,omitempty"`
	Reason     string `json:"reason" yaml:"reason"`
	SourceLine string `json:"sourceLine,omitempty" yaml:"sourceLine,omitempty"`
}

func (r Report) toDoc() reportDoc {
	issues := make([]issueDoc, len(r.Issues))
	for i, iss := range r.Issues {
		issues[i] = issueDoc{
			Type: iss.Type, Severity: iss.Severity.String(), Line: iss.Line, Column: iss.Column,
			Element: iss.Element, Attribute: iss.Attribute, Value: iss.Value, Reason: iss.Reason,
			SourceLine: iss.SourceLine,
		}
	}
	return reportDoc{
		IsValid: r.IsValid(), HasErrors: r.HasErrors(), HasWarnings: r.HasWarnings(),
		ErrorCount: r.ErrorCount(), WarningCount: r.WarningCount(), IssueCount: r.IssueCount(),
		Summary: r.Summary(), Issues: issues,
	}
}

// Format renders r in the requested output format. Text and XML are
// hand-serialized (spec.md §4.5: "no external deps" for those two); JSON
// uses the stdlib encoding/json since the shape is a plain struct with
// nothing a library would do better; YAML uses gopkg.in/yaml.v3. An unknown
// format fails with cerr.UnsupportedFormat.
func (r Report) Format(format config.OutputFormat) (string, error) {
	switch format {
	case config.FormatText:
		return r.formatText(), nil
	case config.FormatJSON:
		b, err := json.MarshalIndent(r.toDoc(), "", "  ")
		if err != nil {
			return "", cerr.Wrap(cerr.InternalInvariant, "marshaling JSON report", err)
		}
		return string(b), nil
	case config.FormatYAML:
		b, err := yaml.Marshal(r.toDoc())
		if err != nil {
			return "", cerr.Wrap(cerr.InternalInvariant, "marshaling YAML report", err)
		}
		return string(b), nil
	case config.FormatXML:
		return r.formatXML(), nil
	default:
		return "", cerr.Newf(cerr.UnsupportedFormat, "unknown output format %v", int(format))
	}
}

func (r Report) formatText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "valid: %v\n", r.IsValid())
	fmt.Fprintf(&b, "errors: %d, warnings: %d, total: %d\n", r.ErrorCount(), r.WarningCount(), r.IssueCount())
	for _, iss := range r.Issues {
		fmt.Fprintf(&b, "%d:%d [%s] %s", iss.Line, iss.Column, iss.Severity, iss.Type)
		if iss.Element != "" {
			fmt.Fprintf(&b, " <%s>", iss.Element)
		}
		if iss.Attribute != "" {
			fmt.Fprintf(&b, " %s", iss.Attribute)
		}
		fmt.Fprintf(&b, ": %s\n", iss.Reason)
	}
	return b.String()
}

// xmlEscape covers the five characters spec.md §6 names: & < > " '.
func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;")
	return r.Replace(s)
}

func (r Report) formatXML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, "<report isValid=\"%v\" hasErrors=\"%v\" hasWarnings=\"%v\" errorCount=\"%d\" warningCount=\"%d\" issueCount=\"%d\">\n",
		r.IsValid(), r.HasErrors(), r.HasWarnings(), r.ErrorCount(), r.WarningCount(), r.IssueCount())
	for _, iss := range r.Issues {
		fmt.Fprintf(&b, "  <issue type=\"%s\" severity=\"%s\" line=\"%d\" column=\"%d\"",
			xmlEscape(iss.Type), xmlEscape(iss.Severity.String()), iss.Line, iss.Column)
		if iss.Element != "" {
			fmt.Fprintf(&b, " element=\"%s\"", xmlEscape(iss.Element))
		}
		if iss.Attribute != "" {
			fmt.Fprintf(&b, " attribute=\"%s\"", xmlEscape(iss.Attribute))
		}
		if iss.Value != "" {
			fmt.Fprintf(&b, " value=\"%s\"", xmlEscape(iss.Value))
		}
		fmt.Fprintf(&b, ">%s</issue>\n", xmlEscape(iss.Reason))
	}
	b.WriteString("</report>\n")
	return b.String()
}
