package css

import "testing"

type fakeNode struct {
	tag     string
	id      string
	classes []string
	parent  *fakeNode
}

func (f *fakeNode) TagName() string  { return f.tag }
func (f *fakeNode) ID() string       { return f.id }
func (f *fakeNode) Classes() []string { return f.classes }
func (f *fakeNode) ParentElement() Node {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

func TestParseSimpleSelector(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		tagName string
		id      string
		classes []string
	}{
		{"tag", "rect", "rect", "", nil},
		{"id", "#main", "", "main", nil},
		{"class", ".container", "", "", []string{"container"}},
		{"tag_id_class", "path#p1.a.b", "path", "p1", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := ParseSelector(tt.input)
			if sel == nil || len(sel.Simple) != 1 {
				t.Fatalf("ParseSelector(%q) = %v", tt.input, sel)
			}
			s := sel.Simple[0]
			if s.TagName != tt.tagName || s.ID != tt.id {
				t.Errorf("got tag=%q id=%q, want tag=%q id=%q", s.TagName, s.ID, tt.tagName, tt.id)
			}
			if len(s.Classes) != len(tt.classes) {
				t.Errorf("got classes=%v, want %v", s.Classes, tt.classes)
			}
		})
	}
}

func TestMatchesDescendant(t *testing.T) {
	root := &fakeNode{tag: "svg"}
	group := &fakeNode{tag: "g", id: "layer1", parent: root}
	leaf := &fakeNode{tag: "circle", classes: []string{"dot"}, parent: group}

	sel := ParseSelector("g circle")
	if !Matches(sel, leaf) {
		t.Error("expected descendant selector to match")
	}

	sel2 := ParseSelector("#layer1 .dot")
	if !Matches(sel2, leaf) {
		t.Error("expected id+class descendant selector to match")
	}

	sel3 := ParseSelector("rect circle")
	if Matches(sel3, leaf) {
		t.Error("expected selector to not match: no rect ancestor")
	}
}

func TestMatchesCompound(t *testing.T) {
	n := &fakeNode{tag: "rect", id: "r1", classes: []string{"a", "b"}}

	if !Matches(ParseSelector("rect#r1.a.b"), n) {
		t.Error("expected compound selector to match")
	}
	if Matches(ParseSelector("rect#r2"), n) {
		t.Error("expected mismatched id to fail")
	}
	if Matches(ParseSelector("circle"), n) {
		t.Error("expected mismatched tag to fail")
	}
}
