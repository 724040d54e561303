// Package css provides CSS-style selector tokenization and matching.
//
// This is the "CSS selector matching" external collaborator named in the
// core's scope: the core never evaluates selectors itself, it calls into
// this package only from the element tree's querySelector/querySelectorAll
// capability and from the operation harness's selector input branch.
//
// Only the selector grammar is implemented — no stylesheet cascade, no
// declaration blocks, no specificity resolution. Supported forms: a type
// selector ("rect"), an ID selector ("#id"), one or more class selectors
// (".a.b"), any combination of the three on one compound selector, and
// descendant combinators (space-separated compound selectors).
package css

// Node is the minimal read-only view a tree node exposes to the selector
// matcher, so this package never depends on a concrete element tree.
type Node interface {
	TagName() string
	ID() string
	Classes() []string
	ParentElement() Node
}

// SimpleSelector is one compound selector: a tag name and/or #id and/or
// one or more .class selectors, all of which must match the same node.
type SimpleSelector struct {
	TagName string
	ID      string
	Classes []string
}

// Selector is a sequence of SimpleSelectors joined by descendant
// combinators: Simple[0] is the outermost ancestor, Simple[len-1] is the
// node that must match.
type Selector struct {
	Simple []*SimpleSelector
}

// ParseSelector parses a single selector (no comma-separated lists).
// Unparseable trailing input is ignored, matching the teacher's
// lenient-parser convention elsewhere in this package.
func ParseSelector(input string) *Selector {
	p := &parser{tok: NewTokenizer(input)}
	return p.parseSelector()
}

type parser struct {
	tok *Tokenizer
}

func (p *parser) parseSelector() *Selector {
	sel := &Selector{Simple: make([]*SimpleSelector, 0)}

	for {
		p.tok.SkipWhitespace()

		simple := p.parseSimpleSelector()
		if simple == nil {
			break
		}
		sel.Simple = append(sel.Simple, simple)

		savedPos := p.tok.pos
		p.tok.SkipWhitespace()
		next := p.tok.Peek()
		if next.Type != IdentToken && next.Type != HashToken && next.Type != DotToken {
			p.tok.pos = savedPos
			break
		}
	}

	if len(sel.Simple) == 0 {
		return nil
	}
	return sel
}

func (p *parser) parseSimpleSelector() *SimpleSelector {
	simple := &SimpleSelector{Classes: make([]string, 0)}

	token := p.tok.Peek()
	if token.Type == IdentToken {
		p.tok.Next()
		simple.TagName = token.Value
	}

	for {
		token = p.tok.Peek()
		switch token.Type {
		case HashToken:
			p.tok.Next()
			simple.ID = token.Value
		case DotToken:
			p.tok.Next()
			next := p.tok.Next()
			if next.Type == IdentToken {
				simple.Classes = append(simple.Classes, next.Value)
			}
		default:
			if simple.TagName == "" && simple.ID == "" && len(simple.Classes) == 0 {
				return nil
			}
			return simple
		}
	}
}

// Matches reports whether n satisfies the selector, walking ancestors for
// descendant combinators.
func Matches(sel *Selector, n Node) bool {
	if sel == nil || n == nil || len(sel.Simple) == 0 {
		return false
	}
	// The last compound selector must match n itself.
	last := sel.Simple[len(sel.Simple)-1]
	if !matchesSimple(last, n) {
		return false
	}
	// Remaining compounds (outer to inner) must each match some ancestor,
	// in order, each strictly above the previous match.
	ancestor := n.ParentElement()
	for i := len(sel.Simple) - 2; i >= 0; i-- {
		simple := sel.Simple[i]
		found := false
		for ancestor != nil {
			if matchesSimple(simple, ancestor) {
				found = true
				ancestor = ancestor.ParentElement()
				break
			}
			ancestor = ancestor.ParentElement()
		}
		if !found {
			return false
		}
	}
	return true
}

func matchesSimple(s *SimpleSelector, n Node) bool {
	if s.TagName != "" && s.TagName != "*" && s.TagName != n.TagName() {
		return false
	}
	if s.ID != "" && s.ID != n.ID() {
		return false
	}
	if len(s.Classes) > 0 {
		classes := n.Classes()
		for _, want := range s.Classes {
			if !containsString(classes, want) {
				return false
			}
		}
	}
	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
