package harness

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/vectorforge/svgcore/cerr"
	"github.com/vectorforge/svgcore/dom"
)

// ParseMarkup turns inline SVG/XML text into an element tree. XML parsing is
// an external collaborator the core treats as a black box (spec.md §3's "Out
// of scope" list): this wraps encoding/xml's streaming token decoder, the
// same approach ulgerang-ebitenui-xml's ui/parser.go takes, adapted to build
// a *dom.Node tree directly (preserving attribute order via SetAttribute)
// rather than unmarshaling into a fixed struct.
func ParseMarkup(source string) (*dom.Node, error) {
	dec := xml.NewDecoder(strings.NewReader(source))
	dec.Strict = false

	root := dom.NewDocument()
	stack := []*dom.Node{root}

	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, cerr.Wrap(cerr.MalformedInput, "parsing markup", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := dom.NewElement(localName(t.Name))
			for _, a := range t.Attr {
				el.SetAttribute(attrName(a.Name), a.Value)
			}
			parent := stack[len(stack)-1]
			parent.AppendChild(el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text := string(t)
			if strings.TrimSpace(text) == "" {
				continue
			}
			parent := stack[len(stack)-1]
			parent.AppendChild(dom.NewText(text))
		}
	}

	children := elementChildren(root)
	if len(children) != 1 {
		return nil, cerr.New(cerr.MalformedInput, "markup must have exactly one root element")
	}
	children[0].Parent = nil
	return children[0], nil
}

func elementChildren(n *dom.Node) []*dom.Node {
	var out []*dom.Node
	for _, c := range n.Children {
		if c.Type == dom.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// localName returns an element's local name, dropping any namespace
// encoding/xml decoded for it. Attribute names go through attrName instead,
// which reattaches the prefix the way SVG source text spells it (e.g.
// "xlink:href" as a single attribute name, not split by namespace URI).
func localName(n xml.Name) string {
	return n.Local
}

// xlinkNS is the one namespace URI SVG markup actually uses in practice
// (xlink:href on <use> and the animation elements). encoding/xml resolves a
// declared prefix to its URI, so a fully-resolved xlink:href attribute
// arrives with Space == xlinkNS rather than the literal "xlink" prefix; map
// it back to the spelling SVG source text uses.
const xlinkNS = "http://www.w3.org/1999/xlink"

func attrName(n xml.Name) string {
	switch n.Space {
	case "":
		return n.Local
	case "xmlns":
		return "xmlns:" + n.Local
	case xlinkNS:
		return "xlink:" + n.Local
	default:
		// An unresolved prefix (no xmlns declaration in scope) is left by
		// encoding/xml as the literal prefix text.
		return n.Space + ":" + n.Local
	}
}

// Serialize renders an element tree back to markup text, the inverse of
// ParseMarkup. Self-closing for childless elements, matching the compact
// form most SVG toolchains emit.
func Serialize(n *dom.Node) string {
	var b strings.Builder
	serializeNode(&b, n)
	return b.String()
}

func serializeNode(b *strings.Builder, n *dom.Node) {
	switch n.Type {
	case dom.TextNode:
		xml.EscapeText(stringWriter{b}, []byte(n.Data))
		return
	case dom.DocumentNode:
		for _, c := range n.Children {
			serializeNode(b, c)
		}
		return
	}

	b.WriteString("<")
	b.WriteString(n.TagName())
	for _, name := range n.GetAttributeNames() {
		b.WriteString(" ")
		b.WriteString(name)
		b.WriteString(`="`)
		xml.EscapeText(stringWriter{b}, []byte(n.GetAttribute(name)))
		b.WriteString(`"`)
	}
	if len(n.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	for _, c := range n.Children {
		serializeNode(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.TagName())
	b.WriteString(">")
}

// stringWriter adapts strings.Builder to io.Writer for xml.EscapeText.
type stringWriter struct{ b *strings.Builder }

func (w stringWriter) Write(p []byte) (int, error) { return w.b.Write(p) }
