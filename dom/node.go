// Package dom provides the element tree structure the core operates on.
//
// XML parsing and serialization are treated as an external collaborator: the
// core never assumes a concrete representation beyond the capability set
// described here (tagName, attribute get/set/remove, child iteration, text
// content, parent back-reference, and structural edits). Node is a minimal,
// in-memory implementation of that capability set, used directly by tests
// and by any caller that doesn't have its own XML layer to plug in.
package dom

import "github.com/vectorforge/svgcore/css"

// NodeType represents the kind of a tree node.
type NodeType int

const (
	// ElementNode represents a tagged element (e.g., <rect>, <path>).
	ElementNode NodeType = iota
	// TextNode represents text content within an element.
	TextNode
	// DocumentNode represents the root document node.
	DocumentNode
)

// Node represents a node in the element tree.
//
// Attribute order is preserved (via attrOrder) because the validator's
// output must enumerate attributes in source order, not map iteration order.
type Node struct {
	Type       NodeType
	Data       string            // tag name for elements, text content for text nodes
	Attributes map[string]string // attribute values, keyed by name
	attrOrder  []string          // insertion order of attribute names
	Children   []*Node
	Parent     *Node

	// Line and Column hold the 1-based source position of the node's
	// opening tag, when known (populated by a parser). Zero means unknown.
	Line   int
	Column int
}

// NewElement creates a new element node with the given tag name.
func NewElement(tagName string) *Node {
	return &Node{
		Type:       ElementNode,
		Data:       tagName,
		Attributes: make(map[string]string),
		Children:   make([]*Node, 0),
	}
}

// NewText creates a new text node with the given content.
func NewText(text string) *Node {
	return &Node{
		Type:     TextNode,
		Data:     text,
		Children: make([]*Node, 0),
	}
}

// NewDocument creates a new document root node.
func NewDocument() *Node {
	return &Node{
		Type:     DocumentNode,
		Data:     "#document",
		Children: make([]*Node, 0),
	}
}

// TagName returns the element's tag name. SVG tag names are case-sensitive;
// this never folds case.
func (n *Node) TagName() string {
	return n.Data
}

// TextContent returns the concatenated text of this node and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Data
	}
	var out []byte
	for _, c := range n.Children {
		out = append(out, c.TextContent()...)
	}
	return string(out)
}

// ParentNode returns the parent, or nil at the root.
func (n *Node) ParentNode() *Node {
	return n.Parent
}

// ParentElement implements css.Node, walking up to the nearest ancestor
// ElementNode (skipping the document node, which has no tag to match).
func (n *Node) ParentElement() css.Node {
	p := n.Parent
	if p == nil || p.Type != ElementNode {
		return nil
	}
	return p
}

// QuerySelector returns the first descendant element (document order)
// matching selector, or nil. Matching is delegated to the css package.
func (n *Node) QuerySelector(selector string) *Node {
	sel := css.ParseSelector(selector)
	var found *Node
	Walk(n, func(node *Node) {
		if found != nil || node.Type != ElementNode || node == n {
			return
		}
		if css.Matches(sel, node) {
			found = node
		}
	})
	return found
}

// QuerySelectorAll returns every descendant element matching selector, in
// document order.
func (n *Node) QuerySelectorAll(selector string) []*Node {
	sel := css.ParseSelector(selector)
	var out []*Node
	Walk(n, func(node *Node) {
		if node.Type != ElementNode || node == n {
			return
		}
		if css.Matches(sel, node) {
			out = append(out, node)
		}
	})
	return out
}

// AppendChild adds a child node to the end of this node's children.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// InsertBefore inserts newChild before referenceChild in n's children. If
// referenceChild is nil, newChild is appended. referenceChild not being a
// child of n is a no-op append, matching a permissive DOM-like contract.
func (n *Node) InsertBefore(newChild, referenceChild *Node) {
	newChild.Parent = n
	if referenceChild == nil {
		n.Children = append(n.Children, newChild)
		return
	}
	for i, c := range n.Children {
		if c == referenceChild {
			n.Children = append(n.Children[:i], append([]*Node{newChild}, n.Children[i:]...)...)
			return
		}
	}
	n.Children = append(n.Children, newChild)
}

// ReplaceChild replaces oldChild with newChild. No-op if oldChild is not a
// child of n.
func (n *Node) ReplaceChild(newChild, oldChild *Node) {
	for i, c := range n.Children {
		if c == oldChild {
			newChild.Parent = n
			n.Children[i] = newChild
			oldChild.Parent = nil
			return
		}
	}
}

// RemoveChild removes child from n's children. No-op if child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// GetAttribute returns the value of an attribute, or empty string if absent.
func (n *Node) GetAttribute(name string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[name]
}

// HasAttribute reports whether name is present, distinguishing an absent
// attribute from one whose value is the empty string.
func (n *Node) HasAttribute(name string) bool {
	if n.Attributes == nil {
		return false
	}
	_, ok := n.Attributes[name]
	return ok
}

// SetAttribute sets an attribute on this node, preserving first-set order.
func (n *Node) SetAttribute(name, value string) {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string)
	}
	if _, exists := n.Attributes[name]; !exists {
		n.attrOrder = append(n.attrOrder, name)
	}
	n.Attributes[name] = value
}

// RemoveAttribute removes an attribute, if present.
func (n *Node) RemoveAttribute(name string) {
	if n.Attributes == nil {
		return
	}
	if _, ok := n.Attributes[name]; !ok {
		return
	}
	delete(n.Attributes, name)
	for i, a := range n.attrOrder {
		if a == name {
			n.attrOrder = append(n.attrOrder[:i], n.attrOrder[i+1:]...)
			break
		}
	}
}

// GetAttributeNames returns attribute names in the order they were first set.
func (n *Node) GetAttributeNames() []string {
	out := make([]string, len(n.attrOrder))
	copy(out, n.attrOrder)
	return out
}

// Clone returns a deep copy of n and its subtree, detached from any parent.
func (n *Node) Clone() *Node {
	clone := &Node{
		Type: n.Type,
		Data: n.Data,
		Line: n.Line, Column: n.Column,
	}
	if n.Attributes != nil {
		clone.Attributes = make(map[string]string, len(n.Attributes))
		for k, v := range n.Attributes {
			clone.Attributes[k] = v
		}
		clone.attrOrder = append([]string(nil), n.attrOrder...)
	}
	clone.Children = make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		cc := c.Clone()
		cc.Parent = clone
		clone.Children = append(clone.Children, cc)
	}
	return clone
}

// ID returns the element's id attribute.
func (n *Node) ID() string {
	return n.GetAttribute("id")
}

// Classes returns the element's class names as a slice.
func (n *Node) Classes() []string {
	class := n.GetAttribute("class")
	if class == "" {
		return nil
	}
	classes := []string{}
	start := 0
	for i := 0; i <= len(class); i++ {
		if i == len(class) || class[i] == ' ' {
			if i > start {
				classes = append(classes, class[start:i])
			}
			start = i + 1
		}
	}
	return classes
}

// Walk calls fn for n and every descendant, in document order.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Elements returns n and its descendant elements, in document order,
// filtering out text/document nodes.
func Elements(n *Node) []*Node {
	var out []*Node
	Walk(n, func(node *Node) {
		if node.Type == ElementNode {
			out = append(out, node)
		}
	})
	return out
}
