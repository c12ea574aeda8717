package dom

import (
	"sort"
	"strings"
)

// AttrMap holds the attributes of an element. Keys are unique, order is
// irrelevant; during parsing a duplicate attribute name overwrites the
// earlier value.
type AttrMap map[string]string

// Node is a node of the structural document tree. Its kind is determined
// by the Type field; children are exclusively owned and ordered.
// Text-typed nodes never have children.
type Node struct {
	Type     NodeType
	Children []*Node
}

// NodeType is the closed set of node kinds: Element or Text.
// Use a type switch for exhaustive dispatch.
type NodeType interface {
	isNodeType()
}

// Element is a tagged node with attributes.
type Element struct {
	TagName    string
	Attributes AttrMap
}

// Text is a raw text run.
type Text struct {
	Data string
}

func (Element) isNodeType() {}
func (Text) isNodeType()    {}

// NewElement creates an element node owning the given children.
func NewElement(tag string, attrs AttrMap, children []*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Type:     Element{TagName: tag, Attributes: attrs},
		Children: children,
	}
}

// NewText creates a text leaf.
func NewText(data string) *Node {
	return &Node{Type: Text{Data: data}}
}

// Attr returns the value of an attribute, if the node is an element
// carrying it.
func (n *Node) Attr(name string) (string, bool) {
	if e, ok := n.Type.(Element); ok {
		v, ok := e.Attributes[name]
		return v, ok
	}
	return "", false
}

// InnerText returns the concatenated text content of the subtree below n,
// in document order.
func (n *Node) InnerText() string {
	var sb strings.Builder
	for _, ch := range n.Children {
		switch t := ch.Type.(type) {
		case Text:
			sb.WriteString(t.Data)
		case Element:
			sb.WriteString(ch.InnerText())
		}
	}
	return sb.String()
}

// CollectTagInners walks the tree in document order (depth first) and
// collects the inner text of every element with the given tag name.
// This is how embedded stylesheet and script text is gathered.
func CollectTagInners(n *Node, tag string) []string {
	if e, ok := n.Type.(Element); ok && e.TagName == tag {
		return []string{n.InnerText()}
	}
	var inners []string
	for _, ch := range n.Children {
		inners = append(inners, CollectTagInners(ch, tag)...)
	}
	return inners
}

// FindByID searches the subtree in document order for an element whose
// "id" attribute equals id. Returns nil if there is none.
func FindByID(n *Node, id string) *Node {
	if v, ok := n.Attr("id"); ok && v == id {
		return n
	}
	for _, ch := range n.Children {
		if found := FindByID(ch, id); found != nil {
			return found
		}
	}
	return nil
}

// OuterHTML serializes the node, including its own tag. Attributes are
// written in name order, so the output is deterministic even though
// attribute order is semantically irrelevant.
func (n *Node) OuterHTML() string {
	var sb strings.Builder
	writeNode(&sb, n)
	return sb.String()
}

// InnerHTML serializes the node's children only.
func (n *Node) InnerHTML() string {
	var sb strings.Builder
	for _, ch := range n.Children {
		writeNode(&sb, ch)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node) {
	switch t := n.Type.(type) {
	case Text:
		sb.WriteString(t.Data)
	case Element:
		sb.WriteByte('<')
		sb.WriteString(t.TagName)
		names := make([]string, 0, len(t.Attributes))
		for name := range t.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			sb.WriteByte(' ')
			sb.WriteString(name)
			sb.WriteString(`="`)
			sb.WriteString(t.Attributes[name])
			sb.WriteByte('"')
		}
		sb.WriteByte('>')
		for _, ch := range n.Children {
			writeNode(sb, ch)
		}
		sb.WriteString("</")
		sb.WriteString(t.TagName)
		sb.WriteByte('>')
	}
}
