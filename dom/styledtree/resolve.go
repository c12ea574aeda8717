package styledtree

import (
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/style"
)

// Resolve builds the styled tree for a document tree and a stylesheet.
//
// For each node, the stylesheet's rules are scanned in file order; every
// matching rule overwrites the node's property map with its declarations,
// in declaration order. There is no specificity weighting: the last
// matching declaration for a property wins. Resolve is total: a node
// with no matching rules simply carries an empty property map.
func Resolve(node *dom.Node, sheet *style.Stylesheet) *StyledNode {
	props := style.PropertyMap{}
	if sheet != nil {
		for _, rule := range sheet.Rules {
			if !rule.Matches(node) {
				continue
			}
			for _, decl := range rule.Declarations {
				props[decl.Property] = decl.Value
			}
		}
	}
	tracer().Debugf("styling: node %v has %d properties", node.Type, len(props))
	sn := &StyledNode{Node: node, Properties: props}
	for _, ch := range node.Children {
		sn.Children = append(sn.Children, Resolve(ch, sheet))
	}
	return sn
}
