package style

import (
	"github.com/npillmayer/weft/dom"
)

// Matches reports whether a selector selects a document node.
//
// Matching is shallower than the selector grammar: only tag names are
// compared. A class selector never matches, and an attribute selector
// matches any element with the right tag name, regardless of the stored
// op, attribute and value. Text nodes are matched by the universal
// selector only.
func Matches(sel Selector, n *dom.Node) bool {
	switch s := sel.(type) {
	case UniversalSelector:
		return true
	case TypeSelector:
		e, ok := n.Type.(dom.Element)
		return ok && e.TagName == s.TagName
	case ClassSelector:
		// class names are parsed and stored, but never matched
		return false
	case AttributeSelector:
		// op, attribute and value are not consulted
		e, ok := n.Type.(dom.Element)
		return ok && e.TagName == s.TagName
	}
	return false
}

// Matches reports whether any of the rule's selectors selects the node.
func (r Rule) Matches(n *dom.Node) bool {
	for _, sel := range r.Selectors {
		if Matches(sel, n) {
			return true
		}
	}
	return false
}
