package layout

import (
	"github.com/npillmayer/weft/dom/styledtree"
)

// Build converts a styled tree into a layout tree.
//
// Classification follows the resolved display keyword: "none" omits the
// node and its entire subtree (Build returns nil for a display:none
// root), "inline" generates an InlineBox, and everything else, "block"
// included, generates a BlockBox. Children are classified recursively
// and appended in document order; pruned children leave no trace.
//
// Text nodes run through the same classification and keep their literal,
// untrimmed payload; whitespace policy is the renderer's business.
func Build(sn *styledtree.StyledNode) *LayoutBox {
	display := sn.Display()
	if display == "none" {
		tracer().Debugf("layout: pruning %v and its subtree", sn.Node.Type)
		return nil
	}
	props := BoxProps{Node: sn.Node, Properties: sn.Properties}
	box := &LayoutBox{}
	switch display {
	case "inline":
		box.Type = InlineBox{Props: props}
	default: // "block", or any unrecognized keyword
		box.Type = BlockBox{Props: props}
	}
	for _, ch := range sn.Children {
		if chbox := Build(ch); chbox != nil {
			box.Children = append(box.Children, chbox)
		}
	}
	return box
}

// Group wraps boxes in an anonymous box. This is the only place
// anonymous boxes come from: an outer grouping wrapper at the pipeline
// boundary, e.g. for a document with several root nodes. Nil boxes
// (pruned roots) are skipped.
func Group(boxes ...*LayoutBox) *LayoutBox {
	group := &LayoutBox{Type: AnonymousBox{}}
	for _, b := range boxes {
		if b != nil {
			group.Children = append(group.Children, b)
		}
	}
	return group
}
