/*
Package layout converts a styled tree into a layout tree, classifying
each node as a block, inline or anonymous box.

Layout here assigns box kind only, no geometry and no line breaking. The
resolved 'display' property drives classification; display:none prunes a
node together with its whole subtree. Anonymous boxes are not synthesized
around runs of inline children; they only appear as an outer grouping
wrapper at the pipeline boundary (see Group).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/style"
)

// tracer traces to 'weft.layout'.
func tracer() tracing.Trace {
	return tracing.Select("weft.layout")
}

// LayoutBox is a node of the layout tree. Its kind is determined by the
// Type field; children are ordered.
type LayoutBox struct {
	Type     BoxType
	Children []*LayoutBox
}

// BoxType is the closed set of box kinds. Dispatch with a type switch.
type BoxType interface {
	isBoxType()
}

// BlockBox participates in vertical (block) flow.
type BlockBox struct {
	Props BoxProps
}

// InlineBox participates in horizontal (inline) flow.
type InlineBox struct {
	Props BoxProps
}

// AnonymousBox groups boxes without an originating document node.
type AnonymousBox struct{}

func (BlockBox) isBoxType()     {}
func (InlineBox) isBoxType()    {}
func (AnonymousBox) isBoxType() {}

// BoxProps ties a box back to the node it was generated for, together
// with the node's computed style map.
type BoxProps struct {
	Node       *dom.Node
	Properties style.PropertyMap
}

// Props returns the box properties of a block or inline box, or false
// for an anonymous box.
func (b *LayoutBox) Props() (BoxProps, bool) {
	switch t := b.Type.(type) {
	case BlockBox:
		return t.Props, true
	case InlineBox:
		return t.Props, true
	}
	return BoxProps{}, false
}
