/*
Package styledtree mirrors a structural document tree with per-node
computed style properties.

A StyledNode references the document node it annotates and owns its
styled children. The styled tree is rebuilt from scratch on every pass;
there is no incremental update and no cache.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/style"
)

// tracer traces to 'weft.style'.
func tracer() tracing.Trace {
	return tracing.Select("weft.style")
}

// StyledNode annotates one document node with its resolved properties.
type StyledNode struct {
	Node       *dom.Node
	Properties style.PropertyMap
	Children   []*StyledNode
}

// Styles returns the node's resolved property map.
func (sn *StyledNode) Styles() style.PropertyMap {
	return sn.Properties
}

// Display returns the node's resolved display keyword. An unset value,
// or a value that is not a keyword, defaults to "block".
func (sn *StyledNode) Display() string {
	return sn.Properties.KeywordOr("display", "block")
}

// IsText reports whether the underlying document node is a text run.
func (sn *StyledNode) IsText() bool {
	_, ok := sn.Node.Type.(dom.Text)
	return ok
}
