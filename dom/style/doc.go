/*
Package style implements the stylesheet language of this engine: the rule
model, a hand-built parser for it, and selector matching against the
structural document tree.

The language is a small cousin of CSS. Rules pair a comma-separated
selector list (OR semantics) with a declaration block; declaration values
are bare keywords, the only value kind. There is no specificity: the
cascade is purely order-based, so conflict resolution happens entirely in
package styledtree by scanning rules in file order.

Selector matching is intentionally shallow. The grammar accepts universal,
type, class and attribute selectors, but matching compares tag names only:
class selectors never match, and an attribute selector's op/attribute/value
are stored without being consulted. See Matches for the exact contract.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'weft.style'.
func tracer() tracing.Trace {
	return tracing.Select("weft.style")
}
