/*
Package dom implements the structural document tree and the markup parser
producing it.

The markup dialect is deliberately small: elements with letter-only tag
names, double-quoted attributes, and raw text runs. There are no entities,
comments or CDATA sections. An element's close tag must repeat the open
tag's name; a mismatch is a hard parse error and is never papered over.
Parsing is a single pass with ordered choice (element before text) and
backtracking, so the parser either consumes the whole input or reports a
structural error with the offending byte position.

The tree is strictly value-owned: a parent exclusively owns its ordered
children, text nodes are leaves, and there are no parent back-pointers.
The tree is immutable to the styling pipeline; collaborators (the script
sandbox) may mutate it between passes, provided they serialize access.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to 'weft.dom'.
func tracer() tracing.Trace {
	return tracing.Select("weft.dom")
}
