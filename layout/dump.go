package layout

import (
	"fmt"

	"github.com/npillmayer/weft/dom"
	tp "github.com/xlab/treeprint"
)

// Sprint returns a human-readable rendition of a layout tree, one line
// per box. Intended for debugging and test output.
func Sprint(box *LayoutBox) string {
	if box == nil {
		return "(no layout)\n"
	}
	p := tp.New()
	p.SetValue(boxLabel(box))
	sprint(p, box)
	return p.String() + "\n"
}

func sprint(p tp.Tree, box *LayoutBox) {
	for _, ch := range box.Children {
		if len(ch.Children) == 0 {
			p.AddNode(boxLabel(ch))
			continue
		}
		branch := p.AddBranch(boxLabel(ch))
		sprint(branch, ch)
	}
}

func boxLabel(box *LayoutBox) string {
	switch t := box.Type.(type) {
	case BlockBox:
		return "block " + nodeLabel(t.Props)
	case InlineBox:
		return "inline " + nodeLabel(t.Props)
	case AnonymousBox:
		return "anonymous"
	}
	return "?"
}

func nodeLabel(props BoxProps) string {
	switch t := props.Node.Type.(type) {
	case dom.Element:
		return "<" + t.TagName + ">"
	case dom.Text:
		return fmt.Sprintf("%q", t.Data)
	}
	return "?"
}
