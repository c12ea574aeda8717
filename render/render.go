/*
Package render walks a layout tree into drawable terminal output.

Element boxes become bordered panels titled with the element's tag name;
block children are stacked vertically, runs of consecutive inline
children are joined horizontally. Text leaves are drawn with embedded
newlines removed and surrounding whitespace trimmed; text that is empty
after trimming draws nothing. The layout tree itself keeps text payloads
raw; the whitespace policy lives entirely here.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/layout"
)

// tracer traces to 'weft.render'.
func tracer() tracing.Trace {
	return tracing.Select("weft.render")
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 1)

var titleStyle = lipgloss.NewStyle().Bold(true)

// Draw renders a layout tree into a string of terminal panels. A nil
// box (a fully pruned layout) draws nothing.
func Draw(box *layout.LayoutBox) string {
	if box == nil {
		return ""
	}
	return drawBox(box)
}

func drawBox(box *layout.LayoutBox) string {
	switch t := box.Type.(type) {
	case layout.AnonymousBox:
		return joinHorizontal(drawChildren(box))
	case layout.BlockBox:
		return drawProps(t.Props, box)
	case layout.InlineBox:
		return drawProps(t.Props, box)
	}
	return ""
}

func drawProps(props layout.BoxProps, box *layout.LayoutBox) string {
	switch t := props.Node.Type.(type) {
	case dom.Element:
		content := joinRows(box)
		title := titleStyle.Render(t.TagName)
		if content == "" {
			return panelStyle.Render(title)
		}
		return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
	case dom.Text:
		text := strings.ReplaceAll(t.Data, "\n", "")
		return strings.TrimSpace(text)
	}
	return ""
}

// joinRows lays out an element's children: consecutive inline children
// form one horizontal row, everything else gets a row of its own.
func joinRows(box *layout.LayoutBox) string {
	var rows []string
	var inlineRun []string
	flush := func() {
		if len(inlineRun) > 0 {
			rows = append(rows, joinHorizontal(inlineRun))
			inlineRun = nil
		}
	}
	for _, ch := range box.Children {
		drawn := drawBox(ch)
		if drawn == "" {
			continue
		}
		if _, inline := ch.Type.(layout.InlineBox); inline {
			inlineRun = append(inlineRun, drawn)
			continue
		}
		flush()
		rows = append(rows, drawn)
	}
	flush()
	if len(rows) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func drawChildren(box *layout.LayoutBox) []string {
	var drawn []string
	for _, ch := range box.Children {
		if s := drawBox(ch); s != "" {
			drawn = append(drawn, s)
		}
	}
	return drawn
}

func joinHorizontal(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
