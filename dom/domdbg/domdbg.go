/*
Package domdbg implements helpers to debug a styled document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/weft/dom"
	"github.com/npillmayer/weft/dom/styledtree"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	PropsTmpl *template.Template
	PedgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a styled document tree. The diagram
// is in GraphViz (DOT) format. Element nodes are drawn as ellipses, text
// nodes as boxes; a node's resolved properties, if any, dangle off it as
// a table.
func ToGraphViz(doc *styledtree.StyledNode, w io.Writer) {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		panic(err)
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"label": nodeLabel,
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	gparams.PropsTmpl = template.Must(template.New("props").Parse(propsTmpl))
	gparams.PedgeTmpl = template.Must(template.New("pedge").Parse(pEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		panic(err)
	}
	dict := make(map[*styledtree.StyledNode]string, 256)
	nodes(doc, w, dict, &gparams)
	w.Write([]byte("}\n"))
}

type node struct {
	N    *styledtree.StyledNode
	Name string
}

func nodes(n *styledtree.StyledNode, w io.Writer, dict map[*styledtree.StyledNode]string,
	gparams *graphParamsType) {
	//
	domNode(n, w, dict, gparams)
	for _, ch := range n.Children {
		nodes(ch, w, dict, gparams)
		domEdge(n, ch, w, dict, gparams)
	}
}

func domNode(n *styledtree.StyledNode, w io.Writer, dict map[*styledtree.StyledNode]string,
	gparams *graphParamsType) {
	//
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	if err := gparams.NodeTmpl.Execute(w, &node{n, name}); err != nil {
		panic(err)
	}
	domProps(n, w, dict, gparams)
}

type propentry struct {
	Key, Value string
}

type props struct {
	Name    string
	Entries []propentry
}

func domProps(n *styledtree.StyledNode, w io.Writer, dict map[*styledtree.StyledNode]string,
	gparams *graphParamsType) {
	//
	if len(n.Properties) == 0 {
		return
	}
	p := props{Name: dict[n]}
	for key, value := range n.Properties {
		p.Entries = append(p.Entries, propentry{key, fmt.Sprintf("%v", value)})
	}
	if err := gparams.PropsTmpl.Execute(w, p); err != nil {
		panic(err)
	}
	if err := gparams.PedgeTmpl.Execute(w, p); err != nil {
		panic(err)
	}
}

type edge struct {
	N1, N2 node
}

func domEdge(n1, n2 *styledtree.StyledNode, w io.Writer, dict map[*styledtree.StyledNode]string,
	gparams *graphParamsType) {
	//
	e := edge{node{n1, dict[n1]}, node{n2, dict[n2]}}
	if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
		panic(err)
	}
}

func nodeLabel(n *styledtree.StyledNode) string {
	switch t := n.Node.Type.(type) {
	case dom.Element:
		label := t.TagName
		names := make([]string, 0, len(t.Attributes))
		for name := range t.Attributes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			label += fmt.Sprintf(" %s='%s'", name, t.Attributes[name])
		}
		return fmt.Sprintf("%q", label)
	case dom.Text:
		s := t.Data
		if len(s) > 10 {
			s = s[:10] + "..."
		}
		s = strings.Replace(s, "\n", `\\n`, -1)
		s = strings.Replace(s, "\t", `\\t`, -1)
		s = strings.Replace(s, " ", "␣", -1)
		return fmt.Sprintf("%q", s)
	}
	return `"?"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .N.IsText }}
{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const propsTmpl = `{{ .Name }}props [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">styles</font></td></tr>
      {{ range .Entries }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ else }}
      <tr><td colspan="2">no styles</td></tr>
      {{ end }}
    </table>> ] ;
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const pEdgeTmpl = `{{ .Name }} -> {{ .Name }}props [dir=none weight=1 style="dashed"] ;
`
