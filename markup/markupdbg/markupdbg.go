/*
Package markupdbg implements helpers to debug a tree of markup nodes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markupdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/webdoc/css"
	"github.com/npillmayer/webdoc/markup"
	tp "github.com/xlab/treeprint"
)

// TreeString outputs a markup tree as an indented tree of node labels, e.g.
//
//     .
//     └── <div id="main">
//         ├── <h1>
//         │   └── "Title"
//         └── <img src="a.png"/>
//
func TreeString(n markup.Node) string {
	p := tp.New()
	addToTree(p, n)
	return p.String()
}

func addToTree(p tp.Tree, n markup.Node) {
	children := childrenOf(n)
	if len(children) == 0 {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	for _, ch := range children {
		addToTree(branch, ch)
	}
}

// ToGraphViz outputs a diagram for a markup tree. The diagram is in
// GraphViz (DOT) format. Inline styles of tags are drawn as boxes attached
// to their tags.
func ToGraphViz(n markup.Node, w io.Writer) error {
	gparams, err := newGraphParams()
	if err != nil {
		return err
	}
	if err = gparams.HeadTmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &graph{w: w, params: gparams, dict: make(map[markup.Node]string)}
	if _, err = g.nodes(n); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a markup node and a testing.T, it will
// create a Graphiviz image of the tree under n and write it to a file in the
// current folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(n markup.Node, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "markup.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing markup digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(n, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing markup tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

// --- Node inspection -------------------------------------------------------

func childrenOf(n markup.Node) []markup.Node {
	switch x := n.(type) {
	case *markup.ContentTag:
		return x.Content().Nodes()
	case *markup.NodeList:
		return x.Nodes()
	}
	return nil
}

func label(n markup.Node) string {
	switch x := n.(type) {
	case *markup.ContentTag:
		if x.Content().IsEmpty() {
			return x.Render()
		}
		return strings.TrimSuffix(x.Tag.Render(), "/>") + ">"
	case *markup.NodeList:
		return fmt.Sprintf("[%d nodes]", x.Len())
	case *markup.StyleTag:
		return fmt.Sprintf("<style> (%d scopes)", x.Stylesheet().Len())
	case *markup.ScriptTag:
		if src, ok := x.Get("src"); ok {
			return fmt.Sprintf("<script src=%q>", src)
		}
		return "<script> " + shortText(x.Code(), 20)
	case markup.Text:
		return shortText(string(x), 20)
	case markup.Raw:
		return "raw " + shortText(string(x), 20)
	case nil:
		return "<nil>"
	}
	return n.Render()
}

func kind(n markup.Node) string {
	switch n.(type) {
	case markup.Text, markup.Raw:
		return "text"
	case *markup.NodeList:
		return "list"
	case *markup.StyleTag, *markup.ScriptTag:
		return "special"
	}
	return "element"
}

func styleOf(n markup.Node) *css.Properties {
	switch x := n.(type) {
	case *markup.Tag:
		return x.Style()
	case *markup.ContentTag:
		return x.Style()
	}
	return nil
}

// dotLabel returns the label of a node in a GraphViz diagram. Labels are
// quoted by the node template, so text is not quoted here.
func dotLabel(n markup.Node) string {
	switch x := n.(type) {
	case markup.Text:
		return abbrev(string(x), 20)
	case markup.Raw:
		return "raw " + abbrev(string(x), 20)
	}
	return label(n)
}

func shortText(s string, max int) string {
	s = abbrev(s, max)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	return fmt.Sprintf("%q", s)
}

func abbrev(s string, max int) string {
	r := []rune(s)
	if len(r) > max {
		return string(r[:max]) + "…"
	}
	return s
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname  string
	HeadTmpl  *template.Template
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	StyleTmpl *template.Template
}

func newGraphParams() (*graphParamsType, error) {
	gparams := &graphParamsType{Fontname: "Helvetica"}
	var err error
	if gparams.HeadTmpl, err = template.New("markup").Parse(graphHeadTmpl); err != nil {
		return nil, err
	}
	if gparams.NodeTmpl, err = template.New("markupnode").Parse(markupNodeTmpl); err != nil {
		return nil, err
	}
	if gparams.EdgeTmpl, err = template.New("markupedge").Parse(markupEdgeTmpl); err != nil {
		return nil, err
	}
	gparams.StyleTmpl, err = template.New("style").Parse(styleTmpl)
	return gparams, err
}

type graph struct {
	w      io.Writer
	params *graphParamsType
	dict   map[markup.Node]string
	count  int
}

type node struct {
	Name  string
	Label string
	Kind  string
}

type edge struct {
	From, To string
}

type styleBox struct {
	Owner      string
	Name       string
	Properties []css.KeyValue
}

// nodes outputs n and its subtree and returns the name of n's graph node.
func (g *graph) nodes(n markup.Node) (string, error) {
	name := g.name(n)
	if err := g.params.NodeTmpl.Execute(g.w, node{Name: name, Label: dotLabel(n), Kind: kind(n)}); err != nil {
		return name, err
	}
	if style := styleOf(n); style.IsNotEmpty() {
		box := styleBox{Owner: name, Name: name + "_style", Properties: style.Entries()}
		if err := g.params.StyleTmpl.Execute(g.w, box); err != nil {
			return name, err
		}
	}
	for _, ch := range childrenOf(n) {
		chname, err := g.nodes(ch)
		if err != nil {
			return name, err
		}
		if err = g.params.EdgeTmpl.Execute(g.w, edge{From: name, To: chname}); err != nil {
			return name, err
		}
	}
	return name, nil
}

// name returns a unique name for a node. Value nodes (Text, Raw) are not
// unique within a tree, therefore they always get a fresh name.
func (g *graph) name(n markup.Node) string {
	switch n.(type) {
	case markup.Text, markup.Raw:
		g.count++
		return fmt.Sprintf("node%05d", g.count)
	}
	if name, ok := g.dict[n]; ok {
		return name
	}
	g.count++
	name := fmt.Sprintf("node%05d", g.count)
	g.dict[n] = name
	return name
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const markupNodeTmpl = `{{ if eq .Kind "text" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else if eq .Kind "list" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=dashed ] ;
{{ else if eq .Kind "special" }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=khaki ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const markupEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`

const styleTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">style</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Owner }} -> {{ .Name }} [dir=none weight=1 style="dashed"] ;
`
