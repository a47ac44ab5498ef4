package markup

import (
	"strings"

	"github.com/npillmayer/webdoc/render"
	"golang.org/x/net/html"
)

// Node is anything which may be part of an HTML document.
type Node interface {
	render.Renderer
}

// Must is a helper for constructing static documents. It panics if err
// is not nil.
//
//     div := markup.Must(markup.NewContentTag("div", markup.ID("main")))
//
func Must[T Node](n T, err error) T {
	if err != nil {
		panic(err)
	}
	return n
}

// --- Text ------------------------------------------------------------------

// Text is a node of plain text. Characters with special meaning in HTML
// are escaped, and line breaks are converted to <br> elements.
type Text string

// LineBreak is the marker a newline character of a Text is converted to.
const LineBreak = "<br>"

// Render outputs the escaped text. Every newline is replaced by a
// LineBreak, followed by a newline unless it is the last character of the
// text:
//
//     Text("<a>\nb")  =>  "&lt;a&gt;<br>\nb"
//     Text("<a>\n")   =>  "&lt;a&gt;<br>"
//
func (t Text) Render() string {
	s := html.EscapeString(string(t))
	s = strings.ReplaceAll(s, "\n", LineBreak+"\n")
	return strings.TrimSuffix(s, "\n")
}

// RenderPretty is the same as Render.
func (t Text) RenderPretty() string {
	return t.Render()
}

func (t Text) String() string {
	return t.Render()
}

// --- Raw -------------------------------------------------------------------

// Raw is a node of pre-rendered markup. It is output verbatim, without any
// escaping or sanitizing.
//
// This node must be used with care, as it doesn't filter out any
// potentially malicious components.
type Raw string

// Render outputs the raw value.
func (r Raw) Render() string {
	return string(r)
}

// RenderPretty outputs the raw value.
func (r Raw) RenderPretty() string {
	return string(r)
}

func (r Raw) String() string {
	return string(r)
}

// Static freezes the compact rendering of a node into a Raw node.
func Static(n Node) Raw {
	if n == nil {
		return ""
	}
	return Raw(n.Render())
}

var _ Node = Text("")
var _ Node = Raw("")
