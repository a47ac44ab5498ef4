package markup

import (
	"strings"

	"github.com/npillmayer/webdoc/render"
)

// ContentTag is an HTML element which may have child nodes. Without
// children it renders like a Tag, in self-closing form.
type ContentTag struct {
	Tag
	content NodeList
}

// NewContentTag creates an element which may have children. It accepts the
// same options as NewTag, plus option Content.
//
//     p := markup.NewContentTag("p", markup.Classes("note"),
//              markup.Content(markup.Text("Hello")))
//
func NewContentTag(name string, opts ...Option) (*ContentTag, error) {
	c, err := configure(name, opts)
	if err != nil {
		return nil, err
	}
	t := &ContentTag{}
	t.init(name, c)
	t.content.Append(c.content...)
	return t, nil
}

// Content returns the children of the tag. Clients may modify them.
func (t *ContentTag) Content() *NodeList {
	return &t.content
}

// Append adds child nodes to the tag. Nodes which would introduce a cycle,
// i.e. the tag itself or a node containing it, are skipped. It returns the
// tag to allow for chaining.
func (t *ContentTag) Append(nodes ...Node) *ContentTag {
	t.content.Append(nodes...)
	return t
}

// Render outputs the tag with its children, or in self-closing form if
// there are no children.
func (t *ContentTag) Render() string {
	if t.content.IsEmpty() {
		return t.Tag.Render()
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.head())
	b.WriteByte('>')
	b.WriteString(t.content.Render())
	b.WriteString("</")
	b.WriteString(t.name)
	b.WriteByte('>')
	return b.String()
}

// RenderPretty puts the opening tag and the closing tag on lines of their
// own, with the children indented between them.
func (t *ContentTag) RenderPretty() string {
	if t.content.IsEmpty() {
		return t.Tag.RenderPretty()
	}
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(t.head())
	b.WriteString(">\n")
	b.WriteString(render.Indent(t.content.RenderPretty()))
	b.WriteString("\n</")
	b.WriteString(t.name)
	b.WriteByte('>')
	return b.String()
}

func (t *ContentTag) String() string {
	return t.Render()
}

var _ Node = &ContentTag{}
