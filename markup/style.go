package markup

import (
	"strings"

	"github.com/npillmayer/webdoc/css"
	"github.com/npillmayer/webdoc/render"
)

// StyleTag is a <style> element, holding a stylesheet.
//
// A StyleTag is always rendered with opening and closing tags, even if the
// stylesheet is empty. Use StyleFor to omit empty stylesheets.
type StyleTag struct {
	sheet *css.Stylesheet
}

// NewStyleTag creates a <style> element for a stylesheet. If sheet is nil,
// an empty stylesheet is created.
func NewStyleTag(sheet *css.Stylesheet) *StyleTag {
	if sheet == nil {
		sheet = css.NewStylesheet()
	}
	return &StyleTag{sheet: sheet}
}

// StyleFor returns a <style> element for sheet, or an empty node list if
// the stylesheet has no scopes.
func StyleFor(sheet *css.Stylesheet) Node {
	if sheet.IsEmpty() {
		tracer().Debugf("omitting <style> for empty stylesheet")
		return &NodeList{}
	}
	return NewStyleTag(sheet)
}

// Name always returns "style".
func (s *StyleTag) Name() string {
	return "style"
}

// Stylesheet returns the stylesheet of the element. Clients may modify it.
func (s *StyleTag) Stylesheet() *css.Stylesheet {
	return s.sheet
}

// Render outputs the element with the compact stylesheet as its content.
func (s *StyleTag) Render() string {
	return "<style>" + s.sheet.Render() + "</style>"
}

// RenderPretty outputs the element with the indented stylesheet between
// opening and closing tag.
func (s *StyleTag) RenderPretty() string {
	return "<style>\n" + render.Indent(s.sheet.RenderPretty()) + "\n</style>"
}

func (s *StyleTag) String() string {
	return s.Render()
}

// --- Scripts ---------------------------------------------------------------

// ScriptTag is a <script> element. It either contains code or references
// an external script by its src attribute.
//
// Code is output verbatim. It is the responsibility of clients not to
// include the character sequence "</script" in it.
type ScriptTag struct {
	code  string
	attrs attributes
}

// NewScript creates a <script> element with inline code.
func NewScript(code string) *ScriptTag {
	return &ScriptTag{code: code}
}

// NewScriptSource creates a <script> element loading code from src.
func NewScriptSource(src string) *ScriptTag {
	s := &ScriptTag{}
	s.attrs.set("src", src)
	return s
}

// Name always returns "script".
func (s *ScriptTag) Name() string {
	return "script"
}

// Code returns the inline code of the script.
func (s *ScriptTag) Code() string {
	return s.code
}

// Get returns the value of an attribute, e.g. "src" or "type".
func (s *ScriptTag) Get(key string) (string, bool) {
	return s.attrs.get(key)
}

// Set sets the value of an attribute, e.g. "type" or "defer".
func (s *ScriptTag) Set(key, value string) *ScriptTag {
	s.attrs.set(key, value)
	return s
}

// Render outputs the element. Scripts are never self-closing.
func (s *ScriptTag) Render() string {
	return s.open() + s.code + "</script>"
}

// RenderPretty puts inline code on indented lines of their own.
func (s *ScriptTag) RenderPretty() string {
	if s.code == "" {
		return s.Render()
	}
	code := strings.TrimSuffix(s.code, "\n")
	return s.open() + "\n" + render.Indent(code) + "\n</script>"
}

func (s *ScriptTag) String() string {
	return s.Render()
}

func (s *ScriptTag) open() string {
	var b strings.Builder
	b.WriteString("<script")
	for _, a := range s.attrs.list() {
		writeAttr(&b, a.Key, a.Value)
	}
	b.WriteByte('>')
	return b.String()
}

var _ Node = &StyleTag{}
var _ Node = &ScriptTag{}
