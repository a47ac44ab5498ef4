/*
Package render defines the rendering contract shared by CSS and markup objects.

Every object of this module may be rendered in two forms: a compact form,
free of any whitespace not required by HTML or CSS, and a pretty form, which
breaks content into lines and indents it according to its nesting depth.

Indentation is never tracked as an absolute depth. Instead every level of
nesting indents the already rendered output of its children once, using
Indent. A CSS scope nested three levels deep therefore ends up with three
tabs in front of every one of its lines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import "strings"

// Unit is the text inserted for one level of indentation.
const Unit = "\t"

// Renderer is implemented by everything which may be output as HTML or CSS.
//
// Render returns the compact form, RenderPretty the indented, multi-line form.
// Both must be free of side effects, so calling them repeatedly on an
// unchanged object yields identical results.
type Renderer interface {
	Render() string
	RenderPretty() string
}

// Indent returns a copy of s with one level of indentation added: a Unit is
// inserted at the start of s and after every newline character.
//
// Indent("") returns a single Unit.
func Indent(s string) string {
	return Unit + strings.ReplaceAll(s, "\n", "\n"+Unit)
}

// JoinCompact concatenates the compact renderings of rs without a separator.
func JoinCompact[R Renderer](rs []R) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(r.Render())
	}
	return b.String()
}

// JoinPretty joins the pretty renderings of rs with sep.
func JoinPretty[R Renderer](rs []R, sep string) string {
	lines := make([]string, len(rs))
	for i, r := range rs {
		lines[i] = r.RenderPretty()
	}
	return strings.Join(lines, sep)
}
