/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
based on the CSS parser of github.com/aymerick/douceur.

Its main purpose is to bring CSS text into the object model of package css:

    sheet, err := douceuradapter.ParseStylesheet("h1 { color: red }")
    …
    sheet.Render()   // => "h1{color: red;}"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/webdoc/css"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/webdoc/css/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
type CSSStyles struct {
	css dcss.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *dcss.Stylesheet) *CSSStyles {
	if css == nil {
		return &CSSStyles{}
	}
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: cannot parse stylesheet: %w", err)
	}
	return Wrap(c), nil
}

// ParseStylesheet parses CSS text into a css.Stylesheet.
func ParseStylesheet(text string) (*css.Stylesheet, error) {
	sheet, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return cssom.Import(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet. Rules of stylesheets
// other than CSSStyles are converted to douceur rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
		return
	}
	for _, r := range other.Rules() {
		sheet.css.Rules = append(sheet.css.Rules, toDouceur(r, 0))
	}
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	return wrapRules(sheet.css.Rules)
}

// Stylesheet returns the wrapped douceur stylesheet.
func (sheet *CSSStyles) Stylesheet() *dcss.Stylesheet {
	return &sheet.css
}

var _ cssom.StyleSheet = &CSSStyles{}

// tracer traces with key 'webdoc.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("webdoc.cssom")
}

func wrapRules(rs []*dcss.Rule) []cssom.Rule {
	rules := make([]cssom.Rule, len(rs))
	for i := range rs {
		rules[i] = Rule(*rs[i])
	}
	return rules
}

func toDouceur(r cssom.Rule, level int) *dcss.Rule {
	dr := dcss.NewRule(dcss.QualifiedRule)
	dr.Prelude = r.Selector()
	dr.EmbedLevel = level
	if nested := r.Nested(); len(nested) > 0 {
		dr.Kind = dcss.AtRule
		dr.Name, dr.Prelude = splitAtRule(r.Selector())
		for _, n := range nested {
			dr.Rules = append(dr.Rules, toDouceur(n, level+1))
		}
	}
	for _, key := range r.Properties() {
		dr.Declarations = append(dr.Declarations, &dcss.Declaration{
			Property:  key,
			Value:     string(r.Value(key)),
			Important: false, // the value keeps its "!important" suffix
		})
	}
	return dr
}

func splitAtRule(selector string) (string, string) {
	for i, c := range selector {
		if c == ' ' {
			return selector[:i], selector[i+1:]
		}
	}
	return selector, ""
}

// Rule is an adapter for interface cssom.Rule.
type Rule dcss.Rule

// Selector returns the prelude / selectors of the rule. For at-rules, the
// at-keyword is prepended.
func (r Rule) Selector() string {
	if r.Kind == dcss.AtRule {
		if r.Prelude == "" {
			return r.Name
		}
		return r.Name + " " + r.Prelude
	}
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	decl := r.Declarations
	props := make([]string, 0, len(decl))
	for _, d := range decl {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px"
func (r Rule) Value(key string) css.Property {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return css.Property(d.Value)
		}
	}
	return css.NullStyle
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	decl := r.Declarations
	for _, d := range decl {
		if d.Property == key {
			return d.Important
		}
	}
	return false
}

// Nested returns the nested rules of an at-rule.
func (r Rule) Nested() []cssom.Rule {
	if len(r.Rules) == 0 {
		return nil
	}
	return wrapRules(r.Rules)
}

var _ cssom.Rule = Rule{}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
//
// Style elements which cannot be parsed are skipped; the remaining ones are
// still returned. In this case the error of the first invalid style element
// is returned as well.
func ExtractStyleElements(htmldoc *html.Node) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css, err := extractStyles(head)
	bodycss, bodyerr := extractStyles(body)
	if err == nil {
		err = bodyerr
	}
	return append(css, bodycss...), err
}

func extractStyles(h *html.Node) ([]*CSSStyles, error) {
	if h == nil {
		return nil, nil
	}
	var css []*CSSStyles
	var firstErr error
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := parser.Parse(ch.FirstChild.Data)
		if err != nil {
			tracer().Debugf("douceur: skipping invalid <style> element: %v", err)
			if firstErr == nil {
				firstErr = fmt.Errorf("douceur: cannot parse <style> element: %w", err)
			}
			continue
		}
		css = append(css, Wrap(c))
	}
	return css, firstErr
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
