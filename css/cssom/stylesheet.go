package cssom

import (
	"strings"

	"github.com/npillmayer/webdoc/css"
)

// StyleSheet is an interface to abstract away a stylesheet-implementation.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// At-rules (e.g., "@media print") return their at-keyword and prelude as
// selector and list their nested rules with Nested. Style rules have no
// nested rules.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string          // the prelude / selectors of the rule
	Properties() []string      // property keys, e.g. "margin-top"
	Value(string) css.Property // property value for key, e.g. "15px"
	IsImportant(string) bool   // is property key marked as important?
	Nested() []Rule            // nested rules of an at-rule
}

// --- View on css.Stylesheet ------------------------------------------------

// View is an adapter for interface StyleSheet, operating on a css.Stylesheet.
type View struct {
	sheet *css.Stylesheet
}

// Wrap a css.Stylesheet into a View. Changes to the view are reflected
// in sheet.
func Wrap(sheet *css.Stylesheet) *View {
	if sheet == nil {
		sheet = css.NewStylesheet()
	}
	return &View{sheet: sheet}
}

// Stylesheet returns the underlying stylesheet.
func (v *View) Stylesheet() *css.Stylesheet {
	return v.sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface StyleSheet
func (v *View) Empty() bool {
	return v.sheet.IsEmpty()
}

// AppendRules appends rules from another stylesheet.
//
// Interface StyleSheet
func (v *View) AppendRules(other StyleSheet) {
	v.sheet.Merge(Import(other))
}

// Rules returns all the rules of a stylesheet, with nested scopes
// flattened.
//
// Interface StyleSheet
func (v *View) Rules() []Rule {
	var rules []Rule
	for _, sc := range v.sheet.Scopes() {
		rules = flatten(sc, "", rules)
	}
	return rules
}

var _ StyleSheet = &View{}

// scopeRule is an adapter for interface Rule.
type scopeRule struct {
	selector string
	props    *css.Properties
	nested   []Rule
}

func (r scopeRule) Selector() string {
	return r.selector
}

func (r scopeRule) Properties() []string {
	return r.props.Keys()
}

func (r scopeRule) Value(key string) css.Property {
	p, _ := r.props.Get(key)
	return p
}

func (r scopeRule) IsImportant(key string) bool {
	return r.Value(key).IsImportant()
}

func (r scopeRule) Nested() []Rule {
	return r.nested
}

var _ Rule = scopeRule{}

// flatten appends the rules for sc and its nested target scopes. Scopes with
// other kinds of headers become at-rules, with their children as nested
// rules.
func flatten(sc *css.Scope, parent string, rules []Rule) []Rule {
	target, isTarget := sc.Header().(css.Target)
	if !isTarget {
		var nested []Rule
		for _, ch := range sc.Children() {
			nested = flatten(ch, parent, nested)
		}
		return append(rules, scopeRule{
			selector: sc.Header().Render(),
			props:    sc.Properties(),
			nested:   nested,
		})
	}
	selector := combine(parent, target.Selector())
	if sc.Properties().IsNotEmpty() || len(sc.Children()) == 0 {
		rules = append(rules, scopeRule{selector: selector, props: sc.Properties()})
	}
	for _, ch := range sc.Children() {
		rules = flatten(ch, selector, rules)
	}
	return rules
}

// combine computes the selector of a nested target. Selector lists are
// combined pairwise.
func combine(parent, nested string) string {
	if parent == "" {
		return nested
	}
	var combined []string
	for _, p := range strings.Split(parent, ",") {
		p = strings.TrimSpace(p)
		for _, n := range strings.Split(nested, ",") {
			n = strings.TrimSpace(n)
			if strings.Contains(n, "&") {
				combined = append(combined, strings.ReplaceAll(n, "&", p))
			} else {
				combined = append(combined, p+" "+n)
			}
		}
	}
	return strings.Join(combined, ", ")
}

// --- Import ----------------------------------------------------------------

// Import creates a css.Stylesheet from the rules of any StyleSheet.
// Rules with selectors starting with "@media" are imported as scopes
// with a css.Media header; all other rules get a css.Target header.
// Important properties get an "!important" suffix.
func Import(sheet StyleSheet) *css.Stylesheet {
	result := css.NewStylesheet()
	if sheet == nil || sheet.Empty() {
		return result
	}
	for _, r := range sheet.Rules() {
		result.Add(importRule(r))
	}
	tracer().Debugf("cssom: imported %d scopes", result.Len())
	return result
}

func importRule(r Rule) *css.Scope {
	props := css.NewProperties()
	for _, key := range r.Properties() {
		v := r.Value(key)
		if r.IsImportant(key) && !v.IsImportant() {
			v = css.Property(string(v) + " !important")
		}
		props.Set(key, v)
	}
	var header css.Header = css.Target(r.Selector())
	if q, ok := mediaQuery(r.Selector()); ok {
		header = css.Media(q)
	}
	sc := css.NewScope(header, props)
	for _, nested := range r.Nested() {
		sc.Add(importRule(nested))
	}
	return sc
}

func mediaQuery(selector string) (string, bool) {
	const at = "@media"
	if !strings.HasPrefix(selector, at) {
		return "", false
	}
	rest := selector[len(at):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' && rest[0] != '\n' {
		return "", false // e.g. "@mediafoo"
	}
	return strings.TrimSpace(rest), true
}
