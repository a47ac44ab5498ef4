package css

import (
	"sort"
	"strings"

	"github.com/npillmayer/webdoc/render"
)

// Scope is a CSS rule block: a header, a set of properties, and an optional
// set of nested scopes.
//
//     div.myClass {
//         color: red;          <- properties
//         background: blue;
//
//         p {                  <- nested scope
//             color: yellow;
//         }
//     }
//
// Nested scopes form a set: structurally equal scopes are stored once.
type Scope struct {
	header     Header
	properties *Properties
	children   scopeSet
}

// NewScope creates a scope. props may be nil.
// Duplicate children are dropped.
func NewScope(h Header, props *Properties, children ...*Scope) *Scope {
	if props == nil {
		props = &Properties{}
	}
	sc := &Scope{header: h, properties: props}
	sc.Add(children...)
	return sc
}

// NewTargetScope creates a scope with a Target header for selector.
func NewTargetScope(selector string, props *Properties, children ...*Scope) *Scope {
	return NewScope(Target(selector), props, children...)
}

// Header returns the header of the scope.
func (sc *Scope) Header() Header {
	return sc.header
}

// Properties returns the properties of the scope. Clients may modify them.
func (sc *Scope) Properties() *Properties {
	return sc.properties
}

// Children returns the nested scopes, in order of insertion.
func (sc *Scope) Children() []*Scope {
	return sc.children.slice()
}

// Add inserts nested scopes. Scopes which are structurally equal to a
// scope already present are skipped, as are scopes which would introduce a
// cycle, i.e. sc itself or scopes having sc as a descendant. Add returns
// the number of scopes actually inserted.
func (sc *Scope) Add(children ...*Scope) int {
	n := 0
	for _, ch := range children {
		if ch.reaches(sc) {
			tracer().Debugf("css: refusing to nest scope %s into itself", ch.headerString(false))
			continue
		}
		n += sc.children.add(ch)
	}
	return n
}

// reaches checks if target is sc or one of its descendants.
func (sc *Scope) reaches(target *Scope) bool {
	if sc == nil {
		return false
	}
	if sc == target {
		return true
	}
	for _, ch := range sc.children {
		if ch.reaches(target) {
			return true
		}
	}
	return false
}

// Remove deletes a nested scope which is structurally equal to child.
func (sc *Scope) Remove(child *Scope) bool {
	return sc.children.remove(child)
}

// Contains checks if a nested scope structurally equal to child is present.
func (sc *Scope) Contains(child *Scope) bool {
	return sc.children.indexOf(child) >= 0
}

// Equal compares two scopes structurally: headers, properties and the sets
// of nested scopes have to be equal.
func (sc *Scope) Equal(other *Scope) bool {
	if sc == nil || other == nil {
		return sc == other
	}
	return sc.Key() == other.Key()
}

// Key returns a canonical representation of the scope. Structurally equal
// scopes have identical keys, independent of the order in which properties
// and children were added.
func (sc *Scope) Key() string {
	hkey := HeaderKey(sc.header)
	keys := make([]string, len(sc.children))
	for i, ch := range sc.children {
		keys[i] = ch.Key()
	}
	sort.Strings(keys)
	return hkey + "{" + sc.properties.Key() + strings.Join(keys, "") + "}"
}

// Render outputs the scope in compact form:
//
//     header{key: value;child{…}child{…}}
//
func (sc *Scope) Render() string {
	var b strings.Builder
	b.WriteString(sc.headerString(false))
	b.WriteByte('{')
	b.WriteString(sc.properties.Render())
	b.WriteString(render.JoinCompact(sc.children))
	b.WriteByte('}')
	return b.String()
}

// RenderPretty outputs the scope with properties and nested scopes indented
// by one level. Nested scopes are separated from the properties and from
// each other by a blank line.
func (sc *Scope) RenderPretty() string {
	var b strings.Builder
	b.WriteString(sc.headerString(true))
	b.WriteString(" {\n")
	b.WriteString(render.Indent(sc.properties.RenderPretty()))
	if len(sc.children) > 0 {
		b.WriteString("\n" + render.Unit + "\n")
		b.WriteString(render.Indent(render.JoinPretty(sc.children, "\n\n")))
	}
	b.WriteString("\n}")
	return b.String()
}

func (sc *Scope) String() string {
	return sc.Render()
}

func (sc *Scope) headerString(pretty bool) string {
	if sc.header == nil {
		return ""
	}
	if pretty {
		return sc.header.RenderPretty()
	}
	return sc.header.Render()
}

var _ render.Renderer = &Scope{}

// --- Sets of scopes --------------------------------------------------------

// scopeSet is an insertion-ordered set of scopes with structural equality.
type scopeSet []*Scope

func (set *scopeSet) add(scopes ...*Scope) int {
	n := 0
	for _, sc := range scopes {
		if sc == nil {
			continue
		}
		if set.indexOf(sc) >= 0 {
			tracer().Debugf("css: dropping duplicate scope %s", sc.headerString(false))
			continue
		}
		*set = append(*set, sc)
		n++
	}
	return n
}

func (set *scopeSet) remove(sc *Scope) bool {
	i := set.indexOf(sc)
	if i < 0 {
		return false
	}
	*set = append((*set)[:i], (*set)[i+1:]...)
	return true
}

func (set scopeSet) indexOf(sc *Scope) int {
	if sc == nil {
		return -1
	}
	key := sc.Key()
	for i, s := range set {
		if s == sc || s.Key() == key {
			return i
		}
	}
	return -1
}

func (set scopeSet) slice() []*Scope {
	r := make([]*Scope, len(set))
	copy(r, set)
	return r
}
