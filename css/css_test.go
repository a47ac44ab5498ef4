package css_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webdoc/css"
	"github.com/stretchr/testify/assert"
)

func testScope() *css.Scope {
	return css.NewScope(
		css.Target(".test"),
		css.PropertiesFromMap(map[string]string{"display": "flex", "flex-direction": "column"}),
		css.NewTargetScope(".sub-test1", css.NewProperties(css.KV("width", "100%"))),
		css.NewTargetScope(".sub-test2", css.NewProperties(css.KV("height", "54px"))),
	)
}

func TestPropertiesRender(t *testing.T) {
	p := css.PropertiesFromMap(map[string]string{"color": "red"})
	if p.Render() != "color: red;" {
		t.Errorf("expected 'color: red;', have %q", p.Render())
	}
	if p.RenderPretty() != p.Render() {
		t.Errorf("expected single property to render identically in pretty mode, have %q", p.RenderPretty())
	}
	p.Set("background", "blue")
	if p.Render() != "color: red;background: blue;" {
		t.Errorf("expected properties in insertion order, have %q", p.Render())
	}
	if p.RenderPretty() != "color: red;\nbackground: blue;" {
		t.Errorf("expected one line per property, have %q", p.RenderPretty())
	}
}

func TestPropertiesSetUnset(t *testing.T) {
	p := css.NewProperties(css.KV("a", "1"), css.KV("b", "2"), css.KV("c", "3"))
	p.Set("a", "10")
	if keys := strings.Join(p.Keys(), ","); keys != "a,b,c" {
		t.Errorf("expected overwriting to keep key position, keys are %s", keys)
	}
	if v, ok := p.Get("a"); !ok || v != "10" {
		t.Errorf("expected a=10, have %q (found=%v)", v, ok)
	}
	p.Unset("b")
	p.Unset("no-such-key")
	if p.Len() != 2 || p.Has("b") {
		t.Errorf("expected b to be removed, have %s", p)
	}
	if !p.HasValue("3") || p.HasValue("2") {
		t.Errorf("expected value query to reflect current values, have %s", p)
	}
	var empty css.Properties
	empty.Unset("x")
	if empty.IsNotEmpty() || empty.Render() != "" {
		t.Errorf("expected zero properties to be empty")
	}
}

func TestPropertiesEqual(t *testing.T) {
	p1 := css.NewProperties(css.KV("a", "1"), css.KV("b", "2"))
	p2 := css.NewProperties(css.KV("b", "2"), css.KV("a", "1"))
	if !p1.Equal(p2) || p1.Key() != p2.Key() {
		t.Errorf("expected property sets to be equal regardless of order")
	}
	p2.Set("a", "3")
	if p1.Equal(p2) {
		t.Errorf("expected property sets with different values to differ")
	}
	c := p1.Clone()
	c.Set("z", "0")
	if p1.Has("z") {
		t.Errorf("expected clone to be independent of original")
	}
}

func TestPropertyHelpers(t *testing.T) {
	if !css.Property("inherit").IsInherit() || !css.Property("initial").IsInitial() {
		t.Error("expected keyword predicates to hold")
	}
	if !css.NullStyle.IsEmpty() {
		t.Error("expected null style to be empty")
	}
	if !css.Property("red !important").IsImportant() {
		t.Error("expected property to be important")
	}
}

func TestScopeRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webdoc.css")
	defer teardown()
	//
	sc := testScope()
	assert.Equal(t,
		".test{display: flex;flex-direction: column;.sub-test1{width: 100%;}.sub-test2{height: 54px;}}",
		sc.Render())
	assert.Equal(t,
		".test {\n\tdisplay: flex;\n\tflex-direction: column;\n\t\n\t.sub-test1 {\n\t\twidth: 100%;\n\t}\n\t\n\t.sub-test2 {\n\t\theight: 54px;\n\t}\n}",
		sc.RenderPretty())
	assert.Equal(t, sc.Render(), sc.Render(), "rendering must be idempotent")
}

func TestScopeWithoutChildren(t *testing.T) {
	sc := css.NewTargetScope("p", css.NewProperties(css.KV("color", "red")))
	if sc.Render() != "p{color: red;}" {
		t.Errorf("unexpected compact scope %q", sc.Render())
	}
	if sc.RenderPretty() != "p {\n\tcolor: red;\n}" {
		t.Errorf("unexpected pretty scope %q", sc.RenderPretty())
	}
	empty := css.NewTargetScope("p", nil)
	if empty.Render() != "p{}" || empty.RenderPretty() != "p {\n\t\n}" {
		t.Errorf("unexpected rendering of empty scope: %q / %q", empty.Render(), empty.RenderPretty())
	}
}

func TestScopeNestingIndentation(t *testing.T) {
	inner := css.NewTargetScope(".c", css.NewProperties(css.KV("color", "red")))
	middle := css.NewTargetScope(".b", nil, inner)
	outer := css.NewTargetScope(".a", nil, middle)
	pretty := outer.RenderPretty()
	base := inner.RenderPretty()
	for _, line := range strings.Split(base, "\n") {
		if !strings.Contains(pretty, "\n\t\t"+line+"\n") && !strings.HasSuffix(pretty, "\n\t\t"+line) {
			t.Errorf("expected line %q to be indented by two levels in\n%s", line, pretty)
		}
	}
}

func TestScopeSetSemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webdoc.css")
	defer teardown()
	//
	sc := css.NewTargetScope(".x", nil,
		css.NewTargetScope(".y", css.NewProperties(css.KV("a", "1"), css.KV("b", "2"))),
		css.NewTargetScope(".y", css.NewProperties(css.KV("b", "2"), css.KV("a", "1"))),
	)
	if len(sc.Children()) != 1 {
		t.Fatalf("expected duplicate child scope to be dropped, have %d children", len(sc.Children()))
	}
	if n := sc.Add(css.NewTargetScope(".z", nil)); n != 1 {
		t.Errorf("expected new child to be inserted")
	}
	if !sc.Contains(css.NewTargetScope(".z", nil)) {
		t.Errorf("expected structurally equal scope to be found")
	}
	if !sc.Remove(css.NewTargetScope(".z", nil)) || len(sc.Children()) != 1 {
		t.Errorf("expected structurally equal scope to be removed")
	}
	if !testScope().Equal(testScope()) {
		t.Errorf("expected identical scope trees to be equal")
	}
	if css.NewScope(css.Target("x"), nil).Equal(css.NewScope(css.Media("x"), nil)) {
		t.Errorf("expected scopes with different kinds of headers to differ")
	}
}

func TestMediaHeader(t *testing.T) {
	sc := css.NewScope(css.Media("screen and (max-width: 800px)"), nil,
		css.NewTargetScope("h1", css.NewProperties(css.KV("font-size", "1rem"))))
	assert.Equal(t, "@media screen and (max-width: 800px){h1{font-size: 1rem;}}", sc.Render())
	assert.Equal(t, "@media screen and (max-width: 800px) {\n\t\n\t\n\th1 {\n\t\tfont-size: 1rem;\n\t}\n}",
		sc.RenderPretty())
}

func TestParseTarget(t *testing.T) {
	target, err := css.ParseTarget("  div.myClass > p ")
	if err != nil {
		t.Fatalf("expected selector to be valid, got error %v", err)
	}
	if target.Selector() != "div.myClass > p" {
		t.Errorf("expected selector to be trimmed, is %q", target)
	}
	if _, err = css.ParseTarget("div[["); err == nil {
		t.Errorf("expected invalid selector to be rejected")
	}
	if _, err = css.ParseTarget(" "); err == nil {
		t.Errorf("expected empty selector to be rejected")
	}
}

func TestStylesheet(t *testing.T) {
	sheet := css.NewStylesheet()
	if !sheet.IsEmpty() || sheet.IsNotEmpty() {
		t.Fatalf("expected new stylesheet to be empty")
	}
	h1 := css.NewTargetScope("h1", css.NewProperties(css.KV("color", "red")))
	p := css.NewTargetScope("p.large", css.NewProperties(css.KV("font-size", "3rem")))
	sheet.Add(h1, p, css.NewTargetScope("h1", css.NewProperties(css.KV("color", "red"))))
	if sheet.Len() != 2 {
		t.Fatalf("expected 2 scopes, have %d", sheet.Len())
	}
	assert.Equal(t, "h1{color: red;}p.large{font-size: 3rem;}", sheet.Render())
	assert.Equal(t, "h1 {\n\tcolor: red;\n}\n\np.large {\n\tfont-size: 3rem;\n}", sheet.RenderPretty())
	other := css.NewStylesheet(p, css.NewTargetScope("em", nil))
	if n := sheet.Merge(other); n != 1 {
		t.Errorf("expected merge to add one scope, added %d", n)
	}
	if !sheet.Remove(h1) || sheet.Contains(h1) {
		t.Errorf("expected h1 to be removed")
	}
}

func TestScopeRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webdoc.css")
	defer teardown()
	//
	a := css.NewTargetScope(".a", nil)
	if n := a.Add(a); n != 0 || len(a.Children()) != 0 {
		t.Errorf("expected scope not to be nested into itself, inserted %d", n)
	}
	b := css.NewTargetScope(".b", nil)
	c := css.NewTargetScope(".c", nil)
	if n := b.Add(c); n != 1 {
		t.Fatalf("expected .c to be nested into .b")
	}
	if n := c.Add(b); n != 0 {
		t.Errorf("expected indirect cycle to be rejected, inserted %d", n)
	}
	a.Add(b)
	if n := c.Add(a); n != 0 {
		t.Errorf("expected cycle over two levels to be rejected, inserted %d", n)
	}
	assert.Equal(t, ".a{.b{.c{}}}", a.Render())
	assert.Equal(t, ".a {\n\t\n\t\n\t.b {\n\t\t\n\t\t\n\t\t.c {\n\t\t\t\n\t\t}\n\t}\n}", a.RenderPretty())
	shared := css.NewTargetScope(".shared", nil)
	if b.Add(shared) != 1 || c.Add(shared) != 1 {
		t.Errorf("expected a scope to be nested at different places of a tree")
	}
}

// selectorList is a header type implementing nothing but rendering.
type selectorList []string

func (l selectorList) Render() string       { return strings.Join(l, ",") }
func (l selectorList) RenderPretty() string { return strings.Join(l, ", ") }

func TestHeaderWithoutKey(t *testing.T) {
	sc := css.NewScope(selectorList{"h1", "h2"}, css.NewProperties(css.KV("margin", "0")))
	assert.Equal(t, "h1,h2{margin: 0;}", sc.Render())
	assert.Equal(t, "h1, h2 {\n\tmargin: 0;\n}", sc.RenderPretty())
	other := css.NewScope(selectorList{"h1", "h2"}, css.NewProperties(css.KV("margin", "0")))
	if !sc.Equal(other) {
		t.Errorf("expected scopes with equally rendering headers to be equal")
	}
	if sc.Equal(css.NewScope(selectorList{"h1"}, css.NewProperties(css.KV("margin", "0")))) {
		t.Errorf("expected scopes with different headers to differ")
	}
	sheet := css.NewStylesheet(sc, other)
	if sheet.Len() != 1 {
		t.Errorf("expected duplicate scope to be dropped, have %d scopes", sheet.Len())
	}
}
