package douceuradapter_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/webdoc/css"
	"github.com/npillmayer/webdoc/css/cssom"
	"github.com/npillmayer/webdoc/css/cssom/douceuradapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webdoc.cssom")
	defer teardown()
	//
	sheet, err := douceuradapter.ParseStylesheet(`
h1 { color: red; font-size: 2em }
p.large { font-size: 3rem !important; }
@media screen and (max-width: 800px) {
    h1 { font-size: 1rem; }
}`)
	require.NoError(t, err)
	assert.Equal(t, 3, sheet.Len())
	assert.Equal(t,
		"h1{color: red;font-size: 2em;}p.large{font-size: 3rem !important;}"+
			"@media screen and (max-width: 800px){h1{font-size: 1rem;}}",
		sheet.Render())
	media := sheet.Scopes()[2]
	if _, ok := media.Header().(css.Media); !ok {
		t.Errorf("expected @media rule to be imported with a media header, is %T", media.Header())
	}
}

func TestAdapterRules(t *testing.T) {
	styles, err := douceuradapter.Parse("a { color: blue !important; margin: 0 }")
	require.NoError(t, err)
	require.False(t, styles.Empty())
	rules := styles.Rules()
	require.Len(t, rules, 1)
	r := rules[0]
	assert.Equal(t, "a", r.Selector())
	assert.Equal(t, []string{"color", "margin"}, r.Properties())
	assert.Equal(t, css.Property("blue"), r.Value("color"))
	assert.True(t, r.IsImportant("color"))
	assert.False(t, r.IsImportant("margin"))
	assert.Equal(t, css.NullStyle, r.Value("padding"))
	assert.Nil(t, r.Nested())
}

func TestAppendForeignRules(t *testing.T) {
	styles, err := douceuradapter.Parse("a { color: blue }")
	require.NoError(t, err)
	ours := css.NewStylesheet(
		css.NewTargetScope("em", css.NewProperties(css.KV("font-style", "italic"))),
		css.NewScope(css.Media("print"), nil, css.NewTargetScope("a", nil)),
	)
	styles.AppendRules(cssom.Wrap(ours))
	rules := styles.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "em", rules[1].Selector())
	assert.Equal(t, "@media print", rules[2].Selector())
	assert.Len(t, rules[2].Nested(), 1)
	again := cssom.Import(styles)
	assert.Equal(t, "a{color: blue;}em{font-style: italic;}@media print{a{}}", again.Render())
}

func TestExtractStyleElements(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(
		"<html><head><style>h1{color: red;}</style></head><body><style>p{margin: 0;}</style></body></html>"))
	require.NoError(t, err)
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	merged := css.NewStylesheet()
	for _, s := range sheets {
		merged.Merge(cssom.Import(s))
	}
	assert.Equal(t, "h1{color: red;}p{margin: 0;}", merged.Render())
}

func TestExtractInvalidStyleElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "webdoc.cssom")
	defer teardown()
	//
	doc, err := html.Parse(strings.NewReader(
		"<html><head><style>}</style><style>h1{color: red;}</style></head>" +
			"<body><style>p{margin: 0;}</style></body></html>"))
	require.NoError(t, err)
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err == nil {
		t.Errorf("expected invalid <style> element to be reported")
	}
	if len(sheets) != 2 {
		t.Fatalf("expected style elements after the invalid one to be extracted, have %d", len(sheets))
	}
	merged := css.NewStylesheet()
	for _, s := range sheets {
		merged.Merge(cssom.Import(s))
	}
	assert.Equal(t, "h1{color: red;}p{margin: 0;}", merged.Render())
}
