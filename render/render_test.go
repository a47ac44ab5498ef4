package render_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/webdoc/render"
)

type leaf string

func (l leaf) Render() string       { return string(l) }
func (l leaf) RenderPretty() string { return "<" + string(l) + ">" }

func TestIndentEmpty(t *testing.T) {
	if render.Indent("") != "\t" {
		t.Errorf("expected indent of empty string to be a single tab, is %q", render.Indent(""))
	}
}

func TestIndentLines(t *testing.T) {
	s := render.Indent("a\nb\n\nc")
	if s != "\ta\n\tb\n\t\n\tc" {
		t.Errorf("expected every line to be indented, have %q", s)
	}
}

func TestIndentAccumulates(t *testing.T) {
	s := "x {\n\ty\n}"
	for depth := 1; depth <= 3; depth++ {
		s = render.Indent(s)
		for _, line := range strings.Split(s, "\n") {
			if !strings.HasPrefix(line, strings.Repeat("\t", depth)) {
				t.Errorf("depth %d: expected line %q to carry %d tabs", depth, line, depth)
			}
		}
	}
}

func TestJoin(t *testing.T) {
	rs := []leaf{"a", "b", "c"}
	if c := render.JoinCompact(rs); c != "abc" {
		t.Errorf("expected compact join to be 'abc', is %q", c)
	}
	if p := render.JoinPretty(rs, "\n"); p != "<a>\n<b>\n<c>" {
		t.Errorf("expected pretty join to be newline separated, is %q", p)
	}
	if p := render.JoinPretty([]leaf{}, "\n"); p != "" {
		t.Errorf("expected pretty join of nothing to be empty, is %q", p)
	}
}
