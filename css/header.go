package css

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
)

// Header is the head of a CSS scope, i.e. everything in front of the
// opening curly brace.
//
//     div.myClass {         <- header is a Target
//         color: red;
//     }
//     @media print { … }    <- header is a Media
//
// Scopes rely on nothing but the rendering of their header, so
// clients are free to add header types of their own. Headers with the same
// compact rendering are considered equal, unless they implement KeyedHeader.
type Header interface {
	Render() string
	RenderPretty() string
}

// KeyedHeader is a header with an identity of its own. Scopes compare
// keyed headers by Key instead of by their rendering, so a Target and a
// Media never compare equal.
type KeyedHeader interface {
	Header
	Key() string // canonical identity, used for comparing scopes
}

// HeaderKey returns the identity of a header used for comparing scopes.
func HeaderKey(h Header) string {
	switch k := h.(type) {
	case nil:
		return ""
	case KeyedHeader:
		return k.Key()
	}
	return "header:" + strconv.Quote(h.Render())
}

// --- Target ----------------------------------------------------------------

// Target is a header which targets HTML elements by a selector, e.g.
// "div.myClass" or ".sub-test > p". The selector is output verbatim.
type Target string

// ParseTarget creates a Target from a selector and checks the selector for
// syntactical correctness. Selectors of nested scopes using the nesting
// selector '&' are not accepted; use a plain Target for these.
func ParseTarget(selector string) (Target, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return "", fmt.Errorf("css: empty selector")
	}
	if _, err := cascadia.Compile(selector); err != nil {
		return "", fmt.Errorf("css: invalid selector %q: %w", selector, err)
	}
	return Target(selector), nil
}

// Selector returns the selector string.
func (t Target) Selector() string {
	return string(t)
}

// Render outputs the selector.
func (t Target) Render() string {
	return string(t)
}

// RenderPretty outputs the selector.
func (t Target) RenderPretty() string {
	return string(t)
}

// Key is part of interface KeyedHeader.
func (t Target) Key() string {
	return "target:" + strconv.Quote(string(t))
}

var _ KeyedHeader = Target("")

// --- Media -----------------------------------------------------------------

// Media is a header for conditional rules, depending on a media query.
// Media("screen and (max-width: 800px)") renders as
//
//     @media screen and (max-width: 800px)
//
type Media string

// Query returns the media query of the header.
func (m Media) Query() string {
	return string(m)
}

// Render outputs the at-rule.
func (m Media) Render() string {
	if m == "" {
		return "@media"
	}
	return "@media " + string(m)
}

// RenderPretty outputs the at-rule.
func (m Media) RenderPretty() string {
	return m.Render()
}

// Key is part of interface KeyedHeader.
func (m Media) Key() string {
	return "media:" + strconv.Quote(string(m))
}

var _ KeyedHeader = Media("")
