/*
Package value provides typed values for CSS properties.

CSS property values are strings, and clients are free to set them as such.
For dimensions, however, it is convenient to compute with typed values and
convert them to property strings at the last moment:

    width := value.JustDimen(10 * dimen.PT)
    props.Set("width", width.Property())        // width: 10pt;

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package value

import (
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/webdoc/css"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0200
	dimenVW      uint32 = 0x0300
	dimenVH      uint32 = 0x0400
	dimenPercent uint32 = 0x0500
	relativeMask uint32 = 0xff00
)

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	rel   float64 // factor for relative dimensions
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage n
	| FontRel unit n
	| ViewRel unit n
	| ContentRel Min | Max | Fit
*/

// Auto is the CSS value "auto".
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// Inherit is the CSS value "inherit".
func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

// Initial is the CSS value "initial".
func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{rel: n, flags: dimenPercent}
}

// EM creates a dimension relative to the font size of the element.
func EM(n float64) DimenT {
	return DimenT{rel: n, flags: dimenEM}
}

// REM creates a dimension relative to the font size of the root element.
func REM(n float64) DimenT {
	return DimenT{rel: n, flags: dimenREM}
}

// VW creates a dimension relative to the viewport width.
func VW(n float64) DimenT {
	return DimenT{rel: n, flags: dimenVW}
}

// VH creates a dimension relative to the viewport height.
func VH(n float64) DimenT {
	return DimenT{rel: n, flags: dimenVH}
}

// Content creates a content dependent dimension, with flag being one of
// DimenContentMax, DimenContentMin or DimenContentFit.
func Content(flag uint32) DimenT {
	return DimenT{flags: flag & contentMask}
}

// Property converts a dimension to a CSS property value.
// Fixed dimensions are output in points.
func (d DimenT) Property() css.Property {
	switch d.flags & kindMask {
	case dimenAbsolute:
		return css.Property(num(float64(d.d)/float64(dimen.PT)) + "pt")
	case dimenAuto:
		return "auto"
	case dimenInherit:
		return "inherit"
	case dimenInitial:
		return "initial"
	}
	switch d.flags & contentMask {
	case DimenContentMax:
		return "max-content"
	case DimenContentMin:
		return "min-content"
	case DimenContentFit:
		return "fit-content"
	}
	switch d.flags & relativeMask {
	case dimenEM:
		return css.Property(num(d.rel) + "em")
	case dimenREM:
		return css.Property(num(d.rel) + "rem")
	case dimenVW:
		return css.Property(num(d.rel) + "vw")
	case dimenVH:
		return css.Property(num(d.rel) + "vh")
	case dimenPercent:
		return css.Property(num(d.rel) + "%")
	}
	return css.NullStyle
}

func (d DimenT) String() string {
	return d.Property().String()
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the kind of a dimension:
//
//     switch m := d.Match(); m {
//     case m.Just(&du): …
//     case m.IsKind(value.Auto()): …
//     }
//
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is the helper type for Match.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case m.dimen.flags == dimenNone || d.flags == dimenNone:
		if m.dimen.flags == d.flags {
			return m
		}
		return nil
	case (m.dimen.flags & kindMask) != 0 && (m.dimen.flags&kindMask) == (d.flags&kindMask):
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if m.dimen.flags&relativeMask != d.flags&relativeMask {
			return nil
		}
		return m
	case (m.dimen.flags&contentMask > 0) && (d.flags&contentMask > 0):
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts their value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.rel
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds a result for each kind of dimension.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts a match expression on d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is a match expression evaluating to a value of type T.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags & kindMask {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenInitial:
		return patterns.Initial
	case dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With extracts the fixed value of the dimension.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
