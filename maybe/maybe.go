/*
Package maybe provides an option type for values which may be absent.

	module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault)

Clients match on a Maybe with a switch statement:

	var id string
	switch m := x.Match(); m {
	case m.Just(&id):
		…
	case m.Nothing():
		…
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2024 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is either Just a value or Nothing.
//
// The zero value of a Maybe interface is nil, which clients should not use.
// Use Nothing[T]() instead.
type Maybe[T comparable] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
	Get() (T, bool)
}

type maybe[T comparable] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T comparable](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent value.
func Nothing[T comparable]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPtr returns Nothing for a nil pointer, Just(*p) otherwise.
func FromPtr[T comparable](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a computation which may fail.
func AndThen[T, S comparable](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Equal compares two Maybes: both are Nothing, or both are Just with equal
// values.
func Equal[T comparable](a, b Maybe[T]) bool {
	va, oka := a.Get()
	vb, okb := b.Get()
	return oka == okb && va == vb
}

// --- Matching --------------------------------------------------------------

// Matcher is the helper type for matching on a Maybe.
type Matcher[T comparable] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T comparable] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
