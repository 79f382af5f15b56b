package gast

import (
	"bytes"
	"encoding/json"

	"uast/internal/token"
)

// Wrapped pairs a payload with the token of its primary occurrence. The
// token locates the payload, it does not necessarily cover its full span.
type Wrapped[T any] struct {
	V   T           `json:"v"`
	Tok token.Token `json:"tok"`
}

// Wrap is shorthand for building a Wrapped value.
func Wrap[T any](v T, tok token.Token) Wrapped[T] {
	return Wrapped[T]{V: v, Tok: tok}
}

// Bracketed is a payload delimited by exactly two tokens. Either delimiter
// may be synthetic for languages with implicit brackets (layout-based
// blocks, implicit argument lists).
type Bracketed[T any] struct {
	Open  token.Token `json:"open"`
	V     T           `json:"v"`
	Close token.Token `json:"close"`
}

// Bracket is shorthand for building a Bracketed value.
func Bracket[T any](open token.Token, v T, close token.Token) Bracketed[T] {
	return Bracketed[T]{Open: open, V: v, Close: close}
}

// FakeBracket wraps v in synthetic delimiters, for constructs whose
// source syntax has none.
func FakeBracket[T any](reason string, v T) Bracketed[T] {
	return Bracketed[T]{Open: token.Fake(reason), V: v, Close: token.Fake(reason)}
}

// Opt holds a genuinely-optional value: a field that may be absent in the
// source, as opposed to a convenience default. The zero value is absent.
// For collections, Some of an empty slice is "explicitly empty" and stays
// distinguishable from absence across an encode/decode cycle.
type Opt[T any] struct {
	v   T
	set bool
}

// Some builds a present Opt.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, set: true}
}

// None builds an absent Opt.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// IsSet reports whether a value is present.
func (o Opt[T]) IsSet() bool { return o.set }

// IsZero makes absent Opt fields eligible for json omitzero.
func (o Opt[T]) IsZero() bool { return !o.set }

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) { return o.v, o.set }

// GetOr returns the value, or def when absent.
func (o Opt[T]) GetOr(def T) T {
	if o.set {
		return o.v
	}
	return def
}

// MarshalJSON encodes the inner value; an absent Opt encodes as null.
// Fields should additionally be tagged omitzero so absence drops the key.
func (o Opt[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}

// UnmarshalJSON decodes null as absent and anything else as present.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*o = Opt[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Opt[T]{v: v, set: true}
	return nil
}
