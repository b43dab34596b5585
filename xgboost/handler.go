// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost

import "fmt"

// base supplies the default event behavior shared by the schema handlers: it
// remembers the most recent member key, counts the members seen, tolerates
// scalar values it was not asked about, and treats a container opening under
// an unrecognized key as a schema violation. Handlers embed base and
// override the events they interpret.
type base struct {
	d       *dispatcher
	key     string
	members int
}

// Key records the most recent member key for the value event that follows.
func (b *base) Key(k []byte) error {
	b.key = string(k)
	b.members++
	return nil
}

// is reports whether the most recent member key equals key.
func (b *base) is(key string) bool { return b.key == key }

// pop removes the innermost handler from the dispatcher stack.
func (b *base) pop() error { return b.d.pop() }

// ignore returns a fresh handler that consumes a subtree without effect.
func (b *base) ignore() handler { return &ignoreHandler{base: base{d: b.d}} }

func (b *base) Null() error          { return nil }
func (b *base) Bool(bool) error      { return nil }
func (b *base) Int(int64) error      { return nil }
func (b *base) Uint(uint64) error    { return nil }
func (b *base) Double(float64) error { return nil }
func (b *base) Text([]byte) error    { return nil }

func (b *base) BeginObject() error {
	return fmt.Errorf("xgboost: unexpected object under key %q", b.key)
}

func (b *base) BeginArray() error {
	return fmt.Errorf("xgboost: unexpected array under key %q", b.key)
}

func (b *base) EndObject() error { return b.pop() }
func (b *base) EndArray() error  { return b.pop() }

// An ignoreHandler accepts every event without effect, consuming an entire
// subtree of the document. Nested containers push further ignore handlers so
// the subtree is fully matched.
type ignoreHandler struct{ base }

func (h *ignoreHandler) BeginObject() error { h.d.push(h.ignore()); return nil }
func (h *ignoreHandler) BeginArray() error  { h.d.push(h.ignore()); return nil }

// A numberArray accumulates the elements of a flat numeric array, converting
// each element to T. Conversions are unchecked: the input is trusted to stay
// within the schema's value ranges.
type numberArray[T int32 | uint32 | float64] struct {
	base
	out *[]T
}

func (h *numberArray[T]) Int(v int64) error      { *h.out = append(*h.out, T(v)); return nil }
func (h *numberArray[T]) Uint(v uint64) error    { *h.out = append(*h.out, T(v)); return nil }
func (h *numberArray[T]) Double(v float64) error { *h.out = append(*h.out, T(v)); return nil }

// A boolArray accumulates the elements of a flat boolean array. Numeric
// elements are accepted as 0/1, the way some XGBoost versions write them.
type boolArray struct {
	base
	out *[]bool
}

func (h *boolArray) Bool(v bool) error   { *h.out = append(*h.out, v); return nil }
func (h *boolArray) Int(v int64) error   { *h.out = append(*h.out, v != 0); return nil }
func (h *boolArray) Uint(v uint64) error { *h.out = append(*h.out, v != 0); return nil }

// An objectArray accumulates an array whose elements are objects. Each
// element appends a zero T to the output sequence and delegates the object's
// members to a fresh element handler targeting the new slot.
type objectArray[T any] struct {
	base
	out  *[]T
	elem func(d *dispatcher, out *T) handler
}

func (h *objectArray[T]) BeginObject() error {
	var zero T
	*h.out = append(*h.out, zero)
	h.d.push(h.elem(h.d, &(*h.out)[len(*h.out)-1]))
	return nil
}
