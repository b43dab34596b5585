// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package xgboost

import (
	"errors"
	"fmt"

	"github.com/creachadair/jtree"
	"go4.org/mem"

	"github.com/Jaime0/treelite"
)

// A handler interprets the JSON events for one nesting level of the XGBoost
// model schema. The dispatcher forwards each event to the innermost handler;
// an error return aborts the parse.
type handler interface {
	Null() error
	Bool(v bool) error
	Int(v int64) error
	Uint(v uint64) error
	Double(v float64) error
	Text(s []byte) error
	Key(k []byte) error
	BeginObject() error
	EndObject() error
	BeginArray() error
	EndArray() error
}

// A dispatcher implements the jtree.Handler interface by forwarding each
// event to the top of a stack of schema handlers. The root handler sits at
// the bottom of the stack; handlers above it are pushed when a recognized
// key opens a container and pop themselves when their container closes. The
// dispatcher owns the model being populated for the duration of one parse.
type dispatcher struct {
	stk   []handler
	model *treelite.Model
}

func newDispatcher() *dispatcher {
	d := &dispatcher{model: treelite.NewModel()}
	d.stk = append(d.stk, &rootHandler{base: base{d: d}})
	return d
}

// result surrenders the populated model to the caller. It reports an error
// if the input held no model document at all.
func (d *dispatcher) result() (*treelite.Model, error) {
	if root, ok := d.stk[0].(*rootHandler); !ok || !root.done {
		return nil, errors.New("xgboost: no model document in input")
	}
	m := d.model
	d.model = nil
	return m, nil
}

func (d *dispatcher) top() handler { return d.stk[len(d.stk)-1] }

// push makes h the innermost handler.
func (d *dispatcher) push(h handler) { d.stk = append(d.stk, h) }

// pop discards the innermost handler. The root handler finalizes in place
// and must not pop itself.
func (d *dispatcher) pop() error {
	if len(d.stk) <= 1 {
		return errors.New("xgboost: handler stack underflow")
	}
	d.stk = d.stk[:len(d.stk)-1]
	return nil
}

// BeginObject implements part of the jtree.Handler interface.
func (d *dispatcher) BeginObject(jtree.Anchor) error { return d.top().BeginObject() }

// EndObject implements part of the jtree.Handler interface.
func (d *dispatcher) EndObject(jtree.Anchor) error { return d.top().EndObject() }

// BeginArray implements part of the jtree.Handler interface.
func (d *dispatcher) BeginArray(jtree.Anchor) error { return d.top().BeginArray() }

// EndArray implements part of the jtree.Handler interface.
func (d *dispatcher) EndArray(jtree.Anchor) error { return d.top().EndArray() }

// BeginMember implements part of the jtree.Handler interface. The decoded
// member key is delivered to the innermost handler, which remembers it for
// the value event that follows.
func (d *dispatcher) BeginMember(loc jtree.Anchor) error {
	key, err := jtree.Unquote(loc.Text())
	if err != nil {
		return fmt.Errorf("xgboost: invalid object key: %w", err)
	}
	return d.top().Key(key)
}

// EndMember implements part of the jtree.Handler interface.
func (d *dispatcher) EndMember(jtree.Anchor) error { return nil }

// Value implements part of the jtree.Handler interface, translating each
// scalar token into the corresponding handler event.
func (d *dispatcher) Value(loc jtree.Anchor) error {
	h := d.top()
	switch tok := loc.Token(); tok {
	case jtree.String:
		s, err := jtree.Unquote(loc.Text())
		if err != nil {
			return fmt.Errorf("xgboost: invalid string value: %w", err)
		}
		return h.Text(s)
	case jtree.Integer:
		text := mem.B(loc.Text())
		if v, err := mem.ParseInt(text, 10, 64); err == nil {
			if v >= 0 {
				return h.Uint(uint64(v))
			}
			return h.Int(v)
		}
		v, err := mem.ParseUint(text, 10, 64)
		if err != nil {
			return fmt.Errorf("xgboost: invalid integer value: %w", err)
		}
		return h.Uint(v)
	case jtree.Number:
		v, err := mem.ParseFloat(mem.B(loc.Text()), 64)
		if err != nil {
			return fmt.Errorf("xgboost: invalid number value: %w", err)
		}
		return h.Double(v)
	case jtree.True, jtree.False:
		return h.Bool(tok == jtree.True)
	case jtree.Null:
		return h.Null()
	default:
		return fmt.Errorf("xgboost: unexpected token %v", tok)
	}
}

// EndOfInput implements part of the jtree.Handler interface.
func (d *dispatcher) EndOfInput(jtree.Anchor) {}
