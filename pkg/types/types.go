// Package types defines the single self-referential value type shared by the
// reader, evaluator and printer: every piece of data the interpreter touches,
// whether read from source or produced at runtime, is a types.Value.
package types

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Value is implemented by every form the interpreter can read, evaluate or
// print. There is no separate AST type: a List read from source is the same
// List a function body evaluates.
type Value interface {
	String() string
}

// Nil is the single nil value. It has no fields, so the zero value is usable
// directly as Nil{}.
type Nil struct{}

func (Nil) String() string { return "nil" }

// BooleanValue is true or false.
type BooleanValue bool

func (b BooleanValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is the interpreter's only numeric type.
type NumberValue float64

func (n NumberValue) String() string {
	f := float64(n)
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// SymbolValue names a binding.
type SymbolValue string

func (s SymbolValue) String() string { return string(s) }

// KeywordValue is a self-evaluating token such as :foo. It prints with its
// leading colon.
type KeywordValue string

func (k KeywordValue) String() string { return ":" + string(k) }

// StringValue holds a Lisp string. String() renders it in readable
// (re-readable) form; DisplayString renders it for str/println's human-facing
// mode.
type StringValue string

func (s StringValue) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// DisplayString is the un-escaped, unquoted rendering used by str, println,
// and PrStr with readable=false.
func (s StringValue) DisplayString() string { return string(s) }

// ListValue is an immutable sequence printed with parentheses.
type ListValue struct {
	Items []Value
}

func NewList(items ...Value) *ListValue { return &ListValue{Items: items} }

func (l *ListValue) String() string { return "(" + joinValues(l.Items) + ")" }

// VectorValue is an immutable sequence printed with square brackets.
type VectorValue struct {
	Items []Value
}

func NewVector(items ...Value) *VectorValue { return &VectorValue{Items: items} }

func (v *VectorValue) String() string { return "[" + joinValues(v.Items) + "]" }

func joinValues(items []Value) string {
	parts := make([]string, len(items))
	for i, v := range items {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// MapValue is an immutable map whose keys are restricted to strings and
// keywords. Keys is kept alongside the map so that printing and iteration
// are deterministic in insertion order.
type MapValue struct {
	Keys []Value
	Vals map[string]Value
}

func NewMap() *MapValue {
	return &MapValue{Vals: make(map[string]Value)}
}

// mapKey turns a String/Keyword value into the string used to index Vals.
// The two prefixes keep "foo" and :foo from colliding.
func mapKey(k Value) (string, error) {
	switch k := k.(type) {
	case StringValue:
		return "s:" + string(k), nil
	case KeywordValue:
		return "k:" + string(k), nil
	default:
		return "", fmt.Errorf("map keys must be strings or keywords, got %s", k.String())
	}
}

// Assoc returns a new map with the given key/value pairs merged in, leaving
// the receiver untouched.
func (m *MapValue) Assoc(pairs ...Value) (*MapValue, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("assoc requires an even number of key/value arguments")
	}
	out := &MapValue{
		Keys: append([]Value(nil), m.Keys...),
		Vals: make(map[string]Value, len(m.Vals)+len(pairs)/2),
	}
	for k, v := range m.Vals {
		out.Vals[k] = v
	}
	for i := 0; i < len(pairs); i += 2 {
		key, err := mapKey(pairs[i])
		if err != nil {
			return nil, err
		}
		if _, exists := out.Vals[key]; !exists {
			out.Keys = append(out.Keys, pairs[i])
		}
		out.Vals[key] = pairs[i+1]
	}
	return out, nil
}

// Dissoc returns a new map with the given keys removed.
func (m *MapValue) Dissoc(keys ...Value) (*MapValue, error) {
	remove := make(map[string]bool, len(keys))
	for _, k := range keys {
		key, err := mapKey(k)
		if err != nil {
			return nil, err
		}
		remove[key] = true
	}
	out := &MapValue{Vals: make(map[string]Value, len(m.Vals))}
	for _, k := range m.Keys {
		key, _ := mapKey(k)
		if remove[key] {
			continue
		}
		out.Keys = append(out.Keys, k)
		out.Vals[key] = m.Vals[key]
	}
	return out, nil
}

// Get looks up a key, reporting whether it was present.
func (m *MapValue) Get(k Value) (Value, bool) {
	key, err := mapKey(k)
	if err != nil {
		return nil, false
	}
	v, ok := m.Vals[key]
	return v, ok
}

func (m *MapValue) String() string {
	parts := make([]string, 0, len(m.Keys)*2)
	for _, k := range m.Keys {
		key, _ := mapKey(k)
		parts = append(parts, k.String(), m.Vals[key].String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// SortedKeys returns the map's keys in a stable, deterministic order
// independent of insertion order, for core functions like keys/vals.
func (m *MapValue) SortedKeys() []Value {
	keys := append([]Value(nil), m.Keys...)
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// PrimitiveValue wraps a Go function exposed as a Lisp built-in.
type PrimitiveValue struct {
	Name string
	Fn   func(args []Value) (Value, error)
}

func (p *PrimitiveValue) String() string { return "#<" + p.Name + ">" }

// AtomValue is a mutable reference cell.
type AtomValue struct {
	val Value
}

func NewAtom(v Value) *AtomValue { return &AtomValue{val: v} }

func (a *AtomValue) Deref() Value { return a.val }

func (a *AtomValue) Reset(v Value) Value {
	a.val = v
	return v
}

func (a *AtomValue) String() string { return "(atom " + a.val.String() + ")" }

// Equal implements spec equality: numbers compare by value, lists and
// vectors compare element-wise and interchangeably (a list and a vector with
// the same elements in the same order are equal), maps compare by key/value
// pairs, everything else compares by identity or scalar equality.
func Equal(a, b Value) bool {
	aSeq, aIsSeq := asSequence(a)
	bSeq, bIsSeq := asSequence(b)
	if aIsSeq || bIsSeq {
		if aIsSeq != bIsSeq {
			return false
		}
		if len(aSeq) != len(bSeq) {
			return false
		}
		for i := range aSeq {
			if !Equal(aSeq[i], bSeq[i]) {
				return false
			}
		}
		return true
	}

	aMap, aIsMap := a.(*MapValue)
	bMap, bIsMap := b.(*MapValue)
	if aIsMap || bIsMap {
		if aIsMap != bIsMap {
			return false
		}
		if len(aMap.Vals) != len(bMap.Vals) {
			return false
		}
		for k, v := range aMap.Vals {
			bv, ok := bMap.Vals[k]
			if !ok || !Equal(v, bv) {
				return false
			}
		}
		return true
	}

	switch av := a.(type) {
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	case SymbolValue:
		bv, ok := b.(SymbolValue)
		return ok && av == bv
	case KeywordValue:
		bv, ok := b.(KeywordValue)
		return ok && av == bv
	case BooleanValue:
		bv, ok := b.(BooleanValue)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	default:
		return a == b
	}
}

func asSequence(v Value) ([]Value, bool) {
	switch v := v.(type) {
	case *ListValue:
		return v.Items, true
	case *VectorValue:
		return v.Items, true
	default:
		return nil, false
	}
}

// IsTruthy reports this language's truthiness rule: everything is truthy
// except nil and false.
func IsTruthy(v Value) bool {
	switch v := v.(type) {
	case Nil:
		return false
	case BooleanValue:
		return bool(v)
	default:
		return true
	}
}
