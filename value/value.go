// Package value implements Liquid's dynamically-typed data tree: a tagged
// sum of Nil, Scalar, Array and Object, a narrow capability interface
// (View) that lets embedder-defined types participate as render data
// without being copied into the core representation, and the
// truthiness/equality/ordering rules the rest of the engine relies on.
package value

import "time"

// Kind tags which branch of Value is live.
type Kind int

const (
	KindNil Kind = iota
	KindScalar
	KindArray
	KindObject
	KindState
)

// State is one of the four state queries §3 defines: Truthy, DefaultValue,
// Empty, Blank. It is itself a Value variant so that `empty`/`blank`
// template literals can be compared against ordinary values.
type State int

const (
	StateTruthy State = iota
	StateDefaultValue
	StateEmpty
	StateBlank
)

func (s State) String() string {
	switch s {
	case StateTruthy:
		return "truthy"
	case StateDefaultValue:
		return "default"
	case StateEmpty:
		return "empty"
	case StateBlank:
		return "blank"
	}
	return "state"
}

// Value is the owned, tree-shaped representation of Liquid data. It is a
// closed union: Nil, Scalar, Array, Object, or State.
type Value struct {
	kind   Kind
	scalar Scalar
	array  Array
	object *Object
	state  State
}

// Nil is the singular absent value. Missing path segments resolve to it,
// never to an error.
var Nil = Value{kind: KindNil}

// NewScalar wraps a Scalar as a Value.
func NewScalar(s Scalar) Value { return Value{kind: KindScalar, scalar: s} }

// NewBool, NewInteger, NewFloat, NewStringValue and NewDateValue are
// convenience constructors over NewScalar(New*(...)).
func NewBool(b bool) Value             { return NewScalar(Scalar{kind: ScalarBool, b: b}) }
func NewInteger(i int64) Value         { return NewScalar(Scalar{kind: ScalarInteger, i: i}) }
func NewFloat(f float64) Value         { return NewScalar(Scalar{kind: ScalarFloat, f: f}) }
func NewStringValue(s string) Value    { return NewScalar(Scalar{kind: ScalarString, s: s}) }
func NewDateValue(d time.Time) Value   { return NewScalar(NewDate(d)) }

// NewArray wraps a slice of Values as an Array Value.
func NewArray(items []Value) Value { return Value{kind: KindArray, array: Array(items)} }

// NewObject wraps an *Object as an Object Value.
func NewObject(o *Object) Value { return Value{kind: KindObject, object: o} }

// NewState wraps a state-query sentinel as a Value.
func NewState(s State) Value { return Value{kind: KindState, state: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool    { return v.kind == KindNil }
func (v Value) IsScalar() bool { return v.kind == KindScalar }
func (v Value) IsArray() bool  { return v.kind == KindArray }
func (v Value) IsObject() bool { return v.kind == KindObject }
func (v Value) IsState() bool  { return v.kind == KindState }

// Array is a sequence of Values, indexable by Liquid's negative-index
// rules (see value/find for path resolution; this type only stores the
// sequence).
type Array []Value

// Get applies Liquid's index coercion: negative indices count from the
// end, out-of-range yields (Nil, false) rather than panicking.
func (a Array) Get(i int64) (Value, bool) {
	n := int64(len(a))
	if n == 0 {
		return Nil, false
	}
	if i < 0 {
		i = n + i
	}
	if i < 0 || i >= n {
		return Nil, false
	}
	return a[i], true
}

// View implementations ------------------------------------------------

// TypeName implements View.
func (v Value) TypeName() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindScalar:
		return v.scalar.TypeName()
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindState:
		return "state"
	}
	return "nil"
}

// Render implements View.
func (v Value) Render() string {
	switch v.kind {
	case KindNil:
		return ""
	case KindScalar:
		return v.scalar.Render()
	case KindArray:
		var b []byte
		for _, item := range v.array {
			b = append(b, item.Render()...)
		}
		return string(b)
	case KindObject:
		return v.object.Render()
	case KindState:
		return ""
	}
	return ""
}

// Source implements View.
func (v Value) Source() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindScalar:
		return v.scalar.Source()
	case KindArray:
		s := "["
		for i, item := range v.array {
			if i > 0 {
				s += ", "
			}
			s += item.Source()
		}
		return s + "]"
	case KindObject:
		return v.object.Source()
	case KindState:
		return v.state.String()
	}
	return "nil"
}

// QueryState implements View, per §3's state-query table.
func (v Value) QueryState(s State) bool {
	switch s {
	case StateTruthy:
		return v.IsTruthy()
	case StateEmpty:
		return v.IsEmpty()
	case StateBlank:
		return v.IsBlank()
	case StateDefaultValue:
		return v.IsDefaultValue()
	}
	return false
}

// IsTruthy implements §3: only bool-false and Nil are falsy.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindScalar:
		return v.scalar.IsTruthy()
	}
	return true
}

// IsEmpty implements §3's Empty state query.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindScalar:
		return v.scalar.IsEmpty()
	case KindArray:
		return len(v.array) == 0
	case KindObject:
		return v.object.Len() == 0
	}
	return false
}

// IsBlank implements §3's Blank state query.
func (v Value) IsBlank() bool {
	switch v.kind {
	case KindNil:
		return true
	case KindScalar:
		return v.scalar.IsBlank()
	case KindArray:
		return len(v.array) == 0
	case KindObject:
		return v.object.Len() == 0
	}
	return false
}

// IsDefaultValue implements §3's DefaultValue state query.
func (v Value) IsDefaultValue() bool {
	switch v.kind {
	case KindNil:
		return true
	case KindScalar:
		return v.scalar.IsDefaultValue()
	case KindArray:
		return len(v.array) == 0
	case KindObject:
		return v.object.Len() == 0
	}
	return false
}

// ToKStr renders the value to its display string. Named to mirror the
// Rust `to_kstr`; Go has no short-string type worth introducing (see
// DESIGN.md), so this is just Render().
func (v Value) ToKStr() string { return v.Render() }

// ToValue returns an owned clone. Value is already immutable/owned, so
// this is the identity — it exists to satisfy the View contract for
// foreign view types that must materialize into the core representation.
func (v Value) ToValue() Value { return v }

// StateValue narrows to the State sentinel, if this Value holds one.
func (v Value) StateValue() (State, bool) {
	if v.kind == KindState {
		return v.state, true
	}
	return 0, false
}

// AsScalar narrows to a Scalar, if this Value holds one.
func (v Value) AsScalar() (Scalar, bool) {
	if v.kind == KindScalar {
		return v.scalar, true
	}
	return Scalar{}, false
}

// AsArray narrows to an Array, if this Value holds one.
func (v Value) AsArray() (Array, bool) {
	if v.kind == KindArray {
		return v.array, true
	}
	return nil, false
}

// AsObject narrows to an *Object, if this Value holds one.
func (v Value) AsObject() (*Object, bool) {
	if v.kind == KindObject {
		return v.object, true
	}
	return nil, false
}
