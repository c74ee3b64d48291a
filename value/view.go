package value

// View is the polymorphic access capability every value-like entity must
// implement, per §4.1. Embedder-defined structs can implement View
// directly to participate as render data without being copied into the
// core Value representation.
type View interface {
	// Render is the user-facing text form.
	Render() string
	// Source is a Liquid-literal form that round-trips for scalars.
	Source() string
	// TypeName is one of "nil"|"bool"|"integer"|"float"|"string"|
	// "array"|"object"|"date"|"state".
	TypeName() string
	// QueryState answers one of the §3 state queries.
	QueryState(State) bool
	// IsTruthy, IsEmpty, IsBlank, IsDefaultValue are convenience
	// shorthands for the four QueryState cases.
	IsTruthy() bool
	IsEmpty() bool
	IsBlank() bool
	IsDefaultValue() bool
	// ToKStr is the display string, identical to Render().
	ToKStr() string
	// ToValue produces an owned clone in the core representation.
	ToValue() Value
}

// ScalarView narrows a View down to its Scalar, when it has one.
type ScalarView interface {
	View
	AsScalarValue() Scalar
}

// ArrayView narrows a View down to indexed access over child Views.
type ArrayView interface {
	View
	Len() int
	GetIndex(i int64) (View, bool)
	ValuesArray() []View
}

// ObjectView narrows a View down to keyed access over child Views,
// preserving insertion order.
type ObjectView interface {
	View
	Len() int
	GetKey(key string) (View, bool)
	ContainsKey(key string) bool
	Keys() []string
}

// AsScalar narrows a generic View to ScalarView via a type assertion,
// falling back to wrapping Value's own AsScalar for the core type.
func AsScalar(v View) (Scalar, bool) {
	if val, ok := v.(Value); ok {
		return val.AsScalar()
	}
	if sv, ok := v.(ScalarView); ok {
		return sv.AsScalarValue(), true
	}
	return Scalar{}, false
}

// AsArrayView narrows a generic View to ArrayView. Value only narrows
// successfully when its live kind is actually KindArray — structural
// interface satisfaction alone isn't enough, since Value implements the
// ArrayView method set for every kind.
func AsArrayView(v View) (ArrayView, bool) {
	if val, ok := v.(Value); ok {
		if val.kind != KindArray {
			return nil, false
		}
		return val, true
	}
	av, ok := v.(ArrayView)
	return av, ok
}

// AsObjectView narrows a generic View to ObjectView, with the same
// kind-gated caveat as AsArrayView.
func AsObjectView(v View) (ObjectView, bool) {
	if val, ok := v.(Value); ok {
		if val.kind != KindObject {
			return nil, false
		}
		return val, true
	}
	ov, ok := v.(ObjectView)
	return ov, ok
}

// AsScalarValue implements ScalarView for Value.
func (v Value) AsScalarValue() Scalar {
	s, _ := v.AsScalar()
	return s
}

// Len implements ArrayView/ObjectView for Value, returning 0 for
// non-container kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.array)
	case KindObject:
		return v.object.Len()
	}
	return 0
}

// GetIndex implements ArrayView for Value.
func (v Value) GetIndex(i int64) (View, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	item, ok := v.array.Get(i)
	if !ok {
		return nil, false
	}
	return item, true
}

// ValuesArray implements ArrayView for Value.
func (v Value) ValuesArray() []View {
	if v.kind != KindArray {
		return nil
	}
	out := make([]View, len(v.array))
	for i, item := range v.array {
		out[i] = item
	}
	return out
}

// GetKey implements ObjectView for Value.
func (v Value) GetKey(key string) (View, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	val, ok := v.object.Get(key)
	if !ok {
		return nil, false
	}
	return val, true
}

// ContainsKey implements ObjectView for Value.
func (v Value) ContainsKey(key string) bool {
	if v.kind != KindObject {
		return false
	}
	return v.object.Contains(key)
}

// Keys implements ObjectView for Value.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.object.Keys()
}

var (
	_ View       = Value{}
	_ ScalarView = Value{}
	_ ArrayView  = Value{}
	_ ObjectView = Value{}
)
