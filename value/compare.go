package value

// Ordering is the tri-state (plus incomparable) result of Compare.
// Equivalent is the "neither less nor greater" outcome; it is not named
// Equal because that name belongs to the equality function below.
type Ordering int

const (
	Less Ordering = iota
	Equivalent
	Greater
	Incomparable
)

// Equal is structural, cross-representation equality: a borrowed scalar
// compares equal to an owned Value wrapping the same scalar, and NaN is
// never equal to itself (including to another NaN), matching filter-level
// float semantics.
func Equal(a, b View) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, aok := viewAsValue(a)
	bv, bok := viewAsValue(b)
	if !aok || !bok {
		return a.Render() == b.Render() && a.TypeName() == b.TypeName()
	}
	return valueEqual(av, bv)
}

func viewAsValue(v View) (Value, bool) {
	if val, ok := v.(Value); ok {
		return val, true
	}
	return v.ToValue(), true
}

func valueEqual(a, b Value) bool {
	if a.kind == KindNil || b.kind == KindNil {
		return a.kind == KindNil && b.kind == KindNil
	}
	if a.kind != b.kind {
		// Scalars never compare equal cross-kind with arrays/objects.
		return false
	}
	switch a.kind {
	case KindScalar:
		return scalarEqual(a.scalar, b.scalar)
	case KindArray:
		if len(a.array) != len(b.array) {
			return false
		}
		for i := range a.array {
			if !valueEqual(a.array[i], b.array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.object.Len() != b.object.Len() {
			return false
		}
		equal := true
		a.object.Each(func(k string, v Value) {
			bv, ok := b.object.Get(k)
			if !ok || !valueEqual(v, bv) {
				equal = false
			}
		})
		return equal
	case KindState:
		return a.state == b.state
	}
	return true
}

func scalarEqual(a, b Scalar) bool {
	af, aIsNum := scalarAsFloat(a)
	bf, bIsNum := scalarAsFloat(b)
	if aIsNum && bIsNum {
		if af != af || bf != bf { // either is NaN
			return false
		}
		return af == bf
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case ScalarBool:
		return a.b == b.b
	case ScalarString:
		return a.s == b.s
	case ScalarDate:
		return a.d.Equal(b.d)
	}
	return false
}

func scalarAsFloat(s Scalar) (float64, bool) {
	switch s.kind {
	case ScalarInteger:
		return float64(s.i), true
	case ScalarFloat:
		return s.f, true
	}
	return 0, false
}

// Compare orders two comparable scalars: numeric-vs-numeric with
// integer-to-float coercion, string-vs-string lexicographically. Mixed
// pairs, and any pair involving an array/object/nil, are Incomparable —
// callers that sort must treat Incomparable as Equivalent per §4.1.
func Compare(a, b View) Ordering {
	av, _ := viewAsValue(a)
	bv, _ := viewAsValue(b)
	if av.kind != KindScalar || bv.kind != KindScalar {
		return Incomparable
	}
	as, bs := av.scalar, bv.scalar
	if af, aok := scalarAsFloat(as); aok {
		if bf, bok := scalarAsFloat(bs); bok {
			switch {
			case af != af || bf != bf:
				return Incomparable
			case af < bf:
				return Less
			case af > bf:
				return Greater
			default:
				return Equivalent
			}
		}
		return Incomparable
	}
	if as.kind == ScalarString && bs.kind == ScalarString {
		switch {
		case as.s < bs.s:
			return Less
		case as.s > bs.s:
			return Greater
		default:
			return Equivalent
		}
	}
	return Incomparable
}
