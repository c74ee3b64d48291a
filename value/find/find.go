// Package find implements Liquid's path-resolution algorithm over a
// value.View tree: indexing by a sequence of scalar keys with negative
// array indices and the size/first/last pseudo-properties, per spec §4.2.
package find

import (
	"strconv"

	"github.com/codingersid/legit-liquid/value"
)

// TryFind walks path against root, returning ok=false only when root
// itself is nil. It never errors: a missing intermediate or terminal
// segment simply yields value.Nil wrapped in a Cow, with ok=true.
func TryFind(root value.View, path []value.Scalar) (value.Cow, bool) {
	if root == nil {
		return value.Owned(value.Nil), false
	}
	current := value.Borrowed(root)
	for i, seg := range path {
		next, ok := step(current.View(), seg, i == len(path)-1, path, i)
		if !ok {
			return value.Owned(value.Nil), true
		}
		current = next
	}
	return current, true
}

// Find is TryFind, except it is only ever called with the understanding
// that first-segment resolution failure is reported by the caller
// (Stack.Get) as an "Unknown variable" error — TryFind alone cannot tell
// "root itself doesn't exist" from "an intermediate segment is missing",
// so that distinction is the caller's job, not find's.
func Find(root value.View, path []value.Scalar) value.Cow {
	cow, _ := TryFind(root, path)
	return cow
}

// step resolves a single path segment against the current node. The
// returned bool is true when resolution should continue (even into Nil);
// it is never false in this implementation, since per §4.2 rule 4 a
// missing intermediate segment yields Nil rather than halting — the bool
// return exists so step's signature can be reused if callers need to
// distinguish "structural miss" later without changing the algorithm.
func step(node value.View, seg value.Scalar, isLast bool, path []value.Scalar, idx int) (value.Cow, bool) {
	if node == nil {
		return value.Owned(value.Nil), true
	}

	// size/first/last are terminal pseudo-properties on arrays and
	// strings (§3, §4.2 rule 3). They only apply when this segment is a
	// string key, and only as the terminal segment per the last-segment
	// spec wording ("when the last path segment matches").
	if isLast && seg.IsString() {
		if pv, ok := pseudoProperty(node, seg.StringValue()); ok {
			return value.Owned(pv), true
		}
	}

	if ov, ok := value.AsObjectView(node); ok {
		key := seg.Render()
		child, ok := ov.GetKey(key)
		if !ok {
			return value.Owned(value.Nil), true
		}
		return value.Borrowed(child), true
	}

	if av, ok := value.AsArrayView(node); ok {
		i, ok := seg.ToInteger()
		if !ok {
			return value.Owned(value.Nil), true
		}
		child, ok := av.GetIndex(i)
		if !ok {
			return value.Owned(value.Nil), true
		}
		return value.Borrowed(child), true
	}

	// Indexing into a scalar or Nil always yields Nil (§4.2 rule 4).
	return value.Owned(value.Nil), true
}

func pseudoProperty(node value.View, name string) (value.Value, bool) {
	switch name {
	case "size":
		if av, ok := value.AsArrayView(node); ok {
			return value.NewInteger(int64(av.Len())), true
		}
		if sv, ok := value.AsScalar(node); ok && sv.IsString() {
			return value.NewInteger(int64(len([]rune(sv.StringValue())))), true
		}
		return value.Value{}, false
	case "first":
		if av, ok := value.AsArrayView(node); ok {
			if av.Len() == 0 {
				return value.Nil, true
			}
			v, _ := av.GetIndex(0)
			return v.ToValue(), true
		}
		if sv, ok := value.AsScalar(node); ok && sv.IsString() {
			r := []rune(sv.StringValue())
			if len(r) == 0 {
				return value.NewStringValue(""), true
			}
			return value.NewStringValue(string(r[0])), true
		}
		return value.Value{}, false
	case "last":
		if av, ok := value.AsArrayView(node); ok {
			if av.Len() == 0 {
				return value.Nil, true
			}
			v, _ := av.GetIndex(-1)
			return v.ToValue(), true
		}
		if sv, ok := value.AsScalar(node); ok && sv.IsString() {
			r := []rune(sv.StringValue())
			if len(r) == 0 {
				return value.NewStringValue(""), true
			}
			return value.NewStringValue(string(r[len(r)-1])), true
		}
		return value.Value{}, false
	}
	return value.Value{}, false
}

// FirstSegmentKey renders the first path segment to a plain string, used
// by the Stack to build the "Unknown variable" error message.
func FirstSegmentKey(path []value.Scalar) string {
	if len(path) == 0 {
		return "nil"
	}
	return path[0].Render()
}

// ParseIndexLiteral is a small helper for callers constructing a path
// segment from a raw bracket-index token (`arr[-1]`, `arr["key"]`,
// `arr[0]`) once the parser has already classified it as numeric.
func ParseIndexLiteral(s string) (value.Scalar, bool) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return value.Scalar{}, false
	}
	return value.NewIntegerScalar(i), true
}
