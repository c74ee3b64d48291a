// Package render implements the AST layer: Renderable nodes that consume
// a runtime.Runtime and write bytes to a sink, plus the expression tree
// (literals, variable paths, comparisons, filter chains) those nodes
// evaluate. Block nodes own their child nodes directly — there is no
// separate "compile" step between parse and render (§4 AST/Renderable).
package render

import (
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// Literal wraps a constant value.Value: number, string, bool, nil, or one
// of the empty/blank state sentinels.
type Literal struct {
	Value value.Value
}

func (l Literal) Eval(rt *runtime.Runtime) (value.Cow, error) {
	return value.Owned(l.Value), nil
}

// PathSegment is one step of a variable path: either a literal scalar key
// (`.ident`, or a bare numeric/string bracket index) or a nested
// expression for a computed `[expr]` index.
type PathSegment struct {
	Literal   value.Scalar
	IsLiteral bool
	Computed  runtime.Expr
}

// Path is a variable path: an identifier followed by `.ident` or
// `[expr]` segments, resolved against the Runtime's Stack at render
// time (§4.3 "Variable path").
type Path struct {
	Segments []PathSegment
}

func (p Path) Eval(rt *runtime.Runtime) (value.Cow, error) {
	scalars := make([]value.Scalar, len(p.Segments))
	for i, seg := range p.Segments {
		if seg.IsLiteral {
			scalars[i] = seg.Literal
			continue
		}
		cow, err := seg.Computed.Eval(rt)
		if err != nil {
			return value.Cow{}, err
		}
		sv, ok := value.AsScalar(cow.View())
		if !ok {
			scalars[i] = value.NewString("")
		} else {
			scalars[i] = sv
		}
	}
	return rt.Stack().Get(scalars)
}

// CompareOp is one of the comparison operators §4.3 grants equal
// precedence.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpContains
)

// Comparison evaluates Left <op> Right. When either side is a state
// sentinel (`empty`, `blank`), the non-state side is queried for that
// state rather than compared structurally, so `x == empty` means
// "x.QueryState(Empty)".
type Comparison struct {
	Left, Right runtime.Expr
	Op          CompareOp
}

func (c Comparison) Eval(rt *runtime.Runtime) (value.Cow, error) {
	lv, err := c.Left.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}
	rv, err := c.Right.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}

	if c.Op == OpEq || c.Op == OpNe {
		if st, isState := stateOf(rv.View()); isState {
			return boolCow(applyNe(c.Op, lv.View().QueryState(st))), nil
		}
		if st, isState := stateOf(lv.View()); isState {
			return boolCow(applyNe(c.Op, rv.View().QueryState(st))), nil
		}
	}

	switch c.Op {
	case OpEq:
		return boolCow(value.Equal(lv.View(), rv.View())), nil
	case OpNe:
		return boolCow(!value.Equal(lv.View(), rv.View())), nil
	case OpContains:
		return boolCow(containsOp(lv.View(), rv.View())), nil
	}

	ord := value.Compare(lv.View(), rv.View())
	if ord == value.Incomparable {
		return boolCow(false), nil
	}
	switch c.Op {
	case OpLt:
		return boolCow(ord == value.Less), nil
	case OpLe:
		return boolCow(ord == value.Less || ord == value.Equivalent), nil
	case OpGt:
		return boolCow(ord == value.Greater), nil
	case OpGe:
		return boolCow(ord == value.Greater || ord == value.Equivalent), nil
	}
	return boolCow(false), nil
}

func applyNe(op CompareOp, v bool) bool {
	if op == OpNe {
		return !v
	}
	return v
}

func stateOf(v value.View) (value.State, bool) {
	val, ok := v.(value.Value)
	if !ok {
		return 0, false
	}
	return val.StateValue()
}

func boolCow(b bool) value.Cow { return value.Owned(value.NewBool(b)) }

func containsOp(container, needle value.View) bool {
	if sv, ok := value.AsScalar(container); ok && sv.IsString() {
		if nv, ok := value.AsScalar(needle); ok {
			return stringContains(sv.StringValue(), nv.Render())
		}
	}
	if av, ok := value.AsArrayView(container); ok {
		for _, item := range av.ValuesArray() {
			if value.Equal(item, needle) {
				return true
			}
		}
	}
	return false
}

func stringContains(haystack, needle string) bool {
	return indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	n, m := len(haystack), len(needle)
	if m == 0 {
		return 0
	}
	for i := 0; i+m <= n; i++ {
		if haystack[i:i+m] == needle {
			return i
		}
	}
	return -1
}

// LogicalOp is `and` or `or`.
type LogicalOp int

const (
	OpAnd LogicalOp = iota
	OpOr
)

// Logical evaluates Left <op> Right with short-circuit semantics: `and`
// binds tighter than `or` per §4.3, enforced by how the parser nests
// these nodes rather than by anything in Eval itself.
type Logical struct {
	Left, Right runtime.Expr
	Op          LogicalOp
}

func (l Logical) Eval(rt *runtime.Runtime) (value.Cow, error) {
	lv, err := l.Left.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}
	lt := lv.View().IsTruthy()
	if l.Op == OpAnd && !lt {
		return boolCow(false), nil
	}
	if l.Op == OpOr && lt {
		return boolCow(true), nil
	}
	rv, err := l.Right.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}
	return boolCow(rv.View().IsTruthy()), nil
}

// FilterCall is one `| name: args` pipeline stage, already resolved to a
// bound language.Filter at parse time.
type FilterCall struct {
	Name   string
	Filter language.Filter
}

// FilterChain evaluates Base, then threads the result through each
// Filter in sequence (§4.3 "Filter chain").
type FilterChain struct {
	Base    runtime.Expr
	Filters []FilterCall
}

func (f FilterChain) Eval(rt *runtime.Runtime) (value.Cow, error) {
	cow, err := f.Base.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}
	current := cow.ToValue()
	for _, call := range f.Filters {
		result, err := call.Filter.Evaluate(current, rt)
		if err != nil {
			return value.Cow{}, err
		}
		current = result
	}
	return value.Owned(current), nil
}
