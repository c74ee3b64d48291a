package stdfilters

import (
	"sort"
	"strings"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// items narrows input down to a []value.View, in iteration order, for
// the array-shaped filters below. A non-array input yields a single
// element slice so e.g. `x | first` on a scalar behaves like a
// one-item array, matching Shopify's permissive filter semantics.
func items(input value.Value) []value.View {
	if av, ok := value.AsArrayView(input); ok {
		return av.ValuesArray()
	}
	return []value.View{input}
}

type firstFilter struct{}

func (firstFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	its := items(input)
	if len(its) == 0 {
		return value.Nil, nil
	}
	return its[0].ToValue(), nil
}

func parseFirst(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("first", args); err != nil {
		return nil, err
	}
	return firstFilter{}, nil
}

type lastFilter struct{}

func (lastFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	its := items(input)
	if len(its) == 0 {
		return value.Nil, nil
	}
	return its[len(its)-1].ToValue(), nil
}

func parseLast(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("last", args); err != nil {
		return nil, err
	}
	return lastFilter{}, nil
}

type reverseFilter struct{}

func (reverseFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	its := items(input)
	out := make([]value.Value, len(its))
	for i, v := range its {
		out[len(its)-1-i] = v.ToValue()
	}
	return value.NewArray(out), nil
}

func parseReverse(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("reverse", args); err != nil {
		return nil, err
	}
	return reverseFilter{}, nil
}

// sortFilter orders elements by value.Compare, treating Incomparable
// pairs as equal (§4.1) rather than raising an error. In a mixed-type
// array the comparable elements are not guaranteed to end up in order
// relative to each other: an incomparable element between them can stop
// them from moving past it (e.g. [3, "a", 1] is returned unchanged).
type sortFilter struct{}

func (sortFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	its := items(input)
	out := make([]value.Value, len(its))
	for i, v := range its {
		out[i] = v.ToValue()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return value.Compare(out[i], out[j]) == value.Less
	})
	return value.NewArray(out), nil
}

func parseSort(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("sort", args); err != nil {
		return nil, err
	}
	return sortFilter{}, nil
}

type uniqFilter struct{}

func (uniqFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	its := items(input)
	var out []value.Value
	for _, v := range its {
		val := v.ToValue()
		dup := false
		for _, seen := range out {
			if value.Equal(seen, val) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, val)
		}
	}
	return value.NewArray(out), nil
}

func parseUniq(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("uniq", args); err != nil {
		return nil, err
	}
	return uniqFilter{}, nil
}

// joinFilter concatenates array elements with a separator, defaulting
// to a single space when no argument is given.
type joinFilter struct{ Sep runtime.Expr }

func (f joinFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	sep := " "
	if f.Sep != nil {
		cow, err := f.Sep.Eval(rt)
		if err != nil {
			return value.Nil, err
		}
		sep = cow.View().Render()
	}
	its := items(input)
	parts := make([]string, len(its))
	for i, v := range its {
		parts[i] = v.Render()
	}
	return value.NewStringValue(strings.Join(parts, sep)), nil
}

func parseJoin(args language.FilterArgs) (language.Filter, error) {
	if len(args.Keyword) != 0 || len(args.Positional) > 1 {
		return nil, errors.NewParseError("join takes at most one positional argument").WithContextString("filter", "join")
	}
	var sep runtime.Expr
	if len(args.Positional) == 1 {
		sep = args.Positional[0]
	}
	return joinFilter{Sep: sep}, nil
}

// mapFilter projects an array of objects down to one property per
// element, mirroring the teacher's pluck helper.
type mapFilter struct{ Key runtime.Expr }

func (f mapFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	cow, err := f.Key.Eval(rt)
	if err != nil {
		return value.Nil, err
	}
	sv, ok := value.AsScalar(cow.View())
	if !ok || !sv.IsString() {
		return value.Nil, errors.NewRenderError("map requires a string property name")
	}
	key := sv.StringValue()
	its := items(input)
	out := make([]value.Value, len(its))
	for i, v := range its {
		ov, ok := value.AsObjectView(v)
		if !ok {
			out[i] = value.Nil
			continue
		}
		child, ok := ov.GetKey(key)
		if !ok {
			out[i] = value.Nil
			continue
		}
		out[i] = child.ToValue()
	}
	return value.NewArray(out), nil
}

func parseMap(args language.FilterArgs) (language.Filter, error) {
	arg, err := requireOneArg("map", args)
	if err != nil {
		return nil, err
	}
	return mapFilter{Key: arg}, nil
}
