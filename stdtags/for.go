package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// forNode drives one `for item in collection [limit:] [offset:]
// [reversed]` loop. Every iteration runs in its own frame (pushed via
// RunInScope) so the loop variable and `forloop` metadata never leak
// past the loop, matching how `capture`/blocks otherwise scope state.
type forNode struct {
	Header parser.ForHeader
	Body   render.Sequence
}

func (n forNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cow, err := n.Header.Collection.Eval(rt)
	if err != nil {
		return err
	}
	items, err := materialize(cow.View())
	if err != nil {
		return err
	}

	offset, err := evalIntArg(rt, n.Header.Offset, 0)
	if err != nil {
		return err
	}
	limit, err := evalIntArg(rt, n.Header.Limit, -1)
	if err != nil {
		return err
	}
	items = applyOffsetLimit(items, offset, limit)
	if n.Header.Reversed {
		items = reverseViews(items)
	}

	for i, item := range items {
		broke, err := n.runIteration(w, rt, i, len(items), item)
		if err != nil {
			return err
		}
		if broke {
			break
		}
	}
	return nil
}

func (n forNode) runIteration(w io.Writer, rt *runtime.Runtime, i, total int, item value.View) (broke bool, err error) {
	err = rt.RunInScope(func(rt *runtime.Runtime) error {
		rt.Stack().Set(n.Header.Var, item.ToValue())
		rt.Stack().Set("forloop", forloopObject(i, total))
		return n.Body.RenderTo(w, rt)
	})
	if err != nil {
		return false, err
	}
	if rt.Interrupt().Interrupted() {
		kind, _ := rt.Interrupt().Pop()
		if kind == runtime.Break {
			return true, nil
		}
	}
	return false, nil
}

func forloopObject(index, length int) value.Value {
	o := value.NewOrderedObject()
	o.Set("index", value.NewInteger(int64(index+1)))
	o.Set("index0", value.NewInteger(int64(index)))
	o.Set("rindex", value.NewInteger(int64(length-index)))
	o.Set("rindex0", value.NewInteger(int64(length-index-1)))
	o.Set("length", value.NewInteger(int64(length)))
	o.Set("first", value.NewBool(index == 0))
	o.Set("last", value.NewBool(index == length-1))
	return value.NewObject(o)
}

func materialize(v value.View) ([]value.View, error) {
	if av, ok := value.AsArrayView(v); ok {
		return av.ValuesArray(), nil
	}
	if ov, ok := value.AsObjectView(v); ok {
		out := make([]value.View, 0, ov.Len())
		for _, k := range ov.Keys() {
			child, _ := ov.GetKey(k)
			out = append(out, value.NewArray([]value.Value{value.NewStringValue(k), child.ToValue()}))
		}
		return out, nil
	}
	return nil, errors.NewRenderError("Cannot iterate non-collection value").
		WithContext("type", v.TypeName())
}

func applyOffsetLimit(items []value.View, offset, limit int64) []value.View {
	n := int64(len(items))
	if offset < 0 {
		offset = 0
	}
	if offset > n {
		offset = n
	}
	items = items[offset:]
	if limit >= 0 && limit < int64(len(items)) {
		items = items[:limit]
	}
	return items
}

func reverseViews(items []value.View) []value.View {
	out := make([]value.View, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return out
}

func evalIntArg(rt *runtime.Runtime, e runtime.Expr, def int64) (int64, error) {
	if e == nil {
		return def, nil
	}
	cow, err := e.Eval(rt)
	if err != nil {
		return 0, err
	}
	sv, ok := value.AsScalar(cow.View())
	if !ok {
		return def, nil
	}
	i, ok := sv.ToInteger()
	if !ok {
		return def, nil
	}
	return i, nil
}

func parseFor(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	header, err := parser.ParseForHeader(raw, lang)
	if err != nil {
		return nil, err
	}
	return forNode{Header: header, Body: render.Sequence{Nodes: body.Nodes()}}, nil
}
