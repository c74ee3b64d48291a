package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// incrementNode and decrementNode read and write runtime.Stack's
// indexes bucket directly, never the lexical frames `assign` writes
// to — the two counters are independent namespaces by design (§9).
type incrementNode struct{ Name string }

func (n incrementNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cur := currentIndex(rt, n.Name)
	if _, err := io.WriteString(w, value.NewInteger(cur).Render()); err != nil {
		return err
	}
	rt.Stack().SetIndex(n.Name, value.NewInteger(cur+1))
	return nil
}

type decrementNode struct{ Name string }

func (n decrementNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cur := currentIndex(rt, n.Name) - 1
	rt.Stack().SetIndex(n.Name, value.NewInteger(cur))
	_, err := io.WriteString(w, value.NewInteger(cur).Render())
	return err
}

func currentIndex(rt *runtime.Runtime, name string) int64 {
	v, ok := rt.Stack().GetIndex(name)
	if !ok {
		return 0
	}
	sv, ok := v.AsScalar()
	if !ok {
		return 0
	}
	i, _ := sv.ToInteger()
	return i
}

func parseIncrement(raw string, lang *language.Language) (runtime.Renderable, error) {
	name, _, err := parser.ParseIdent(raw)
	if err != nil {
		return nil, err
	}
	return incrementNode{Name: name}, nil
}

func parseDecrement(raw string, lang *language.Language) (runtime.Renderable, error) {
	name, _, err := parser.ParseIdent(raw)
	if err != nil {
		return nil, err
	}
	return decrementNode{Name: name}, nil
}
