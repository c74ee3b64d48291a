package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// includeNode fetches a partial by name from the runtime's PartialStore
// and renders it in a named frame, so recursive includes can be
// attributed to the partial name that caused them.
type includeNode struct {
	Name runtime.Expr
}

func (n includeNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cow, err := n.Name.Eval(rt)
	if err != nil {
		return err
	}
	sv, ok := value.AsScalar(cow.View())
	if !ok {
		return errors.NewRenderError("Include name must be a string")
	}
	name := sv.Render()

	if err := rt.EnterInclude(); err != nil {
		return err
	}
	defer rt.ExitInclude()

	partial, err := rt.Partials().Get(name)
	if err != nil {
		return err
	}
	return rt.RunInNamedScope(name, func(rt *runtime.Runtime) error {
		return partial.RenderTo(w, rt)
	})
}

func parseInclude(raw string, lang *language.Language) (runtime.Renderable, error) {
	expr, err := parser.ParseInclude(raw, lang)
	if err != nil {
		return nil, err
	}
	return includeNode{Name: expr}, nil
}
