package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
)

type breakNode struct{}

func (breakNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	rt.Interrupt().Set(runtime.Break)
	return nil
}

type continueNode struct{}

func (continueNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	rt.Interrupt().Set(runtime.Continue)
	return nil
}

func parseBreak(raw string, lang *language.Language) (runtime.Renderable, error) {
	return breakNode{}, nil
}

func parseContinue(raw string, lang *language.Language) (runtime.Renderable, error) {
	return continueNode{}, nil
}
