package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
)

// commentNode discards its body entirely at render time. The body is
// still parsed like any other block body, so it must be valid template
// syntax: an unknown tag or a malformed expression inside
// `{% comment %}` is a parse error. Markup that would only fail at render
// time (an unknown variable, say) is never evaluated.
type commentNode struct{}

func (commentNode) RenderTo(w io.Writer, rt *runtime.Runtime) error { return nil }

func parseComment(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	return commentNode{}, nil
}
