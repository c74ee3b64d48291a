package stdtags

import (
	"bytes"
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// captureNode renders Body to an in-memory buffer and assigns the
// resulting text to Name, rather than writing it to the sink.
type captureNode struct {
	Name string
	Body render.Sequence
}

func (n captureNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	var buf bytes.Buffer
	if err := n.Body.RenderTo(&buf, rt); err != nil {
		return err
	}
	rt.Stack().Set(n.Name, value.NewStringValue(buf.String()))
	return nil
}

func parseCapture(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	name, _, err := parser.ParseIdent(raw)
	if err != nil {
		return nil, err
	}
	return captureNode{Name: name, Body: render.Sequence{Nodes: body.Nodes()}}, nil
}
