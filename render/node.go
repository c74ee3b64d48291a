package render

import (
	"io"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/runtime"
)

// TextNode emits its Content verbatim; it is the Renderable produced for
// every literal span between markup.
type TextNode struct {
	Content string
}

func (n TextNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	_, err := io.WriteString(w, n.Content)
	if err != nil {
		return errors.Wrap("writing template output", err)
	}
	return nil
}

// OutputNode is `{{ expr }}`: evaluate Expr and write its rendered text.
type OutputNode struct {
	Expr runtime.Expr
}

func (n OutputNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cow, err := n.Expr.Eval(rt)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, cow.View().Render())
	if err != nil {
		return errors.Wrap("writing template output", err)
	}
	return nil
}

// Sequence renders a list of child Renderables in order, stopping early
// if an interrupt (`break`/`continue`) becomes pending partway through —
// every block body in this engine is a Sequence, and every enclosing
// Renderable is expected to check Interrupted() after each child per the
// Renderable contract (§9 "Interrupts across scopes").
type Sequence struct {
	Nodes []runtime.Renderable
}

func (s Sequence) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	if err := rt.EnterDepth(); err != nil {
		return err
	}
	defer rt.ExitDepth()
	for _, node := range s.Nodes {
		if err := node.RenderTo(w, rt); err != nil {
			return err
		}
		if rt.Interrupt().Interrupted() {
			break
		}
	}
	return nil
}
