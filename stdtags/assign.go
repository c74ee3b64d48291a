// Package stdtags is the reference tag/block plugin set: assign,
// capture, increment/decrement, if/elsif/else/unless, for/break/
// continue, include, and comment. None of this is part of the core —
// every tag here is built entirely on the public runtime/language/
// parser/render surface, the way any third-party plugin would be.
package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/runtime"
)

// assignNode evaluates Expr and writes the result into the topmost
// frame under Name (§4.4 "set writes to the topmost frame").
type assignNode struct {
	Name string
	Expr runtime.Expr
}

func (n assignNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	cow, err := n.Expr.Eval(rt)
	if err != nil {
		return err
	}
	rt.Stack().Set(n.Name, cow.ToValue())
	return nil
}

func parseAssign(raw string, lang *language.Language) (runtime.Renderable, error) {
	name, expr, err := parser.ParseAssignment(raw, lang)
	if err != nil {
		return nil, err
	}
	return assignNode{Name: name, Expr: expr}, nil
}
