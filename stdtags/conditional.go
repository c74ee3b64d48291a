package stdtags

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// branch is one condition/body pair of an if/unless chain. Cond == nil
// marks the unconditional `else` branch.
type branch struct {
	Cond runtime.Expr
	Body render.Sequence
}

type conditionalNode struct {
	Branches []branch
}

func (n conditionalNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	for _, b := range n.Branches {
		if b.Cond != nil {
			cow, err := b.Cond.Eval(rt)
			if err != nil {
				return err
			}
			if !cow.View().IsTruthy() {
				continue
			}
		}
		return b.Body.RenderTo(w, rt)
	}
	return nil
}

// parseIf builds the `if`/`elsif`/`else` chain: the opening segment and
// every `elsif` segment carry a condition to parse; `else` is
// unconditional and must be the last segment.
func parseIf(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	return buildConditional(body, lang, false)
}

// parseUnless mirrors parseIf but inverts the opening segment's
// condition; any `else` segment (still allowed) is unaffected.
func parseUnless(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	return buildConditional(body, lang, true)
}

func buildConditional(body language.Body, lang *language.Language, invertFirst bool) (runtime.Renderable, error) {
	var branches []branch
	for i, seg := range body.Segments {
		if seg.Delimiter == "else" {
			branches = append(branches, branch{Cond: nil, Body: render.Sequence{Nodes: seg.Nodes}})
			continue
		}
		cond, err := parser.ParseExpression(seg.Args, lang)
		if err != nil {
			return nil, err
		}
		if i == 0 && invertFirst {
			cond = negate{cond}
		}
		branches = append(branches, branch{Cond: cond, Body: render.Sequence{Nodes: seg.Nodes}})
	}
	return conditionalNode{Branches: branches}, nil
}

// negate wraps an expression and reports the opposite of its truthiness,
// used to implement `unless` in terms of the same branch-chain structure
// as `if` without duplicating conditionalNode.
type negate struct {
	Inner runtime.Expr
}

func (n negate) Eval(rt *runtime.Runtime) (value.Cow, error) {
	cow, err := n.Inner.Eval(rt)
	if err != nil {
		return value.Cow{}, err
	}
	return value.Owned(value.NewBool(!cow.View().IsTruthy())), nil
}
