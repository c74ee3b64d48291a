package stdfilters

import (
	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

type arithFilter struct {
	Operand runtime.Expr
	Negate  bool // true for minus: subtract instead of add
}

func (f arithFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	cow, err := f.Operand.Eval(rt)
	if err != nil {
		return value.Nil, err
	}
	lsv, ok := value.AsScalar(input)
	if !ok {
		return value.Nil, errors.NewRenderError("plus/minus requires a numeric input")
	}
	rsv, ok := value.AsScalar(cow.View())
	if !ok {
		return value.Nil, errors.NewRenderError("plus/minus requires a numeric argument")
	}

	if lsv.IsInteger() && rsv.IsInteger() {
		r := rsv.Integer()
		if f.Negate {
			r = -r
		}
		return value.NewInteger(lsv.Integer() + r), nil
	}
	lf, ok1 := lsv.ToFloat()
	rf, ok2 := rsv.ToFloat()
	if !ok1 || !ok2 {
		return value.Nil, errors.NewRenderError("plus/minus requires numeric operands")
	}
	if f.Negate {
		rf = -rf
	}
	return value.NewFloat(lf + rf), nil
}

func parsePlus(args language.FilterArgs) (language.Filter, error) {
	arg, err := requireOneArg("plus", args)
	if err != nil {
		return nil, err
	}
	return arithFilter{Operand: arg}, nil
}

func parseMinus(args language.FilterArgs) (language.Filter, error) {
	arg, err := requireOneArg("minus", args)
	if err != nil {
		return nil, err
	}
	return arithFilter{Operand: arg, Negate: true}, nil
}

// defaultFilter substitutes Fallback when the input queries true for
// the DefaultValue state (§3, §9: Empty/Blank/false/Nil/0 all count).
type defaultFilter struct{ Fallback runtime.Expr }

func (f defaultFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	if !input.QueryState(value.StateDefaultValue) {
		return input, nil
	}
	cow, err := f.Fallback.Eval(rt)
	if err != nil {
		return value.Nil, err
	}
	return cow.ToValue(), nil
}

func parseDefault(args language.FilterArgs) (language.Filter, error) {
	arg, err := requireOneArg("default", args)
	if err != nil {
		return nil, err
	}
	return defaultFilter{Fallback: arg}, nil
}

type sizeFilter struct{}

func (sizeFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	if av, ok := value.AsArrayView(input); ok {
		return value.NewInteger(int64(av.Len())), nil
	}
	if ov, ok := value.AsObjectView(input); ok {
		return value.NewInteger(int64(ov.Len())), nil
	}
	if sv, ok := value.AsScalar(input); ok && sv.IsString() {
		return value.NewInteger(int64(len([]rune(sv.StringValue())))), nil
	}
	return value.NewInteger(0), nil
}

func parseSize(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("size", args); err != nil {
		return nil, err
	}
	return sizeFilter{}, nil
}
