// Package stdfilters is the reference filter plugin set: upcase,
// downcase, append, plus, minus, default, size, first, last, reverse,
// sort, uniq, join, and map. Like stdtags, none
// of this is core — each filter is built entirely on the two-phase
// language.ParseFilter/Filter contract any third-party filter uses.
package stdfilters

import (
	"strings"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

type caseFilter struct{ upper bool }

func (f caseFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	s := input.Render()
	if f.upper {
		return value.NewStringValue(strings.ToUpper(s)), nil
	}
	return value.NewStringValue(strings.ToLower(s)), nil
}

func parseUpcase(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("upcase", args); err != nil {
		return nil, err
	}
	return caseFilter{upper: true}, nil
}

func parseDowncase(args language.FilterArgs) (language.Filter, error) {
	if err := requireNoArgs("downcase", args); err != nil {
		return nil, err
	}
	return caseFilter{upper: false}, nil
}

// appendFilter evaluates its single positional argument against the
// live runtime on every call, so a variable argument always reflects
// its current value (§4.6 "Filter" contract).
type appendFilter struct{ Suffix runtime.Expr }

func (f appendFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	cow, err := f.Suffix.Eval(rt)
	if err != nil {
		return value.Nil, err
	}
	return value.NewStringValue(input.Render() + cow.View().Render()), nil
}

func parseAppend(args language.FilterArgs) (language.Filter, error) {
	arg, err := requireOneArg("append", args)
	if err != nil {
		return nil, err
	}
	return appendFilter{Suffix: arg}, nil
}

func requireNoArgs(name string, args language.FilterArgs) error {
	if len(args.Positional) != 0 || len(args.Keyword) != 0 {
		return errors.NewParseError("Filter takes no arguments").WithContextString("filter", name)
	}
	return nil
}

func requireOneArg(name string, args language.FilterArgs) (runtime.Expr, error) {
	if len(args.Positional) != 1 || len(args.Keyword) != 0 {
		return nil, errors.NewParseError("Filter requires exactly one positional argument").WithContextString("filter", name)
	}
	return args.Positional[0], nil
}
