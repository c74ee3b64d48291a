package parser

import (
	"math"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// exprParser is a recursive-descent parser over an exprToken stream,
// implementing §4.3's expression grammar: comparisons bind tighter than
// `and`, which binds tighter than `or`; filter chains bind tighter than
// comparisons.
type exprParser struct {
	toks []exprToken
	pos  int
	lang *language.Language
}

func newExprParser(src string, lang *language.Language) (*exprParser, error) {
	toks, err := exprLex(src)
	if err != nil {
		return nil, err
	}
	return &exprParser{toks: toks, lang: lang}, nil
}

func (p *exprParser) peek() exprToken { return p.toks[p.pos] }

func (p *exprParser) advance() exprToken {
	t := p.toks[p.pos]
	if t.typ != exTokEOF {
		p.pos++
	}
	return t
}

func (p *exprParser) atEnd() bool { return p.peek().typ == exTokEOF }

// parseExpr parses a full `or`-level expression, consuming the entire
// remaining token stream; it errors if tokens remain unconsumed.
func (p *exprParser) parseExpr() (runtime.Expr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, errors.NewParseError("Unexpected token").WithContextString("token", p.peek().val)
	}
	return e, nil
}

func (p *exprParser) parseOr() (runtime.Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == exTokIdent && p.peek().val == "or" {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = render.Logical{Left: left, Right: right, Op: render.OpOr}
	}
	return left, nil
}

func (p *exprParser) parseAnd() (runtime.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.peek().typ == exTokIdent && p.peek().val == "and" {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = render.Logical{Left: left, Right: right, Op: render.OpAnd}
	}
	return left, nil
}

func (p *exprParser) parseComparison() (runtime.Expr, error) {
	left, err := p.parseFilterChain()
	if err != nil {
		return nil, err
	}
	op, ok := p.compareOp()
	if !ok {
		return left, nil
	}
	p.advance()
	right, err := p.parseFilterChain()
	if err != nil {
		return nil, err
	}
	return render.Comparison{Left: left, Right: right, Op: op}, nil
}

func (p *exprParser) compareOp() (render.CompareOp, bool) {
	t := p.peek()
	switch t.typ {
	case exTokEq:
		return render.OpEq, true
	case exTokNe:
		return render.OpNe, true
	case exTokLt:
		return render.OpLt, true
	case exTokLe:
		return render.OpLe, true
	case exTokGt:
		return render.OpGt, true
	case exTokGe:
		return render.OpGe, true
	case exTokIdent:
		if t.val == "contains" {
			return render.OpContains, true
		}
	}
	return 0, false
}

func (p *exprParser) parseFilterChain() (runtime.Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	var calls []render.FilterCall
	for p.peek().typ == exTokPipe {
		p.advance()
		call, err := p.parseFilterCall()
		if err != nil {
			return nil, err
		}
		calls = append(calls, call)
	}
	if len(calls) == 0 {
		return base, nil
	}
	return render.FilterChain{Base: base, Filters: calls}, nil
}

func (p *exprParser) parseFilterCall() (render.FilterCall, error) {
	nameTok := p.peek()
	if nameTok.typ != exTokIdent {
		return render.FilterCall{}, errors.NewParseError("Expected filter name")
	}
	p.advance()
	name := nameTok.val

	args := language.FilterArgs{Keyword: map[string]runtime.Expr{}}
	seenKeys := map[string]bool{}
	if p.peek().typ == exTokColon {
		p.advance()
		for {
			if err := p.parseFilterArg(&args, seenKeys); err != nil {
				return render.FilterCall{}, err
			}
			if p.peek().typ == exTokComma {
				p.advance()
				continue
			}
			break
		}
	}

	parseFilter, ok := p.lang.LookupFilter(name)
	if !ok {
		return render.FilterCall{}, errors.NewParseError("Unknown filter").
			WithContextString("requested filter", name).
			WithContextString("available filters", joinStrings(p.lang.FilterNames()))
	}
	filter, err := parseFilter(args)
	if err != nil {
		return render.FilterCall{}, err
	}
	return render.FilterCall{Name: name, Filter: filter}, nil
}

func (p *exprParser) parseFilterArg(args *language.FilterArgs, seenKeys map[string]bool) error {
	// A keyword arg is `ident = value`; detect it by lookahead.
	if p.peek().typ == exTokIdent && !reservedWords[p.peek().val] && p.toks[p.pos+1].typ == exTokAssign {
		key := p.advance().val
		p.advance() // '='
		if seenKeys[key] {
			return errors.NewParseError("Duplicate filter keyword argument").WithContextString("keyword", key)
		}
		seenKeys[key] = true
		val, err := p.parsePrimary()
		if err != nil {
			return err
		}
		args.Keyword[key] = val
		args.KeyOrder = append(args.KeyOrder, key)
		return nil
	}
	val, err := p.parsePrimary()
	if err != nil {
		return err
	}
	args.Positional = append(args.Positional, val)
	return nil
}

func (p *exprParser) parsePrimary() (runtime.Expr, error) {
	t := p.peek()
	switch t.typ {
	case exTokString:
		p.advance()
		return render.Literal{Value: value.NewStringValue(t.val)}, nil
	case exTokInteger:
		p.advance()
		i, ok := parseInt(t.val)
		if !ok {
			return nil, errors.NewParseError("Invalid integer literal").WithContextString("literal", t.val)
		}
		return render.Literal{Value: value.NewInteger(i)}, nil
	case exTokFloat:
		p.advance()
		f, ok := parseFloatLiteral(t.val)
		if !ok {
			return nil, errors.NewParseError("Invalid float literal").WithContextString("literal", t.val)
		}
		return render.Literal{Value: value.NewFloat(f)}, nil
	case exTokIdent:
		return p.parseIdentOrPath()
	}
	return nil, errors.NewParseError("Unexpected token").WithContextString("token", t.val)
}

func (p *exprParser) parseIdentOrPath() (runtime.Expr, error) {
	t := p.advance()
	switch t.val {
	case "nil", "null":
		return render.Literal{Value: value.Nil}, nil
	case "true":
		return render.Literal{Value: value.NewBool(true)}, nil
	case "false":
		return render.Literal{Value: value.NewBool(false)}, nil
	case "empty":
		return render.Literal{Value: value.NewState(value.StateEmpty)}, nil
	case "blank":
		return render.Literal{Value: value.NewState(value.StateBlank)}, nil
	}

	segs := []render.PathSegment{{Literal: value.NewString(t.val), IsLiteral: true}}
	for {
		switch p.peek().typ {
		case exTokDot:
			p.advance()
			nameTok := p.peek()
			if nameTok.typ != exTokIdent {
				return nil, errors.NewParseError("Expected identifier after '.'")
			}
			p.advance()
			segs = append(segs, render.PathSegment{Literal: value.NewString(nameTok.val), IsLiteral: true})
		case exTokLBracket:
			p.advance()
			inner, err := p.parseOr()
			if err != nil {
				return nil, err
			}
			if p.peek().typ != exTokRBracket {
				return nil, errors.NewParseError("Expected ']'")
			}
			p.advance()
			if lit, ok := inner.(render.Literal); ok {
				if sv, ok := lit.Value.AsScalar(); ok {
					segs = append(segs, render.PathSegment{Literal: sv, IsLiteral: true})
					continue
				}
			}
			segs = append(segs, render.PathSegment{Computed: inner})
		default:
			return render.Path{Segments: segs}, nil
		}
	}
}

func parseInt(s string) (int64, bool) {
	neg := false
	i := 0
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		i = 1
	}
	if i >= len(s) {
		return 0, false
	}
	var n int64
	for ; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int64(s[i]-'0')
	}
	if neg {
		n = -n
	}
	return n, true
}

func parseFloatLiteral(s string) (float64, bool) {
	neg := false
	body := s
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		body = s[1:]
	}
	var f float64
	switch body {
	case "inf":
		f = math.Inf(1)
	case "nan":
		f = math.NaN()
	default:
		parsed, ok := parsePlainFloat(body)
		if !ok {
			return 0, false
		}
		f = parsed
	}
	if neg && body != "nan" {
		f = -f
	}
	return f, true
}

func parsePlainFloat(s string) (float64, bool) {
	intPart := ""
	fracPart := ""
	dot := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			dot = i
			break
		}
	}
	if dot < 0 {
		intPart = s
	} else {
		intPart = s[:dot]
		fracPart = s[dot+1:]
	}
	var n float64
	for i := 0; i < len(intPart); i++ {
		if !isDigit(intPart[i]) {
			return 0, false
		}
		n = n*10 + float64(intPart[i]-'0')
	}
	scale := 1.0
	for i := 0; i < len(fracPart); i++ {
		if !isDigit(fracPart[i]) {
			return 0, false
		}
		scale /= 10
		n += float64(fracPart[i]-'0') * scale
	}
	return n, true
}

func joinStrings(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

