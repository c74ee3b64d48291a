package parser

import (
	"strings"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
)

// ParseExpression parses raw as a full expression, for tags whose
// argument text is a single expression (`{% if cond %}`, `{% unless
// cond %}`). Exported so stdtags does not need its own copy of the
// expression grammar.
func ParseExpression(raw string, lang *language.Language) (runtime.Expr, error) {
	ep, err := newExprParser(raw, lang)
	if err != nil {
		return nil, err
	}
	return ep.parseExpr()
}

// ParseIdent consumes a single identifier from the front of raw and
// returns it along with the trimmed remainder.
func ParseIdent(raw string) (name, rest string, err error) {
	raw = strings.TrimSpace(raw)
	i := 0
	for i < len(raw) && isIdentPart(raw[i]) {
		i++
	}
	if i == 0 {
		return "", "", errors.NewParseError("Expected identifier")
	}
	return raw[:i], strings.TrimSpace(raw[i:]), nil
}

// ParseAssignment parses `name = expr`, as used by `assign` and by
// `capture`'s companion form is handled separately since capture takes
// no expression, only a name.
func ParseAssignment(raw string, lang *language.Language) (name string, expr runtime.Expr, err error) {
	name, rest, err := ParseIdent(raw)
	if err != nil {
		return "", nil, err
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "=") {
		return "", nil, errors.NewParseError("Expected '=' in assignment").WithContextString("tag argument", raw)
	}
	expr, err = ParseExpression(strings.TrimSpace(rest[1:]), lang)
	if err != nil {
		return "", nil, err
	}
	return name, expr, nil
}

// ForHeader is the parsed argument shape of `{% for item in collection
// limit: n offset: n reversed %}`.
type ForHeader struct {
	Var        string
	Collection runtime.Expr
	Limit      runtime.Expr // nil if absent
	Offset     runtime.Expr // nil if absent
	Reversed   bool
}

// ParseForHeader parses a `for` tag's argument text.
func ParseForHeader(raw string, lang *language.Language) (ForHeader, error) {
	varName, rest, err := ParseIdent(raw)
	if err != nil {
		return ForHeader{}, err
	}
	rest = strings.TrimSpace(rest)
	if !strings.HasPrefix(rest, "in ") && rest != "in" {
		return ForHeader{}, errors.NewParseError("Expected 'in' in for loop").WithContextString("tag argument", raw)
	}
	rest = strings.TrimSpace(strings.TrimPrefix(rest, "in"))

	collSrc, modifiers := splitForModifiers(rest)
	collExpr, err := ParseExpression(strings.TrimSpace(collSrc), lang)
	if err != nil {
		return ForHeader{}, err
	}

	h := ForHeader{Var: varName, Collection: collExpr}
	for _, m := range modifiers {
		m = strings.TrimSpace(m)
		switch {
		case m == "reversed":
			h.Reversed = true
		case strings.HasPrefix(m, "limit:"):
			e, err := ParseExpression(strings.TrimSpace(strings.TrimPrefix(m, "limit:")), lang)
			if err != nil {
				return ForHeader{}, err
			}
			h.Limit = e
		case strings.HasPrefix(m, "offset:"):
			e, err := ParseExpression(strings.TrimSpace(strings.TrimPrefix(m, "offset:")), lang)
			if err != nil {
				return ForHeader{}, err
			}
			h.Offset = e
		case m == "":
			// tolerate trailing separators
		default:
			return ForHeader{}, errors.NewParseError("Unknown for-loop modifier").WithContextString("modifier", m)
		}
	}
	return h, nil
}

// splitForModifiers splits the collection expression from the trailing
// `limit:`/`offset:`/`reversed` modifiers. Modifiers are whitespace
// separated and always come after the full collection expression, so
// splitting on the first occurrence of one of their keywords (outside
// of brackets/strings) is sufficient for this grammar's needs.
func splitForModifiers(s string) (collection string, modifiers []string) {
	depth := 0
	inStr := byte(0)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inStr != 0:
			if c == inStr {
				inStr = 0
			}
		case c == '"' || c == '\'':
			inStr = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case depth == 0 && c == ' ':
			word := s[i+1:]
			if strings.HasPrefix(word, "limit:") || strings.HasPrefix(word, "offset:") || word == "reversed" || strings.HasPrefix(word, "reversed ") {
				return s[:i], groupModifiers(word)
			}
		}
	}
	return s, nil
}

// groupModifiers splits the trailing modifier text into whole
// `keyword: value` or `reversed` units, since a bare strings.Fields
// split would separate "limit:" from its value onto two elements.
func groupModifiers(s string) []string {
	fields := strings.Fields(s)
	var mods []string
	for i := 0; i < len(fields); i++ {
		f := fields[i]
		if f == "reversed" {
			mods = append(mods, f)
			continue
		}
		if strings.HasSuffix(f, ":") && i+1 < len(fields) {
			mods = append(mods, f+" "+fields[i+1])
			i++
			continue
		}
		mods = append(mods, f)
	}
	return mods
}

// ParseInclude parses `include "name"` or `include name_expr`, where
// name may be a string literal or a variable expression evaluating to
// one at render time.
func ParseInclude(raw string, lang *language.Language) (runtime.Expr, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.NewParseError("Expected partial name in include")
	}
	return ParseExpression(raw, lang)
}
