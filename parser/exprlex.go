package parser

import (
	"strings"

	"github.com/codingersid/legit-liquid/errors"
)

// exprTokenType classifies a token inside a markup span, per spec §4.3
// "Inside markup".
type exprTokenType int

const (
	exTokIdent exprTokenType = iota
	exTokInteger
	exTokFloat
	exTokString
	exTokDot
	exTokLBracket
	exTokRBracket
	exTokComma
	exTokColon
	exTokAssign
	exTokPipe
	exTokEq
	exTokNe
	exTokLt
	exTokLe
	exTokGt
	exTokGe
	exTokEOF
)

type exprToken struct {
	typ exprTokenType
	val string
}

// reservedWords lists the reserved words. The lexer returns them as plain
// identifiers rather than as a separate token type, and the expression
// parser recognises them by their spelling; parseFilterArg consults this
// set so a reserved word is never taken as a keyword-argument name.
var reservedWords = map[string]bool{
	"nil": true, "null": true, "true": true, "false": true,
	"empty": true, "blank": true, "and": true, "or": true, "contains": true,
}

// exprLex tokenizes the raw interior of an output/tag markup span into
// expression tokens: identifiers, integer/float literals (incl. inf/nan
// with optional sign), quoted strings (no escapes, either quote style),
// the sigils listed in §4.3, and the reserved words above (returned as
// plain identifiers for the expression parser to classify).
func exprLex(src string) ([]exprToken, error) {
	var toks []exprToken
	i := 0
	n := len(src)
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '.':
			toks = append(toks, exprToken{exTokDot, "."})
			i++
		case c == '[':
			toks = append(toks, exprToken{exTokLBracket, "["})
			i++
		case c == ']':
			toks = append(toks, exprToken{exTokRBracket, "]"})
			i++
		case c == ',':
			toks = append(toks, exprToken{exTokComma, ","})
			i++
		case c == ':':
			toks = append(toks, exprToken{exTokColon, ":"})
			i++
		case c == '=':
			if i+1 < n && src[i+1] == '=' {
				toks = append(toks, exprToken{exTokEq, "=="})
				i += 2
			} else {
				toks = append(toks, exprToken{exTokAssign, "="})
				i++
			}
		case c == '!':
			if i+1 < n && src[i+1] == '=' {
				toks = append(toks, exprToken{exTokNe, "!="})
				i += 2
			} else {
				return nil, errors.NewParseError("Unexpected character '!'")
			}
		case c == '<':
			if i+1 < n && src[i+1] == '=' {
				toks = append(toks, exprToken{exTokLe, "<="})
				i += 2
			} else {
				toks = append(toks, exprToken{exTokLt, "<"})
				i++
			}
		case c == '>':
			if i+1 < n && src[i+1] == '=' {
				toks = append(toks, exprToken{exTokGe, ">="})
				i += 2
			} else {
				toks = append(toks, exprToken{exTokGt, ">"})
				i++
			}
		case c == '|':
			toks = append(toks, exprToken{exTokPipe, "|"})
			i++
		case c == '"' || c == '\'':
			quote := c
			j := i + 1
			for j < n && src[j] != quote {
				j++
			}
			if j >= n {
				return nil, errors.NewParseError("Unterminated string literal")
			}
			toks = append(toks, exprToken{exTokString, src[i+1 : j]})
			i = j + 1
		case isDigit(c) || ((c == '-' || c == '+') && i+1 < n && (isDigit(src[i+1]) || isInfNanStart(src[i+1:]))):
			tok, adv, err := lexNumber(src[i:])
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i += adv
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdentPart(src[j]) {
				j++
			}
			word := src[i:j]
			if word == "inf" || word == "nan" {
				toks = append(toks, exprToken{exTokFloat, word})
			} else {
				toks = append(toks, exprToken{exTokIdent, word})
			}
			i = j
		default:
			return nil, errors.NewParseError("Unexpected character in expression: " + string(c))
		}
	}
	toks = append(toks, exprToken{exTokEOF, ""})
	return toks, nil
}

func isInfNanStart(s string) bool {
	return strings.HasPrefix(s, "inf") || strings.HasPrefix(s, "nan")
}

func lexNumber(src string) (exprToken, int, error) {
	i := 0
	n := len(src)
	if src[i] == '-' || src[i] == '+' {
		i++
	}
	if strings.HasPrefix(src[i:], "inf") {
		return exprToken{exTokFloat, src[:i+3]}, i + 3, nil
	}
	if strings.HasPrefix(src[i:], "nan") {
		return exprToken{exTokFloat, src[:i+3]}, i + 3, nil
	}
	start := i
	for i < n && isDigit(src[i]) {
		i++
	}
	isFloat := false
	if i < n && src[i] == '.' && i+1 < n && isDigit(src[i+1]) {
		isFloat = true
		i++
		for i < n && isDigit(src[i]) {
			i++
		}
	}
	_ = start
	if isFloat {
		return exprToken{exTokFloat, src[:i]}, i, nil
	}
	return exprToken{exTokInteger, src[:i]}, i, nil
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }
