// Package parser turns template source into a render.Template: a lexer
// pass splits text from markup, then a dispatch loop consults the
// embedder's language.Language to parse each tag or block's arguments
// and, for blocks, their nested child nodes (§4 "Parse pipeline").
package parser

import (
	"strings"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/lexer"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
)

// Parser holds the token stream being consumed and the language it
// dispatches tag/block names against. A Parser is single-use: construct
// one per ParseString call.
type Parser struct {
	toks []lexer.Token
	pos  int
	lang *language.Language
}

// ParseString parses src into a render.Template using lang's registered
// tags, blocks, and filters.
func ParseString(src string, lang *language.Language) (*render.Template, error) {
	toks, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks, lang: lang}
	nodes, err := p.parseUntil(nil)
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, errors.NewParseError("Unexpected block terminator").
			At(p.peek().Position.ToErrorLocation())
	}
	return &render.Template{Root: render.Sequence{Nodes: nodes}}, nil
}

func (p *Parser) peek() lexer.Token { return p.toks[p.pos] }

func (p *Parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if t.Type != lexer.TokenEOF {
		p.pos++
	}
	return t
}

func (p *Parser) atEnd() bool { return p.peek().Type == lexer.TokenEOF }

// parseUntil consumes nodes until EOF or a tag whose name is in stop,
// returning the accumulated nodes without consuming the stopping tag —
// the caller inspects it via peek to decide what to do next.
func (p *Parser) parseUntil(stop map[string]bool) ([]runtime.Renderable, error) {
	var nodes []runtime.Renderable
	for !p.atEnd() {
		tok := p.peek()
		switch tok.Type {
		case lexer.TokenText:
			p.advance()
			if tok.Value != "" {
				nodes = append(nodes, render.TextNode{Content: tok.Value})
			}
		case lexer.TokenOutput:
			p.advance()
			expr, err := p.parseExprString(tok.Value)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, render.OutputNode{Expr: expr})
		case lexer.TokenTag:
			name, raw := splitHead(tok.Value)
			if stop != nil && stop[name] {
				return nodes, nil
			}
			node, err := p.parseTagOrBlock(tok, name, raw)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
	}
	return nodes, nil
}

// parseTagOrBlock consumes the already-peeked tag token (the caller has
// not yet advanced past it) and dispatches it as a void tag or a block,
// per which table lang has it registered in.
func (p *Parser) parseTagOrBlock(tok lexer.Token, name, raw string) (runtime.Renderable, error) {
	if blockParse, delimiters, ok := p.lang.LookupBlock(name); ok {
		p.advance()
		return p.parseBlock(tok, name, raw, delimiters, blockParse)
	}
	if tagParse, ok := p.lang.LookupTag(name); ok {
		p.advance()
		node, err := tagParse(raw, p.lang)
		if err != nil {
			return nil, annotateLocation(err, tok)
		}
		return node, nil
	}
	return nil, errors.NewParseError("Unknown tag").
		At(tok.Position.ToErrorLocation()).
		WithContextString("requested tag", name).
		WithContextString("available tags", joinStrings(allNames(p.lang)))
}

// parseBlock collects one or more delimiter-bounded segments up to the
// block's own `end<name>`, then hands the assembled language.Body to the
// block's parse function.
func (p *Parser) parseBlock(openTok lexer.Token, name, raw string, delimiters []string, blockParse language.BlockParser) (runtime.Renderable, error) {
	endName := "end" + name
	stop := map[string]bool{endName: true}
	for _, d := range delimiters {
		stop[d] = true
	}

	body := language.Body{}
	segDelim, segArgs := "", raw
	for {
		nodes, err := p.parseUntil(stop)
		if err != nil {
			return nil, err
		}
		body.Segments = append(body.Segments, language.Segment{
			Delimiter: segDelim,
			Args:      segArgs,
			Nodes:     nodes,
		})

		if p.atEnd() {
			return nil, errors.NewParseError("Unterminated block").
				At(openTok.Position.ToErrorLocation()).
				WithContextString("tag", name).
				WithContextString("expected terminator", endName)
		}
		tok := p.peek()
		tagName, tagRaw := splitHead(tok.Value)
		p.advance()
		if tagName == endName {
			break
		}
		// A registered delimiter (else/elsif/...): start a new segment.
		segDelim, segArgs = tagName, tagRaw
	}

	node, err := blockParse(raw, body, p.lang)
	if err != nil {
		return nil, annotateLocation(err, openTok)
	}
	return node, nil
}

func (p *Parser) parseExprString(src string) (runtime.Expr, error) {
	ep, err := newExprParser(src, p.lang)
	if err != nil {
		return nil, err
	}
	return ep.parseExpr()
}

// splitHead splits a tag's markup body into its leading bareword name
// and the remaining trimmed argument text, e.g. "if x > 1" -> ("if",
// "x > 1"), "endif" -> ("endif", "").
func splitHead(s string) (name, rest string) {
	s = strings.TrimSpace(s)
	i := 0
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	return s[:i], strings.TrimSpace(s[i:])
}

func annotateLocation(err error, tok lexer.Token) error {
	if pe, ok := err.(*errors.ParseError); ok && !pe.HasLoc {
		return pe.At(tok.Position.ToErrorLocation())
	}
	return err
}

func allNames(lang *language.Language) []string {
	out := append([]string{}, lang.TagNames()...)
	out = append(out, lang.BlockNames()...)
	return out
}
