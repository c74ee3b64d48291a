// Package lexer splits raw template source into text spans and markup
// spans ({{ ... }} output, {% ... %} tag), tracking trim flags and
// source position the way the parser needs to apply whitespace trimming
// and report caret-accurate errors. It does not understand the contents
// of a markup span — that is the parser's expression tokenizer's job.
package lexer

import (
	"strings"

	"github.com/codingersid/legit-liquid/errors"
)

// TokenType identifies which markup form a Token captures.
type TokenType int

const (
	TokenText TokenType = iota
	TokenOutput // {{ ... }}
	TokenTag    // {% ... %}
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenText:
		return "TEXT"
	case TokenOutput:
		return "OUTPUT"
	case TokenTag:
		return "TAG"
	case TokenEOF:
		return "EOF"
	}
	return "UNKNOWN"
}

// Position locates a byte offset in the source, with 1-based line/column.
type Position struct {
	Line   int
	Column int
	Offset int
}

// ToErrorLocation converts a Position to the shape errors.Location wants.
func (p Position) ToErrorLocation() errors.Location {
	return errors.Location{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// Token is one lexical span: literal text, or the raw (untokenized)
// interior of an output/tag markup pair, plus whether either delimiter
// requested whitespace trimming.
type Token struct {
	Type      TokenType
	Value     string
	TrimLeft  bool // `{{-` or `{%-`: trim trailing whitespace off the preceding text
	TrimRight bool // `-}}` or `-%}`: trim leading whitespace off the following text
	Position  Position
}

// Scanner tokenizes template source into text/output/tag spans.
type Scanner struct {
	input  string
	pos    int
	line   int
	column int
}

// New creates a Scanner over src.
func New(src string) *Scanner {
	return &Scanner{input: src, pos: 0, line: 1, column: 1}
}

// Scan tokenizes the entire input, applies whitespace trimming between
// adjacent tokens per their TrimLeft/TrimRight flags, and returns the
// resulting token sequence terminated by TokenEOF.
func Scan(src string) ([]Token, error) {
	s := New(src)
	var tokens []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			break
		}
		tokens = append(tokens, tok)
	}
	tokens = append(tokens, Token{Type: TokenEOF, Position: s.currentPosition()})
	applyTrim(tokens)
	return tokens, nil
}

func (s *Scanner) currentPosition() Position {
	return Position{Line: s.line, Column: s.column, Offset: s.pos}
}

func (s *Scanner) next() (Token, error) {
	if s.pos >= len(s.input) {
		return Token{Type: TokenEOF, Position: s.currentPosition()}, nil
	}
	start := s.currentPosition()

	if s.match("{{") {
		return s.scanMarkup(start, "{{", "}}", TokenOutput)
	}
	if s.match("{%") {
		return s.scanMarkup(start, "{%", "%}", TokenTag)
	}
	return s.scanText(start)
}

func (s *Scanner) scanMarkup(start Position, open, close string, typ TokenType) (Token, error) {
	s.advanceN(len(open))
	trimLeft := s.peekByte() == '-'
	if trimLeft {
		s.advance()
	}

	contentStart := s.pos
	for s.pos < len(s.input) {
		if s.peekByte() == '-' && s.matchAt(s.pos+1, close) {
			content := s.input[contentStart:s.pos]
			s.advance() // the '-'
			s.advanceN(len(close))
			return Token{Type: typ, Value: strings.TrimSpace(content), TrimLeft: trimLeft, TrimRight: true, Position: start}, nil
		}
		if s.match(close) {
			content := s.input[contentStart:s.pos]
			s.advanceN(len(close))
			return Token{Type: typ, Value: strings.TrimSpace(content), TrimLeft: trimLeft, Position: start}, nil
		}
		s.advance()
	}

	kind := "output"
	if typ == TokenTag {
		kind = "tag"
	}
	return Token{}, errors.NewParseError("Unterminated " + kind).At(start.ToErrorLocation())
}

func (s *Scanner) scanText(start Position) (Token, error) {
	begin := s.pos
	for s.pos < len(s.input) {
		if s.match("{{") || s.match("{%") {
			break
		}
		s.advance()
	}
	return Token{Type: TokenText, Value: s.input[begin:s.pos], Position: start}, nil
}

// applyTrim strips trailing whitespace (up to and including the adjacent
// newline) from a TEXT token preceding a TrimLeft markup token, and
// leading whitespace from a TEXT token following a TrimRight markup
// token, per §4.3's whitespace-trim rule.
func applyTrim(tokens []Token) {
	for i, tok := range tokens {
		if tok.Type == TokenText {
			continue
		}
		if tok.TrimLeft && i > 0 && tokens[i-1].Type == TokenText {
			tokens[i-1].Value = trimTrailingSpace(tokens[i-1].Value)
		}
		if tok.TrimRight && i+1 < len(tokens) && tokens[i+1].Type == TokenText {
			tokens[i+1].Value = trimLeadingSpace(tokens[i+1].Value)
		}
	}
}

func trimTrailingSpace(s string) string {
	i := len(s)
	for i > 0 && isASCIISpace(s[i-1]) {
		i--
	}
	return s[:i]
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && isASCIISpace(s[i]) {
		i++
	}
	return s[i:]
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func (s *Scanner) peekByte() byte {
	if s.pos >= len(s.input) {
		return 0
	}
	return s.input[s.pos]
}

func (s *Scanner) advance() {
	if s.pos < len(s.input) {
		if s.input[s.pos] == '\n' {
			s.line++
			s.column = 1
		} else {
			s.column++
		}
		s.pos++
	}
}

func (s *Scanner) advanceN(n int) {
	for i := 0; i < n; i++ {
		s.advance()
	}
}

func (s *Scanner) match(str string) bool {
	return s.matchAt(s.pos, str)
}

func (s *Scanner) matchAt(pos int, str string) bool {
	if pos+len(str) > len(s.input) {
		return false
	}
	return s.input[pos:pos+len(str)] == str
}
