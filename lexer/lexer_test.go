package lexer

import "testing"

func TestScanText(t *testing.T) {
	tokens, err := Scan("Hello World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 {
		t.Fatalf("expected 1 text token plus EOF, got %d", len(tokens))
	}
	if tokens[0].Type != TokenText || tokens[0].Value != "Hello World" {
		t.Errorf("got %+v", tokens[0])
	}
}

func TestScanOutput(t *testing.T) {
	tokens, err := Scan("Hi {{ name }}!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 3 tokens plus EOF, got %d", len(tokens))
	}
	if tokens[0].Type != TokenText || tokens[0].Value != "Hi " {
		t.Errorf("token 0: got %+v", tokens[0])
	}
	if tokens[1].Type != TokenOutput || tokens[1].Value != "name" {
		t.Errorf("token 1: got %+v", tokens[1])
	}
	if tokens[2].Type != TokenText || tokens[2].Value != "!" {
		t.Errorf("token 2: got %+v", tokens[2])
	}
}

func TestScanTag(t *testing.T) {
	tokens, err := Scan("{% assign x = 1 %}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 2 || tokens[0].Type != TokenTag {
		t.Fatalf("got %+v", tokens)
	}
	if tokens[0].Value != "assign x = 1" {
		t.Errorf("expected trimmed tag body, got %q", tokens[0].Value)
	}
}

func TestScanUnterminatedOutput(t *testing.T) {
	if _, err := Scan("{{ name"); err == nil {
		t.Fatal("expected an error for an unterminated output tag")
	}
}

func TestScanUnterminatedTag(t *testing.T) {
	if _, err := Scan("{% if x"); err == nil {
		t.Fatal("expected an error for an unterminated tag")
	}
}

func TestWhitespaceTrimMarkers(t *testing.T) {
	tokens, err := Scan("a \n{%- if true -%}\n b \n{%- endif -%}\nc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var texts []string
	for _, tok := range tokens {
		if tok.Type == TokenText {
			texts = append(texts, tok.Value)
		}
	}
	if len(texts) != 3 {
		t.Fatalf("expected 3 text tokens, got %d: %q", len(texts), texts)
	}
	if texts[0] != "a" {
		t.Errorf("expected trailing whitespace stripped before trim-left tag, got %q", texts[0])
	}
	if texts[1] != "b" {
		t.Errorf("expected whitespace stripped on both sides of the middle text, got %q", texts[1])
	}
	if texts[2] != "c" {
		t.Errorf("expected leading whitespace stripped after trim-right tag, got %q", texts[2])
	}
}

func TestPositionTracksLineAndColumn(t *testing.T) {
	tokens, err := Scan("a\nb {{ x }}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out Token
	for _, tok := range tokens {
		if tok.Type == TokenOutput {
			out = tok
		}
	}
	if out.Position.Line != 2 {
		t.Errorf("expected output tag on line 2, got %d", out.Position.Line)
	}
}
