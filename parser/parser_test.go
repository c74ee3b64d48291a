package parser_test

import (
	"strings"
	"testing"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/stdfilters"
	"github.com/codingersid/legit-liquid/stdtags"
	"github.com/codingersid/legit-liquid/value"
)

func newLang() *language.Language {
	lang := language.New()
	stdtags.Register(lang)
	stdfilters.Register(lang)
	return lang
}

func render(t *testing.T, src string, data value.ObjectView) string {
	t.Helper()
	tmpl, err := parser.ParseString(src, newLang())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out, err := tmpl.Render(data)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	return out
}

func TestParseString_TextOnly(t *testing.T) {
	got := render(t, "plain text", value.NewObject(value.NewOrderedObject()))
	if got != "plain text" {
		t.Errorf("got %q", got)
	}
}

func TestParseString_FilterChain(t *testing.T) {
	got := render(t, `{{ "abc" | upcase | append: "!" }}`, value.NewObject(value.NewOrderedObject()))
	if got != "ABC!" {
		t.Errorf("got %q", got)
	}
}

func TestParseString_ArrayNegativeIndex(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("arr", value.NewArray([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)}))
	got := render(t, "{{ arr[-1] }}", value.NewObject(o))
	if got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
}

func TestParseString_SizeFirstLast(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("arr", value.NewArray([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)}))
	got := render(t, "{{ arr.size }}-{{ arr.first }}-{{ arr.last }}", value.NewObject(o))
	if got != "3-1-3" {
		t.Errorf("got %q, want %q", got, "3-1-3")
	}
}

func TestParseString_UnknownTagError(t *testing.T) {
	_, err := parser.ParseString("{% nosuchtag %}", newLang())
	if err == nil {
		t.Fatal("expected an error for an unknown tag")
	}
	if !strings.Contains(err.Error(), "Unknown tag") {
		t.Errorf("expected 'Unknown tag' in error, got %v", err)
	}
}

func TestParseString_UnterminatedBlockError(t *testing.T) {
	_, err := parser.ParseString("{% if true %}no end", newLang())
	if err == nil {
		t.Fatal("expected an error for an unterminated block")
	}
	if !strings.Contains(err.Error(), "Unterminated block") {
		t.Errorf("expected 'Unterminated block' in error, got %v", err)
	}
}

func TestForHeader_LimitOffsetReversed(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("arr", value.NewArray([]value.Value{
		value.NewInteger(1), value.NewInteger(2), value.NewInteger(3),
		value.NewInteger(4), value.NewInteger(5),
	}))
	got := render(t, "{% for x in arr offset: 1 limit: 2 reversed %}{{ x }}{% endfor %}", value.NewObject(o))
	if got != "32" {
		t.Errorf("got %q, want %q", got, "32")
	}
}
