package stdtags_test

import (
	"strings"
	"testing"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/partialstore"
	"github.com/codingersid/legit-liquid/runtime"
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

func render(t *testing.T, lang *language.Language, src string, data value.ObjectView, opts ...runtime.Option) string {
	t.Helper()
	tmpl, err := parser.ParseString(src, lang)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	out, err := tmpl.Render(data, opts...)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}
	return out
}

func emptyData() value.ObjectView { return value.NewObject(value.NewOrderedObject()) }

func TestForloopMetadata(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("items", value.NewArray([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)}))
	src := "{% for x in items %}{{ forloop.index }}:{{ forloop.first }}:{{ forloop.last }} {% endfor %}"
	got := render(t, newLang(), src, value.NewObject(o))
	want := "1:true:false 2:false:false 3:false:true "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForOverObjectYieldsKeyValueArrayPairs(t *testing.T) {
	hash := value.NewOrderedObject()
	hash.Set("a", value.NewInteger(1))
	hash.Set("b", value.NewInteger(2))
	o := value.NewOrderedObject()
	o.Set("hash", value.NewObject(hash))

	src := "{% for pair in hash %}{{ pair.size }}:{{ pair[0] }}={{ pair[1] }}:{{ pair.first }}/{{ pair.last }} {% endfor %}"
	got := render(t, newLang(), src, value.NewObject(o))
	want := "2:a=1:a/1 2:b=2:b/2 "
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestForloopScopeDoesNotLeak(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("items", value.NewArray([]value.Value{value.NewInteger(1)}))
	src := "{% for x in items %}{% endfor %}{{ x }}"
	tmpl, err := parser.ParseString(src, newLang())
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	_, err = tmpl.Render(value.NewObject(o))
	if err == nil || !strings.Contains(err.Error(), "Unknown variable") {
		t.Errorf("expected the loop variable to not leak out of scope (Unknown variable), got %v", err)
	}
}

func TestContinueSkipsRestOfIteration(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("items", value.NewArray([]value.Value{
		value.NewInteger(1), value.NewInteger(2), value.NewInteger(3),
	}))
	src := "{%- for x in items -%}{%- if x == 2 -%}{%- continue -%}{%- endif -%}{{ x }}{%- endfor -%}"
	got := render(t, newLang(), src, value.NewObject(o))
	if got != "13" {
		t.Errorf("got %q, want %q", got, "13")
	}
}

func TestCaptureIntoVariable(t *testing.T) {
	got := render(t, newLang(), "{% capture x %}he{{ 'll' }}o{% endcapture %}{{ x | upcase }}", emptyData())
	if got != "HELLO" {
		t.Errorf("got %q, want %q", got, "HELLO")
	}
}

func TestIncludeRendersPartial(t *testing.T) {
	store := partialstore.New(newLang())
	store.Add("greeting", "Hello, {{ name }}!")
	got := render(t, newLang(), `{% include "greeting" %}`, func() value.ObjectView {
		o := value.NewOrderedObject()
		o.Set("name", value.NewStringValue("World"))
		return value.NewObject(o)
	}(), runtime.WithPartials(store))
	if got != "Hello, World!" {
		t.Errorf("got %q, want %q", got, "Hello, World!")
	}
}

func TestIncludeMissingPartialErrors(t *testing.T) {
	store := partialstore.New(newLang())
	tmpl, err := parser.ParseString(`{% include "missing" %}`, newLang())
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = tmpl.Render(emptyData(), runtime.WithPartials(store))
	if err == nil {
		t.Fatal("expected an error for a missing partial")
	}
}

func TestCommentDiscardsBody(t *testing.T) {
	got := render(t, newLang(), "a{% comment %}{{ anything }}{% endcomment %}b", emptyData())
	if got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}
