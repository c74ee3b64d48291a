package partialstore_test

import (
	"strings"
	"testing"

	"github.com/codingersid/legit-liquid/language"
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

func renderWith(t *testing.T, r runtime.Renderable, globals value.ObjectView) string {
	t.Helper()
	var buf strings.Builder
	rt := runtime.New(runtime.WithGlobals(globals))
	if err := r.RenderTo(&buf, rt); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return buf.String()
}

func TestStoreParsesOnFirstAccess(t *testing.T) {
	store := partialstore.New(newLang())
	store.Add("greet", "hi {{ name }}")
	if !store.Contains("greet") {
		t.Fatal("expected Contains to report the added partial")
	}
	r, ok := store.TryGet("greet")
	if !ok {
		t.Fatal("expected TryGet to find the added partial")
	}
	o := value.NewOrderedObject()
	o.Set("name", value.NewStringValue("bob"))

	if got := renderWith(t, r, value.NewObject(o)); got != "hi bob" {
		t.Errorf("got %q, want %q", got, "hi bob")
	}
}

func TestStoreAddInvalidatesCache(t *testing.T) {
	store := partialstore.New(newLang())
	empty := value.NewObject(value.NewOrderedObject())

	store.Add("x", "one")
	r, _ := store.TryGet("x")
	if got := renderWith(t, r, empty); got != "one" {
		t.Fatalf("expected first parse to render 'one', got %q", got)
	}

	store.Add("x", "two")
	r, _ = store.TryGet("x")
	if got := renderWith(t, r, empty); got != "two" {
		t.Errorf("got %q, want %q after overwrite", got, "two")
	}
}

func TestStoreNamesSorted(t *testing.T) {
	store := partialstore.New(newLang())
	store.Add("b", "")
	store.Add("a", "")
	names := store.Names()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("got %v, want sorted [a b]", names)
	}
}

func TestStoreMissingPartialErrors(t *testing.T) {
	store := partialstore.New(newLang())
	if _, err := store.Get("nosuch"); err == nil {
		t.Fatal("expected an error for a missing partial")
	}
	if _, ok := store.TryGet("nosuch"); ok {
		t.Fatal("expected TryGet to report false for a missing partial")
	}
}
