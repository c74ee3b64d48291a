package language_test

import (
	"testing"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

func noopTag(raw string, lang *language.Language) (runtime.Renderable, error) { return nil, nil }

func noopBlock(raw string, body language.Body, lang *language.Language) (runtime.Renderable, error) {
	return nil, nil
}

type constFilter struct{ v value.Value }

func (c constFilter) Evaluate(input value.Value, rt *runtime.Runtime) (value.Value, error) {
	return c.v, nil
}

func TestRegisterAndLookupTag(t *testing.T) {
	lang := language.New()
	lang.RegisterTag("assign", "binds a variable", "name = expr", noopTag)

	if _, ok := lang.LookupTag("assign"); !ok {
		t.Fatal("expected assign to be registered")
	}
	if _, ok := lang.LookupTag("nosuch"); ok {
		t.Fatal("expected nosuch to be unregistered")
	}
	if lang.IsBlock("assign") {
		t.Error("a tag registered via RegisterTag must not report as a block")
	}
}

func TestRegisterAndLookupBlock(t *testing.T) {
	lang := language.New()
	lang.RegisterBlock("if", "conditional", "expr", []string{"elsif", "else"}, noopBlock)

	parse, delims, ok := lang.LookupBlock("if")
	if !ok || parse == nil {
		t.Fatal("expected if to be registered as a block")
	}
	if len(delims) != 2 || delims[0] != "elsif" || delims[1] != "else" {
		t.Errorf("got delimiters %v, want [elsif else]", delims)
	}
	if !lang.IsBlock("if") {
		t.Error("expected IsBlock(if) to be true")
	}
}

func TestRegisterFilterOverwritesByName(t *testing.T) {
	lang := language.New()
	lang.RegisterFilter("pick", "first", "", func(language.FilterArgs) (language.Filter, error) {
		return constFilter{value.NewInteger(1)}, nil
	})
	lang.RegisterFilter("pick", "second", "", func(language.FilterArgs) (language.Filter, error) {
		return constFilter{value.NewInteger(2)}, nil
	})

	parse, ok := lang.LookupFilter("pick")
	if !ok {
		t.Fatal("expected pick to be registered")
	}
	f, err := parse(language.FilterArgs{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := f.Evaluate(value.Nil, nil)
	if got.Render() != "2" {
		t.Errorf("expected the later registration to win, got %q", got.Render())
	}
}

func TestNamesAreSorted(t *testing.T) {
	lang := language.New()
	lang.RegisterTag("z", "", "", noopTag)
	lang.RegisterTag("a", "", "", noopTag)
	lang.RegisterFilter("z", "", "", nil)
	lang.RegisterFilter("a", "", "", nil)
	lang.RegisterBlock("z", "", "", nil, noopBlock)
	lang.RegisterBlock("a", "", "", nil, noopBlock)

	for _, names := range [][]string{lang.TagNames(), lang.FilterNames(), lang.BlockNames()} {
		if len(names) != 2 || names[0] != "a" || names[1] != "z" {
			t.Errorf("got %v, want sorted [a z]", names)
		}
	}
}

func TestBodyNodesConvenienceAccessor(t *testing.T) {
	var empty language.Body
	if got := empty.Nodes(); got != nil {
		t.Errorf("expected nil Nodes() for a segment-less Body, got %v", got)
	}

	body := language.Body{Segments: []language.Segment{{Nodes: nil}}}
	if got := body.Nodes(); len(got) != 0 {
		t.Errorf("expected empty Nodes() for a single empty segment, got %v", got)
	}
}
