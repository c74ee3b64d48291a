package find_test

import (
	"testing"

	"github.com/codingersid/legit-liquid/value"
	"github.com/codingersid/legit-liquid/value/find"
)

func TestFindNestedPath(t *testing.T) {
	post := value.NewOrderedObject()
	post.Set("number", value.NewInteger(42))
	root := value.NewOrderedObject()
	root.Set("post", value.NewObject(post))

	cow := find.Find(value.NewObject(root), []value.Scalar{value.NewString("post"), value.NewString("number")})
	if cow.View().Render() != "42" {
		t.Errorf("got %q, want %q", cow.View().Render(), "42")
	}
}

func TestFindMissingIntermediateYieldsNil(t *testing.T) {
	post := value.NewOrderedObject()
	post.Set("number", value.NewInteger(42))
	root := value.NewOrderedObject()
	root.Set("post", value.NewObject(post))

	cow := find.Find(value.NewObject(root), []value.Scalar{value.NewString("post"), value.NewString("missing")})
	if cow.View().TypeName() != "nil" {
		t.Errorf("expected Nil for a missing key, got type %q", cow.View().TypeName())
	}
}

func TestFindSizeFirstLastPseudoProperties(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)})
	cases := map[string]string{"size": "3", "first": "1", "last": "3"}
	for prop, want := range cases {
		cow := find.Find(arr, []value.Scalar{value.NewString(prop)})
		if got := cow.View().Render(); got != want {
			t.Errorf("%s: got %q, want %q", prop, got, want)
		}
	}
}

func TestFindNegativeArrayIndex(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewInteger(10), value.NewInteger(20), value.NewInteger(30)})
	cow := find.Find(arr, []value.Scalar{value.NewIntegerScalar(-1)})
	if cow.View().Render() != "30" {
		t.Errorf("got %q, want %q", cow.View().Render(), "30")
	}
}

func TestFindNegativeIndexPastEndYieldsNil(t *testing.T) {
	arr := value.NewArray([]value.Value{value.NewInteger(1)})
	cow := find.Find(arr, []value.Scalar{value.NewIntegerScalar(-99)})
	if cow.View().Render() != "" {
		t.Errorf("expected empty render for a past-end negative index, got %q", cow.View().Render())
	}
}

func TestTryFindOnNilRoot(t *testing.T) {
	cow, ok := find.TryFind(nil, []value.Scalar{value.NewString("anything")})
	if ok {
		t.Error("expected ok=false for a nil root")
	}
	if cow.View().TypeName() != "nil" {
		t.Errorf("expected Nil for a nil root, got type %q", cow.View().TypeName())
	}
}

func TestTryFindMissingKeyYieldsNilButOk(t *testing.T) {
	root := value.NewOrderedObject()
	cow, ok := find.TryFind(value.NewObject(root), []value.Scalar{value.NewString("missing")})
	if !ok {
		t.Error("a missing intermediate/terminal key resolves to Nil rather than halting (§4.2 rule 4)")
	}
	if cow.View().Render() != "" {
		t.Errorf("got %q, want empty render for Nil", cow.View().Render())
	}
}
