package value_test

import (
	"math"
	"testing"

	"github.com/codingersid/legit-liquid/value"
)

func TestTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    value.Value
		want bool
	}{
		{"false", value.NewBool(false), false},
		{"true", value.NewBool(true), true},
		{"nil", value.Nil, false},
		{"zero", value.NewInteger(0), true},
		{"empty string", value.NewStringValue(""), true},
	}
	for _, c := range cases {
		if got := c.v.IsTruthy(); got != c.want {
			t.Errorf("%s: IsTruthy() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestArrayNegativeIndex(t *testing.T) {
	arr := value.Array{value.NewInteger(1), value.NewInteger(2), value.NewInteger(3)}
	v, ok := arr.Get(-1)
	if !ok || v.Render() != "3" {
		t.Errorf("Get(-1) = %v, %v, want 3, true", v, ok)
	}
	if _, ok := arr.Get(-99); ok {
		t.Error("Get(-99) should miss on a 3-element array")
	}
}

func TestEqualNaNNeverEqual(t *testing.T) {
	nan := value.NewFloat(math.NaN())
	if value.Equal(nan, nan) {
		t.Error("NaN should never equal itself")
	}
}

func TestEqualCrossRepresentation(t *testing.T) {
	if !value.Equal(value.NewInteger(1), value.NewFloat(1.0)) {
		t.Error("integer 1 should equal float 1.0")
	}
}

func TestCompareIncomparable(t *testing.T) {
	if value.Compare(value.NewInteger(1), value.NewStringValue("a")) != value.Incomparable {
		t.Error("expected an integer/string comparison to be Incomparable")
	}
}

func TestDefaultValueTreatsZeroAsDefault(t *testing.T) {
	if !value.NewInteger(0).IsDefaultValue() {
		t.Error("integer 0 should query true for DefaultValue")
	}
	if value.NewInteger(1).IsDefaultValue() {
		t.Error("a nonzero integer should not query true for DefaultValue")
	}
}

func TestObjectPreservesInsertionOrder(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("b", value.NewInteger(2))
	o.Set("a", value.NewInteger(1))
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("got keys %v, want insertion order [b a]", keys)
	}
}

func TestScalarSourceQuotesStrings(t *testing.T) {
	s := value.NewString("hi")
	if s.Source() != `"hi"` {
		t.Errorf("got %q, want %q", s.Source(), `"hi"`)
	}
	if value.NewIntegerScalar(5).Source() != "5" {
		t.Errorf("integer source should round-trip without quotes")
	}
}

func TestIntegralFloatRendersWithoutTrailingZero(t *testing.T) {
	if got := value.NewFloat(5.0).Render(); got != "5" {
		t.Errorf("got %q, want %q", got, "5")
	}
	if got := value.NewFloat(-2.0).Render(); got != "-2" {
		t.Errorf("got %q, want %q", got, "-2")
	}
	if got := value.NewFloat(2.5).Render(); got != "2.5" {
		t.Errorf("got %q, want %q", got, "2.5")
	}
}
