package render_test

import (
	"io"
	"strings"
	"testing"

	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

func newRuntime(globals value.ObjectView) *runtime.Runtime {
	return runtime.New(runtime.WithGlobals(globals))
}

func path(names ...string) render.Path {
	segs := make([]render.PathSegment, len(names))
	for i, n := range names {
		segs[i] = render.PathSegment{Literal: value.NewString(n), IsLiteral: true}
	}
	return render.Path{Segments: segs}
}

func TestTextNodeRenderTo(t *testing.T) {
	var buf strings.Builder
	if err := (render.TextNode{Content: "hello"}).RenderTo(&buf, newRuntime(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "hello" {
		t.Errorf("got %q, want %q", buf.String(), "hello")
	}
}

func TestOutputNodeRendersExprResult(t *testing.T) {
	var buf strings.Builder
	node := render.OutputNode{Expr: render.Literal{Value: value.NewInteger(7)}}
	if err := node.RenderTo(&buf, newRuntime(nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "7" {
		t.Errorf("got %q, want %q", buf.String(), "7")
	}
}

func TestPathResolvesAgainstStack(t *testing.T) {
	o := value.NewOrderedObject()
	o.Set("name", value.NewStringValue("ann"))
	rt := newRuntime(value.NewObject(o))

	cow, err := path("name").Eval(rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cow.View().Render() != "ann" {
		t.Errorf("got %q, want %q", cow.View().Render(), "ann")
	}
}

func TestComparisonEmptyState(t *testing.T) {
	rt := newRuntime(nil)
	cmp := render.Comparison{
		Left:  render.Literal{Value: value.NewArray(nil)},
		Right: render.Literal{Value: value.NewState(value.StateEmpty)},
		Op:    render.OpEq,
	}
	cow, err := cmp.Eval(rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cow.View().Render() != "true" {
		t.Errorf("expected an empty array to equal the `empty` state, got %q", cow.View().Render())
	}
}

func TestLogicalAndShortCircuits(t *testing.T) {
	rt := newRuntime(nil)
	// The right side would error if evaluated (missing variable); `and`
	// with a falsy left side must never reach it.
	logical := render.Logical{
		Left:  render.Literal{Value: value.NewBool(false)},
		Right: path("nosuch"),
		Op:    render.OpAnd,
	}
	cow, err := logical.Eval(rt)
	if err != nil {
		t.Fatalf("unexpected error (and should short-circuit): %v", err)
	}
	if cow.View().Render() != "false" {
		t.Errorf("got %q, want %q", cow.View().Render(), "false")
	}
}

func TestComparisonContainsOnString(t *testing.T) {
	rt := newRuntime(nil)
	cmp := render.Comparison{
		Left:  render.Literal{Value: value.NewStringValue("hello world")},
		Right: render.Literal{Value: value.NewStringValue("wor")},
		Op:    render.OpContains,
	}
	cow, err := cmp.Eval(rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cow.View().Render() != "true" {
		t.Errorf("expected contains to find a substring, got %q", cow.View().Render())
	}
}

// settingNode marks the interrupt state true as a side effect of
// rendering, standing in for a `break`/`continue` tag.
type settingNode struct{}

func (settingNode) RenderTo(w io.Writer, rt *runtime.Runtime) error {
	_, err := io.WriteString(w, "A")
	if err != nil {
		return err
	}
	rt.Interrupt().Set(runtime.Break)
	return nil
}

func TestSequenceStopsOnInterrupt(t *testing.T) {
	rt := newRuntime(nil)
	var buf strings.Builder
	seq := render.Sequence{Nodes: []runtime.Renderable{
		settingNode{},
		render.TextNode{Content: "B"},
	}}
	if err := seq.RenderTo(&buf, rt); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "A" {
		t.Errorf("expected the sequence to stop after the interrupting node, got %q", buf.String())
	}
}
