// Package runtime implements the render-time execution environment: a
// lexically scoped variable Stack, a pluggable partial-template store, a
// type-indexed plugin register area, and the interrupt mechanism that
// implements `break`/`continue` across nested loops — see spec §4.4/§4.5.
package runtime

import (
	"io"
	"reflect"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/value"
)

// Renderable is anything that can emit bytes to a sink given a runtime.
// All AST nodes (package render) and every tag/block plugin implement
// this. Defined here, not in package render, so that PartialStore (which
// lives in this package) can hold Renderable values without an import
// cycle between runtime and render.
type Renderable interface {
	RenderTo(w io.Writer, rt *Runtime) error
}

// PartialStore fetches named sub-templates for `include`. Implementations
// must be synchronous from the core's perspective (§5) even if backed by
// a file system.
type PartialStore interface {
	Get(name string) (Renderable, error)
	TryGet(name string) (Renderable, bool)
	Contains(name string) bool
	Names() []string
}

type nullPartials struct{}

func (nullPartials) Get(name string) (Renderable, error) {
	return nil, &errors.RenderError{
		Message: "Partial does not exist",
		Context: []errors.Context{{Key: "name", Value: name}},
	}
}
func (nullPartials) TryGet(string) (Renderable, bool) { return nil, false }
func (nullPartials) Contains(string) bool             { return false }
func (nullPartials) Names() []string                  { return nil }

// NullPartials is a PartialStore with no entries, used when an embedder
// does not configure one.
var NullPartials PartialStore = nullPartials{}

const (
	defaultMaxDepth        = 500
	defaultMaxIncludeDepth = 16
)

// Runtime aggregates the Stack, a partial-store reference, the interrupt
// state, and a heterogeneous plugin-register area (§4.5). A Runtime is
// built fresh for every render call and is never shared across renders.
type Runtime struct {
	stack     *Stack
	partials  PartialStore
	registers map[reflect.Type]interface{}
	interrupt InterruptState

	depth           int
	maxDepth        int
	includeDepth    int
	maxIncludeDepth int
}

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// WithGlobals seeds the Stack with a read-only globals view borrowed for
// the render call's lifetime.
func WithGlobals(globals value.ObjectView) Option {
	return func(rt *Runtime) { rt.stack = NewStack(globals) }
}

// WithPartials configures the partial-template store `include` resolves
// against.
func WithPartials(store PartialStore) Option {
	return func(rt *Runtime) { rt.partials = store }
}

// WithMaxDepth overrides the render recursion budget (§5 "optional
// budget: max render depth").
func WithMaxDepth(n int) Option {
	return func(rt *Runtime) { rt.maxDepth = n }
}

// WithMaxIncludeDepth overrides the partial-include recursion budget.
func WithMaxIncludeDepth(n int) Option {
	return func(rt *Runtime) { rt.maxIncludeDepth = n }
}

// New builds a Runtime ready to drive a single render call.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		stack:           NewStack(nil),
		partials:        NullPartials,
		registers:       make(map[reflect.Type]interface{}),
		maxDepth:        defaultMaxDepth,
		maxIncludeDepth: defaultMaxIncludeDepth,
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Stack exposes the current variable Stack.
func (rt *Runtime) Stack() *Stack { return rt.stack }

// Partials exposes the partial-template store for inclusion.
func (rt *Runtime) Partials() PartialStore { return rt.partials }

// Interrupt exposes the block-interrupt state.
func (rt *Runtime) Interrupt() *InterruptState { return &rt.interrupt }

// GetRegister returns this Runtime's state object for plugin type T,
// default-constructing it on first access. Different plugin types never
// alias: the map key is T's reflect.Type, giving each registered type its
// own slot (§4.5, §9 "plugin register heterogeneity").
func GetRegister[T any](rt *Runtime) *T {
	var zero T
	key := reflect.TypeOf(zero)
	if existing, ok := rt.registers[key]; ok {
		return existing.(*T)
	}
	fresh := new(T)
	rt.registers[key] = fresh
	return fresh
}

// RunInScope pushes an anonymous frame, invokes f, and pops the frame
// regardless of how f returns — including after render errors — via
// defer, Go's answer to the destructor-based scope guard spec §4.4/§5
// requires.
func (rt *Runtime) RunInScope(f func(*Runtime) error) error {
	rt.stack.PushFrame()
	defer rt.stack.PopFrame()
	return f(rt)
}

// RunInNamedScope is RunInScope with a named frame, used for recursion
// attribution of included partials (FrameName()).
func (rt *Runtime) RunInNamedScope(name string, f func(*Runtime) error) error {
	rt.stack.PushNamedFrame(name)
	defer rt.stack.PopFrame()
	return f(rt)
}

// EnterDepth increments the render-recursion counter, failing once
// MaxDepth is exceeded. Every recursive construct (block bodies invoking
// child Renderables, `include`) should bracket its work with
// EnterDepth/ExitDepth.
func (rt *Runtime) EnterDepth() error {
	rt.depth++
	if rt.depth > rt.maxDepth {
		rt.depth--
		return errors.NewRenderError("Render recursion depth exceeded")
	}
	return nil
}

// ExitDepth undoes EnterDepth.
func (rt *Runtime) ExitDepth() { rt.depth-- }

// EnterInclude increments the partial-include recursion counter.
func (rt *Runtime) EnterInclude() error {
	rt.includeDepth++
	if rt.includeDepth > rt.maxIncludeDepth {
		rt.includeDepth--
		return errors.NewRenderError("Partial recursion depth exceeded")
	}
	return nil
}

// ExitInclude undoes EnterInclude.
func (rt *Runtime) ExitInclude() { rt.includeDepth-- }
