package runtime

import (
	"sort"

	"github.com/codingersid/legit-liquid/errors"
	"github.com/codingersid/legit-liquid/value"
	"github.com/codingersid/legit-liquid/value/find"
)

type frame struct {
	name    string
	hasName bool
	data    *value.Object
}

func newFrame() frame { return frame{data: value.NewOrderedObject()} }

func newNamedFrame(name string) frame {
	return frame{name: name, hasName: true, data: value.NewOrderedObject()}
}

// Stack is a vector of lexical frames plus a read-only globals view and an
// indexes bucket for the increment/decrement family, per §4.4. The stack
// is never empty: a single bottom "mutable globals" frame exists for the
// runtime's lifetime.
type Stack struct {
	globals value.ObjectView
	frames  []frame
	indexes *value.Object
}

// NewStack creates a stack with the given read-only globals view
// (nil is fine — an empty globals view). The bottom frame is the
// mutable-globals frame `set_global` writes to.
func NewStack(globals value.ObjectView) *Stack {
	return &Stack{
		globals: globals,
		frames:  []frame{newFrame()},
		indexes: value.NewOrderedObject(),
	}
}

// PushFrame pushes an anonymous lexical scope.
func (s *Stack) PushFrame() {
	s.frames = append(s.frames, newFrame())
}

// PushNamedFrame pushes a named lexical scope, used for recursion
// attribution of included partials.
func (s *Stack) PushNamedFrame(name string) {
	s.frames = append(s.frames, newNamedFrame(name))
}

// PopFrame removes the topmost frame. Popping the last frame (size 1) is
// a programming error and panics via errors.Panic, matching §4.4's
// "must panic" invariant.
func (s *Stack) PopFrame() {
	if len(s.frames) <= 1 {
		errors.Panic("Unbalanced push/pop, leaving the stack empty.")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// FrameName returns the nearest named frame walking upward from the top
// of the stack.
func (s *Stack) FrameName() (string, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].hasName {
			return s.frames[i].name, true
		}
	}
	return "", false
}

// Depth reports the current number of frames, used by tests asserting
// scope-discipline invariants (§8 properties 2 and 3).
func (s *Stack) Depth() int {
	return len(s.frames)
}

// TryGet walks path starting from whichever frame owns the first
// segment, returning ok=false only when the first segment itself isn't
// found anywhere in the lookup chain.
func (s *Stack) TryGet(path []value.Scalar) (value.Cow, bool) {
	root, ok := s.findRootFrame(path)
	if !ok {
		return value.Owned(value.Nil), false
	}
	return find.Find(root, path), true
}

// Get is TryGet, except a first-segment miss becomes an "Unknown
// variable" RenderError carrying the requested name and the sorted,
// deduped list of every root name visible from this frame.
func (s *Stack) Get(path []value.Scalar) (value.Cow, error) {
	root, ok := s.findRootFrame(path)
	if !ok {
		key := find.FirstSegmentKey(path)
		return value.Cow{}, &errors.RenderError{
			Message: "Unknown variable",
			Context: []errors.Context{
				{Key: "requested variable", Value: key},
				{Key: "available variables", Value: joinRoots(s.roots())},
			},
		}
	}
	return find.Find(root, path), nil
}

func joinRoots(roots []string) string {
	out := ""
	for i, r := range roots {
		if i > 0 {
			out += ", "
		}
		out += r
	}
	return out
}

// roots lists every root-level name visible from this stack: globals,
// every frame's locals, and the indexes bucket — sorted and deduplicated,
// used for "Unknown variable" error context.
func (s *Stack) roots() []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	if s.globals != nil {
		for _, k := range s.globals.Keys() {
			add(k)
		}
	}
	for _, f := range s.frames {
		for _, k := range f.data.Keys() {
			add(k)
		}
	}
	for _, k := range s.indexes.Keys() {
		add(k)
	}
	sort.Strings(out)
	return out
}

// findRootFrame resolves the first path segment's lookup order: topmost
// frame downward, then globals, then indexes. Subsequent segments
// resolve within whichever root is chosen.
func (s *Stack) findRootFrame(path []value.Scalar) (value.ObjectView, bool) {
	if len(path) == 0 {
		return nil, false
	}
	key := path[0].Render()
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].data.Contains(key) {
			return value.NewObject(s.frames[i].data), true
		}
	}
	if s.globals != nil && s.globals.ContainsKey(key) {
		return s.globals, true
	}
	if s.indexes.Contains(key) {
		return value.NewObject(s.indexes), true
	}
	return nil, false
}

// Set writes to the topmost frame (lexical local).
func (s *Stack) Set(name string, v value.Value) {
	s.frames[len(s.frames)-1].data.Set(name, v)
}

// SetGlobal writes to the bottom frame.
func (s *Stack) SetGlobal(name string, v value.Value) {
	s.frames[0].data.Set(name, v)
}

// SetIndex writes to the increment/decrement indexes bucket, which has a
// stack-independent lifetime from ordinary variables (§4.4, §9).
func (s *Stack) SetIndex(name string, v value.Value) {
	s.indexes.Set(name, v)
}

// GetIndex reads from the indexes bucket.
func (s *Stack) GetIndex(name string) (value.Value, bool) {
	return s.indexes.Get(name)
}
