package render

import (
	"bytes"
	"io"

	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/value"
)

// Template is an immutable, parsed render tree. It is safe to share
// across goroutines and render concurrently, provided each render call
// builds its own Runtime (§5) — Render/RenderTo do exactly that.
type Template struct {
	Root Sequence
}

// RenderTo streams the template's output to w against data, using opts
// to configure the Runtime (partial store, recursion budgets, ...).
func (t *Template) RenderTo(w io.Writer, data value.ObjectView, opts ...runtime.Option) error {
	allOpts := append([]runtime.Option{runtime.WithGlobals(data)}, opts...)
	rt := runtime.New(allOpts...)
	return t.Root.RenderTo(w, rt)
}

// Render renders the template to a string.
func (t *Template) Render(data value.ObjectView, opts ...runtime.Option) (string, error) {
	var buf bytes.Buffer
	if err := t.RenderTo(&buf, data, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
