// Package liquid is the public façade over the template engine: a
// ParserBuilder that assembles a Language registry (defaulting to the
// stdtags/stdfilters reference plugin set), a Parser that turns source
// text into an immutable render.Template, and a handful of convenience
// functions for the common "parse once, render many times" and
// "parse and render in one call" cases.
package liquid

import (
	"io"

	"github.com/codingersid/legit-liquid/language"
	"github.com/codingersid/legit-liquid/parser"
	"github.com/codingersid/legit-liquid/render"
	"github.com/codingersid/legit-liquid/runtime"
	"github.com/codingersid/legit-liquid/stdfilters"
	"github.com/codingersid/legit-liquid/stdtags"
	"github.com/codingersid/legit-liquid/value"
)

// Version is the current version of this module.
const Version = "1.0.0"

// Option is an alias for runtime.Option, re-exported so callers
// configuring a render call don't need a direct import of the runtime
// package for the common cases.
type Option = runtime.Option

// WithPartials configures the partial-template store `include` resolves
// against.
func WithPartials(store runtime.PartialStore) Option { return runtime.WithPartials(store) }

// WithMaxDepth overrides the render recursion budget.
func WithMaxDepth(n int) Option { return runtime.WithMaxDepth(n) }

// WithMaxIncludeDepth overrides the partial-include recursion budget.
func WithMaxIncludeDepth(n int) Option { return runtime.WithMaxIncludeDepth(n) }

// ParserBuilder assembles a Language registry before any parsing
// happens. The registry is not copied by Build: a Parser shares it with
// the builder that produced it.
type ParserBuilder struct {
	lang *language.Language
}

// NewParserBuilder returns a builder pre-loaded with the stdtags and
// stdfilters reference plugin set. Call Language() to get at the
// underlying registry for additional registrations, or start from
// NewBareParserBuilder for a registry with no plugins at all.
func NewParserBuilder() *ParserBuilder {
	lang := language.New()
	stdtags.Register(lang)
	stdfilters.Register(lang)
	return &ParserBuilder{lang: lang}
}

// NewBareParserBuilder returns a builder with an empty Language: no
// tags, blocks, or filters registered. Useful for embedders that want
// to expose only their own plugin set.
func NewBareParserBuilder() *ParserBuilder {
	return &ParserBuilder{lang: language.New()}
}

// Language exposes the builder's registry for additional
// RegisterTag/RegisterBlock/RegisterFilter calls before Build.
func (b *ParserBuilder) Language() *language.Language { return b.lang }

// Build returns a Parser over the builder's Language. The Parser holds
// the same registry rather than a copy, so registrations made through
// Language() after Build are visible to that Parser as well.
func (b *ParserBuilder) Build() *Parser {
	return &Parser{lang: b.lang}
}

// Parser parses template source against a fixed Language. It holds no
// render-time state and is safe to share and reuse across parses.
type Parser struct {
	lang *language.Language
}

// Parse builds a render.Template from source.
func (p *Parser) Parse(source string) (*render.Template, error) {
	return parser.ParseString(source, p.lang)
}

// Default is a Parser built from NewParserBuilder().Build(), ready to
// use without any setup — the common case for embedders that want the
// full stdtags/stdfilters set with no customization.
var Default = NewParserBuilder().Build()

// ParseString parses source against Default.
func ParseString(source string) (*render.Template, error) {
	return Default.Parse(source)
}

// Render parses source and renders it against data in one call. Callers
// rendering the same source repeatedly should Parse once and call
// Template.Render instead.
func Render(source string, data value.ObjectView, opts ...Option) (string, error) {
	tmpl, err := ParseString(source)
	if err != nil {
		return "", err
	}
	return tmpl.Render(data, opts...)
}

// RenderTo is Render, streaming to w instead of building a string.
func RenderTo(w io.Writer, source string, data value.ObjectView, opts ...Option) error {
	tmpl, err := ParseString(source)
	if err != nil {
		return err
	}
	return tmpl.RenderTo(w, data, opts...)
}
