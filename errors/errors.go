// Package errors defines the structured error values produced by the parser
// and the render runtime. Every error carries a primary message plus an
// ordered trail of context entries describing which tag/block/partial was
// executing when the failure occurred.
package errors

import (
	"fmt"
	"strings"
)

// Location pinpoints a position in template source.
type Location struct {
	Line   int
	Column int
	Offset int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Context is a single (key, value) entry attached to an error as it
// propagates through enclosing tags and blocks.
type Context struct {
	Key   string
	Value string
}

// ParseError is returned by the lexer and parser: unknown tag/block/filter,
// unexpected token, unterminated string or block, duplicate keyword
// argument.
type ParseError struct {
	Message  string
	Location Location
	HasLoc   bool
	Context  []Context
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.HasLoc {
		fmt.Fprintf(&b, " at %s", e.Location)
	}
	for _, c := range e.Context {
		fmt.Fprintf(&b, "\n  %s: %s", c.Key, c.Value)
	}
	return b.String()
}

// WithContext returns a copy of e with an additional context entry
// appended, letting enclosing parse frames annotate the error as it
// bubbles up without losing the original message.
func (e *ParseError) WithContext(key string, value fmt.Stringer) *ParseError {
	return e.withContext(key, value.String())
}

// WithContextString is WithContext for a plain string value.
func (e *ParseError) WithContextString(key, value string) *ParseError {
	return e.withContext(key, value)
}

func (e *ParseError) withContext(key, value string) *ParseError {
	next := *e
	next.Context = append(append([]Context{}, e.Context...), Context{Key: key, Value: value})
	return &next
}

// NewParseError builds a ParseError with no location attached yet.
func NewParseError(msg string) *ParseError {
	return &ParseError{Message: msg}
}

// At attaches a source location to a ParseError, returning the receiver.
func (e *ParseError) At(loc Location) *ParseError {
	e.Location = loc
	e.HasLoc = true
	return e
}

// RenderError is returned from render_to: unknown variable, filter
// failure, missing partial, recursion depth exceeded, sink I/O failure.
type RenderError struct {
	Message string
	Context []Context
	Cause   error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	for _, c := range e.Context {
		fmt.Fprintf(&b, "\n  %s: %s", c.Key, c.Value)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, "\n  cause: %s", e.Cause)
	}
	return b.String()
}

func (e *RenderError) Unwrap() error { return e.Cause }

// WithContext returns a copy of e with an additional context entry
// appended. Enclosing tags/blocks use this to attach their own name,
// the partial file, or the loop iteration index before bubbling the
// error further up the render call stack.
func (e *RenderError) WithContext(key, value string) *RenderError {
	next := *e
	next.Context = append(append([]Context{}, e.Context...), Context{Key: key, Value: value})
	return &next
}

// NewRenderError builds a RenderError with the given message.
func NewRenderError(msg string) *RenderError {
	return &RenderError{Message: msg}
}

// Wrap builds a RenderError wrapping an underlying cause, e.g. a sink
// I/O failure from the embedder's io.Writer.
func Wrap(msg string, cause error) *RenderError {
	return &RenderError{Message: msg, Cause: cause}
}

// InternalError indicates a programming error in a plugin or in the core
// itself — an invariant violation such as an unbalanced stack push/pop or
// a missing global frame. These are raised via panic, never returned,
// because they signal a bug rather than a user-facing failure.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }

// Panic raises an InternalError. Callers use this instead of a bare
// panic(string) so that recover sites can type-assert *InternalError.
func Panic(msg string) {
	panic(&InternalError{Message: msg})
}
