package runtime

import "github.com/codingersid/legit-liquid/value"

// Expr is the contract every expression-AST node fulfills against a
// Runtime: evaluate to a value.Cow by resolving variable paths against
// the Stack. Defined here (not in package render, where the concrete
// expression nodes live) for the same reason Renderable is: it lets
// package language describe filter/tag argument shapes without an
// import cycle between render and language.
type Expr interface {
	Eval(rt *Runtime) (value.Cow, error)
}
