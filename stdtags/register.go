package stdtags

import "github.com/codingersid/legit-liquid/language"

// Register adds every tag in this package to lang. Callers that want a
// leaner language (core-only, or a custom tag set) can skip this and
// register individual tags/blocks themselves instead.
func Register(lang *language.Language) {
	lang.RegisterTag("assign", "Assign a value to a variable", "name = expr", parseAssign)
	lang.RegisterTag("increment", "Print and post-increment a counter", "name", parseIncrement)
	lang.RegisterTag("decrement", "Pre-decrement and print a counter", "name", parseDecrement)
	lang.RegisterTag("break", "Stop the innermost enclosing loop", "", parseBreak)
	lang.RegisterTag("continue", "Skip to the next loop iteration", "", parseContinue)
	lang.RegisterTag("include", "Render a named partial", "name", parseInclude)

	lang.RegisterBlock("capture", "Render a block into a variable", "name", nil, parseCapture)
	lang.RegisterBlock("if", "Conditionally render a block", "cond", []string{"elsif", "else"}, parseIf)
	lang.RegisterBlock("unless", "Render a block unless a condition holds", "cond", []string{"else"}, parseUnless)
	lang.RegisterBlock("for", "Iterate over a collection", "item in collection", nil, parseFor)
	lang.RegisterBlock("comment", "Discard the enclosed block", "", nil, parseComment)
}
