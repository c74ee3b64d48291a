package stdfilters

import "github.com/codingersid/legit-liquid/language"

// Register adds every filter in this package to lang.
func Register(lang *language.Language) {
	lang.RegisterFilter("upcase", "Uppercase a string", "", parseUpcase)
	lang.RegisterFilter("downcase", "Lowercase a string", "", parseDowncase)
	lang.RegisterFilter("append", "Concatenate a suffix onto a string", "suffix", parseAppend)
	lang.RegisterFilter("plus", "Add a number", "n", parsePlus)
	lang.RegisterFilter("minus", "Subtract a number", "n", parseMinus)
	lang.RegisterFilter("default", "Substitute a fallback for a default-ish value", "fallback", parseDefault)
	lang.RegisterFilter("size", "Length of a string, array, or object", "", parseSize)
	lang.RegisterFilter("first", "First element of an array", "", parseFirst)
	lang.RegisterFilter("last", "Last element of an array", "", parseLast)
	lang.RegisterFilter("reverse", "Reverse an array", "", parseReverse)
	lang.RegisterFilter("sort", "Sort an array", "", parseSort)
	lang.RegisterFilter("uniq", "Remove duplicate elements from an array", "", parseUniq)
	lang.RegisterFilter("join", "Join array elements with a separator", "sep", parseJoin)
	lang.RegisterFilter("map", "Project a property out of an array of objects", "property", parseMap)
}
