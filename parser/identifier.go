/*
File    : langc/parser/identifier.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// reservedWords may not be used as a declared identifier; they are
// statement-leading keywords the classifier already recognizes.
var reservedWords = map[string]bool{
	"module": true, "import": true, "include": true, "internal": true,
	"alias": true, "this": true, "fn": true, "struct": true, "interface": true,
	"template": true, "traits": true, "var": true, "enum": true, "return": true,
	"if": true, "else": true, "switch": true, "case": true, "default": true,
	"final": true, "for": true, "foreach": true, "while": true, "do": true,
	"static": true, "shared": true, "public": true, "private": true,
	"protected": true, "package": true, "immutable": true, "const": true,
	"mut": true, "ptr": true, "break": true, "continue": true, "void": true,
}

// validIdentifier reports whether text is a legal, non-reserved identifier:
// non-empty, starting with a letter or underscore, and not a structural
// symbol (spec.md §7's invalid-identifier error kind).
func validIdentifier(text string) bool {
	if len(text) == 0 || reservedWords[text] {
		return false
	}
	c := text[0]
	if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}
	for i := 1; i < len(text); i++ {
		c := text[i]
		if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
			return false
		}
	}
	return true
}
