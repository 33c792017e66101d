/*
File    : langc/classify/classify.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package classify implements the Classifier (spec.md §4.D): it maps the
leading lexeme(s) of a statement to a production tag that selects which
statement/declaration parser runs next.
*/
package classify

import "github.com/akashmaji946/langc/lexer"

// Tag discriminates which production a statement belongs to.
type Tag int

const (
	// EMPTY marks a statement with no lexemes (e.g. a lone `;`).
	EMPTY Tag = iota
	// UNKNOWN is the fall-through when no production recognizes the
	// leading lexeme(s).
	UNKNOWN

	MODULE      // module <ident>;
	IMPORT      // import <ident> [: members];
	INCLUDE     // include "<path>";
	INTERNAL    // internal fn ...;
	ALIAS       // alias name [(params)] = RHS;
	THIS        // this(...) { ... } constructor
	STATIC_THIS // static this / shared static this
	FUNCTION    // fn name(...)...
	STRUCT      // struct / ref struct
	INTERFACE   // interface Name { ... }
	TEMPLATE    // template Name(...) { ... }
	TRAITS      // traits(...)
	STATIC_IF   // static if (...) { ... }
	STATIC_ELSE // static else { ... }
	VARIABLE    // var [type] name [= expr];
	ENUM        // enum name [: type] = expr; or enum name [: type] { ... }
	ATTRIBUTE   // public/private/.../@Ctor(args):
	RETURN      // return [expr];
	IF          // if <expr> { ... }
	ELSE        // else [if] ...
	SWITCH      // switch <expr> { ... }
	FOR         // for init, cond, post { ... }
	FOREACH     // foreach index[, index2], range { ... }
	WHILE       // while <expr> { ... }
	DO          // do { ... } while(...);
	BREAK       // break;
	CONTINUE    // continue;
)

// String names a Tag for diagnostics and debug dumps.
func (t Tag) String() string {
	switch t {
	case EMPTY:
		return "EMPTY"
	case MODULE:
		return "MODULE"
	case IMPORT:
		return "IMPORT"
	case INCLUDE:
		return "INCLUDE"
	case INTERNAL:
		return "INTERNAL"
	case ALIAS:
		return "ALIAS"
	case THIS:
		return "THIS"
	case STATIC_THIS:
		return "STATIC_THIS"
	case FUNCTION:
		return "FUNCTION"
	case STRUCT:
		return "STRUCT"
	case INTERFACE:
		return "INTERFACE"
	case TEMPLATE:
		return "TEMPLATE"
	case TRAITS:
		return "TRAITS"
	case STATIC_IF:
		return "STATIC_IF"
	case STATIC_ELSE:
		return "STATIC_ELSE"
	case VARIABLE:
		return "VARIABLE"
	case ENUM:
		return "ENUM"
	case ATTRIBUTE:
		return "ATTRIBUTE"
	case RETURN:
		return "RETURN"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case SWITCH:
		return "SWITCH"
	case FOR:
		return "FOR"
	case FOREACH:
		return "FOREACH"
	case WHILE:
		return "WHILE"
	case DO:
		return "DO"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	default:
		return "UNKNOWN"
	}
}

// attributeKeywords are the bare keyword attributes of spec.md §3.
var attributeKeywords = map[string]bool{
	"public": true, "private": true, "protected": true, "package": true,
	"static": true, "immutable": true, "const": true, "mut": true,
}

// Classify maps the leading lexemes of a statement to its production tag.
// Two-word keys use the concatenation of the first two lexemes' text;
// `shared static this` uses three.
func Classify(statement []lexer.Lexeme) Tag {
	if len(statement) == 0 {
		return EMPTY
	}

	first := statement[0].Text

	if len(statement) >= 3 && first == "shared" && statement[1].Text == "static" && statement[2].Text == "this" {
		return STATIC_THIS
	}

	if len(statement) >= 2 {
		switch first + " " + statement[1].Text {
		case "static this":
			return STATIC_THIS
		case "static if":
			return STATIC_IF
		case "static else":
			return STATIC_ELSE
		case "ref struct":
			return STRUCT
		}
	}

	switch first {
	case "module":
		return MODULE
	case "import":
		return IMPORT
	case "include":
		return INCLUDE
	case "internal":
		return INTERNAL
	case "alias":
		return ALIAS
	case "this":
		return THIS
	case "fn":
		return FUNCTION
	case "struct":
		return STRUCT
	case "interface":
		return INTERFACE
	case "template":
		return TEMPLATE
	case "traits":
		return TRAITS
	case "var":
		return VARIABLE
	case "enum":
		return ENUM
	case "return":
		return RETURN
	case "if":
		return IF
	case "else":
		return ELSE
	case "switch":
		return SWITCH
	case "for":
		return FOR
	case "foreach":
		return FOREACH
	case "while":
		return WHILE
	case "do":
		return DO
	case "break":
		return BREAK
	case "continue":
		return CONTINUE
	}

	if attributeKeywords[first] {
		return ATTRIBUTE
	}
	if len(first) > 0 && first[0] == '@' {
		return ATTRIBUTE
	}

	return UNKNOWN
}
