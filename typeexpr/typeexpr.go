/*
File    : langc/typeexpr/typeexpr.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package typeexpr implements the type-expression parser (spec.md §4.E): it
parses composite types with mutability, pointer, array, and associative-array
forms from a flat lexeme spread, e.g. `ptr:int[10]:const`.
*/
package typeexpr

import (
	"strconv"

	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/lexer"
)

func isMutabilityKeyword(text string) bool {
	return text == "immutable" || text == "const" || text == "mut"
}

func isUnsignedInteger(text string) bool {
	if text == "" {
		return false
	}
	_, err := strconv.ParseUint(text, 10, 64)
	return err == nil
}

// Parse parses a type-expression spread. tokens is the raw lexeme sequence
// of the type, not including the declared identifier it is attached to (the
// caller sets TypeInfo.Name once it has parsed that separately). Returns
// the parsed TypeInfo and whether parsing succeeded without error.
func Parse(tokens []lexer.Lexeme, source string, diags *diag.Diagnostics) (*ast.TypeInfo, bool) {
	if len(tokens) == 0 {
		return nil, false
	}
	line := tokens[0].Line
	ok := true

	var entries []ast.TypeEntry
	var cur ast.TypeEntry

	pushCur := func() {
		if cur.Base != "" || cur.IsPointer {
			entries = append(entries, cur)
			cur = ast.TypeEntry{}
		}
	}

	var (
		bracketOpened      bool
		inBracket          bool
		dynamicArray       bool
		staticArray        bool
		arraySize          string
		trailingMutability string
		afterArrayClose    bool
	)

	fail := func(format string, args ...interface{}) {
		ok = false
		diags.Emit(source, line, format, args...)
	}

	for _, lx := range tokens {
		text := lx.Text
		if text == ":" {
			continue // colon is a silent separator, per spec.md §4.E
		}

		switch {
		case text == "[":
			if bracketOpened {
				fail("multiple array levels in type expression")
				continue
			}
			bracketOpened = true
			inBracket = true
			pushCur()

		case text == "]":
			if !inBracket {
				fail("unbalanced ']' in type expression")
				continue
			}
			inBracket = false
			switch {
			case cur.Base == "" && !cur.IsPointer && arraySize == "":
				dynamicArray = true
			case arraySize != "":
				staticArray = true
			default:
				pushCur()
			}
			afterArrayClose = true

		case inBracket:
			switch {
			case isUnsignedInteger(text):
				if arraySize != "" {
					fail("multiple sizes in array type expression")
				} else {
					arraySize = text
				}
			case text == "ptr":
				if cur.IsPointer {
					fail("multiple pointer prefixes in type expression")
				} else {
					cur.IsPointer = true
				}
			case isMutabilityKeyword(text):
				if cur.Base == "" {
					fail("mutability keyword %q must follow a base type", text)
				} else if cur.Mutability != "" {
					fail("unknown post-type attribute %q", text)
				} else {
					cur.Mutability = text
				}
			default:
				if cur.Base == "" && arraySize == "" && looksNumericSize(text) {
					fail("non-integer array size %q", text)
				} else if cur.Base != "" {
					fail("too many types in type expression")
				} else {
					cur.Base = text
				}
			}

		case afterArrayClose:
			if isMutabilityKeyword(text) && trailingMutability == "" {
				trailingMutability = text
			} else {
				fail("unknown post-type attribute %q", text)
			}

		default:
			switch {
			case text == "ptr":
				if cur.IsPointer {
					fail("multiple pointer prefixes in type expression")
				} else {
					cur.IsPointer = true
				}
			case isMutabilityKeyword(text):
				if cur.Base == "" {
					fail("mutability keyword %q must follow a base type", text)
				} else if cur.Mutability != "" {
					fail("unknown post-type attribute %q", text)
				} else {
					cur.Mutability = text
				}
			default:
				if cur.Base != "" {
					fail("too many types in type expression")
				} else {
					cur.Base = text
				}
			}
		}
	}

	if inBracket {
		fail("missing ']' in type expression")
	}
	pushCur()

	result := &ast.TypeInfo{Line: line}

	if !bracketOpened && !dynamicArray && !staticArray {
		switch len(entries) {
		case 0:
			fail("missing base type in type expression")
			return result, false
		case 1:
			e := entries[0]
			result.IsPointer = e.IsPointer
			result.Base = e.Base
			result.Mutability = e.Mutability
			if e.IsPointer {
				result.Kind = ast.PointerTo
			} else {
				result.Kind = ast.Scalar
			}
		default:
			fail("too many types in type expression")
		}
		return result, ok
	}

	switch len(entries) {
	case 1:
		elem := entries[0]
		result.Elem = &elem
		result.Mutability = trailingMutability
		if staticArray {
			result.Kind = ast.StaticArray
			result.Size = arraySize
		} else {
			result.Kind = ast.DynamicArray
		}
	case 2:
		value := entries[0]
		key := entries[1]
		result.Kind = ast.AssocArray
		result.Value = &value
		result.Key = &key
		result.Mutability = trailingMutability
	default:
		fail("missing base type in array type expression")
	}

	return result, ok
}

// looksNumericSize is a defensive check used only to produce the
// non-integer-size diagnostic when a bracket interior starts with a digit
// but is not a clean unsigned integer (e.g. "10px").
func looksNumericSize(text string) bool {
	return len(text) > 0 && text[0] >= '0' && text[0] <= '9'
}
