/*
File    : langc/ast/types.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package ast

// TypeKind discriminates the composite shape a TypeInfo settled into once
// the type-expression parser (package typeexpr) finished its walk.
type TypeKind int

const (
	// Scalar is a flat named type with no pointer or array decoration.
	Scalar TypeKind = iota
	// PointerTo is `ptr:Base`.
	PointerTo
	// DynamicArray is `Base[]`.
	DynamicArray
	// StaticArray is `Base[N]` for an unsigned integer literal N.
	StaticArray
	// AssocArray is `Value[Key]`.
	AssocArray
)

// TypeEntry is the accumulator spec.md §4.E's left-to-right walk builds: one
// base type mention, optionally pointer-prefixed and mutability-suffixed.
type TypeEntry struct {
	IsPointer  bool
	Base       string
	Mutability string
}

// TypeInfo is the parsed shape of a type-expression spread (spec.md §3/§4.E).
type TypeInfo struct {
	Kind       TypeKind
	IsPointer  bool   // meaningful for Scalar/PointerTo (the promoted entry's pointer bit)
	Base       string // meaningful for Scalar/PointerTo
	Mutability string // the outer type's trailing mutability, if any
	Size       string // StaticArray only: the literal unsigned integer text
	Elem       *TypeEntry // DynamicArray/StaticArray: the element type entry
	Key        *TypeEntry // AssocArray: the key type entry (from inside `[...]`)
	Value      *TypeEntry // AssocArray: the value type entry (from before `[...]`)
	Name       string     // the identifier this type spread was attached to, if any
	Line       int
}
