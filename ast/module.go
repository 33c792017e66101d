/*
File    : langc/ast/module.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the typed abstract syntax tree the front-end produces
// (spec.md §3). Every node type here is owned by its parent and lives for
// the compilation of one module; Module is the root owner.
package ast

// Module is the root of one compiled file's AST.
type Module struct {
	Name       string
	Source     string // the source-file label used in diagnostics
	Line       int
	Attributes []Attribute

	Imports           []Import
	Includes          []Include
	Functions         []Function
	InternalFunctions []InternalFunction
	Variables         []Variable
	Aliases           []Alias
	Enums             []Enum
}
