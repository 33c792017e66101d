/*
File    : langc/parser/context.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package parser implements the recursive-descent parser (spec.md §4.G, §4.H,
§4.I): it walks the grouped token tree, consulting classify, typeexpr, and
exprcore, registering faults with diag, and produces a module AST graph.
*/
package parser

import (
	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/scopehandler"
)

// Context replaces the process-wide mutable state spec.md §5 and §9 call
// out (queued errors, pending attributes, cached do-body, scope-handler
// stack, verbose flag) with one value threaded through every parser entry
// point. One Context serves one module's compilation; two Contexts
// compiling two different files share no state and may run on separate
// goroutines.
type Context struct {
	Diags  *diag.Diagnostics
	Source string
	Verbose bool

	pendingAttrs []ast.Attribute
	pendingDo    []ast.ScopeItem
	hasPendingDo bool
	handlers     scopehandler.Stack
	sawModule    bool
}

// NewContext creates a Context for compiling one module from source.
func NewContext(source string, diags *diag.Diagnostics) *Context {
	return &Context{Diags: diags, Source: source}
}

// bufferAttributes appends newly parsed attributes to the pending slot.
func (c *Context) bufferAttributes(attrs []ast.Attribute) {
	c.pendingAttrs = append(c.pendingAttrs, attrs...)
}

// takeAttributes drains and returns the pending attributes, leaving the
// slot empty for the next declaration.
func (c *Context) takeAttributes() []ast.Attribute {
	if len(c.pendingAttrs) == 0 {
		return nil
	}
	out := c.pendingAttrs
	c.pendingAttrs = nil
	return out
}

// setPendingDo caches a `do` body awaiting the `while` that completes it
// into a DoWhile.
func (c *Context) setPendingDo(body []ast.ScopeItem) {
	c.pendingDo = body
	c.hasPendingDo = true
}

// takePendingDo drains the cached `do` body, reporting whether one was
// pending.
func (c *Context) takePendingDo() ([]ast.ScopeItem, bool) {
	if !c.hasPendingDo {
		return nil, false
	}
	body := c.pendingDo
	c.pendingDo = nil
	c.hasPendingDo = false
	return body, true
}
