/*
File    : langc/parser/cursor.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/langc/group"

// cursor walks a sibling list of TokenNodes (a module's top-level children
// or a scope's body children), letting declaration parsers that need a
// following brace-delimited block peek/consume it without the caller
// tracking indices by hand.
type cursor struct {
	nodes []*group.TokenNode
	pos   int
}

func newCursor(nodes []*group.TokenNode) *cursor {
	return &cursor{nodes: nodes}
}

func (c *cursor) done() bool {
	return c.pos >= len(c.nodes)
}

// peek returns the current node without consuming it, or nil at the end.
func (c *cursor) peek() *group.TokenNode {
	if c.done() {
		return nil
	}
	return c.nodes[c.pos]
}

// advance consumes and returns the current node, or nil at the end.
func (c *cursor) advance() *group.TokenNode {
	n := c.peek()
	if n != nil {
		c.pos++
	}
	return n
}

// takeBlock consumes and returns the current node's body if it is a block,
// reporting false (without consuming) otherwise.
func (c *cursor) takeBlock() ([]*group.TokenNode, bool) {
	n := c.peek()
	if n == nil || !n.IsBlock() {
		return nil, false
	}
	c.pos++
	return n.Body(), true
}
