/*
File    : langc/group/tree.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package group implements the parse-tree grouper (spec.md §4.C): it turns a
flat Lexeme stream into a hierarchical TokenNode tree split on `;` and
brace-delimited blocks, so the recursive-descent parser never has to track
brace depth itself.
*/
package group

import "github.com/akashmaji946/langc/lexer"

// TokenNode is one node of the grouped parse tree. Either Statement holds
// the flat lexemes of one semicolon-terminated "line" (Children empty), or
// the node is a block: Statement is empty and Children opens with a
// singleton `{` sentinel, holds the block's own statement/block children,
// and closes with a singleton `}` sentinel (see IsBlock/Body).
//
// parent links are not retained once the tree is built (spec.md §9): Build
// uses an explicit stack of open scopes instead of back-pointers.
type TokenNode struct {
	Statement []lexer.Lexeme
	Children  []*TokenNode
}

// IsOpenBrace reports whether this node is the singleton `{` sentinel.
func (n *TokenNode) IsOpenBrace() bool {
	return len(n.Statement) == 1 && n.Statement[0].Text == "{"
}

// IsCloseBrace reports whether this node is the singleton `}` sentinel.
func (n *TokenNode) IsCloseBrace() bool {
	return len(n.Statement) == 1 && n.Statement[0].Text == "}"
}

// IsBlock reports whether this node represents a brace-delimited block: its
// first child opens and its last child closes.
func (n *TokenNode) IsBlock() bool {
	return len(n.Children) >= 2 && n.Children[0].IsOpenBrace() && n.Children[len(n.Children)-1].IsCloseBrace()
}

// Body returns the block's inner children (excluding the `{`/`}`
// sentinels). Only meaningful when IsBlock is true.
func (n *TokenNode) Body() []*TokenNode {
	if !n.IsBlock() {
		return nil
	}
	return n.Children[1 : len(n.Children)-1]
}

// frame is one entry of the build-time stack of open scopes.
type frame struct {
	node *TokenNode
}

// Build groups a flat lexeme stream into a TokenNode tree per spec.md §4.C:
//
//   - `;` closes the current statement.
//   - `{` opens a new block node (attached as one child of the current
//     parent) whose first child is a singleton `{` sentinel, then descends
//     into it.
//   - `}` closes the current statement, appends a singleton `}` sentinel as
//     the block's last child, and returns to the parent scope.
//   - A stray `"` toggles string-absorption mode that concatenates all
//     intervening lexemes into one preserved string lexeme (defensive
//     against the lexer, which yields an unterminated string lexeme only
//     when a string literal runs to EOF without a closing quote).
//   - An attribute heuristic: if the next lexeme is `:` and the current
//     accumulator is either a bare attribute keyword or an `@...` call, the
//     trailing `:` is absorbed into the same statement, which is then
//     terminated.
//   - Everything else appends to the current statement.
//
// A trailing statement that no `;`, `{` or `}` closes is not added to the
// tree.
func Build(lexemes []lexer.Lexeme) *TokenNode {
	root := &TokenNode{}
	stack := []frame{{node: root}}
	var current []lexer.Lexeme
	inString := false

	top := func() *frame { return &stack[len(stack)-1] }

	closeStatement := func() {
		if len(current) == 0 {
			return
		}
		top().node.Children = append(top().node.Children, &TokenNode{Statement: current})
		current = nil
	}

	isAttributeKeyword := func(text string) bool {
		switch text {
		case "public", "private", "protected", "package", "static", "immutable", "const", "mut":
			return true
		}
		return false
	}

	for i := 0; i < len(lexemes); i++ {
		lx := lexemes[i]

		if inString {
			// Defensive string-absorption: concatenate until the lexeme
			// that carries the closing quote.
			last := &current[len(current)-1]
			last.Text += lx.Text
			if len(lx.Text) > 0 && lx.Text[len(lx.Text)-1] == '"' {
				inString = false
			}
			continue
		}

		switch lx.Text {
		case ";":
			closeStatement()
			continue

		case "{":
			closeStatement()
			newScope := &TokenNode{Children: []*TokenNode{{Statement: []lexer.Lexeme{lx}}}}
			top().node.Children = append(top().node.Children, newScope)
			stack = append(stack, frame{node: newScope})
			continue

		case "}":
			closeStatement()
			top().node.Children = append(top().node.Children, &TokenNode{Statement: []lexer.Lexeme{lx}})
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
			continue
		}

		if lx.Kind == lexer.String && len(lx.Text) > 0 && lx.Text[0] == '"' &&
			(len(lx.Text) == 1 || lx.Text[len(lx.Text)-1] != '"') {
			current = append(current, lx)
			inString = true
			continue
		}

		if lx.Text == ":" && len(current) > 0 {
			first := current[0]
			isAttrCall := len(first.Text) > 0 && first.Text[0] == '@'
			if (len(current) == 1 && isAttributeKeyword(first.Text)) || isAttrCall {
				current = append(current, lx)
				closeStatement()
				continue
			}
		}

		current = append(current, lx)
	}

	return root
}
