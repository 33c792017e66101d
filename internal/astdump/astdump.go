/*
File    : langc/internal/astdump/astdump.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package astdump renders a module's token tree for debugging: a
human-readable indented dump (kept from the teacher's PrintingVisitor
indent-counter shape) and a JSON dump of the token tree, tagged with the
parsed module's name, to parsertrees/parsertree_<module>.json (spec.md §6).
The rest of the parsed AST is not rendered.
*/
package astdump

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akashmaji946/langc/ast"
	"github.com/akashmaji946/langc/group"
)

const indentSize = 2

// TreeVisitor prints a group.TokenNode tree with two-space indentation per
// nesting level, in the style of the teacher's PrintingVisitor.
type TreeVisitor struct {
	indent int
	buf    bytes.Buffer
}

// VisitNode appends node and its children to the visitor's buffer.
func (v *TreeVisitor) VisitNode(node *group.TokenNode) {
	v.writeIndent()
	if node.IsOpenBrace() || node.IsCloseBrace() {
		v.buf.WriteString(node.Statement[0].Text + "\n")
		return
	}
	if len(node.Statement) > 0 {
		v.buf.WriteString("statement:")
		for _, lx := range node.Statement {
			v.buf.WriteString(" " + lx.Text)
		}
		v.buf.WriteString(fmt.Sprintf(" (line %d)\n", node.Statement[0].Line))
		return
	}
	v.buf.WriteString("block:\n")
	v.indent += indentSize
	for _, child := range node.Children {
		v.VisitNode(child)
	}
	v.indent -= indentSize
}

func (v *TreeVisitor) writeIndent() {
	for i := 0; i < v.indent; i++ {
		v.buf.WriteByte(' ')
	}
}

// String returns the accumulated dump text.
func (v *TreeVisitor) String() string {
	return v.buf.String()
}

// DumpTree renders root as an indented tree string.
func DumpTree(root *group.TokenNode) string {
	v := &TreeVisitor{}
	for _, child := range root.Children {
		v.VisitNode(child)
	}
	return v.String()
}

// jsonNode is the JSON-serializable shape of one TokenNode, since
// group.TokenNode's Statement field holds lexer.Lexeme values directly and
// has no Kind tag of its own for a block vs. a statement.
type jsonNode struct {
	Kind     string      `json:"kind"`
	Text     []string    `json:"text,omitempty"`
	Line     int         `json:"line,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

func toJSONNode(n *group.TokenNode) *jsonNode {
	if n.IsOpenBrace() || n.IsCloseBrace() {
		return &jsonNode{Kind: "brace", Text: []string{n.Statement[0].Text}, Line: n.Statement[0].Line}
	}
	if len(n.Statement) > 0 {
		texts := make([]string, len(n.Statement))
		for i, lx := range n.Statement {
			texts[i] = lx.Text
		}
		return &jsonNode{Kind: "statement", Text: texts, Line: n.Statement[0].Line}
	}
	jn := &jsonNode{Kind: "block"}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, toJSONNode(child))
	}
	return jn
}

// moduleDump is the on-disk shape of parsertrees/parsertree_<module>.json:
// the raw token tree alongside the module name the parser resolved.
type moduleDump struct {
	Module string      `json:"module"`
	Tree   []*jsonNode `json:"tree"`
}

// WriteJSON writes root's token tree to
// <dir>/parsertrees/parsertree_<mod.Name>.json, creating the parsertrees
// directory if needed.
func WriteJSON(dir string, mod *ast.Module, root *group.TokenNode) error {
	outDir := filepath.Join(dir, "parsertrees")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	dump := moduleDump{Module: mod.Name}
	for _, child := range root.Children {
		dump.Tree = append(dump.Tree, toJSONNode(child))
	}

	data, err := json.MarshalIndent(dump, "", "  ")
	if err != nil {
		return err
	}

	name := mod.Name
	if name == "" {
		name = "unnamed"
	}
	outPath := filepath.Join(outDir, fmt.Sprintf("parsertree_%s.json", name))
	return os.WriteFile(outPath, data, 0o644)
}
