/*
File    : langc/cmd/langc/repl.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Repl is the teacher's repl/repl.go banner/readline/color shape, re-pointed
from "evaluate an expression and print its value" to "lex, group, and parse
one snippet and pretty-print its token tree" — this front-end has no
evaluator.
*/
package main

import (
	"io"
	"strings"

	"github.com/akashmaji946/langc/diag"
	"github.com/akashmaji946/langc/group"
	"github.com/akashmaji946/langc/internal/astdump"
	"github.com/akashmaji946/langc/lexer"
	"github.com/akashmaji946/langc/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a debug shell that lexes, groups, and parses one snippet at a
// time and prints the resulting token tree and any diagnostics.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl instance ready to Start.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBanner writes the startup banner and short usage instructions.
func (r *Repl) PrintBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "langc debug shell %s\n", r.Version)
	cyanColor.Fprintln(w, "Type a snippet and press enter; '.exit' quits.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the read-lex-group-parse-print loop until '.exit' or EOF.
func (r *Repl) Start(w io.Writer) {
	r.PrintBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Good bye!\n")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			io.WriteString(w, "Good bye!\n")
			return
		}
		rl.SaveHistory(line)
		r.evalSnippet(w, line)
	}
}

func (r *Repl) evalSnippet(w io.Writer, line string) {
	diags := diag.New(w)
	lexemes := lexer.New(line).Lex()
	root := group.Build(lexemes)
	mod, _ := parser.ParseModule(root, "<repl>", diags)
	yellowColor.Fprintln(w, astdump.DumpTree(root))
	if mod.Name != "" {
		cyanColor.Fprintf(w, "module: %s\n", mod.Name)
	}
}
