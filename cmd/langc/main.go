/*
File    : langc/cmd/langc/main.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)

Package main is the entry driver (spec.md §6's "entry driver" external
collaborator): it loads a project file, walks its source paths, compiles
every module, prints diagnostics, and exits non-zero on error. Business
logic beyond this wiring is out of scope per spec.md §1.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/akashmaji946/langc/project"
	"github.com/akashmaji946/langc/source"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	version = "v0.1.0"
	banner  = `langc — a statically-typed C-family front-end`
	line    = "----------------------------------------------------------------"
	prompt  = "langc >>> "
)

func main() {
	replFlag := flag.Bool("repl", false, "launch an interactive debug shell")
	dumpFlag := flag.Bool("dump-trees", false, "write parsertrees/parsertree_<module>.json per module")
	flag.Parse()

	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}

	if *replFlag {
		NewRepl(banner, version, line, prompt).Start(os.Stdout)
		return
	}

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: langc [--repl] [--dump-trees] <project-root> <project-file>")
		os.Exit(2)
	}
	root, projectFile := args[0], args[1]

	proj, err := project.Load(filepath.Join(root, projectFile))
	if err != nil {
		errorColor.Fprintf(os.Stderr, "could not load project file %q: %v\n", projectFile, err)
		os.Exit(1)
	}

	files, err := source.Collect(root, proj.SourcePaths, sourceExtension)
	if err != nil {
		errorColor.Fprintf(os.Stderr, "could not collect source files: %v\n", err)
		os.Exit(1)
	}

	results := compileAll(files, runtime.NumCPU())

	if *dumpFlag {
		dumpTrees(root, results)
	}

	hasErrors := false
	for _, r := range results {
		if r.diags.HasErrors() {
			hasErrors = true
		}
	}
	if hasErrors {
		os.Exit(1)
	}
}
