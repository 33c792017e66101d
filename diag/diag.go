/*
File    : langc/diag/diag.go
Author  : akashmaji946
Contact : akashmaji(@iisc.ac.in)
*/

// Package diag implements the front-end's diagnostics subsystem.
//
// There are two channels. Immediate diagnostics are written as soon as they
// are discovered and stick the "has errors" bit. Queued diagnostics are
// buffered so a parser can attempt a production speculatively, see whether
// it committed to that production, and either surface the buffered
// diagnostics (flush) or silently discard them (clear) once it knows which
// alternative was the real one.
package diag

import (
	"fmt"
	"io"
	"strings"
)

// Diagnostic is a single reported problem: the source label it came from,
// the 1-indexed line it was found on, and a human-readable message.
type Diagnostic struct {
	Source  string
	Line    int
	Message string
}

// String renders a diagnostic in the fixed wire format spec.md §6 requires:
// "<source>(<line>) Error: <message>", with the path separator of source
// normalized to the host convention (backslashes for Windows-style paths).
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s(%d) Error: %s", normalizePath(d.Source), d.Line, d.Message)
}

// normalizePath renders forward slashes as backslashes when the path looks
// like a Windows-style path (contains a backslash already, or a drive
// letter prefix like "C:"). Unix-style paths are left untouched.
func normalizePath(source string) string {
	if looksWindows(source) {
		return strings.ReplaceAll(source, "/", "\\")
	}
	return source
}

func looksWindows(source string) bool {
	if strings.Contains(source, "\\") {
		return true
	}
	if len(source) >= 2 && source[1] == ':' {
		c := source[0]
		return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
	}
	return false
}

// Diagnostics accumulates diagnostics for one compilation. It owns the two
// channels described above plus the sticky has-errors bit. A Diagnostics
// value is not safe for concurrent use; one compilation uses one
// Diagnostics, per spec.md §5's per-compilation-context design note.
type Diagnostics struct {
	Sink        io.Writer
	hasErrors   bool
	queued      []Diagnostic
	speculating bool
}

// New creates a Diagnostics that writes immediate diagnostics to sink.
func New(sink io.Writer) *Diagnostics {
	return &Diagnostics{Sink: sink}
}

// BeginSpeculative puts Emit into buffering mode: calls that would normally
// write immediately and stick has-errors are queued instead, exactly like an
// explicit Queue call. A parser trying an ambiguous production (spec.md §9's
// alias RHS being expression-or-type) wraps the attempt in
// BeginSpeculative/EndSpeculative, then commits with ClearQueued on success
// or FlushQueued to surface the real diagnostics once it knows the attempt
// failed for good.
func (d *Diagnostics) BeginSpeculative() {
	d.speculating = true
}

// EndSpeculative turns off buffering mode started by BeginSpeculative.
// Anything still queued is left for the caller to ClearQueued or
// FlushQueued.
func (d *Diagnostics) EndSpeculative() {
	d.speculating = false
}

// Emit writes a diagnostic immediately and sets the sticky has-errors bit,
// unless speculative mode is active, in which case it queues instead.
func (d *Diagnostics) Emit(source string, line int, format string, args ...interface{}) {
	if d.speculating {
		d.Queue(source, line, format, args...)
		return
	}
	diagnostic := Diagnostic{Source: source, Line: line, Message: fmt.Sprintf(format, args...)}
	d.hasErrors = true
	if d.Sink != nil {
		fmt.Fprintln(d.Sink, diagnostic.String())
	}
}

// Queue buffers a diagnostic for later flush/clear without setting the
// has-errors bit. Used by speculative parses that might still fall back to
// a different production.
func (d *Diagnostics) Queue(source string, line int, format string, args ...interface{}) {
	d.queued = append(d.queued, Diagnostic{Source: source, Line: line, Message: fmt.Sprintf(format, args...)})
}

// FlushQueued emits every queued diagnostic and sets has-errors if any were
// present. Returns whether there was anything to flush.
func (d *Diagnostics) FlushQueued() bool {
	if len(d.queued) == 0 {
		return false
	}
	for _, q := range d.queued {
		d.hasErrors = true
		if d.Sink != nil {
			fmt.Fprintln(d.Sink, q.String())
		}
	}
	d.queued = d.queued[:0]
	return true
}

// ClearQueued discards the queued diagnostics without emitting them.
func (d *Diagnostics) ClearQueued() {
	d.queued = d.queued[:0]
}

// HasQueued reports whether there are currently queued diagnostics.
func (d *Diagnostics) HasQueued() bool {
	return len(d.queued) > 0
}

// HasErrors reports the sticky has-errors bit.
func (d *Diagnostics) HasErrors() bool {
	return d.hasErrors
}
