// internal/debugfmt/dbg.go
package debugfmt

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// Diagnostics is where Dbg writes. It defaults to stderr, never stdout.
var Diagnostics io.Writer = os.Stderr

// Dbg writes the caller's file and line with the pretty form of v to
// Diagnostics and hands v back, so it can wrap an expression in place.
func Dbg[T Debugger](v T) T {
	writeDbg(Diagnostics, v, 2)
	return v
}

// DbgTo is Dbg with an explicit destination.
func DbgTo[T Debugger](w io.Writer, v T) T {
	writeDbg(w, v, 2)
	return v
}

func writeDbg(w io.Writer, v Debugger, skip int) {
	loc := "???:0"
	if _, file, line, ok := runtime.Caller(skip); ok {
		loc = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	// Diagnostic output is best effort; a failing stderr must not change v.
	_, _ = fmt.Fprintf(w, "[%s] %s\n", loc, Pretty(v))
}
