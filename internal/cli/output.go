package cli

import (
	"fmt"
	"io"
)

// printSection prints a top-level section header, e.g. "=== Header ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printField prints an aligned "name: value" line.
func printField(w io.Writer, name string, value any) {
	fmt.Fprintf(w, "  %-16s %v\n", name+":", value)
}

// printOK prints a success line.
func printOK(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✓  %s\n", msg)
}

// printWarn prints a warning line.
func printWarn(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ⚠  %s\n", msg)
}

// printErr prints an error line.
func printErr(w io.Writer, msg string) {
	fmt.Fprintf(w, "  ✗  %s\n", msg)
}
