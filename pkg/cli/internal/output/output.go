// Package output holds the formatting helpers shared by CLI commands.
package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/getmockd/mockshape/pkg/synth"
)

// JSON writes v as JSON with the given indent. Generated objects keep their
// field order.
func JSON(w io.Writer, v any, indent int) error {
	return synth.Encode(w, v, indent)
}

// Table creates an aligned table writer. Call Flush when done.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Warn prints a warning line.
func Warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "Warning: "+format+"\n", args...)
}
