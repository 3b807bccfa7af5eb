// Package demo is a small demonstration program: a length computation, a
// threshold check with an early sentinel return, and a bounded character
// scan. It exists to exercise a console sink, typically a serial console.
package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// Run executes the demonstration against w and reports every result there.
func Run(w io.Writer) {
	x := 10
	str := "Hello"

	y := Foo(w, x, str, len(str))

	fmt.Fprintf(w, "Foo return : %d\n", y)
}

// Foo checks x against the threshold, scans str, and reports its length.
// It returns -1 when x is below 10, otherwise the number of bytes written
// by the report line (a platform count, not a semantic value).
func Foo(w io.Writer, x int, str string, n int) int {
	if x < 10 {
		fmt.Fprintf(w, "X less than 10\n")
		return -1
	}

	Bar(w, str, n)

	written, _ := fmt.Fprintf(w, "%s has %d chars\n", str, n)

	return written
}

// Bar scans str one character at a time, counting characters until it hits
// the end of the string or has visited n of them, whichever comes first.
// The count is not returned; it only shows up in debug logs.
func Bar(w io.Writer, str string, n int) {
	cursor := []byte(str)
	count := 0

	for i := 0; i < n && len(cursor) > 0; i++ {
		cursor = cursor[1:]
		count++
	}

	// The verdict keys off the cursor, not off whether the terminator was
	// reached; a slice view is never nil after a scan, so this always
	// answers "No".
	verdict := "No"
	if cursor == nil {
		verdict = "Yes"
	}

	fmt.Fprintf(w, "Matching count ? %s\n", verdict)

	zap.S().Debugw("scan finished", "count", count, "bound", n)
}
