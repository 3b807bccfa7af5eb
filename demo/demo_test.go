package demo

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func outputLines(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func Test_Run_PrintsExpectedSequence(t *testing.T) {
	buf := &bytes.Buffer{}

	Run(buf)

	// the return code equals the report line's byte count, so compute it
	// instead of hardcoding a platform width
	reportLen := len(fmt.Sprintf("%s has %d chars\n", "Hello", 5))

	require.Equal(t, []string{
		"Hello has 5 chars",
		"Matching count ? No",
		fmt.Sprintf("Foo return : %d", reportLen),
	}, outputLines(t, buf))
}

func Test_Foo_AboveThresholdReturnsReportByteCount(t *testing.T) {
	buf := &bytes.Buffer{}

	got := Foo(buf, 10, "Hello", 5)

	require.Equal(t, len("Hello has 5 chars\n"), got)
	require.NotContains(t, buf.String(), "X less than 10")
}

func Test_Foo_BelowThresholdReturnsSentinel(t *testing.T) {
	buf := &bytes.Buffer{}

	got := Foo(buf, 5, "Hello", 5)

	require.Equal(t, -1, got)
	require.Equal(t, []string{"X less than 10"}, outputLines(t, buf))
	// the scan never runs on the early return path
	require.NotContains(t, buf.String(), "Matching count")
}

func Test_Bar_VerdictIsAlwaysNo(t *testing.T) {
	for _, tc := range []struct {
		name  string
		str   string
		bound int
	}{
		{"full scan", "Hello", 5},
		{"bound below length", "Hello", 2},
		{"bound above length", "Hi", 10},
		{"zero bound", "Hello", 0},
		{"empty string", "", 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}

			Bar(buf, tc.str, tc.bound)

			require.Equal(t, "Matching count ? No\n", buf.String())
		})
	}
}
