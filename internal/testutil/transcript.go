// Package testutil holds helpers shared by lesson tests.
package testutil

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/GoCodeAlone/demokit"
	"github.com/stretchr/testify/require"
)

// Transcript runs lesson on a fresh Runner and returns everything it printed.
func Transcript(t *testing.T, lesson demokit.Lesson) string {
	t.Helper()

	var buf bytes.Buffer
	runner, err := demokit.NewRunner(demokit.WithOutput(&buf))
	require.NoError(t, err)
	require.NoError(t, runner.Run(context.Background(), lesson))
	require.Zero(t, runner.Loop().Pending(), "lesson left simulated delays pending")

	return buf.String()
}

// AssertInOrder checks that every line appears in out, each after the
// previous one.
func AssertInOrder(t *testing.T, out string, lines ...string) {
	t.Helper()

	rest := out
	for _, line := range lines {
		idx := strings.Index(rest, line)
		if idx < 0 {
			t.Fatalf("expected %q after previous lines in transcript:\n%s", line, out)
		}
		rest = rest[idx+len(line):]
	}
}

// AssertStepCount checks the lesson printed a header for every step and ran
// to completion.
func AssertStepCount(t *testing.T, out string, lesson demokit.Lesson) {
	t.Helper()

	steps := lesson.Steps()
	for i, step := range steps {
		header := "\n" + strconv.Itoa(i+1) + ". " + step.Title + "\n"
		require.Contains(t, out, header)
	}
	require.Contains(t, out, "=== Done: "+lesson.Title()+" ===")
}
