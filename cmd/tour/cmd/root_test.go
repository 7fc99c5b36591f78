package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/cmd/tour/cmd"
	"github.com/GoCodeAlone/demokit/feeders"
	"github.com/GoCodeAlone/demokit/lessons"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func title(t *testing.T, name string) string {
	t.Helper()
	lesson, err := lessons.Catalog().New(name)
	require.NoError(t, err)
	return lesson.Title()
}

func TestRootCommand_Help(t *testing.T) {
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "tour lists and runs the demokit lessons")
	assert.Contains(t, out, "--delay-scale")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, cmd.PrintVersion()+"\n", out)
	assert.Contains(t, out, "demokit tour v")
}

func TestListCommand(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(lessons.All()))
	assert.Equal(t, "callbacks — "+title(t, "callbacks"), lines[0])
	assert.Equal(t, "immutable — "+title(t, "immutable"), lines[len(lines)-1])
}

func TestRunCommand_NamedLessons(t *testing.T) {
	out, _, err := execute(t, "run", "recursion", "closures")
	require.NoError(t, err)

	recursion := strings.Index(out, "=== "+title(t, "recursion")+" ===")
	closures := strings.Index(out, "=== "+title(t, "closures")+" ===")
	require.GreaterOrEqual(t, recursion, 0)
	require.Greater(t, closures, recursion)
	assert.NotContains(t, out, "=== "+title(t, "callbacks")+" ===")
}

func TestRunCommand_UnknownLessonRunsNothing(t *testing.T) {
	out, _, err := execute(t, "run", "closures", "monads")
	require.ErrorIs(t, err, demokit.ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"monads"`)
	assert.Empty(t, out)
}

func TestRunCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lessons: [recursion]\nlog_level: debug\n"), 0o600))

	out, errOut, err := execute(t, "run", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, out, "=== Done: "+title(t, "recursion")+" ===")
	assert.NotContains(t, out, "=== "+title(t, "closures")+" ===")
	assert.Contains(t, errOut, "Step started")
	assert.Contains(t, errOut, "Lesson completed")
}

func TestRunCommand_EnvironmentThenFlags(t *testing.T) {
	t.Setenv("DEMOKIT_LOG_LEVEL", "info")
	t.Setenv("DEMOKIT_LOG_FORMAT", "json")

	_, errOut, err := execute(t, "run", "immutable")
	require.NoError(t, err)
	assert.Contains(t, errOut, `"msg":"Lesson completed"`)

	_, errOut, err = execute(t, "run", "immutable", "--log-format", "text")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=\"Lesson completed\"")
}

func TestRunCommand_ConfigErrors(t *testing.T) {
	_, _, err := execute(t, "run", "closures", "--log-level", "verbose")
	require.ErrorIs(t, err, demokit.ErrConfigValidationFailed)

	_, _, err = execute(t, "run", "closures", "--delay-scale", "-1")
	require.ErrorIs(t, err, demokit.ErrValidation)

	_, _, err = execute(t, "run", "-c", "tour.ini")
	require.ErrorIs(t, err, feeders.ErrUnknownFormat)
}
