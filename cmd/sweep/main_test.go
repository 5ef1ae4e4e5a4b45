package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", db, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func taskID(t *testing.T, line string) string {
	t.Helper()
	fields := strings.Fields(line)
	require.GreaterOrEqual(t, len(fields), 3)
	return fields[2]
}

func TestCLI_AddListDoneRemove(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sweep.db")

	out, err := run(t, db, "add", "--name", "Vacuum", "--room", "Living Room", "--day", "tuesday")
	require.NoError(t, err)
	assert.Contains(t, out, "Vacuum")
	assert.Contains(t, out, "Tuesday")
	id := taskID(t, out)

	_, err = run(t, db, "add", "--name", "Dishes", "--room", "kitchen", "--day", "monday")
	require.NoError(t, err)

	out, err = run(t, db, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Dishes")
	assert.Contains(t, lines[1], "Vacuum")

	out, err = run(t, db, "list", "--room", "kitchen")
	require.NoError(t, err)
	assert.NotContains(t, out, "Vacuum")

	out, err = run(t, db, "done", id)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[x]"))

	out, err = run(t, db, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "1/2 done (50%)")
	assert.Contains(t, out, "busiest: Monday, Tuesday (1 tasks)")

	out, err = run(t, db, "rm", id)
	require.NoError(t, err)
	assert.Contains(t, out, `deleted "Vacuum"`)

	out, err = run(t, db, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Vacuum")
}

func TestCLI_Rejects(t *testing.T) {
	db := filepath.Join(t.TempDir(), "sweep.db")

	_, err := run(t, db, "add", "--name", " ")
	assert.ErrorContains(t, err, "task name is required")

	_, err = run(t, db, "done", "missing")
	assert.ErrorContains(t, err, "no task with id")

	_, err = run(t, db, "list", "--room", "attic")
	assert.Error(t, err)

	_, err = run(t, db, "--backend", "redis", "summary")
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestCloser_LogsCloseFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	closer(zap.New(core), func() error { return errors.New("database is locked") })()

	entries := logs.FilterMessage("failed to close store").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "database is locked", entries[0].ContextMap()["error"])
}

func TestCloser_QuietOnSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)

	closed := false
	closer(zap.New(core), func() error { closed = true; return nil })()

	assert.True(t, closed)
	assert.Zero(t, logs.Len())
}
