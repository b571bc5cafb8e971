package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tricks/demo"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootRunsAllSections(t *testing.T) {
	out, err := execute(t, "\n\n\n", "--log-level", "error")
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(out, demo.Prompt))
	assert.Contains(t, out, "Node object with p=4, and q=5")
	assert.Contains(t, out, "2584")
	assert.Contains(t, out, "[11.0, 22.0,")
}

func TestRootSelectedSectionNoPause(t *testing.T) {
	out, err := execute(t, "", "--no-pause", "--section", "generators", "--fib-count", "5", "--threshold", "100")
	require.NoError(t, err)
	assert.Equal(t, "First Fib\n[]uint64\n3\n\n"+
		"Second Fib\n*fib.Generator\n3\n5\n(6 values pulled, none stored)\n\n"+
		"144\nF(94) = 19740274219868223167\n"+
		"\n"+demo.Prompt+"\n", out)
}

func TestRootRejectsBadInput(t *testing.T) {
	_, err := execute(t, "", "--no-pause", "--section", "nope")
	assert.ErrorIs(t, err, demo.ErrUnknownSection)

	_, err = execute(t, "", "--no-pause", "--fib-count", "0")
	assert.Error(t, err)

	_, err = execute(t, "", "--log-level", "loud")
	assert.Error(t, err)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("TRICKS_PAIRS", "2")
	t.Setenv("TRICKS_NO_PAUSE", "true")

	out, err := execute(t, "", "--section", "pointers")
	require.NoError(t, err)
	assert.Contains(t, out, "[11.0, 22.0]\n")
	assert.NotContains(t, out, "(3,30)")
}

func TestFlagBeatsEnv(t *testing.T) {
	t.Setenv("TRICKS_FIB_COUNT", "7")

	out, err := execute(t, "", "config", "--fib-count", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "fib-count: 4\n")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tricks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fib-count: 12\nlog-level: warn\nscale: 2.5\n"), 0o600))

	out, err := execute(t, "", "config", "--config", path)
	require.NoError(t, err)
	for _, want := range []string{"fib-count: 12\n", "log-level: warn\n", "scale: 2.5\n", "threshold: 2016\n", "no-pause: false\n"} {
		assert.Contains(t, out, want)
	}

	_, err = execute(t, "", "config", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "", "list")
	require.NoError(t, err)
	for _, name := range []string{"class", "generators", "pointers"} {
		assert.Contains(t, out, name)
	}
}
