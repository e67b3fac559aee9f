package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "styled version dev")
	assert.Contains(t, out, "commit:")
}

func TestDemoCmdNeverColors(t *testing.T) {
	out, err := runCommand(t, "demo", "--color", "never")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[", "no escape codes with --color never")
	assert.Contains(t, out, "Attributes:")
	assert.Contains(t, out, "magenta")
}

func TestDemoCmdAlwaysColors(t *testing.T) {
	out, err := runCommand(t, "demo", "--color", "always")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[31m", "red foreground cell")
	assert.Contains(t, out, "\x1b[44m", "blue background cell")
	assert.True(t, strings.Contains(out, "\x1b[0m"))
}

func TestDoctorCmd(t *testing.T) {
	t.Setenv("CLICOLOR", "1")
	t.Setenv("CLICOLOR_FORCE", "")

	out, err := runCommand(t, "doctor", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, out, `CLICOLOR:        "1"`)
	assert.Contains(t, out, "stdout terminal:")
	assert.Contains(t, out, "Styling enabled: no")
}

func TestInvalidColorMode(t *testing.T) {
	_, err := runCommand(t, "demo", "--color", "sometimes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometimes")
}

func TestCompletionCmd(t *testing.T) {
	out, err := runCommand(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "bash completion")
}
