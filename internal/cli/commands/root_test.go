package commands

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command in a fresh working directory.
func runCLI(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()

	oldNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = oldNoColor })

	if dir == "" {
		dir = t.TempDir()
	}
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(oldWd) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "typedesc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"version", "parse", "merge", "convert", "catalog", "format-config"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "false", verbose.DefValue)

	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "text", output.DefValue)
}

func TestVersionCommand(t *testing.T) {
	Version = "1.0.0-test"
	GitCommit = "abc123"
	BuildDate = "2025-01-01"
	GoVersion = "go1.23"

	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "typedesc version: 1.0.0-test\nGit commit: abc123\nBuild date: 2025-01-01\nGo version: go1.23\n", out)
}

func TestVersionCommand_IgnoresBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/typedesc.yml", []byte("output: xml\n"), 0644))

	_, _, err := runCLI(t, dir, "version")
	assert.NoError(t, err)
}

func TestRootCommand_InvalidOutput(t *testing.T) {
	_, _, err := runCLI(t, "", "catalog", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output must be one of")
}

func TestRootCommand_ConfigFileOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/typedesc.yml", []byte("output: json\n"), 0644))

	out, _, err := runCLI(t, dir, "merge", "uint8", "int8")
	require.NoError(t, err)
	assert.JSONEq(t, `{"types":["uint8","int8"],"base":"int16"}`, out)
}
