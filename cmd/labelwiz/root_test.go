package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(out.String(), "labelwiz version v"))
}

func TestRootCommand_ScriptedRun(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("id,text\n1,a\n"), 0o644))

	in := strings.NewReader(strings.Join([]string{"", data, "", "", "", "2", "ok", ":s out", ":q"}, "\n") + "\n")
	out := &bytes.Buffer{}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Save complete")
	_, err := os.Stat(filepath.Join(dir, "out.csv"))
	assert.NoError(t, err)
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	rootCmd.SetArgs([]string{"extra"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	assert.Error(t, rootCmd.Execute())
}

func TestGraphCommand(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs([]string{"graph"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "graph TD")
	assert.Contains(t, out.String(), "annotation")
}
