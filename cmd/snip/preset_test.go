package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPresetList(t *testing.T) {
	// Create a buffer to capture output
	var buf bytes.Buffer

	// Create a test command with our buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	// Reset flags for test
	presetList = true
	presetFile = ""

	err := runPreset(cmd, []string{})
	require.NoError(t, err)

	// Every builtin preset appears with its description
	output := buf.String()
	assert.Contains(t, output, "fields")
	assert.Contains(t, output, "strip")
	for _, line := range strings.Split(strings.TrimRight(output, "\n"), "\n") {
		assert.True(t, len(strings.Fields(line)) >= 2, "preset line missing description: %q", line)
	}
}

func TestRunPresetByName(t *testing.T) {
	var in bytes.Buffer
	var out bytes.Buffer
	in.WriteString("  padded  \n")

	cmd := &cobra.Command{}
	cmd.SetIn(&in)
	cmd.SetOut(&out)

	// Reset flags for test
	presetList = false
	presetFile = ""

	err := runPreset(cmd, []string{"strip"})
	require.NoError(t, err)
	assert.Equal(t, "padded\n", out.String())
}

func TestRunPresetUnknown(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	presetList = false
	presetFile = ""

	err := runPreset(cmd, []string{"no-such-preset"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-preset")
}

func TestRunPresetMissingName(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	presetList = false
	presetFile = ""

	err := runPreset(cmd, []string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--list")
}

func TestRunPresetFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yml")
	yaml := `presets:
  - name: colon-key
    description: Keep everything before the first colon
    op: cut-until-pat
    pattern: ":"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	var in bytes.Buffer
	var out bytes.Buffer
	in.WriteString("user:x:1000\n")

	cmd := &cobra.Command{}
	cmd.SetIn(&in)
	cmd.SetOut(&out)

	presetList = false
	presetFile = path

	err := runPreset(cmd, []string{"colon-key"})
	require.NoError(t, err)
	assert.Equal(t, "user\n", out.String())
}
