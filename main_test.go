package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHeroCommands(t *testing.T) {
	t.Setenv("PORTFOLIO_DB", filepath.Join(t.TempDir(), "cli.db"))

	out, err := runCLI(t, "hero", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "location: Kottayam, Kerala")
	assert.Contains(t, out, "video:    ./videos/my-video.mp4")

	out, err = runCLI(t, "hero", "set", "--location", "Berlin, Germany")
	require.NoError(t, err)
	assert.Contains(t, out, "location: Berlin, Germany")

	out, err = runCLI(t, "hero", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "location: Berlin, Germany")
}

func TestHeroSetNeedsAFlag(t *testing.T) {
	t.Setenv("PORTFOLIO_DB", filepath.Join(t.TempDir(), "cli.db"))

	_, err := runCLI(t, "hero", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to set")
}
