package platform

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealCommand(t *testing.T) {
	assert.Equal(t, []string{"explorer.exe", "C:\\j"}, RevealCommand("windows", "C:\\j").Args)
	assert.Equal(t, []string{"open", "/j"}, RevealCommand("darwin", "/j").Args)
	assert.Equal(t, []string{"xdg-open", "/j"}, RevealCommand("linux", "/j").Args)
}

func TestReveal(t *testing.T) {
	var started []string
	orig := startCommand
	startCommand = func(cmd *exec.Cmd) error {
		started = cmd.Args
		return nil
	}
	t.Cleanup(func() { startCommand = orig })

	dir := t.TempDir()
	require.NoError(t, Reveal(dir))
	assert.Equal(t, dir, started[len(started)-1])

	err := Reveal(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}
