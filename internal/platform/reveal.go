package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// ErrDirectoryNotFound reports a reveal of a directory that does not exist.
var ErrDirectoryNotFound = errors.New("export directory not found")

// startCommand launches a prepared command; replaced in tests.
var startCommand = func(cmd *exec.Cmd) error { return cmd.Start() }

// RevealCommand returns the host command that opens dir in a file browser.
func RevealCommand(goos, dir string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("explorer.exe", dir)
	case "darwin":
		return exec.Command("open", dir)
	default:
		return exec.Command("xdg-open", dir)
	}
}

// Reveal opens dir in the host's file browser without waiting for it.
func Reveal(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDirectoryNotFound, dir)
	}
	if err := startCommand(RevealCommand(runtime.GOOS, dir)); err != nil {
		return fmt.Errorf("error opening export directory: %w", err)
	}
	return nil
}
