package platform

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aretw0/journal/pkg/settings"
)

// ErrBaseNotFound is returned by FindBase when no settings file is found.
var ErrBaseNotFound = errors.New("journal base not found")

// FindBase looks upwards from startDir for a directory holding a settings
// file and returns its absolute path.
func FindBase(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if _, err := os.Stat(settings.Path(dir)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrBaseNotFound
}

// DefaultBase returns the per-user base directory used when nothing else is
// configured.
func DefaultBase() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "journal"), nil
}
