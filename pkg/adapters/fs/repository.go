package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/journal/pkg/core"
)

// Repository implements core.Repository over a single directory of .txt files.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastScan      *time.Time
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Path         string
	MustExist    bool
	ReadOnly     bool
	AtomicWrites bool // temp file + rename instead of create-or-truncate
	Logger       *slog.Logger
	ErrorHandler func(error)   // receives watcher failures
	Debounce     time.Duration // watcher event coalescing window; zero means 50ms
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	return &Repository{
		Path:   config.Path,
		config: config,
	}
}

// Location implements core.Locator.
func (r *Repository) Location() string {
	return r.Path
}

// Initialize prepares the notes directory.
func (r *Repository) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if r.config.MustExist || r.config.ReadOnly {
		info, err := os.Stat(r.Path)
		if os.IsNotExist(err) {
			if r.config.ReadOnly && !r.config.MustExist {
				return nil
			}
			return fmt.Errorf("notes path does not exist: %s", r.Path)
		}
		if err != nil {
			return &core.IOError{Op: "stat", Name: r.Path, Err: err}
		}
		if !info.IsDir() {
			return fmt.Errorf("notes path is not a directory: %s", r.Path)
		}
		return nil
	}

	return r.ensureDir()
}

func (r *Repository) ensureDir() error {
	if err := os.MkdirAll(r.Path, 0755); err != nil {
		return &core.IOError{Op: "create directory", Name: r.Path, Err: err}
	}
	return nil
}

// List scans the notes directory for .txt entries (case-insensitive) and
// returns them in the order the filesystem enumerates them.
func (r *Repository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !r.config.ReadOnly {
		if err := r.ensureDir(); err != nil {
			return nil, err
		}
	}

	dir, err := os.Open(r.Path)
	if err != nil {
		if r.config.ReadOnly && os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &core.IOError{Op: "open directory", Name: r.Path, Err: err}
	}
	defer dir.Close()

	// (*os.File).ReadDir does not sort, unlike os.ReadDir.
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, &core.IOError{Op: "read directory", Name: r.Path, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), TempFilePrefix) {
			continue
		}
		if core.IsNoteFile(e.Name()) {
			names = append(names, e.Name())
		}
	}

	r.recordScan()
	if r.config.Logger != nil {
		r.config.Logger.Debug("scanned notes directory", "path", r.Path, "entries", len(names))
	}
	return names, nil
}

// Read returns the full content of the named note.
func (r *Repository) Read(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(r.notePath(name))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", core.ErrNotFound, r.notePath(name))
		}
		return "", &core.IOError{Op: "read", Name: name, Err: err}
	}
	return string(data), nil
}

// Write creates the notes directory if absent, then creates or truncates
// the named file and writes body verbatim.
// Only the notes directory itself is ever created: a name containing a path
// separator fails unless its parent already exists.
func (r *Repository) Write(ctx context.Context, name string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	if err := r.ensureDir(); err != nil {
		return err
	}

	fullPath := r.notePath(name)
	if r.config.Logger != nil {
		r.config.Logger.Debug("writing note to disk", "name", name, "path", fullPath)
	}

	var err error
	if r.config.AtomicWrites {
		err = writeFileAtomic(fullPath, []byte(body), 0644)
	} else {
		err = os.WriteFile(fullPath, []byte(body), 0644)
	}
	if err != nil {
		return &core.IOError{Op: "write", Name: name, Err: err}
	}
	return nil
}

// Delete removes the named note.
func (r *Repository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	fullPath := r.notePath(name)
	info, err := os.Lstat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrNotFound, fullPath)
		}
		return &core.IOError{Op: "stat", Name: name, Err: err}
	}
	if info.IsDir() {
		return &core.IOError{Op: "remove", Name: name, Err: fmt.Errorf("is a directory")}
	}

	if r.config.Logger != nil {
		r.config.Logger.Debug("deleting note", "name", name, "path", fullPath)
	}
	if err := os.Remove(fullPath); err != nil {
		return &core.IOError{Op: "remove", Name: name, Err: err}
	}
	return nil
}

// notePath joins name under the notes directory without any sanitization.
func (r *Repository) notePath(name string) string {
	return filepath.Join(r.Path, name)
}

func (r *Repository) recordScan() {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastScan = &now
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
