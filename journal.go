package journal

import (
	"log/slog"
	"time"

	"github.com/aretw0/journal/internal/platform"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

// --- Types ---

// Service is the journal service returned by New.
type Service = core.Service

// Note is a loaded journal entry.
type Note = core.Note

// --- Configuration ---

// Option defines a functional option for configuring the journal.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithDirName sets the notes directory name under the base directory.
func WithDirName(name string) Option {
	return platform.WithDirName(name)
}

// WithAtomicWrites enables temp file + rename writes.
func WithAtomicWrites(enabled bool) Option {
	return platform.WithAtomicWrites(enabled)
}

// WithMustExist ensures the notes directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly rejects writes and deletes.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithForceTemp forces the use of a temporary base directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the go run / go test sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithEventBuffer sets the buffer size of watch channels.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithDebounce sets the watcher coalescing window.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback for watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// WithSettings applies the storage part of a settings file.
func WithSettings(s settings.Settings) Option {
	return platform.WithSettings(s)
}

// --- Factory ---

// New creates a journal Service over the notes directory under base.
func New(base string, opts ...Option) (*core.Service, error) {
	return platform.New(base, opts...)
}

// Init initializes the repository explicitly.
func Init(base string, opts ...Option) (core.Repository, error) {
	return platform.Init(base, opts...)
}

// --- Naming ---

// ResolveName computes the collision-safe filename for title against existing names.
func ResolveName(title string, existing []string) string {
	return core.ResolveName(title, existing)
}

// --- Safety & Utils ---

// NotesPath returns the notes directory New would use for base.
func NotesPath(base string, opts ...Option) string {
	return platform.NotesPath(base, opts...)
}

// ResolveBasePath determines the actual base directory based on safety rules.
func ResolveBasePath(userPath string, forceTemp bool) string {
	return platform.ResolveBasePath(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// FindBase looks upwards for a directory holding journal.yaml.
func FindBase(startDir string) (string, error) {
	return platform.FindBase(startDir)
}
