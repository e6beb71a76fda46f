package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/journal/pkg/adapters/fs"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

// Init builds and initializes the repository for base.
// The 'base' argument is adapter-specific (e.g. the base directory for 'fs').
func Init(base string, opts ...Option) (core.Repository, error) {
	o := applyOptions(opts)

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	var err error

	switch o.adapter {
	case "fs":
		repo, err = initFS(base, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}
	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

// NotesPath returns the notes directory for a base directory and options,
// applying the same dev safety rules as Init.
func NotesPath(base string, opts ...Option) string {
	o := applyOptions(opts)
	return notesPath(base, o)
}

func notesPath(base string, o *options) string {
	tempDir, _ := o.config["temp_dir"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	devSafety := true
	if val, ok := o.config["dev_safety"].(bool); ok {
		devSafety = val
	}
	bypassSafety := isReadOnly || !devSafety

	useTemp := tempDir || (IsDevRun() && !bypassSafety)
	resolved := ResolveBasePath(base, useTemp)

	if o.logger != nil && useTemp && resolved != base {
		o.logger.Warn("running in SAFE MODE (Dev/Test)", "original_path", base, "resolved_path", resolved)
	}

	dirName, _ := o.config["dir_name"].(string)
	if dirName == "" {
		dirName = settings.DefaultDirName
	}
	return filepath.Join(resolved, dirName)
}

// initFS handles the initialization logic for the Filesystem adapter
func initFS(base string, o *options) (core.Repository, error) {
	atomicWrites, _ := o.config["atomic_writes"].(bool)
	mustExist, _ := o.config["must_exist"].(bool)
	isReadOnly, _ := o.config["read_only"].(bool)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	path := notesPath(base, o)
	if o.logger != nil {
		o.logger.Debug("opening notes directory", "path", path, "read_only", isReadOnly, "atomic_writes", atomicWrites)
	}

	return fs.NewRepository(fs.Config{
		Path:         path,
		MustExist:    mustExist,
		ReadOnly:     isReadOnly,
		AtomicWrites: atomicWrites,
		Logger:       o.logger,
		ErrorHandler: errorHandler,
		Debounce:     debounce,
	}), nil
}
