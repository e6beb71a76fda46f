// Package journal is the Composition Root for the journal.
//
// It connects the core naming and persistence policy (pkg/core) with the
// filesystem adapter (pkg/adapters/fs) behind functional options.
//
// A journal entry is a titled text note stored as one file, "<title>.txt",
// in a single notes directory under a host-supplied base directory. Saving a
// title that already has an entry writes "<title>_<n>.txt" instead of
// overwriting it.
//
// Usage:
//
//	svc, err := journal.New(baseDir,
//		journal.WithLogger(logger),
//	)
//
//	// Save a note; the resolved filename is returned.
//	name, err := svc.SaveNote(ctx, "Day 1", "Hello")
package journal
