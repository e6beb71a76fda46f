package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Notes are addressed by filename (e.g. "Day 1.txt"), never by title.
type Repository interface {
	// List returns the note filenames in storage enumeration order.
	List(ctx context.Context) ([]string, error)

	// Read returns the full body of the named note.
	Read(ctx context.Context, name string) (string, error)

	// Write creates or truncates the named note and stores body verbatim.
	Write(ctx context.Context, name string, body string) error

	// Delete removes the named note.
	Delete(ctx context.Context, name string) error

	// Initialize ensures the underlying storage is ready (e.g. create the notes directory).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for repositories that can report changes
// made behind the service's back.
type Watchable interface {
	// Watch emits events for note files matching pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}

// Locator is implemented by repositories that live at a filesystem path.
type Locator interface {
	// Location returns the directory holding the notes.
	Location() string
}
