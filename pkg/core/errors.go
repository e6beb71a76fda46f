package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNotFound         = errors.New("journal entry not found")
	ErrReadOnly         = errors.New("repository is in read-only mode")
	ErrEmptyTitle       = errors.New("cannot save without a title")
	ErrWatchUnsupported = errors.New("repository does not support watching")
)

// IOError reports an OS level failure while creating, reading, writing or
// removing a note or the notes directory.
type IOError struct {
	Op   string
	Name string
	Err  error
}

func (e *IOError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err carries an *IOError.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}
