// Package core holds the journal domain: notes, the naming policy that maps a
// title to a file, the in-memory index and the service that ties them to a
// storage adapter.
package core

import "fmt"

// NoteExt is the only suffix a note file carries.
const NoteExt = ".txt"

// Note is a user-authored title and body persisted as one text file.
type Note struct {
	// Name is the resolved filename, including the .txt suffix.
	Name string `json:"name"`
	// Title is the stem of Name.
	Title string `json:"title"`
	// Body is the raw file content.
	Body string `json:"body"`
}

// EventType represents the type of change in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change in the notes directory.
type Event struct {
	Type      EventType
	Name      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Name)
}
