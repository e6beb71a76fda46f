package core

import "sync"

// Index is the in-memory listing of note filenames in scan order.
// It is a cache of the notes directory and must be refreshed before being
// trusted for display or collision checks.
type Index struct {
	mu    sync.RWMutex
	names []string
	stale bool
}

// NewIndex returns an empty index that is stale until first replaced.
func NewIndex() *Index {
	return &Index{stale: true}
}

// Replace swaps the whole listing and clears the stale flag.
func (i *Index) Replace(names []string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.names = append(i.names[:0:0], names...)
	i.stale = false
}

// Names returns a copy of the listing.
func (i *Index) Names() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}

// Contains reports whether name is listed.
func (i *Index) Contains(name string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	for _, n := range i.names {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends name unless it is already listed.
func (i *Index) Add(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for _, n := range i.names {
		if n == name {
			return
		}
	}
	i.names = append(i.names, name)
}

// Remove drops name from the listing, keeping the order of the rest.
func (i *Index) Remove(name string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	for k, n := range i.names {
		if n == name {
			i.names = append(i.names[:k], i.names[k+1:]...)
			return
		}
	}
}

// MarkStale flags the listing as out of date.
func (i *Index) MarkStale() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.stale = true
}

// Stale reports whether the listing needs a refresh.
func (i *Index) Stale() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.stale
}

// Len returns the number of listed names.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.names)
}
