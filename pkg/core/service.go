package core

import (
	"context"
	"log/slog"
	"sync"
)

// Service handles the business logic for journal entries.
// It keeps the index in step with the operations it performs; it never
// re-validates the index against storage unless Refresh is called.
type Service struct {
	mu              sync.RWMutex
	repo            Repository
	index           *Index
	logger          *slog.Logger
	eventBufferSize int
}

// NewService creates a new Service. A nil logger discards output.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:            repo,
		index:           NewIndex(),
		logger:          logger,
		eventBufferSize: 16,
	}
}

// SetEventBufferSize sets the buffer of channels returned by Watch.
// Non-positive sizes are ignored.
func (s *Service) SetEventBufferSize(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventBufferSize = n
}

// Index exposes the cached listing the service resolves names against.
func (s *Service) Index() *Index {
	return s.index
}

// Location returns the notes directory when the repository knows it.
func (s *Service) Location() string {
	if l, ok := s.repo.(Locator); ok {
		return l.Location()
	}
	return ""
}

// Refresh rescans storage and replaces the index.
// A failed scan is logged and reported as an empty listing.
func (s *Service) Refresh(ctx context.Context) []string {
	names, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("error loading saved entries", "error", err)
		names = nil
	}
	s.index.Replace(names)
	return s.index.Names()
}

// ListNotes rescans storage and returns the note filenames in scan order.
func (s *Service) ListNotes(ctx context.Context) []string {
	return s.Refresh(ctx)
}

// Names returns the current, possibly stale, index.
func (s *Service) Names() []string {
	return s.index.Names()
}

// Resolve maps title to the filename a save would write, using the cached index.
func (s *Service) Resolve(title string) (string, error) {
	if title == "" {
		return "", ErrEmptyTitle
	}
	return ResolveName(title, s.index.Names()), nil
}

// SaveNote resolves a filename for title, writes body to it and records the
// name in the index. It returns the resolved name.
func (s *Service) SaveNote(ctx context.Context, title, body string) (string, error) {
	name, err := s.Resolve(title)
	if err != nil {
		s.logger.Warn("rejected journal entry", "error", err)
		return "", err
	}
	if err := s.WriteNote(ctx, name, body); err != nil {
		return "", err
	}
	return name, nil
}

// WriteNote overwrites the exact filename name with body.
func (s *Service) WriteNote(ctx context.Context, name, body string) error {
	if err := s.repo.Write(ctx, name, body); err != nil {
		s.logger.Error("error saving journal entry", "name", name, "error", err)
		return err
	}
	s.index.Add(name)
	s.logger.Debug("journal entry saved", "name", name, "bytes", len(body))
	return nil
}

// LoadNote reads the named note.
func (s *Service) LoadNote(ctx context.Context, name string) (Note, error) {
	body, err := s.repo.Read(ctx, name)
	if err != nil {
		s.logger.Error("error loading journal entry", "name", name, "error", err)
		return Note{}, err
	}
	return Note{Name: name, Title: Stem(name), Body: body}, nil
}

// DeleteNote removes the named note and drops it from the index.
func (s *Service) DeleteNote(ctx context.Context, name string) error {
	if err := s.repo.Delete(ctx, name); err != nil {
		s.logger.Error("error deleting journal entry", "name", name, "error", err)
		return err
	}
	s.index.Remove(name)
	s.logger.Debug("journal entry deleted", "name", name)
	return nil
}

// Watch observes changes in the repository if supported.
// Every event marks the index stale before it is forwarded.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	in, err := w.Watch(ctx, pattern)
	if err != nil {
		s.logger.Error("error starting watcher", "pattern", pattern, "error", err)
		return nil, err
	}

	s.mu.RLock()
	out := make(chan Event, s.eventBufferSize)
	s.mu.RUnlock()

	go func() {
		defer close(out)
		for e := range in {
			s.index.MarkStale()
			select {
			case out <- e:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
