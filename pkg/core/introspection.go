package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	EventBufferSize int      `json:"event_buffer_size"`
	RepositoryType  string   `json:"repository_type"`
	Location        string   `json:"location,omitempty"`
	IndexSize       int      `json:"index_size"`
	IndexStale      bool     `json:"index_stale"`
	Entries         []string `json:"entries,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	repoType := "unknown"
	if s.repo != nil {
		repoType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			repoType = comp.ComponentType()
		}
	}

	return ServiceState{
		EventBufferSize: s.eventBufferSize,
		RepositoryType:  repoType,
		Location:        s.Location(),
		IndexSize:       s.index.Len(),
		IndexStale:      s.index.Stale(),
		Entries:         s.index.Names(),
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
