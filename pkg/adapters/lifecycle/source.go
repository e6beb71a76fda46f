// Package lifecycle exposes journal change events as a lifecycle.Source so a
// host event loop can consume them next to its own events.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/journal/pkg/core"
)

type journalSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that re-emits journal events.
// The returned source closes its channel when events closes or the context
// given to Start is done.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &journalSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *journalSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *journalSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event satisfies lifecycle.Event through String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
