package platform

import (
	"github.com/aretw0/journal/pkg/core"
)

// New creates a journal Service over the notes directory under baseDir.
//
//	svc, err := journal.New("/path/to/base", journal.WithAtomicWrites(true))
//
// The base argument is adapter-specific (a directory for "fs").
func New(base string, opts ...Option) (*core.Service, error) {
	repo, err := Init(base, opts...)
	if err != nil {
		return nil, err
	}

	o := applyOptions(opts)
	service := core.NewService(repo, o.logger)
	if size, ok := o.config["event_buffer"].(int); ok {
		service.SetEventBufferSize(size)
	}
	return service, nil
}
