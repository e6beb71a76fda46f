package core_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/journal/pkg/core"
)

// MockRepository implements core.Repository in memory, keeping insertion order.
// It deliberately does NOT implement core.Watchable to test fallback/errors.
type MockRepository struct {
	order   []string
	notes   map[string]string
	listErr error
	saveErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{notes: make(map[string]string)}
}

func (m *MockRepository) List(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out, nil
}

func (m *MockRepository) Read(ctx context.Context, name string) (string, error) {
	body, ok := m.notes[name]
	if !ok {
		return "", core.ErrNotFound
	}
	return body, nil
}

func (m *MockRepository) Write(ctx context.Context, name, body string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if _, ok := m.notes[name]; !ok {
		m.order = append(m.order, name)
	}
	m.notes[name] = body
	return nil
}

func (m *MockRepository) Delete(ctx context.Context, name string) error {
	if _, ok := m.notes[name]; !ok {
		return core.ErrNotFound
	}
	delete(m.notes, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MockRepository) Initialize(ctx context.Context) error { return nil }

// watchableRepository adds a controllable event feed.
type watchableRepository struct {
	*MockRepository
	feed chan core.Event
}

func (w *watchableRepository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	return w.feed, nil
}

func TestService_CRUD(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)
	ctx := context.TODO()

	// 1. Save
	name, err := service.SaveNote(ctx, "Day 1", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "Day 1.txt", name)

	// 2. Load
	note, err := service.LoadNote(ctx, name)
	require.NoError(t, err)
	assert.Equal(t, core.Note{Name: "Day 1.txt", Title: "Day 1", Body: "Hello"}, note)

	// 3. List
	_, err = service.SaveNote(ctx, "Day 2", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Day 1.txt", "Day 2.txt"}, service.ListNotes(ctx))

	// 4. Delete
	require.NoError(t, service.DeleteNote(ctx, "Day 1.txt"))
	assert.Equal(t, []string{"Day 2.txt"}, service.Names())
	_, err = service.LoadNote(ctx, "Day 1.txt")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_SaveRejectsEmptyTitle(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)

	_, err := service.SaveNote(context.TODO(), "", "body")
	assert.ErrorIs(t, err, core.ErrEmptyTitle)
	assert.Empty(t, repo.order, "nothing should be written")
}

func TestService_ResolveUsesStaleIndex(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)
	ctx := context.TODO()

	name, err := service.SaveNote(ctx, "A", "one")
	require.NoError(t, err)
	assert.Equal(t, "A.txt", name)

	name, err = service.SaveNote(ctx, "A", "two")
	require.NoError(t, err)
	assert.Equal(t, "A_2.txt", name)

	name, err = service.SaveNote(ctx, "A", "three")
	require.NoError(t, err)
	assert.Equal(t, "A_3.txt", name)

	// An external writer adds A_4.txt; the index does not know.
	require.NoError(t, repo.Write(ctx, "A_4.txt", "external"))
	resolved, err := service.Resolve("A")
	require.NoError(t, err)
	assert.Equal(t, "A_4.txt", resolved, "stale index collides with the external file")

	service.Refresh(ctx)
	resolved, err = service.Resolve("A")
	require.NoError(t, err)
	assert.Equal(t, "A_5.txt", resolved)
}

func TestService_WriteNoteOverwritesExactName(t *testing.T) {
	repo := NewMockRepository()
	service := core.NewService(repo, nil)
	ctx := context.TODO()

	name, err := service.SaveNote(ctx, "A", "draft")
	require.NoError(t, err)
	require.NoError(t, service.WriteNote(ctx, name, "final"))

	assert.Equal(t, []string{"A.txt"}, service.Names())
	assert.Equal(t, "final", repo.notes["A.txt"])
}

func TestService_RefreshFailsSilently(t *testing.T) {
	repo := NewMockRepository()
	repo.listErr = errors.New("disk on fire")
	service := core.NewService(repo, nil)

	names := service.ListNotes(context.TODO())
	assert.Empty(t, names)
	assert.False(t, service.Index().Stale())
}

func TestService_SaveFailureLeavesIndex(t *testing.T) {
	repo := NewMockRepository()
	repo.saveErr = &core.IOError{Op: "write", Name: "A.txt", Err: errors.New("no space left")}
	service := core.NewService(repo, nil)

	_, err := service.SaveNote(context.TODO(), "A", "body")
	require.Error(t, err)
	assert.True(t, core.IsIOError(err))
	assert.Empty(t, service.Names())
}

func TestService_DeleteMissing(t *testing.T) {
	service := core.NewService(NewMockRepository(), nil)
	err := service.DeleteNote(context.TODO(), "ghost.txt")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestService_Watch_Unsupported(t *testing.T) {
	service := core.NewService(NewMockRepository(), nil)
	_, err := service.Watch(context.TODO(), "*")
	assert.ErrorIs(t, err, core.ErrWatchUnsupported)
}

func TestService_Watch_MarksIndexStale(t *testing.T) {
	repo := &watchableRepository{MockRepository: NewMockRepository(), feed: make(chan core.Event, 1)}
	service := core.NewService(repo, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	service.Refresh(ctx)
	require.False(t, service.Index().Stale())

	events, err := service.Watch(ctx, "*.txt")
	require.NoError(t, err)

	repo.feed <- core.Event{Type: core.EventCreate, Name: "x.txt"}

	select {
	case e := <-events:
		assert.Equal(t, "x.txt", e.Name)
		assert.True(t, service.Index().Stale())
	case <-ctx.Done():
		t.Fatal("timeout waiting for forwarded event")
	}

	close(repo.feed)
	_, open := <-events
	assert.False(t, open, "closing the source closes the forwarded channel")
}

func TestService_State(t *testing.T) {
	service := core.NewService(NewMockRepository(), nil)
	_, err := service.SaveNote(context.TODO(), "A", "x")
	require.NoError(t, err)

	state, ok := service.State().(core.ServiceState)
	require.True(t, ok)
	assert.Equal(t, "repository", state.RepositoryType)
	assert.Equal(t, 1, state.IndexSize)
	assert.Equal(t, []string{"A.txt"}, state.Entries)
	assert.Equal(t, "service", service.ComponentType())
}
