package services

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"todoboard/model"
)

type memEntry struct {
	todo *model.Todo
	seq  int64
}

// MemoryTodoStore is a mutex-guarded in-memory TodoStore. It backs the
// credential-free dev mode (TODO_STORE=memory) and the test suite.
type MemoryTodoStore struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	nextSeq int64
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{entries: make(map[string]memEntry)}
}

func (s *MemoryTodoStore) Create(ctx context.Context, todo *model.Todo) (*model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := todo.Clone()
	stored.ID = uuid.New().String()
	s.nextSeq++
	s.entries[stored.ID] = memEntry{todo: stored, seq: s.nextSeq}
	return stored.Clone(), nil
}

func (s *MemoryTodoStore) GetByID(ctx context.Context, id string) (*model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return entry.todo.Clone(), nil
}

func (s *MemoryTodoStore) Put(ctx context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[todo.ID]
	if !ok {
		return ErrNotFound
	}
	s.entries[todo.ID] = memEntry{todo: todo.Clone(), seq: entry.seq}
	return nil
}

func (s *MemoryTodoStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

func (s *MemoryTodoStore) ListVisibleTo(ctx context.Context, userID string) ([]*model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []memEntry{}
	for _, entry := range s.entries {
		for _, uid := range entry.todo.VisibleTo {
			if uid == userID {
				matched = append(matched, entry)
				break
			}
		}
	}

	// Most recent first; the insertion sequence breaks createdAt ties so
	// back-to-back creates keep a deterministic order.
	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.todo.CreatedAt.Equal(b.todo.CreatedAt) {
			return a.todo.CreatedAt.After(b.todo.CreatedAt)
		}
		return a.seq > b.seq
	})

	todos := make([]*model.Todo, 0, len(matched))
	for _, entry := range matched {
		todos = append(todos, entry.todo.Clone())
	}
	return todos, nil
}

// Len reports the number of stored records.
func (s *MemoryTodoStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
