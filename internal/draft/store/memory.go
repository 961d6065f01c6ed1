package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"loandraft/pkg/platform/sentinel"
)

type InMemory struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]Draft
}

func NewInMemory() *InMemory {
	return &InMemory{drafts: make(map[uuid.UUID]Draft)}
}

func (s *InMemory) Insert(_ context.Context, draft Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.drafts[draft.ID]; exists {
		return fmt.Errorf("draft %s already exists", draft.ID)
	}
	s.drafts[draft.ID] = draft
	return nil
}

func (s *InMemory) FindByID(_ context.Context, id uuid.UUID) (*Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &draft, nil
}
