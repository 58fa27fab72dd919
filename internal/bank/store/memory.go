package store

import (
	"context"
	"sort"
	"sync"

	"ficlear/internal/bank/models"
	"ficlear/pkg/platform/sentinel"
)

// InMemory keeps the catalog in a mutex-guarded map. It favors clarity over
// performance and backs development and tests.
type InMemory struct {
	mu    sync.RWMutex
	banks map[string]models.Bank
}

// NewInMemory creates an empty in-memory catalog store.
func NewInMemory() *InMemory {
	return &InMemory{banks: make(map[string]models.Bank)}
}

func (s *InMemory) Create(_ context.Context, bank *models.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bank.ID]; ok {
		return sentinel.ErrConflict
	}
	s.banks[bank.ID] = *bank
	return nil
}

func (s *InMemory) Get(_ context.Context, id string) (*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.banks[id]; ok {
		return &b, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Bank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Bank, 0, len(s.banks))
	for id := range s.banks {
		b := s.banks[id]
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemory) Update(_ context.Context, bank *models.Bank) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[bank.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.banks[bank.ID] = *bank
	return nil
}

func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.banks[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.banks, id)
	return nil
}
