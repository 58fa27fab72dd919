package store

import (
	"context"
	"sort"
	"sync"

	"ficlear/internal/offer/models"
	"ficlear/pkg/platform/sentinel"
)

// InMemory keeps offers in a mutex-guarded map.
type InMemory struct {
	mu     sync.RWMutex
	offers map[string]models.Offer
}

// NewInMemory creates an empty in-memory offer store.
func NewInMemory() *InMemory {
	return &InMemory{offers: make(map[string]models.Offer)}
}

func (s *InMemory) Create(_ context.Context, offer *models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[offer.ID]; ok {
		return sentinel.ErrConflict
	}
	s.offers[offer.ID] = *offer
	return nil
}

func (s *InMemory) Get(_ context.Context, id string) (*models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.offers[id]; ok {
		return &o, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Offer, 0, len(s.offers))
	for id := range s.offers {
		o := s.offers[id]
		out = append(out, &o)
	}
	sortOffers(out)
	return out, nil
}

func (s *InMemory) Update(_ context.Context, offer *models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[offer.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.offers[offer.ID] = *offer
	return nil
}

func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.offers, id)
	return nil
}

// sortOffers puts trending offers first, then orders by bank name.
func sortOffers(offers []*models.Offer) {
	sort.Slice(offers, func(i, j int) bool {
		if offers[i].IsTrending != offers[j].IsTrending {
			return offers[i].IsTrending
		}
		return offers[i].BankName < offers[j].BankName
	})
}
