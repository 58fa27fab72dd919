package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ficlear/internal/company/models"
	"ficlear/pkg/platform/sentinel"
)

// InMemory keeps the register in a mutex-guarded map.
type InMemory struct {
	mu        sync.RWMutex
	companies map[string]models.Company
}

// NewInMemory creates an empty in-memory register.
func NewInMemory() *InMemory {
	return &InMemory{companies: make(map[string]models.Company)}
}

func (s *InMemory) Create(_ context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[company.ID]; ok {
		return sentinel.ErrConflict
	}
	s.companies[company.ID] = *company
	return nil
}

func (s *InMemory) Get(_ context.Context, id string) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.companies[id]; ok {
		return &c, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) List(_ context.Context) ([]*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Company, 0, len(s.companies))
	for id := range s.companies {
		c := s.companies[id]
		out = append(out, &c)
	}
	sortCompanies(out)
	return out, nil
}

func (s *InMemory) SearchByName(_ context.Context, query string, limit int) ([]*models.Company, error) {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Company
	for id := range s.companies {
		c := s.companies[id]
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, &c)
		}
	}
	sortCompanies(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemory) Update(_ context.Context, company *models.Company) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[company.ID]; !ok {
		return sentinel.ErrNotFound
	}
	s.companies[company.ID] = *company
	return nil
}

func (s *InMemory) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.companies[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.companies, id)
	return nil
}

func sortCompanies(companies []*models.Company) {
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
}
