package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ficlear/internal/pincode/models"
)

// InMemory keeps the directory in a mutex-guarded map keyed by
// "<pincode>:<office>". It backs development and tests.
type InMemory struct {
	mu      sync.RWMutex
	records map[string]models.PostalRecord
}

// NewInMemory creates an empty in-memory directory.
func NewInMemory() *InMemory {
	return &InMemory{records: make(map[string]models.PostalRecord)}
}

func (s *InMemory) Upsert(_ context.Context, record *models.PostalRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey(record.Pincode, record.OfficeName)] = *record
	return nil
}

func (s *InMemory) FindByPincode(_ context.Context, pincode string) ([]models.PostalRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PostalRecord
	for _, r := range s.records {
		if r.Pincode == pincode {
			out = append(out, r)
		}
	}
	sortRecords(out)
	return out, nil
}

func (s *InMemory) SearchByArea(_ context.Context, query string, limit int) ([]models.PostalRecord, error) {
	q := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.PostalRecord
	for _, r := range s.records {
		if matchesArea(&r, q) {
			out = append(out, r)
		}
	}
	sortRecords(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *InMemory) DeleteByPincode(_ context.Context, pincode string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for key, r := range s.records {
		if r.Pincode == pincode {
			delete(s.records, key)
			deleted++
		}
	}
	return deleted, nil
}

func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func matchesArea(r *models.PostalRecord, q string) bool {
	return strings.Contains(strings.ToLower(r.OfficeName), q) ||
		strings.Contains(strings.ToLower(r.DistrictName), q) ||
		strings.Contains(strings.ToLower(r.DivisionName), q) ||
		strings.Contains(strings.ToLower(r.StateName), q)
}

func sortRecords(records []models.PostalRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Pincode != records[j].Pincode {
			return records[i].Pincode < records[j].Pincode
		}
		return records[i].OfficeName < records[j].OfficeName
	})
}
