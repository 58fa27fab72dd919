package store

import (
	"context"
	"sync"

	"ficlear/internal/settings/models"
	"ficlear/pkg/platform/sentinel"
)

// InMemory holds the settings singleton behind a mutex.
type InMemory struct {
	mu             sync.RWMutex
	settings       *models.Settings
	credentialHash string
}

// NewInMemory creates an empty in-memory settings store.
func NewInMemory() *InMemory {
	return &InMemory{}
}

func (s *InMemory) Get(_ context.Context) (*models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return nil, sentinel.ErrNotFound
	}
	copy := *s.settings
	return &copy, nil
}

func (s *InMemory) Put(_ context.Context, settings *models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copy := *settings
	s.settings = &copy
	return nil
}

func (s *InMemory) GetCredentialHash(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.credentialHash == "" {
		return "", sentinel.ErrNotFound
	}
	return s.credentialHash, nil
}

func (s *InMemory) PutCredentialHash(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credentialHash = hash
	return nil
}
