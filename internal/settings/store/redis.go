package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/settings/models"
	"ficlear/pkg/platform/sentinel"
)

// Redis persists the settings singleton as a JSON value.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed settings store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Get(ctx context.Context) (*models.Settings, error) {
	data, err := s.client.Get(ctx, settingsKey).Bytes()
	if err == redis.Nil {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}
	var settings models.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}
	return &settings, nil
}

func (s *Redis) Put(ctx context.Context, settings *models.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("store settings: %w", err)
	}
	return nil
}

func (s *Redis) GetCredentialHash(ctx context.Context) (string, error) {
	hash, err := s.client.Get(ctx, credentialKey).Result()
	if err == redis.Nil {
		return "", sentinel.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("fetch admin credential: %w", err)
	}
	return hash, nil
}

func (s *Redis) PutCredentialHash(ctx context.Context, hash string) error {
	if err := s.client.Set(ctx, credentialKey, hash, 0).Err(); err != nil {
		return fmt.Errorf("store admin credential: %w", err)
	}
	return nil
}
