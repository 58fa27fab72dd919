package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/bank/models"
	"ficlear/pkg/platform/sentinel"
)

const bankKeyPrefix = "bank:"

// Redis persists lender records as JSON values under "bank:<id>".
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed catalog store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func bankKey(id string) string {
	return bankKeyPrefix + id
}

func (s *Redis) Create(ctx context.Context, bank *models.Bank) error {
	data, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	ok, err := s.client.SetNX(ctx, bankKey(bank.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("store bank: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, id string) (*models.Bank, error) {
	data, err := s.client.Get(ctx, bankKey(id)).Bytes()
	if err == redis.Nil {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch bank: %w", err)
	}
	var bank models.Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("unmarshal bank: %w", err)
	}
	return &bank, nil
}

func (s *Redis) List(ctx context.Context) ([]*models.Bank, error) {
	var banks []*models.Bank
	iter := s.client.Scan(ctx, 0, bankKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue // deleted between scan and fetch
		}
		if err != nil {
			return nil, fmt.Errorf("fetch bank: %w", err)
		}
		var bank models.Bank
		if err := json.Unmarshal(data, &bank); err != nil {
			return nil, fmt.Errorf("unmarshal bank: %w", err)
		}
		banks = append(banks, &bank)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan banks: %w", err)
	}
	sort.Slice(banks, func(i, j int) bool { return banks[i].Name < banks[j].Name })
	return banks, nil
}

func (s *Redis) Update(ctx context.Context, bank *models.Bank) error {
	data, err := json.Marshal(bank)
	if err != nil {
		return fmt.Errorf("marshal bank: %w", err)
	}
	ok, err := s.client.SetXX(ctx, bankKey(bank.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("update bank: %w", err)
	}
	if !ok {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, bankKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete bank: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
