package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/company/models"
	"ficlear/pkg/platform/sentinel"
)

const companyKeyPrefix = "company:"

// Redis persists employer records as JSON values under "company:<id>".
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed register store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func companyKey(id string) string {
	return companyKeyPrefix + id
}

func (s *Redis) Create(ctx context.Context, company *models.Company) error {
	data, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("marshal company: %w", err)
	}
	ok, err := s.client.SetNX(ctx, companyKey(company.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("store company: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, id string) (*models.Company, error) {
	data, err := s.client.Get(ctx, companyKey(id)).Bytes()
	if err == redis.Nil {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch company: %w", err)
	}
	var company models.Company
	if err := json.Unmarshal(data, &company); err != nil {
		return nil, fmt.Errorf("unmarshal company: %w", err)
	}
	return &company, nil
}

func (s *Redis) List(ctx context.Context) ([]*models.Company, error) {
	return s.scan(ctx, func(*models.Company) bool { return true }, 0)
}

func (s *Redis) SearchByName(ctx context.Context, query string, limit int) ([]*models.Company, error) {
	q := strings.ToLower(query)
	return s.scan(ctx, func(c *models.Company) bool {
		return strings.Contains(strings.ToLower(c.Name), q)
	}, limit)
}

func (s *Redis) Update(ctx context.Context, company *models.Company) error {
	data, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("marshal company: %w", err)
	}
	ok, err := s.client.SetXX(ctx, companyKey(company.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if !ok {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, companyKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Redis) scan(ctx context.Context, keep func(*models.Company) bool, limit int) ([]*models.Company, error) {
	var out []*models.Company
	iter := s.client.Scan(ctx, 0, companyKeyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch company: %w", err)
		}
		var company models.Company
		if err := json.Unmarshal(data, &company); err != nil {
			return nil, fmt.Errorf("unmarshal company: %w", err)
		}
		if !keep(&company) {
			continue
		}
		out = append(out, &company)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan companies: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
