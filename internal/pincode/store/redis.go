package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/pincode/models"
)

const pincodeKeyPrefix = "pincode-data:"

// Redis persists directory records as JSON values under
// "pincode-data:<pincode>:<office>". Area search scans the keyspace, which is
// acceptable for a directory in the low hundreds of thousands; the Postgres
// store is the right backend beyond that.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed directory store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Upsert(ctx context.Context, record *models.PostalRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal postal record: %w", err)
	}
	key := pincodeKeyPrefix + recordKey(record.Pincode, record.OfficeName)
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store postal record: %w", err)
	}
	return nil
}

func (s *Redis) FindByPincode(ctx context.Context, pincode string) ([]models.PostalRecord, error) {
	return s.scan(ctx, pincodeKeyPrefix+pincode+":*", func(*models.PostalRecord) bool { return true }, 0)
}

func (s *Redis) SearchByArea(ctx context.Context, query string, limit int) ([]models.PostalRecord, error) {
	q := strings.ToLower(query)
	return s.scan(ctx, pincodeKeyPrefix+"*", func(r *models.PostalRecord) bool {
		return matchesArea(r, q)
	}, limit)
}

func (s *Redis) DeleteByPincode(ctx context.Context, pincode string) (int, error) {
	deleted := 0
	iter := s.client.Scan(ctx, 0, pincodeKeyPrefix+pincode+":*", 200).Iterator()
	for iter.Next(ctx) {
		n, err := s.client.Del(ctx, iter.Val()).Result()
		if err != nil {
			return deleted, fmt.Errorf("delete postal record: %w", err)
		}
		deleted += int(n)
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("scan postal records: %w", err)
	}
	return deleted, nil
}

func (s *Redis) Count(ctx context.Context) (int, error) {
	count := 0
	iter := s.client.Scan(ctx, 0, pincodeKeyPrefix+"*", 1000).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("scan postal records: %w", err)
	}
	return count, nil
}

func (s *Redis) scan(ctx context.Context, pattern string, keep func(*models.PostalRecord) bool, limit int) ([]models.PostalRecord, error) {
	var out []models.PostalRecord
	iter := s.client.Scan(ctx, 0, pattern, 200).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch postal record: %w", err)
		}
		var record models.PostalRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, fmt.Errorf("unmarshal postal record: %w", err)
		}
		if !keep(&record) {
			continue
		}
		out = append(out, record)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan postal records: %w", err)
	}
	sortRecords(out)
	return out, nil
}
