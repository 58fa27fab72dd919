package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ficlear/internal/offer/models"
	"ficlear/pkg/platform/sentinel"
)

const offerKeyPrefix = "offer:"

// Redis persists offers as JSON values under "offer:<id>".
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed offer store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func offerKey(id string) string {
	return offerKeyPrefix + id
}

func (s *Redis) Create(ctx context.Context, offer *models.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("marshal offer: %w", err)
	}
	ok, err := s.client.SetNX(ctx, offerKey(offer.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("store offer: %w", err)
	}
	if !ok {
		return sentinel.ErrConflict
	}
	return nil
}

func (s *Redis) Get(ctx context.Context, id string) (*models.Offer, error) {
	data, err := s.client.Get(ctx, offerKey(id)).Bytes()
	if err == redis.Nil {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch offer: %w", err)
	}
	var offer models.Offer
	if err := json.Unmarshal(data, &offer); err != nil {
		return nil, fmt.Errorf("unmarshal offer: %w", err)
	}
	return &offer, nil
}

func (s *Redis) List(ctx context.Context) ([]*models.Offer, error) {
	var offers []*models.Offer
	iter := s.client.Scan(ctx, 0, offerKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		data, err := s.client.Get(ctx, iter.Val()).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("fetch offer: %w", err)
		}
		var offer models.Offer
		if err := json.Unmarshal(data, &offer); err != nil {
			return nil, fmt.Errorf("unmarshal offer: %w", err)
		}
		offers = append(offers, &offer)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scan offers: %w", err)
	}
	sortOffers(offers)
	return offers, nil
}

func (s *Redis) Update(ctx context.Context, offer *models.Offer) error {
	data, err := json.Marshal(offer)
	if err != nil {
		return fmt.Errorf("marshal offer: %w", err)
	}
	ok, err := s.client.SetXX(ctx, offerKey(offer.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	if !ok {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Redis) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, offerKey(id)).Result()
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
