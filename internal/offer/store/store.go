// Package store persists live loan offers.
package store

import (
	"context"

	"ficlear/internal/offer/models"
)

// Store is the persistence contract for offers.
type Store interface {
	Create(ctx context.Context, offer *models.Offer) error
	Get(ctx context.Context, id string) (*models.Offer, error)
	List(ctx context.Context) ([]*models.Offer, error)
	Update(ctx context.Context, offer *models.Offer) error
	Delete(ctx context.Context, id string) error
}
