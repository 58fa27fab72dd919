// Package store persists the lender catalog. Implementations are
// interface-driven so the service layer stays agnostic of the backing store.
package store

import (
	"context"

	"ficlear/internal/bank/models"
)

// Store is the persistence contract for lender records.
type Store interface {
	Create(ctx context.Context, bank *models.Bank) error
	Get(ctx context.Context, id string) (*models.Bank, error)
	List(ctx context.Context) ([]*models.Bank, error)
	Update(ctx context.Context, bank *models.Bank) error
	Delete(ctx context.Context, id string) error
}
