// Package store persists the employer category register.
package store

import (
	"context"

	"ficlear/internal/company/models"
)

// Store is the persistence contract for employer records.
type Store interface {
	Create(ctx context.Context, company *models.Company) error
	Get(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	SearchByName(ctx context.Context, query string, limit int) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
}
