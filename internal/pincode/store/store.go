// Package store persists the postal directory. The directory is bulk-loaded
// and read-heavy, so every implementation keys records by
// "<pincode>:<office>" and offers substring search over the office fields.
package store

import (
	"context"

	"ficlear/internal/pincode/models"
)

// Store is the persistence contract for postal directory records.
type Store interface {
	Upsert(ctx context.Context, record *models.PostalRecord) error
	FindByPincode(ctx context.Context, pincode string) ([]models.PostalRecord, error)
	SearchByArea(ctx context.Context, query string, limit int) ([]models.PostalRecord, error)
	DeleteByPincode(ctx context.Context, pincode string) (int, error)
	Count(ctx context.Context) (int, error)
}

func recordKey(pincode, office string) string {
	return pincode + ":" + office
}
