// Package store persists the platform settings singleton under the
// "platform:settings" key.
package store

import (
	"context"

	"ficlear/internal/settings/models"
)

// Store is the persistence contract for the settings singleton and the
// admin credential hash kept alongside it.
type Store interface {
	// Get returns the stored settings, or sentinel.ErrNotFound when none
	// were ever saved.
	Get(ctx context.Context) (*models.Settings, error)
	Put(ctx context.Context, settings *models.Settings) error

	// GetCredentialHash returns the stored admin credential hash, or
	// sentinel.ErrNotFound when none was set.
	GetCredentialHash(ctx context.Context) (string, error)
	PutCredentialHash(ctx context.Context, hash string) error
}

const (
	settingsKey   = "platform:settings"
	credentialKey = "platform:admin-credential"
)
