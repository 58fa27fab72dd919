// Package service orchestrates platform settings and the admin credential.
package service

import (
	"context"
	"errors"
	"log/slog"

	"ficlear/internal/audit"
	"ficlear/internal/settings/models"
	settingsstore "ficlear/internal/settings/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/platform/sentinel"
	"ficlear/pkg/requestcontext"
	"ficlear/pkg/secrets"
)

const auditEntity = "settings"

// Service manages the settings singleton.
type Service struct {
	store   settingsstore.Store
	logger  *slog.Logger
	auditor audit.Publisher
}

// New constructs a settings service.
func New(store settingsstore.Store, logger *slog.Logger, auditor audit.Publisher) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{store: store, logger: logger, auditor: auditor}
}

// Get returns the stored settings, falling back to the shipped defaults when
// nothing was ever saved.
func (s *Service) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.store.Get(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return models.Defaults(), nil
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch settings")
	}
	return settings, nil
}

// Update replaces the settings singleton.
func (s *Service) Update(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Put(ctx, settings); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store settings")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: settings.UpdatedAt,
		Entity:    auditEntity,
		EntityID:  "platform",
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	return settings, nil
}

// SetAdminPassword stores a bcrypt hash of the back-office password. The
// plaintext is never persisted.
func (s *Service) SetAdminPassword(ctx context.Context, password string) error {
	hash, err := secrets.Hash(password)
	if err != nil {
		return err
	}
	if err := s.store.PutCredentialHash(ctx, hash); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store admin credential")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  "admin-credential",
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.logger.InfoContext(ctx, "admin credential rotated",
		"request_id", requestcontext.RequestID(ctx),
	)
	return nil
}

// VerifyAdminPassword checks a password attempt against the stored hash.
func (s *Service) VerifyAdminPassword(ctx context.Context, password string) error {
	hash, err := s.store.GetCredentialHash(ctx)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch admin credential")
	}
	return secrets.Verify(password, hash)
}
