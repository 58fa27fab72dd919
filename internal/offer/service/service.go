// Package service orchestrates live offer management.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ficlear/internal/audit"
	"ficlear/internal/offer/models"
	offerstore "ficlear/internal/offer/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/platform/sentinel"
	"ficlear/pkg/requestcontext"
)

const auditEntity = "offer"

// Service manages live loan offers.
type Service struct {
	store   offerstore.Store
	logger  *slog.Logger
	auditor audit.Publisher
}

// New constructs an offer service.
func New(store offerstore.Store, logger *slog.Logger, auditor audit.Publisher) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{store: store, logger: logger, auditor: auditor}
}

// Create adds an offer.
func (s *Service) Create(ctx context.Context, offer *models.Offer) (*models.Offer, error) {
	if err := offer.Validate(); err != nil {
		return nil, err
	}
	offer.ID = strings.TrimSpace(offer.ID)
	if offer.ID == "" {
		offer.ID = uuid.NewString()
	}
	now := requestcontext.Now(ctx)
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := s.store.Create(ctx, offer); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "offer %q already exists", offer.ID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create offer")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: now,
		Entity:    auditEntity,
		EntityID:  offer.ID,
		Action:    audit.ActionCreated,
		RequestID: requestcontext.RequestID(ctx),
	})
	return offer, nil
}

// Get returns one offer by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Offer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "offer id is required")
	}
	offer, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "offer %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch offer")
	}
	return offer, nil
}

// List returns current offers, trending first. Expired offers are filtered
// out of the public listing.
func (s *Service) List(ctx context.Context, includeExpired bool) ([]*models.Offer, error) {
	offers, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list offers")
	}
	if includeExpired {
		return offers, nil
	}

	now := requestcontext.Now(ctx)
	live := offers[:0]
	for _, o := range offers {
		if !o.Expired(now) {
			live = append(live, o)
		}
	}
	return live, nil
}

// Update replaces an offer. The path ID wins over the body's.
func (s *Service) Update(ctx context.Context, id string, offer *models.Offer) (*models.Offer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "offer id is required")
	}
	if err := offer.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	offer.ID = id
	offer.CreatedAt = existing.CreatedAt
	offer.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Update(ctx, offer); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "offer %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update offer")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: offer.UpdatedAt,
		Entity:    auditEntity,
		EntityID:  id,
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	return offer, nil
}

// Delete removes an offer.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "offer id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "offer %q not found", id)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete offer")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  id,
		Action:    audit.ActionDeleted,
		RequestID: requestcontext.RequestID(ctx),
	})
	return nil
}
