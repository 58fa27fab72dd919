// Package service orchestrates lender catalog management.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"ficlear/internal/audit"
	bankmetrics "ficlear/internal/bank/metrics"
	"ficlear/internal/bank/models"
	bankstore "ficlear/internal/bank/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/platform/sentinel"
	"ficlear/pkg/requestcontext"
)

const auditEntity = "bank"

// Service manages the lender catalog.
type Service struct {
	store   bankstore.Store
	logger  *slog.Logger
	auditor audit.Publisher
	metrics *bankmetrics.Metrics
}

// New constructs a catalog service.
func New(store bankstore.Store, logger *slog.Logger, auditor audit.Publisher, metrics *bankmetrics.Metrics) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{store: store, logger: logger, auditor: auditor, metrics: metrics}
}

// Create adds a lender to the catalog. An empty ID gets a generated one;
// explicit IDs (like "sbi") are kept so operators control catalog slugs.
func (s *Service) Create(ctx context.Context, bank *models.Bank) (*models.Bank, error) {
	if err := bank.Validate(); err != nil {
		return nil, err
	}
	bank.ID = strings.TrimSpace(bank.ID)
	if bank.ID == "" {
		bank.ID = uuid.NewString()
	}
	now := requestcontext.Now(ctx)
	bank.CreatedAt = now
	bank.UpdatedAt = now

	if err := s.store.Create(ctx, bank); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "bank %q already exists", bank.ID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create bank")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: now,
		Entity:    auditEntity,
		EntityID:  bank.ID,
		Action:    audit.ActionCreated,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementMutation(audit.ActionCreated)
	return bank, nil
}

// Get returns one lender by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Bank, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "bank id is required")
	}
	bank, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "bank %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch bank")
	}
	return bank, nil
}

// List returns the full catalog ordered by lender name.
func (s *Service) List(ctx context.Context) ([]*models.Bank, error) {
	banks, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list banks")
	}
	return banks, nil
}

// Update replaces a lender record. The path ID wins over any ID in the body.
func (s *Service) Update(ctx context.Context, id string, bank *models.Bank) (*models.Bank, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "bank id is required")
	}
	if err := bank.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	bank.ID = id
	bank.CreatedAt = existing.CreatedAt
	bank.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Update(ctx, bank); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "bank %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update bank")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: bank.UpdatedAt,
		Entity:    auditEntity,
		EntityID:  id,
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementMutation(audit.ActionUpdated)
	return bank, nil
}

// Delete removes a lender from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "bank id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "bank %q not found", id)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete bank")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  id,
		Action:    audit.ActionDeleted,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementMutation(audit.ActionDeleted)
	return nil
}

// ImportResult reports the outcome of a bulk catalog load.
type ImportResult struct {
	Count  int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

// BulkImport upserts a batch of lenders. Invalid records are skipped and
// reported; valid ones still land, matching how catalog operators expect a
// partial import to behave.
func (s *Service) BulkImport(ctx context.Context, banks []*models.Bank) (*ImportResult, error) {
	if len(banks) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "at least one bank is required")
	}

	now := requestcontext.Now(ctx)
	result := &ImportResult{}
	for i, bank := range banks {
		if err := bank.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %s", i, dErrors.MessageOf(err)))
			continue
		}
		bank.ID = strings.TrimSpace(bank.ID)
		if bank.ID == "" {
			bank.ID = uuid.NewString()
		}
		bank.UpdatedAt = now

		if existing, err := s.store.Get(ctx, bank.ID); err == nil {
			bank.CreatedAt = existing.CreatedAt
			err = s.store.Update(ctx, bank)
			if err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import banks")
			}
		} else {
			bank.CreatedAt = now
			if err := s.store.Create(ctx, bank); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import banks")
			}
		}
		result.Count++
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: now,
		Entity:    auditEntity,
		EntityID:  "batch",
		Action:    audit.ActionBulkImport,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.AddImported(result.Count)

	s.logger.InfoContext(ctx, "bank catalog imported",
		"imported", result.Count,
		"skipped", len(result.Errors),
	)
	return result, nil
}
