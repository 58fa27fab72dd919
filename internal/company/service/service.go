// Package service orchestrates the employer register and CIN lookups.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"ficlear/internal/audit"
	companymetrics "ficlear/internal/company/metrics"
	"ficlear/internal/company/models"
	companystore "ficlear/internal/company/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/platform/sentinel"
	"ficlear/pkg/requestcontext"
)

const (
	auditEntity = "company"

	// nameSearchLimit caps register searches used by the profile form's
	// employer autocomplete.
	nameSearchLimit = 25
)

// Registry looks up company master data by CIN.
type Registry interface {
	Lookup(ctx context.Context, cin string) (*models.Registration, error)
}

// Service manages the employer register.
type Service struct {
	store    companystore.Store
	registry Registry
	logger   *slog.Logger
	auditor  audit.Publisher
	metrics  *companymetrics.Metrics
}

// New constructs a register service.
func New(store companystore.Store, registry Registry, logger *slog.Logger, auditor audit.Publisher, metrics *companymetrics.Metrics) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{store: store, registry: registry, logger: logger, auditor: auditor, metrics: metrics}
}

// Create adds an employer to the register.
func (s *Service) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	if err := company.Validate(); err != nil {
		return nil, err
	}
	company.ID = strings.TrimSpace(company.ID)
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	now := requestcontext.Now(ctx)
	company.CreatedAt = now
	company.UpdatedAt = now

	if err := s.store.Create(ctx, company); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Newf(dErrors.CodeConflict, "company %q already exists", company.ID)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create company")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: now,
		Entity:    auditEntity,
		EntityID:  company.ID,
		Action:    audit.ActionCreated,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementMutation(audit.ActionCreated)
	return company, nil
}

// Get returns one employer by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Company, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company id is required")
	}
	company, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "company %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch company")
	}
	return company, nil
}

// List returns the register ordered by name.
func (s *Service) List(ctx context.Context) ([]*models.Company, error) {
	companies, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list companies")
	}
	return companies, nil
}

// SearchByName finds register entries whose name contains the query. This
// backs the employer autocomplete on the eligibility form.
func (s *Service) SearchByName(ctx context.Context, query string) ([]*models.Company, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, dErrors.New(dErrors.CodeValidation, "search query must be at least 2 characters")
	}
	companies, err := s.store.SearchByName(ctx, query, nameSearchLimit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search companies")
	}
	return companies, nil
}

// Update replaces an employer record. The path ID wins over the body's.
func (s *Service) Update(ctx context.Context, id string, company *models.Company) (*models.Company, error) {
	if strings.TrimSpace(id) == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "company id is required")
	}
	if err := company.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	company.ID = id
	company.CreatedAt = existing.CreatedAt
	company.UpdatedAt = requestcontext.Now(ctx)

	if err := s.store.Update(ctx, company); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Newf(dErrors.CodeNotFound, "company %q not found", id)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update company")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: company.UpdatedAt,
		Entity:    auditEntity,
		EntityID:  id,
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.IncrementMutation(audit.ActionUpdated)
	return company, nil
}

// Delete removes an employer from the register.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return dErrors.New(dErrors.CodeBadRequest, "company id is required")
	}
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.Newf(dErrors.CodeNotFound, "company %q not found", id)
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete company")
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

// ImportResult reports the outcome of a bulk register load.
type ImportResult struct {
	Count  int      `json:"count"`
	Errors []string `json:"errors,omitempty"`
}

// BulkImport upserts a batch of employers, skipping and reporting invalid
// records.
func (s *Service) BulkImport(ctx context.Context, companies []*models.Company) (*ImportResult, error) {
	if len(companies) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "at least one company is required")
	}

	now := requestcontext.Now(ctx)
	result := &ImportResult{}
	for i, company := range companies {
		if err := company.Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %s", i, dErrors.MessageOf(err)))
			continue
		}
		company.ID = strings.TrimSpace(company.ID)
		if company.ID == "" {
			company.ID = uuid.NewString()
		}
		company.UpdatedAt = now

		if existing, err := s.store.Get(ctx, company.ID); err == nil {
			company.CreatedAt = existing.CreatedAt
			if err := s.store.Update(ctx, company); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import companies")
			}
		} else {
			company.CreatedAt = now
			if err := s.store.Create(ctx, company); err != nil {
				return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import companies")
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

	s.logger.InfoContext(ctx, "company register imported",
		"imported", result.Count,
		"skipped", len(result.Errors),
	)
	return result, nil
}

// LookupCIN fetches company master data from the MCA registry.
func (s *Service) LookupCIN(ctx context.Context, cin string) (*models.Registration, error) {
	normalized, err := models.NormalizeCIN(cin)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	registration, err := s.registry.Lookup(ctx, normalized)
	switch {
	case err == nil:
		s.metrics.ObserveLookup("hit", time.Since(start))
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		s.metrics.ObserveLookup("miss", time.Since(start))
	default:
		s.metrics.ObserveLookup("error", time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "cin lookup resolved",
		"request_id", requestcontext.RequestID(ctx),
		"cin", normalized,
		"company", registration.CompanyName,
	)
	return registration, nil
}
