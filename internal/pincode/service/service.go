// Package service orchestrates postal directory lookups and imports.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ficlear/internal/audit"
	pinmetrics "ficlear/internal/pincode/metrics"
	"ficlear/internal/pincode/models"
	pinstore "ficlear/internal/pincode/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/requestcontext"
)

const (
	auditEntity = "pincode"

	// areaSearchLimit caps area searches so a one-letter query cannot pull
	// the whole directory across the wire.
	areaSearchLimit = 100

	// importBatchSize and importWorkers bound bulk import parallelism.
	importBatchSize = 100
	importWorkers   = 4
)

// Service manages the postal directory.
type Service struct {
	store   pinstore.Store
	logger  *slog.Logger
	auditor audit.Publisher
	metrics *pinmetrics.Metrics
}

// New constructs a directory service.
func New(store pinstore.Store, logger *slog.Logger, auditor audit.Publisher, metrics *pinmetrics.Metrics) *Service {
	if auditor == nil {
		auditor = audit.Nop{}
	}
	return &Service{store: store, logger: logger, auditor: auditor, metrics: metrics}
}

// PincodeResult is the outcome of a directory lookup for one PIN code.
type PincodeResult struct {
	Pincode  string                `json:"pincode"`
	AreaType models.AreaType       `json:"areaType"`
	Offices  []models.PostalRecord `json:"offices"`
}

// SearchByPincode returns all post offices under a PIN code together with the
// inferred area type. A miss yields an empty office list, not an error.
func (s *Service) SearchByPincode(ctx context.Context, pincode string) (*PincodeResult, error) {
	pincode = strings.TrimSpace(pincode)
	if err := validatePincode(pincode); err != nil {
		return nil, err
	}

	records, err := s.store.FindByPincode(ctx, pincode)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search directory")
	}
	s.metrics.IncrementSearch("pincode")

	return &PincodeResult{
		Pincode:  pincode,
		AreaType: models.ClassifyArea(records),
		Offices:  records,
	}, nil
}

// SearchByArea returns directory records whose office, district, division or
// state name contains the query. Results are capped at areaSearchLimit.
func (s *Service) SearchByArea(ctx context.Context, area string) ([]models.PostalRecord, error) {
	area = strings.TrimSpace(area)
	if len(area) < 2 {
		return nil, dErrors.New(dErrors.CodeValidation, "area query must be at least 2 characters")
	}

	records, err := s.store.SearchByArea(ctx, area, areaSearchLimit)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search directory")
	}
	s.metrics.IncrementSearch("area")
	return records, nil
}

// Upsert stores one directory record.
func (s *Service) Upsert(ctx context.Context, record *models.PostalRecord) (*models.PostalRecord, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store postal record")
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  record.Pincode,
		Action:    audit.ActionUpdated,
		RequestID: requestcontext.RequestID(ctx),
	})
	return record, nil
}

// DeleteByPincode removes every office under a PIN code and returns how many
// records went away.
func (s *Service) DeleteByPincode(ctx context.Context, pincode string) (int, error) {
	pincode = strings.TrimSpace(pincode)
	if err := validatePincode(pincode); err != nil {
		return 0, err
	}

	deleted, err := s.store.DeleteByPincode(ctx, pincode)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete postal records")
	}
	if deleted == 0 {
		return 0, dErrors.Newf(dErrors.CodeNotFound, "pincode %q not found", pincode)
	}

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  pincode,
		Action:    audit.ActionDeleted,
		RequestID: requestcontext.RequestID(ctx),
	})
	return deleted, nil
}

// ImportResult reports the outcome of a bulk directory load.
type ImportResult struct {
	Count  int      `json:"count"`
	Total  int      `json:"total"`
	Errors []string `json:"errors,omitempty"`
}

// BulkImport loads a batch of directory records. Records are validated up
// front; valid ones are written in parallel batches so a full India Post
// import does not serialize on store round-trips.
func (s *Service) BulkImport(ctx context.Context, records []models.PostalRecord) (*ImportResult, error) {
	if len(records) == 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "at least one record is required")
	}

	start := time.Now()
	result := &ImportResult{Total: len(records)}

	valid := make([]models.PostalRecord, 0, len(records))
	for i := range records {
		if err := records[i].Validate(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %s", i, dErrors.MessageOf(err)))
			continue
		}
		valid = append(valid, records[i])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(importWorkers)
	for off := 0; off < len(valid); off += importBatchSize {
		batch := valid[off:min(off+importBatchSize, len(valid))]
		g.Go(func() error {
			for i := range batch {
				if err := s.store.Upsert(gctx, &batch[i]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to import postal records")
	}
	result.Count = len(valid)

	s.auditor.Emit(ctx, audit.Event{
		Timestamp: requestcontext.Now(ctx),
		Entity:    auditEntity,
		EntityID:  "batch",
		Action:    audit.ActionBulkImport,
		RequestID: requestcontext.RequestID(ctx),
	})
	s.metrics.ObserveImport(result.Count, time.Since(start))

	s.logger.InfoContext(ctx, "postal directory imported",
		"imported", result.Count,
		"skipped", len(result.Errors),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ImportCSV parses CSV content and loads it like BulkImport. Parse failures
// on individual rows are reported alongside validation failures.
func (s *Service) ImportCSV(ctx context.Context, csvContent string) (*ImportResult, error) {
	records, parseErrs, err := ParseCSV(strings.NewReader(csvContent))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, dErrors.New(dErrors.CodeValidation, "csv contains no importable rows")
	}

	result, err := s.BulkImport(ctx, records)
	if err != nil {
		return nil, err
	}
	result.Errors = append(parseErrs, result.Errors...)
	result.Total += len(parseErrs)
	return result, nil
}

// Count reports directory size for the admin dashboard.
func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count postal records")
	}
	return n, nil
}

func validatePincode(pincode string) error {
	if len(pincode) != 6 {
		return dErrors.New(dErrors.CodeValidation, "pincode must be 6 digits")
	}
	for _, c := range pincode {
		if c < '0' || c > '9' {
			return dErrors.New(dErrors.CodeValidation, "pincode must be 6 digits")
		}
	}
	return nil
}
