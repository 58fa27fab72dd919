// Package service runs eligibility checks: it gathers the lender catalog and
// the applicant's postal area, delegates to the pure rule evaluation, and
// records what happened.
package service

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	bankmodels "ficlear/internal/bank/models"
	eligmetrics "ficlear/internal/eligibility/metrics"
	"ficlear/internal/eligibility/models"
	"ficlear/internal/eligibility/rules"
	pinmodels "ficlear/internal/pincode/models"
	pinsvc "ficlear/internal/pincode/service"
	dErrors "ficlear/pkg/domain-errors"
)

var tracer trace.Tracer = otel.Tracer("ficlear/eligibility")

// Catalog is the read path into the lender catalog.
type Catalog interface {
	List(ctx context.Context) ([]*bankmodels.Bank, error)
}

// Directory resolves a PIN code to its post offices and area type.
type Directory interface {
	SearchByPincode(ctx context.Context, pincode string) (*pinsvc.PincodeResult, error)
}

// Service evaluates applicant profiles against the lender catalog.
type Service struct {
	catalog   Catalog
	directory Directory
	logger    *slog.Logger
	metrics   *eligmetrics.Metrics
	opts      rules.Options
}

// New constructs an eligibility service.
func New(catalog Catalog, directory Directory, logger *slog.Logger, metrics *eligmetrics.Metrics, opts rules.Options) *Service {
	return &Service{
		catalog:   catalog,
		directory: directory,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// CheckResult is the outcome of one eligibility check.
type CheckResult struct {
	AreaType      pinmodels.AreaType `json:"areaType"`
	EligibleCount int                `json:"eligibleCount"`
	Results       []models.Verdict   `json:"results"`
}

// Check validates the profile and produces one verdict per catalog bank.
// Catalog and directory lookups run concurrently; a directory miss is not an
// error and falls back to the Non-Metro assumption.
func (s *Service) Check(ctx context.Context, profile *models.Profile) (*CheckResult, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "eligibility.check")
	defer span.End()
	start := time.Now()

	var (
		banks []*bankmodels.Bank
		area  = pinmodels.AreaNonMetro
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		banks, err = s.catalog.List(gctx)
		return err
	})
	if profile.Pincode != "" {
		g.Go(func() error {
			lookup, err := s.directory.SearchByPincode(gctx, profile.Pincode)
			if err != nil {
				return err
			}
			area = lookup.AreaType
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to gather evaluation inputs")
	}

	verdicts := rules.Evaluate(profile, banks, area, s.opts)

	eligible := 0
	for i := range verdicts {
		if verdicts[i].Eligible {
			eligible++
		}
	}

	span.SetAttributes(
		attribute.Int("banks.total", len(verdicts)),
		attribute.Int("banks.eligible", eligible),
		attribute.String("area.type", string(area)),
	)
	s.metrics.ObserveCheck(eligible, len(verdicts), time.Since(start))
	s.logger.InfoContext(ctx, "eligibility check evaluated",
		"banks", len(verdicts),
		"eligible", eligible,
		"area_type", string(area),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &CheckResult{
		AreaType:      area,
		EligibleCount: eligible,
		Results:       verdicts,
	}, nil
}

// BankServiceability is one bank's coverage entry on a serviceability report.
type BankServiceability struct {
	BankID      string  `json:"bankId"`
	BankName    string  `json:"bankName"`
	ROI         float64 `json:"roi"`
	Serviceable bool    `json:"isServiceable"`
	Remarks     string  `json:"remarks"`
}

// ServiceabilityReport describes which banks reach a PIN code.
type ServiceabilityReport struct {
	Pincode  string                   `json:"pincode"`
	AreaType pinmodels.AreaType       `json:"areaType"`
	Offices  []pinmodels.PostalRecord `json:"offices"`
	Banks    []BankServiceability     `json:"banks"`
}

// ServiceabilityByPincode maps one PIN code to its area type and per-bank
// branch coverage.
func (s *Service) ServiceabilityByPincode(ctx context.Context, pincode string) (*ServiceabilityReport, error) {
	var (
		banks  []*bankmodels.Bank
		lookup *pinsvc.PincodeResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		banks, err = s.catalog.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		lookup, err = s.directory.SearchByPincode(gctx, pincode)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &ServiceabilityReport{
		Pincode:  lookup.Pincode,
		AreaType: lookup.AreaType,
		Offices:  lookup.Offices,
		Banks:    make([]BankServiceability, 0, len(banks)),
	}
	for _, bank := range banks {
		serviceable, remarks := rules.Coverage(bank, lookup.Pincode, lookup.AreaType)
		report.Banks = append(report.Banks, BankServiceability{
			BankID:      bank.ID,
			BankName:    bank.Name,
			ROI:         bank.ROI,
			Serviceable: serviceable,
			Remarks:     remarks,
		})
	}
	return report, nil
}
