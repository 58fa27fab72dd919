// Package models defines the lender catalog entities.
package models

import (
	"time"

	dErrors "ficlear/pkg/domain-errors"
)

// Criteria captures a lender's underwriting policy. The eligibility engine
// evaluates applicant profiles against these thresholds.
type Criteria struct {
	MinCibil               int      `json:"minCibil"`
	MaxCibil               int      `json:"maxCibil"`
	MinSalary              float64  `json:"minSalary"`
	CompanyCategoryAllowed []string `json:"companyCategoryAllowed"`
	MaxObligationPercent   float64  `json:"maxObligationPercent"`
	MaxLTV                 float64  `json:"maxLTV"`
	ServiceablePincodes    []string `json:"serviceablePincodes"`
}

// Bank is one lender in the catalog.
type Bank struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Logo          string    `json:"logo"`
	ROI           float64   `json:"roi"`
	ProcessingFee float64   `json:"processingFee"`
	Criteria      Criteria  `json:"criteria"`
	Features      []string  `json:"features"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Validate checks the invariants a bank record must hold before it is
// persisted. Records failing these checks would poison every subsequent
// eligibility evaluation.
func (b *Bank) Validate() error {
	if b.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "bank name is required")
	}
	if b.ROI <= 0 {
		return dErrors.New(dErrors.CodeValidation, "roi must be positive")
	}
	return b.Criteria.Validate()
}

// Validate checks the underwriting policy for internal consistency.
func (c *Criteria) Validate() error {
	if c.MinCibil < 300 || c.MinCibil > 900 {
		return dErrors.New(dErrors.CodeValidation, "minCibil must be within 300-900")
	}
	if c.MaxCibil < 300 || c.MaxCibil > 900 {
		return dErrors.New(dErrors.CodeValidation, "maxCibil must be within 300-900")
	}
	if c.MinCibil > c.MaxCibil {
		return dErrors.New(dErrors.CodeValidation, "minCibil cannot exceed maxCibil")
	}
	if c.MinSalary < 0 {
		return dErrors.New(dErrors.CodeValidation, "minSalary cannot be negative")
	}
	if c.MaxObligationPercent < 0 || c.MaxObligationPercent > 100 {
		return dErrors.New(dErrors.CodeValidation, "maxObligationPercent must be within 0-100")
	}
	if c.MaxLTV < 0 || c.MaxLTV > 100 {
		return dErrors.New(dErrors.CodeValidation, "maxLTV must be within 0-100")
	}
	for _, cat := range c.CompanyCategoryAllowed {
		if !validCategory(cat) {
			return dErrors.Newf(dErrors.CodeValidation, "unknown company category %q", cat)
		}
	}
	return nil
}

func validCategory(cat string) bool {
	switch cat {
	case "A", "B", "C", "D":
		return true
	}
	return false
}
