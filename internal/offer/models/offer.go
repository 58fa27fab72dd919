// Package models defines the live loan offers shown on the marketing pages.
package models

import (
	"strings"
	"time"

	dErrors "ficlear/pkg/domain-errors"
)

// Offer is one promotional loan offer.
type Offer struct {
	ID                  string    `json:"id"`
	BankName            string    `json:"bankName"`
	BankLogo            string    `json:"bankLogo"`
	LoanType            string    `json:"loanType"`
	OfferBadge          string    `json:"offerBadge,omitempty"`
	BadgeColor          string    `json:"badgeColor,omitempty"`
	InterestRate        string    `json:"interestRate"`
	MaxAmount           string    `json:"maxAmount"`
	ProcessingFee       string    `json:"processingFee"`
	Tenure              string    `json:"tenure"`
	KeyBenefits         []string  `json:"keyBenefits"`
	EligibilityCriteria string    `json:"eligibilityCriteria,omitempty"`
	ValidTill           string    `json:"validTill,omitempty"`
	IsTrending          bool      `json:"isTrending"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// Validate checks the fields an offer card cannot render without.
func (o *Offer) Validate() error {
	if strings.TrimSpace(o.BankName) == "" {
		return dErrors.New(dErrors.CodeValidation, "bankName is required")
	}
	if strings.TrimSpace(o.LoanType) == "" {
		return dErrors.New(dErrors.CodeValidation, "loanType is required")
	}
	if strings.TrimSpace(o.InterestRate) == "" {
		return dErrors.New(dErrors.CodeValidation, "interestRate is required")
	}
	if o.ValidTill != "" {
		if _, err := time.Parse("2006-01-02", o.ValidTill); err != nil {
			return dErrors.New(dErrors.CodeValidation, "validTill must be a YYYY-MM-DD date")
		}
	}
	return nil
}

// Expired reports whether the offer's validity window has passed at the
// given time. Offers without a validTill never expire.
func (o *Offer) Expired(now time.Time) bool {
	if o.ValidTill == "" {
		return false
	}
	deadline, err := time.Parse("2006-01-02", o.ValidTill)
	if err != nil {
		return false
	}
	return now.After(deadline.AddDate(0, 0, 1))
}
