package handler

import (
	"strings"

	"ficlear/internal/offer/models"
	dErrors "ficlear/pkg/domain-errors"
)

// UpsertOfferRequest is the HTTP request body for creating or replacing an
// offer.
type UpsertOfferRequest struct {
	ID                  string   `json:"id"`
	BankName            string   `json:"bankName"`
	BankLogo            string   `json:"bankLogo"`
	LoanType            string   `json:"loanType"`
	OfferBadge          string   `json:"offerBadge"`
	BadgeColor          string   `json:"badgeColor"`
	InterestRate        string   `json:"interestRate"`
	MaxAmount           string   `json:"maxAmount"`
	ProcessingFee       string   `json:"processingFee"`
	Tenure              string   `json:"tenure"`
	KeyBenefits         []string `json:"keyBenefits"`
	EligibilityCriteria string   `json:"eligibilityCriteria"`
	ValidTill           string   `json:"validTill"`
	IsTrending          bool     `json:"isTrending"`
}

// Validate implements httputil.Validatable.
func (r *UpsertOfferRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.ID = strings.TrimSpace(r.ID)
	r.BankName = strings.TrimSpace(r.BankName)
	r.LoanType = strings.TrimSpace(r.LoanType)
	return r.ToModel().Validate()
}

// ToModel builds the domain record from the request body.
func (r *UpsertOfferRequest) ToModel() *models.Offer {
	benefits := make([]string, 0, len(r.KeyBenefits))
	for _, b := range r.KeyBenefits {
		if strings.TrimSpace(b) != "" {
			benefits = append(benefits, strings.TrimSpace(b))
		}
	}
	return &models.Offer{
		ID:                  r.ID,
		BankName:            r.BankName,
		BankLogo:            r.BankLogo,
		LoanType:            r.LoanType,
		OfferBadge:          r.OfferBadge,
		BadgeColor:          r.BadgeColor,
		InterestRate:        r.InterestRate,
		MaxAmount:           r.MaxAmount,
		ProcessingFee:       r.ProcessingFee,
		Tenure:              r.Tenure,
		KeyBenefits:         benefits,
		EligibilityCriteria: r.EligibilityCriteria,
		ValidTill:           r.ValidTill,
		IsTrending:          r.IsTrending,
	}
}
