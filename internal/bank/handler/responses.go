package handler

import (
	"time"

	"ficlear/internal/bank/models"
)

// BankResponse is the HTTP representation of a lender record.
type BankResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Logo          string          `json:"logo"`
	ROI           float64         `json:"roi"`
	ProcessingFee float64         `json:"processingFee"`
	Criteria      models.Criteria `json:"criteria"`
	Features      []string        `json:"features"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListResponse wraps the catalog listing.
type ListResponse struct {
	Banks []*BankResponse `json:"banks"`
}

// FromBank converts a domain record to its HTTP representation.
func FromBank(b *models.Bank) *BankResponse {
	return &BankResponse{
		ID:            b.ID,
		Name:          b.Name,
		Logo:          b.Logo,
		ROI:           b.ROI,
		ProcessingFee: b.ProcessingFee,
		Criteria:      b.Criteria,
		Features:      b.Features,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// FromBanks converts a catalog listing.
func FromBanks(banks []*models.Bank) []*BankResponse {
	out := make([]*BankResponse, 0, len(banks))
	for _, b := range banks {
		out = append(out, FromBank(b))
	}
	return out
}
