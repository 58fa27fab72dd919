package handler

import (
	"strings"

	"ficlear/internal/bank/models"
	dErrors "ficlear/pkg/domain-errors"
)

// UpsertBankRequest is the HTTP request body for creating or replacing a
// lender record.
type UpsertBankRequest struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Logo          string          `json:"logo"`
	ROI           float64         `json:"roi"`
	ProcessingFee float64         `json:"processingFee"`
	Criteria      models.Criteria `json:"criteria"`
	Features      []string        `json:"features"`
}

// Validate implements httputil.Validatable.
func (r *UpsertBankRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	return r.ToModel().Validate()
}

// ToModel builds the domain record from the request body.
func (r *UpsertBankRequest) ToModel() *models.Bank {
	features := make([]string, 0, len(r.Features))
	for _, f := range r.Features {
		if strings.TrimSpace(f) != "" {
			features = append(features, strings.TrimSpace(f))
		}
	}
	return &models.Bank{
		ID:            r.ID,
		Name:          r.Name,
		Logo:          r.Logo,
		ROI:           r.ROI,
		ProcessingFee: r.ProcessingFee,
		Criteria:      r.Criteria,
		Features:      features,
	}
}

// BulkImportRequest is the HTTP request body for POST /admin/banks/bulk-import.
type BulkImportRequest struct {
	Banks []UpsertBankRequest `json:"banks"`
}

// Validate implements httputil.Validatable. Per-record validation happens in
// the service so a bad record skips instead of failing the batch.
func (r *BulkImportRequest) Validate() error {
	if r == nil || len(r.Banks) == 0 {
		return dErrors.New(dErrors.CodeValidation, "banks array is required")
	}
	return nil
}

// ToModels builds the domain records from the batch.
func (r *BulkImportRequest) ToModels() []*models.Bank {
	out := make([]*models.Bank, 0, len(r.Banks))
	for i := range r.Banks {
		out = append(out, r.Banks[i].ToModel())
	}
	return out
}
