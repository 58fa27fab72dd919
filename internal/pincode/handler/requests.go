package handler

import (
	"ficlear/internal/pincode/models"
	dErrors "ficlear/pkg/domain-errors"
)

// UpsertRecordRequest is the HTTP request body for POST /admin/pincodes.
type UpsertRecordRequest struct {
	models.PostalRecord
}

// Validate implements httputil.Validatable.
func (r *UpsertRecordRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	return r.PostalRecord.Validate()
}

// ToModel returns the embedded directory record.
func (r *UpsertRecordRequest) ToModel() *models.PostalRecord {
	return &r.PostalRecord
}

// BulkImportRequest is the HTTP request body for
// POST /admin/pincodes/bulk-import. Exactly one of Records or CSV is set.
type BulkImportRequest struct {
	Records []models.PostalRecord `json:"records,omitempty"`
	CSV     string                `json:"csv,omitempty"`
}

// Validate implements httputil.Validatable.
func (r *BulkImportRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Records) == 0 && r.CSV == "" {
		return dErrors.New(dErrors.CodeValidation, "records or csv content is required")
	}
	if len(r.Records) > 0 && r.CSV != "" {
		return dErrors.New(dErrors.CodeValidation, "records and csv are mutually exclusive")
	}
	return nil
}

// AreaSearchResponse wraps area search results.
type AreaSearchResponse struct {
	Count   int                   `json:"count"`
	Offices []models.PostalRecord `json:"offices"`
}
