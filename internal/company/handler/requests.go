package handler

import (
	"strings"

	"ficlear/internal/company/models"
	dErrors "ficlear/pkg/domain-errors"
)

// CINLookupRequest is the HTTP request body for POST /companies/cin-lookup.
type CINLookupRequest struct {
	CIN string `json:"cin"`
}

// Validate implements httputil.Validatable. Full CIN shape validation happens
// in the service so the error message stays in one place.
func (r *CINLookupRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if strings.TrimSpace(r.CIN) == "" {
		return dErrors.New(dErrors.CodeValidation, "cin is required")
	}
	return nil
}

// UpsertCompanyRequest is the HTTP request body for creating or replacing an
// employer record.
type UpsertCompanyRequest struct {
	ID                string  `json:"companyId"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CIN               string  `json:"cin"`
	Industry          string  `json:"industry"`
	Sector            string  `json:"sector"`
	RegisteredOffice  string  `json:"registeredOffice"`
	PaidUpCapital     float64 `json:"paidUpCapital"`
	AuthorizedCapital float64 `json:"authorizedCapital"`
	ListedStatus      string  `json:"listedStatus"`
}

// Validate implements httputil.Validatable.
func (r *UpsertCompanyRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.ID = strings.TrimSpace(r.ID)
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.ToUpper(strings.TrimSpace(r.Category))
	return r.ToModel().Validate()
}

// ToModel builds the domain record from the request body.
func (r *UpsertCompanyRequest) ToModel() *models.Company {
	return &models.Company{
		ID:                r.ID,
		Name:              r.Name,
		Category:          r.Category,
		CIN:               r.CIN,
		Industry:          r.Industry,
		Sector:            r.Sector,
		RegisteredOffice:  r.RegisteredOffice,
		PaidUpCapital:     r.PaidUpCapital,
		AuthorizedCapital: r.AuthorizedCapital,
		ListedStatus:      r.ListedStatus,
	}
}

// BulkImportRequest is the HTTP request body for
// POST /admin/companies/bulk-import.
type BulkImportRequest struct {
	Companies []UpsertCompanyRequest `json:"companies"`
}

// Validate implements httputil.Validatable.
func (r *BulkImportRequest) Validate() error {
	if r == nil || len(r.Companies) == 0 {
		return dErrors.New(dErrors.CodeValidation, "companies array is required")
	}
	return nil
}

// ToModels builds the domain records from the batch.
func (r *BulkImportRequest) ToModels() []*models.Company {
	out := make([]*models.Company, 0, len(r.Companies))
	for i := range r.Companies {
		out = append(out, r.Companies[i].ToModel())
	}
	return out
}
