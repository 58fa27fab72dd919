package handler

import (
	"strings"

	"ficlear/internal/eligibility/models"
	dErrors "ficlear/pkg/domain-errors"
)

// CheckRequest is the HTTP request body for an eligibility check.
type CheckRequest struct {
	models.Profile
}

// Validate implements httputil.Validatable.
func (r *CheckRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.FullName = strings.TrimSpace(r.FullName)
	r.CompanyCategory = strings.ToUpper(strings.TrimSpace(r.CompanyCategory))
	r.Pincode = strings.TrimSpace(r.Pincode)
	r.EmploymentType = strings.ToLower(strings.TrimSpace(r.EmploymentType))
	return r.Profile.Validate()
}

// ToModel returns the applicant profile carried by the request.
func (r *CheckRequest) ToModel() *models.Profile {
	profile := r.Profile
	return &profile
}
