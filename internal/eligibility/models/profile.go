// Package models defines the applicant profile and the per-bank verdict the
// eligibility engine produces.
package models

import (
	dErrors "ficlear/pkg/domain-errors"
)

// Employment types an applicant can declare.
const (
	EmploymentSalaried      = "salaried"
	EmploymentSelfEmployed  = "self-employed"
	EmploymentBusinessOwner = "business-owner"
)

// Profile is one applicant's submitted data. It lives for a single
// eligibility check and is never persisted.
type Profile struct {
	FullName          string  `json:"fullName"`
	MonthlySalary     float64 `json:"monthlySalary"`
	CibilScore        int     `json:"cibilScore"`
	CompanyCategory   string  `json:"companyCategory"`
	MonthlyObligation float64 `json:"monthlyObligation"`
	RequestedAmount   float64 `json:"requestedAmount"`
	Pincode           string  `json:"pincode"`
	EmploymentType    string  `json:"employmentType"`
	AccommodationType string  `json:"accommodationType,omitempty"`
}

// Validate checks the fields the rule evaluation cannot run without. A
// failure here rejects the whole check request.
func (p *Profile) Validate() error {
	if p.MonthlySalary <= 0 {
		return dErrors.New(dErrors.CodeValidation, "monthlySalary must be positive")
	}
	if p.CibilScore < 300 || p.CibilScore > 900 {
		return dErrors.New(dErrors.CodeValidation, "cibilScore must be within 300-900")
	}
	switch p.CompanyCategory {
	case "A", "B", "C", "D":
	default:
		return dErrors.Newf(dErrors.CodeValidation, "unknown company category %q", p.CompanyCategory)
	}
	if p.RequestedAmount <= 0 {
		return dErrors.New(dErrors.CodeValidation, "requestedAmount must be positive")
	}
	if p.Pincode != "" && !validPincode(p.Pincode) {
		return dErrors.New(dErrors.CodeValidation, "pincode must be 6 digits")
	}
	switch p.EmploymentType {
	case "", EmploymentSalaried, EmploymentSelfEmployed, EmploymentBusinessOwner:
	default:
		return dErrors.Newf(dErrors.CodeValidation, "unknown employment type %q", p.EmploymentType)
	}
	if p.MonthlyObligation < 0 {
		return dErrors.New(dErrors.CodeValidation, "monthlyObligation cannot be negative")
	}
	return nil
}

func validPincode(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Verdict is one bank's decision for one profile. Reasons lists one entry per
// failed criterion; an eligible verdict carries none.
type Verdict struct {
	BankID        string   `json:"bankId"`
	BankName      string   `json:"bankName"`
	Eligible      bool     `json:"isEligible"`
	MaxLoanAmount float64  `json:"maxLoanAmount"`
	Reasons       []string `json:"reasons"`
	ROI           float64  `json:"roi"`
	ProcessingFee float64  `json:"processingFee"`
}
