// Package models defines employer records and the MCA registration data the
// CIN lookup returns.
package models

import (
	"regexp"
	"strings"
	"time"

	dErrors "ficlear/pkg/domain-errors"
)

// cinPattern matches a 21-character Corporate Identification Number, e.g.
// L22210MH1995PLC084781.
var cinPattern = regexp.MustCompile(`^[UL]\d{5}[A-Z]{2}\d{4}[A-Z]{3}\d{6}$`)

// NormalizeCIN uppercases and trims a CIN and validates its shape.
func NormalizeCIN(cin string) (string, error) {
	cin = strings.ToUpper(strings.TrimSpace(cin))
	if !cinPattern.MatchString(cin) {
		return "", dErrors.New(dErrors.CodeValidation,
			"invalid CIN format, expected 21 characters like L22210MH1995PLC084781")
	}
	return cin, nil
}

// Company is one employer in the category register. Category drives the
// eligibility multipliers, so it is the field underwriters care about.
type Company struct {
	ID                string    `json:"companyId"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	CIN               string    `json:"cin,omitempty"`
	Industry          string    `json:"industry,omitempty"`
	Sector            string    `json:"sector,omitempty"`
	RegisteredOffice  string    `json:"registeredOffice,omitempty"`
	PaidUpCapital     float64   `json:"paidUpCapital,omitempty"`
	AuthorizedCapital float64   `json:"authorizedCapital,omitempty"`
	ListedStatus      string    `json:"listedStatus,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Validate checks the fields a register entry must carry.
func (c *Company) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return dErrors.New(dErrors.CodeValidation, "company name is required")
	}
	switch c.Category {
	case "A", "B", "C", "D":
	default:
		return dErrors.New(dErrors.CodeValidation, "category must be one of A, B, C, D")
	}
	if c.CIN != "" {
		normalized, err := NormalizeCIN(c.CIN)
		if err != nil {
			return err
		}
		c.CIN = normalized
	}
	return nil
}

// Registration is the company master data returned by the MCA lookup.
type Registration struct {
	CompanyName       string   `json:"companyName"`
	CIN               string   `json:"cin"`
	Industry          string   `json:"industry"`
	IncorporationDate string   `json:"incorporationDate"`
	CompanyType       string   `json:"companyType"`
	CompanyStatus     string   `json:"companyStatus"`
	EmployeeSize      string   `json:"employeeSize"`
	RegisteredAddress string   `json:"registeredAddress,omitempty"`
	AuthorizedCapital float64  `json:"authorizedCapital,omitempty"`
	PaidUpCapital     float64  `json:"paidUpCapital,omitempty"`
	Directors         []string `json:"directors,omitempty"`
	Email             string   `json:"email,omitempty"`
}
