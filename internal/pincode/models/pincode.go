// Package models defines the postal directory records and the area-type
// inference the serviceability rules depend on.
package models

import (
	"strings"

	dErrors "ficlear/pkg/domain-errors"
)

// PostalRecord is one post-office row from the India Post directory. Field
// names follow the upstream data.gov.in dataset so bulk imports map cleanly.
type PostalRecord struct {
	Pincode        string `json:"pincode"`
	OfficeName     string `json:"officename"`
	OfficeType     string `json:"officeType"`
	DeliveryStatus string `json:"Deliverystatus"`
	DivisionName   string `json:"divisionname"`
	RegionName     string `json:"regionname"`
	CircleName     string `json:"circlename"`
	Taluk          string `json:"Taluk"`
	DistrictName   string `json:"Districtname"`
	StateName      string `json:"statename"`
}

// Validate checks the fields a directory record cannot function without.
func (r *PostalRecord) Validate() error {
	if len(r.Pincode) != 6 {
		return dErrors.New(dErrors.CodeValidation, "pincode must be 6 digits")
	}
	for _, c := range r.Pincode {
		if c < '0' || c > '9' {
			return dErrors.New(dErrors.CodeValidation, "pincode must be 6 digits")
		}
	}
	if strings.TrimSpace(r.OfficeName) == "" {
		return dErrors.New(dErrors.CodeValidation, "officename is required")
	}
	return nil
}

// AreaType classifies a postal area for serviceability purposes.
type AreaType string

const (
	AreaMetro    AreaType = "Metro"
	AreaNonMetro AreaType = "Non-Metro"
	AreaRural    AreaType = "Rural"
)

// metroKeywords are the city names whose presence in a district, division or
// office name marks the area as Metro.
var metroKeywords = []string{
	"mumbai", "delhi", "bangalore", "bengaluru", "chennai",
	"kolkata", "hyderabad", "pune", "ahmedabad",
}

// Classify infers the area type of a single directory record.
func (r *PostalRecord) Classify() AreaType {
	haystack := strings.ToLower(r.DistrictName + " " + r.DivisionName + " " + r.OfficeName)
	for _, kw := range metroKeywords {
		if strings.Contains(haystack, kw) {
			return AreaMetro
		}
	}
	if r.DeliveryStatus == "Delivery" {
		return AreaNonMetro
	}
	switch r.OfficeType {
	case "H.O", "S.O":
		return AreaNonMetro
	}
	return AreaRural
}

// ClassifyArea infers an area type from all offices sharing a PIN code. Metro
// wins over Non-Metro wins over Rural; an empty record set (a directory miss)
// defaults to Non-Metro, the assumption the eligibility rules fall back on.
func ClassifyArea(records []PostalRecord) AreaType {
	if len(records) == 0 {
		return AreaNonMetro
	}
	area := AreaRural
	for i := range records {
		switch records[i].Classify() {
		case AreaMetro:
			return AreaMetro
		case AreaNonMetro:
			area = AreaNonMetro
		}
	}
	return area
}
