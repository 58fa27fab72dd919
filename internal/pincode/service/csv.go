package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"ficlear/internal/pincode/models"
	dErrors "ficlear/pkg/domain-errors"
)

// csvColumns maps normalized header names to record fields. Headers are
// normalized by lowercasing and stripping spaces, dots and underscores so the
// data.gov.in export variants ("Office Name", "officename", "OFFICE_NAME")
// all resolve to the same column.
var csvColumns = map[string]func(*models.PostalRecord, string){
	"pincode":        func(r *models.PostalRecord, v string) { r.Pincode = v },
	"officename":     func(r *models.PostalRecord, v string) { r.OfficeName = v },
	"officetype":     func(r *models.PostalRecord, v string) { r.OfficeType = v },
	"deliverystatus": func(r *models.PostalRecord, v string) { r.DeliveryStatus = v },
	"delivery":       func(r *models.PostalRecord, v string) { r.DeliveryStatus = v },
	"divisionname":   func(r *models.PostalRecord, v string) { r.DivisionName = v },
	"regionname":     func(r *models.PostalRecord, v string) { r.RegionName = v },
	"circlename":     func(r *models.PostalRecord, v string) { r.CircleName = v },
	"taluk":          func(r *models.PostalRecord, v string) { r.Taluk = v },
	"districtname":   func(r *models.PostalRecord, v string) { r.DistrictName = v },
	"district":       func(r *models.PostalRecord, v string) { r.DistrictName = v },
	"statename":      func(r *models.PostalRecord, v string) { r.StateName = v },
	"state":          func(r *models.PostalRecord, v string) { r.StateName = v },
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.Map(func(c rune) rune {
		switch c {
		case ' ', '.', '_', '-':
			return -1
		}
		return c
	}, h)
}

// ParseCSV reads directory records from CSV content. The first row must be a
// header containing at least pincode and officename columns. Rows with the
// wrong field count are reported, not fatal.
func ParseCSV(r io.Reader) ([]models.PostalRecord, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, dErrors.New(dErrors.CodeValidation, "csv header row is required")
	}

	setters := make([]func(*models.PostalRecord, string), len(header))
	seen := map[string]bool{}
	for i, h := range header {
		name := normalizeHeader(h)
		if set, ok := csvColumns[name]; ok {
			setters[i] = set
			seen[name] = true
		}
	}
	if !seen["pincode"] || !seen["officename"] {
		return nil, nil, dErrors.New(dErrors.CodeValidation, "csv must contain pincode and officename columns")
	}

	var (
		records   []models.PostalRecord
		parseErrs []string
		line      = 1
	)
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			parseErrs = append(parseErrs, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if len(row) != len(header) {
			parseErrs = append(parseErrs, fmt.Sprintf("line %d: expected %d fields, got %d", line, len(header), len(row)))
			continue
		}

		var record models.PostalRecord
		for i, v := range row {
			if setters[i] != nil {
				setters[i](&record, strings.TrimSpace(v))
			}
		}
		records = append(records, record)
	}
	return records, parseErrs, nil
}
