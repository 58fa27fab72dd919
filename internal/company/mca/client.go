// Package mca fetches company master data from the Ministry of Corporate
// Affairs through the Sandbox API. Without an API endpoint configured it
// serves a small built-in dataset so the CIN lookup flow works in
// development.
package mca

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ficlear/internal/company/models"
	"ficlear/internal/platform/config"
	dErrors "ficlear/pkg/domain-errors"
)

// Client looks up company registrations by CIN.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New constructs an MCA client from configuration. An empty base URL puts the
// client in sample-data mode.
func New(cfg config.MCAConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Lookup fetches the registration for a CIN. The CIN must already be
// normalized (see models.NormalizeCIN).
func (c *Client) Lookup(ctx context.Context, cin string) (*models.Registration, error) {
	if c.baseURL == "" {
		return c.lookupSample(cin)
	}

	payload, err := json.Marshal(map[string]string{"cin": cin})
	if err != nil {
		return nil, fmt.Errorf("marshal lookup payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/mca/company/master-data/search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "mca lookup failed", "cin", cin, "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "company registry is unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, dErrors.Newf(dErrors.CodeNotFound, "company %s not found in MCA records", cin)
	case resp.StatusCode != http.StatusOK:
		c.logger.WarnContext(ctx, "mca lookup rejected", "cin", cin, "status", resp.StatusCode)
		return nil, dErrors.New(dErrors.CodeUnavailable, "company registry returned an error")
	}

	var envelope struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "company registry response is malformed")
	}
	if !envelope.Success || len(envelope.Data) == 0 {
		return nil, dErrors.Newf(dErrors.CodeNotFound, "company %s not found in MCA records", cin)
	}

	var raw rawRegistration
	if err := json.Unmarshal(envelope.Data, &raw); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "company registry response is malformed")
	}
	return raw.toRegistration(), nil
}

// rawRegistration mirrors the Sandbox API field names.
type rawRegistration struct {
	CompanyName       string   `json:"company_name"`
	CIN               string   `json:"cin"`
	CompanyClass      string   `json:"company_class"`
	IncorporationDate string   `json:"date_of_incorporation"`
	CompanyType       string   `json:"company_type"`
	CompanyStatus     string   `json:"company_status"`
	AuthorizedCapital float64  `json:"authorized_capital"`
	PaidUpCapital     float64  `json:"paid_up_capital"`
	RegisteredAddress string   `json:"registered_address"`
	Email             string   `json:"email"`
	Directors         []string `json:"directors"`
}

func (r *rawRegistration) toRegistration() *models.Registration {
	return &models.Registration{
		CompanyName:       r.CompanyName,
		CIN:               r.CIN,
		Industry:          orDefault(r.CompanyClass, "General"),
		IncorporationDate: r.IncorporationDate,
		CompanyType:       mapCompanyType(r.CompanyType),
		CompanyStatus:     mapCompanyStatus(r.CompanyStatus),
		EmployeeSize:      employeeSizeFromCapital(r.AuthorizedCapital),
		RegisteredAddress: r.RegisteredAddress,
		AuthorizedCapital: r.AuthorizedCapital,
		PaidUpCapital:     r.PaidUpCapital,
		Directors:         r.Directors,
		Email:             r.Email,
	}
}

func mapCompanyType(mcaType string) string {
	t := strings.ToLower(mcaType)
	switch {
	case strings.Contains(t, "private"):
		return "Private"
	case strings.Contains(t, "public"):
		return "Public"
	case strings.Contains(t, "llp"):
		return "LLP"
	case strings.Contains(t, "partnership"):
		return "Partnership"
	case strings.Contains(t, "proprietor"):
		return "Proprietorship"
	}
	return "Private"
}

func mapCompanyStatus(mcaStatus string) string {
	s := strings.ToLower(mcaStatus)
	switch {
	case strings.Contains(s, "active"):
		return "Active"
	case strings.Contains(s, "strike"), strings.Contains(s, "struck"):
		return "Strike Off"
	}
	return "Inactive"
}

// employeeSizeFromCapital bands authorized capital (rupees) into a size
// class: under 10 lakh Micro, under 1 crore Small, under 10 crore Medium,
// above that Large.
func employeeSizeFromCapital(authorizedCapital float64) string {
	switch {
	case authorizedCapital <= 0:
		return "Small"
	case authorizedCapital < 1_000_000:
		return "Micro"
	case authorizedCapital < 10_000_000:
		return "Small"
	case authorizedCapital < 100_000_000:
		return "Medium"
	}
	return "Large"
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
