package mca

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/platform/config"
	dErrors "ficlear/pkg/domain-errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSampleModeLookup(t *testing.T) {
	client := New(config.MCAConfig{}, discardLogger())

	reg, err := client.Lookup(context.Background(), "L22210MH1995PLC084781")
	require.NoError(t, err)
	assert.Equal(t, "Tata Consultancy Services Limited", reg.CompanyName)
	assert.Equal(t, "Public", reg.CompanyType)
	assert.Equal(t, "Active", reg.CompanyStatus)
	assert.Equal(t, "Large", reg.EmployeeSize)

	_, err = client.Lookup(context.Background(), "L99999MH1995PLC000000")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRemoteLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mca/company/master-data/search", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "U12345MH2010PTC123456", body["cin"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"company_name":          "Sample Private Limited",
				"cin":                   "U12345MH2010PTC123456",
				"company_type":          "Private Limited Company",
				"company_status":        "ACTIVE",
				"authorized_capital":    500000,
				"date_of_incorporation": "2010-04-01",
			},
		})
	}))
	t.Cleanup(srv.Close)

	client := New(config.MCAConfig{BaseURL: srv.URL, APIKey: "test-key"}, discardLogger())
	reg, err := client.Lookup(context.Background(), "U12345MH2010PTC123456")
	require.NoError(t, err)
	assert.Equal(t, "Sample Private Limited", reg.CompanyName)
	assert.Equal(t, "Private", reg.CompanyType)
	assert.Equal(t, "Active", reg.CompanyStatus)
	assert.Equal(t, "Micro", reg.EmployeeSize)
	assert.Equal(t, "General", reg.Industry)
}

func TestRemoteLookupNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "no match"})
	}))
	t.Cleanup(srv.Close)

	client := New(config.MCAConfig{BaseURL: srv.URL}, discardLogger())
	_, err := client.Lookup(context.Background(), "U12345MH2010PTC123456")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRemoteLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := New(config.MCAConfig{BaseURL: srv.URL}, discardLogger())
	_, err := client.Lookup(context.Background(), "U12345MH2010PTC123456")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnavailable))
}

func TestEmployeeSizeFromCapital(t *testing.T) {
	tests := []struct {
		capital float64
		want    string
	}{
		{0, "Small"},
		{500_000, "Micro"},
		{5_000_000, "Small"},
		{50_000_000, "Medium"},
		{500_000_000, "Large"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, employeeSizeFromCapital(tt.capital), "capital %v", tt.capital)
	}
}
