package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/company/mca"
	"ficlear/internal/company/models"
	companysvc "ficlear/internal/company/service"
	companystore "ficlear/internal/company/store"
	"ficlear/internal/platform/config"
	"ficlear/internal/platform/middleware"
	"ficlear/pkg/testutil"
)

const adminToken = "test-admin-token"

func newCompanyRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := companysvc.New(companystore.NewInMemory(), mca.New(config.MCAConfig{}, logger), logger, nil, nil)
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.RequireAdminToken(adminToken, logger))
		h.RegisterAdmin(ar)
	})
	return r
}

func TestCINLookupEndpoint(t *testing.T) {
	router := newCompanyRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/companies/cin-lookup", map[string]string{
		"cin": "L72900GJ1999PLC035648",
	})
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var reg models.Registration
	testutil.DecodeResponse(t, rr, &reg)
	assert.Equal(t, "Infosys Limited", reg.CompanyName)
	assert.Equal(t, "Large", reg.EmployeeSize)
}

func TestCINLookupRejectsBadCIN(t *testing.T) {
	router := newCompanyRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/companies/cin-lookup", map[string]string{"cin": "nope"})
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompanyAdminCRUD(t *testing.T) {
	router := newCompanyRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/companies", map[string]any{
		"companyId": "tcs",
		"name":      "Tata Consultancy Services",
		"category":  "a",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.Company
	testutil.DecodeResponse(t, rr, &created)
	// category is normalized to upper case
	assert.Equal(t, "A", created.Category)

	req = testutil.NewRequest(t, http.MethodGet, "/admin/companies/tcs")
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusOK, testutil.DoRequest(router, req).Code)

	req = testutil.NewJSONRequest(t, http.MethodPut, "/admin/companies/tcs", map[string]any{
		"name":     "Tata Consultancy Services Limited",
		"category": "A",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusOK, testutil.DoRequest(router, req).Code)

	req = testutil.NewRequest(t, http.MethodDelete, "/admin/companies/tcs")
	req.Header.Set("X-Admin-Token", adminToken)
	assert.Equal(t, http.StatusNoContent, testutil.DoRequest(router, req).Code)
}

func TestPublicSearchEndpoint(t *testing.T) {
	router := newCompanyRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/companies", map[string]any{
		"name":     "Wipro Limited",
		"category": "A",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusCreated, testutil.DoRequest(router, req).Code)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/companies/search/wipro"))
	require.Equal(t, http.StatusOK, rr.Code)

	var result struct {
		Count     int              `json:"count"`
		Companies []models.Company `json:"companies"`
	}
	testutil.DecodeResponse(t, rr, &result)
	assert.Equal(t, 1, result.Count)
}

func TestAdminListRequiresToken(t *testing.T) {
	router := newCompanyRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/admin/companies"))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
