package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	banksvc "ficlear/internal/bank/service"
	bankstore "ficlear/internal/bank/store"
	"ficlear/internal/platform/middleware"
	"ficlear/pkg/testutil"
)

const adminToken = "test-admin-token"

func newBankRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := banksvc.New(bankstore.NewInMemory(), logger, nil, nil)
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(middleware.RequireAdminToken(adminToken, logger))
		h.RegisterAdmin(ar)
	})
	return r
}

func upsertPayload(id, name string) map[string]any {
	return map[string]any{
		"id":            id,
		"name":          name,
		"logo":          "🏦",
		"roi":           9.25,
		"processingFee": 0.5,
		"criteria": map[string]any{
			"minCibil":               680,
			"maxCibil":               900,
			"minSalary":              20000,
			"companyCategoryAllowed": []string{"A", "B", "C"},
			"maxObligationPercent":   55,
			"maxLTV":                 85,
		},
		"features": []string{"Quick approval", ""},
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router := newBankRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks", upsertPayload("ab", "Any Bank"))
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCreateAndFetchBank(t *testing.T) {
	router := newBankRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks", upsertPayload("ab", "Any Bank"))
	req.Header.Set("X-Admin-Token", adminToken)
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var created BankResponse
	testutil.DecodeResponse(t, rr, &created)
	assert.Equal(t, "ab", created.ID)
	// blank features are dropped
	assert.Equal(t, []string{"Quick approval"}, created.Features)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/banks/ab"))
	require.Equal(t, http.StatusOK, rr.Code)

	var fetched BankResponse
	testutil.DecodeResponse(t, rr, &fetched)
	assert.Equal(t, "Any Bank", fetched.Name)
	assert.Equal(t, 680, fetched.Criteria.MinCibil)
}

func TestCreateBankValidation(t *testing.T) {
	router := newBankRouter(t)

	payload := upsertPayload("bad", "Bad Bank")
	payload["roi"] = 0
	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks", payload)
	req.Header.Set("X-Admin-Token", adminToken)
	rr := testutil.DoRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListBanks(t *testing.T) {
	router := newBankRouter(t)

	for _, name := range []string{"Zeta Bank", "Alpha Bank"} {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks", upsertPayload("", name))
		req.Header.Set("X-Admin-Token", adminToken)
		require.Equal(t, http.StatusCreated, testutil.DoRequest(router, req).Code)
	}

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/banks"))
	require.Equal(t, http.StatusOK, rr.Code)

	var list ListResponse
	testutil.DecodeResponse(t, rr, &list)
	require.Len(t, list.Banks, 2)
	assert.Equal(t, "Alpha Bank", list.Banks[0].Name)
}

func TestUpdateAndDeleteBank(t *testing.T) {
	router := newBankRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks", upsertPayload("ub", "Update Bank"))
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusCreated, testutil.DoRequest(router, req).Code)

	update := upsertPayload("ub", "Updated Bank")
	update["roi"] = 8.1
	req = testutil.NewJSONRequest(t, http.MethodPut, "/admin/banks/ub", update)
	req.Header.Set("X-Admin-Token", adminToken)
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var updated BankResponse
	testutil.DecodeResponse(t, rr, &updated)
	assert.Equal(t, 8.1, updated.ROI)

	req = testutil.NewRequest(t, http.MethodDelete, "/admin/banks/ub")
	req.Header.Set("X-Admin-Token", adminToken)
	assert.Equal(t, http.StatusNoContent, testutil.DoRequest(router, req).Code)

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/banks/ub"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBulkImportBanks(t *testing.T) {
	router := newBankRouter(t)

	payload := map[string]any{
		"banks": []map[string]any{
			upsertPayload("b1", "Bank One"),
			upsertPayload("b2", "Bank Two"),
		},
	}
	req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/banks/bulk-import", payload)
	req.Header.Set("X-Admin-Token", adminToken)
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result banksvc.ImportResult
	testutil.DecodeResponse(t, rr, &result)
	assert.Equal(t, 2, result.Count)
	assert.Empty(t, result.Errors)
}
