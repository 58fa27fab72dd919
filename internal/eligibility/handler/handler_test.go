package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bankmodels "ficlear/internal/bank/models"
	banksvc "ficlear/internal/bank/service"
	bankstore "ficlear/internal/bank/store"
	"ficlear/internal/eligibility/rules"
	eligsvc "ficlear/internal/eligibility/service"
	pinmodels "ficlear/internal/pincode/models"
	pinsvc "ficlear/internal/pincode/service"
	pinstore "ficlear/internal/pincode/store"
	"ficlear/pkg/testutil"
)

func newEligibilityRouter(t *testing.T) chi.Router {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bs := bankstore.NewInMemory()
	require.NoError(t, bs.Create(ctx, &bankmodels.Bank{
		ID:            "hdfc",
		Name:          "HDFC Bank",
		ROI:           10.5,
		ProcessingFee: 1.5,
		Criteria: bankmodels.Criteria{
			MinCibil:               700,
			MaxCibil:               900,
			MinSalary:              25000,
			CompanyCategoryAllowed: []string{"A", "B"},
			MaxObligationPercent:   50,
			MaxLTV:                 85,
		},
	}))

	ps := pinstore.NewInMemory()
	require.NoError(t, ps.Upsert(ctx, &pinmodels.PostalRecord{
		Pincode:        "400001",
		OfficeName:     "Mumbai G.P.O.",
		OfficeType:     "H.O",
		DeliveryStatus: "Delivery",
		DistrictName:   "Mumbai",
		StateName:      "Maharashtra",
	}))

	svc := eligsvc.New(
		banksvc.New(bs, logger, nil, nil),
		pinsvc.New(ps, logger, nil, nil),
		logger, nil, rules.Options{},
	)
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func TestHandleCheck(t *testing.T) {
	router := newEligibilityRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/eligibility/check", map[string]any{
		"fullName":          "Asha Rao",
		"monthlySalary":     30000,
		"cibilScore":        720,
		"companyCategory":   "b",
		"monthlyObligation": 2000,
		"requestedAmount":   500000,
		"pincode":           "400001",
	})
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var result eligsvc.CheckResult
	testutil.DecodeResponse(t, rr, &result)
	assert.Equal(t, pinmodels.AreaMetro, result.AreaType)
	assert.Equal(t, 1, result.EligibleCount)
	require.Len(t, result.Results, 1)
	assert.True(t, result.Results[0].Eligible)
	assert.Equal(t, float64(425000), result.Results[0].MaxLoanAmount)
}

func TestHandleCheckRejectsInvalidProfile(t *testing.T) {
	router := newEligibilityRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/eligibility/check", map[string]any{
		"fullName":        "Asha Rao",
		"monthlySalary":   -1,
		"cibilScore":      720,
		"companyCategory": "B",
		"requestedAmount": 500000,
	})
	assert.Equal(t, http.StatusBadRequest, testutil.DoRequest(router, req).Code)
}

func TestHandleServiceability(t *testing.T) {
	router := newEligibilityRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pincodes/400001/serviceability"))
	require.Equal(t, http.StatusOK, rr.Code)

	var report eligsvc.ServiceabilityReport
	testutil.DecodeResponse(t, rr, &report)
	assert.Equal(t, pinmodels.AreaMetro, report.AreaType)
	require.Len(t, report.Banks, 1)
	assert.True(t, report.Banks[0].Serviceable)
	assert.Equal(t, "Branch available", report.Banks[0].Remarks)
}

func TestHandleServiceabilityBadPincode(t *testing.T) {
	router := newEligibilityRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/pincodes/12/serviceability"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
