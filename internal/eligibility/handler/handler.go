// Package handler wires the eligibility check and serviceability endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/eligibility/models"
	eligsvc "ficlear/internal/eligibility/service"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the evaluation operations the handler needs.
type Service interface {
	Check(ctx context.Context, profile *models.Profile) (*eligsvc.CheckResult, error)
	ServiceabilityByPincode(ctx context.Context, pincode string) (*eligsvc.ServiceabilityReport, error)
}

// Handler exposes the eligibility engine over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public eligibility endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Post("/eligibility/check", h.HandleCheck)
	r.Get("/pincodes/{pincode}/serviceability", h.HandleServiceability)
}

// HandleCheck handles POST /eligibility/check.
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[CheckRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Check(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility check served",
		"request_id", requestID,
		"eligible_count", result.EligibleCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleServiceability handles GET /pincodes/{pincode}/serviceability.
func (h *Handler) HandleServiceability(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.ServiceabilityByPincode(r.Context(), chi.URLParam(r, "pincode"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}
