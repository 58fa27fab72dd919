// Package handler wires the postal directory endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/pincode/models"
	pinsvc "ficlear/internal/pincode/service"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the directory operations the handler needs.
type Service interface {
	SearchByPincode(ctx context.Context, pincode string) (*pinsvc.PincodeResult, error)
	SearchByArea(ctx context.Context, area string) ([]models.PostalRecord, error)
	Upsert(ctx context.Context, record *models.PostalRecord) (*models.PostalRecord, error)
	DeleteByPincode(ctx context.Context, pincode string) (int, error)
	BulkImport(ctx context.Context, records []models.PostalRecord) (*pinsvc.ImportResult, error)
	ImportCSV(ctx context.Context, csvContent string) (*pinsvc.ImportResult, error)
	Count(ctx context.Context) (int, error)
}

// Handler exposes the postal directory over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a directory handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public directory search endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/pincodes/search/{pincode}", h.HandleSearchByPincode)
	r.Get("/pincodes/search-by-area/{area}", h.HandleSearchByArea)
}

// RegisterAdmin mounts the directory mutation endpoints.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/pincodes", h.HandleUpsert)
	r.Delete("/pincodes/{pincode}", h.HandleDelete)
	r.Post("/pincodes/bulk-import", h.HandleBulkImport)
	r.Get("/pincodes/count", h.HandleCount)
}

// HandleSearchByPincode handles GET /pincodes/search/{pincode}.
func (h *Handler) HandleSearchByPincode(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SearchByPincode(r.Context(), chi.URLParam(r, "pincode"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleSearchByArea handles GET /pincodes/search-by-area/{area}.
func (h *Handler) HandleSearchByArea(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.SearchByArea(r.Context(), chi.URLParam(r, "area"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, AreaSearchResponse{
		Count:   len(records),
		Offices: records,
	})
}

// HandleUpsert handles POST /admin/pincodes.
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertRecordRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	record, err := h.service.Upsert(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "postal record stored",
		"request_id", requestID,
		"pincode", record.Pincode,
		"office", record.OfficeName,
	)
	httputil.WriteJSON(w, http.StatusCreated, record)
}

// HandleDelete handles DELETE /admin/pincodes/{pincode}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pincode := chi.URLParam(r, "pincode")

	deleted, err := h.service.DeleteByPincode(ctx, pincode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "postal records deleted",
		"request_id", requestcontext.RequestID(ctx),
		"pincode", pincode,
		"deleted", deleted,
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}

// HandleBulkImport handles POST /admin/pincodes/bulk-import. The body carries
// either parsed records or raw CSV content.
func (h *Handler) HandleBulkImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BulkImportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	var (
		result *pinsvc.ImportResult
		err    error
	)
	if req.CSV != "" {
		result, err = h.service.ImportCSV(ctx, req.CSV)
	} else {
		result, err = h.service.BulkImport(ctx, req.Records)
	}
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "postal directory import finished",
		"request_id", requestID,
		"imported", result.Count,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}

// HandleCount handles GET /admin/pincodes/count.
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.service.Count(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]int{"count": n})
}
