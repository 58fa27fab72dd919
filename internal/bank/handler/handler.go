// Package handler wires the lender catalog endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/bank/models"
	banksvc "ficlear/internal/bank/service"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the catalog operations the handler needs.
type Service interface {
	Create(ctx context.Context, bank *models.Bank) (*models.Bank, error)
	Get(ctx context.Context, id string) (*models.Bank, error)
	List(ctx context.Context) ([]*models.Bank, error)
	Update(ctx context.Context, id string, bank *models.Bank) (*models.Bank, error)
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, banks []*models.Bank) (*banksvc.ImportResult, error)
}

// Handler exposes the lender catalog over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a catalog handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public read-only catalog endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/banks", h.HandleList)
	r.Get("/banks/{bankID}", h.HandleGet)
}

// RegisterAdmin mounts the catalog mutation endpoints. The caller is expected
// to guard the router with the admin token middleware.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Post("/banks", h.HandleCreate)
	r.Put("/banks/{bankID}", h.HandleUpdate)
	r.Delete("/banks/{bankID}", h.HandleDelete)
	r.Post("/banks/bulk-import", h.HandleBulkImport)
}

// HandleList handles GET /banks.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	banks, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ListResponse{Banks: FromBanks(banks)})
}

// HandleGet handles GET /banks/{bankID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	bank, err := h.service.Get(r.Context(), chi.URLParam(r, "bankID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, FromBank(bank))
}

// HandleCreate handles POST /admin/banks.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[UpsertBankRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	bank, err := h.service.Create(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "bank created",
		"request_id", requestID,
		"bank_id", bank.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusCreated, FromBank(bank))
}

// HandleUpdate handles PUT /admin/banks/{bankID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertBankRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	bank, err := h.service.Update(ctx, chi.URLParam(r, "bankID"), req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "bank updated",
		"request_id", requestID,
		"bank_id", bank.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, FromBank(bank))
}

// HandleDelete handles DELETE /admin/banks/{bankID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	bankID := chi.URLParam(r, "bankID")

	if err := h.service.Delete(ctx, bankID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "bank deleted",
		"request_id", requestcontext.RequestID(ctx),
		"bank_id", bankID,
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleBulkImport handles POST /admin/banks/bulk-import.
func (h *Handler) HandleBulkImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[BulkImportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.BulkImport(ctx, req.ToModels())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "bank bulk import finished",
		"request_id", requestID,
		"imported", result.Count,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}
