// Package handler wires the employer register endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/company/models"
	companysvc "ficlear/internal/company/service"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the register operations the handler needs.
type Service interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	Get(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	SearchByName(ctx context.Context, query string) ([]*models.Company, error)
	Update(ctx context.Context, id string, company *models.Company) (*models.Company, error)
	Delete(ctx context.Context, id string) error
	BulkImport(ctx context.Context, companies []*models.Company) (*companysvc.ImportResult, error)
	LookupCIN(ctx context.Context, cin string) (*models.Registration, error)
}

// Handler exposes the employer register over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a register handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public register endpoints. Search backs the employer
// autocomplete on the eligibility form; the CIN lookup backs the company
// verification flow.
func (h *Handler) Register(r chi.Router) {
	r.Get("/companies/search/{query}", h.HandleSearch)
	r.Post("/companies/cin-lookup", h.HandleCINLookup)
}

// RegisterAdmin mounts the register mutation endpoints.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/companies", h.HandleList)
	r.Get("/companies/{companyID}", h.HandleGet)
	r.Post("/companies", h.HandleCreate)
	r.Put("/companies/{companyID}", h.HandleUpdate)
	r.Delete("/companies/{companyID}", h.HandleDelete)
	r.Post("/companies/bulk-import", h.HandleBulkImport)
}

// HandleSearch handles GET /companies/search/{query}.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.SearchByName(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"count":     len(companies),
		"companies": companies,
	})
}

// HandleCINLookup handles POST /companies/cin-lookup.
func (h *Handler) HandleCINLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CINLookupRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	registration, err := h.service.LookupCIN(ctx, req.CIN)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, registration)
}

// HandleList handles GET /admin/companies.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"count":     len(companies),
		"companies": companies,
	})
}

// HandleGet handles GET /admin/companies/{companyID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	company, err := h.service.Get(r.Context(), chi.URLParam(r, "companyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, company)
}

// HandleCreate handles POST /admin/companies.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertCompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.Create(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "company created",
		"request_id", requestID,
		"company_id", company.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, company)
}

// HandleUpdate handles PUT /admin/companies/{companyID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertCompanyRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	company, err := h.service.Update(ctx, chi.URLParam(r, "companyID"), req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "company updated",
		"request_id", requestID,
		"company_id", company.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, company)
}

// HandleDelete handles DELETE /admin/companies/{companyID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	companyID := chi.URLParam(r, "companyID")

	if err := h.service.Delete(ctx, companyID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "company deleted",
		"request_id", requestcontext.RequestID(ctx),
		"company_id", companyID,
	)
	w.WriteHeader(http.StatusNoContent)
}

// HandleBulkImport handles POST /admin/companies/bulk-import.
func (h *Handler) HandleBulkImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[BulkImportRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.BulkImport(ctx, req.ToModels())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "company bulk import finished",
		"request_id", requestID,
		"imported", result.Count,
	)
	httputil.WriteJSON(w, http.StatusOK, result)
}
