// Package handler wires the live offer endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/offer/models"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the offer operations the handler needs.
type Service interface {
	Create(ctx context.Context, offer *models.Offer) (*models.Offer, error)
	Get(ctx context.Context, id string) (*models.Offer, error)
	List(ctx context.Context, includeExpired bool) ([]*models.Offer, error)
	Update(ctx context.Context, id string, offer *models.Offer) (*models.Offer, error)
	Delete(ctx context.Context, id string) error
}

// Handler exposes live offers over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an offer handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the public offer endpoints.
func (h *Handler) Register(r chi.Router) {
	r.Get("/offers", h.HandleList)
	r.Get("/offers/{offerID}", h.HandleGet)
}

// RegisterAdmin mounts the offer mutation endpoints.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Get("/offers", h.HandleAdminList)
	r.Post("/offers", h.HandleCreate)
	r.Put("/offers/{offerID}", h.HandleUpdate)
	r.Delete("/offers/{offerID}", h.HandleDelete)
}

// HandleList handles GET /offers. Expired offers are hidden from the public
// listing.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.List(r.Context(), false)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

// HandleAdminList handles GET /admin/offers, including expired offers.
func (h *Handler) HandleAdminList(w http.ResponseWriter, r *http.Request) {
	offers, err := h.service.List(r.Context(), true)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"offers": offers})
}

// HandleGet handles GET /offers/{offerID}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	offer, err := h.service.Get(r.Context(), chi.URLParam(r, "offerID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, offer)
}

// HandleCreate handles POST /admin/offers.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertOfferRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	offer, err := h.service.Create(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "offer created",
		"request_id", requestID,
		"offer_id", offer.ID,
	)
	httputil.WriteJSON(w, http.StatusCreated, offer)
}

// HandleUpdate handles PUT /admin/offers/{offerID}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpsertOfferRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	offer, err := h.service.Update(ctx, chi.URLParam(r, "offerID"), req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "offer updated",
		"request_id", requestID,
		"offer_id", offer.ID,
	)
	httputil.WriteJSON(w, http.StatusOK, offer)
}

// HandleDelete handles DELETE /admin/offers/{offerID}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offerID := chi.URLParam(r, "offerID")

	if err := h.service.Delete(ctx, offerID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "offer deleted",
		"request_id", requestcontext.RequestID(ctx),
		"offer_id", offerID,
	)
	w.WriteHeader(http.StatusNoContent)
}
