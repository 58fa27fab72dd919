// Package handler wires the platform settings endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ficlear/internal/settings/models"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/platform/httputil"
	"ficlear/pkg/requestcontext"
)

// Service defines the settings operations the handler needs.
type Service interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, settings *models.Settings) (*models.Settings, error)
	SetAdminPassword(ctx context.Context, password string) error
	VerifyAdminPassword(ctx context.Context, password string) error
}

// Handler exposes platform settings over HTTP.
type Handler struct {
	service    Service
	adminToken string
	logger     *slog.Logger
}

// New constructs a settings handler. adminToken is the API token handed out
// on a successful password login.
func New(service Service, adminToken string, logger *slog.Logger) *Handler {
	return &Handler{service: service, adminToken: adminToken, logger: logger}
}

// Register mounts the public read endpoint.
func (h *Handler) Register(r chi.Router) {
	r.Get("/settings", h.HandleGet)
}

// RegisterAdmin mounts the settings mutation endpoints.
func (h *Handler) RegisterAdmin(r chi.Router) {
	r.Put("/settings", h.HandleUpdate)
	r.Put("/settings/credential", h.HandleSetCredential)
}

// RegisterAuth mounts the admin login endpoint. It sits inside the /admin
// route group but in front of the token middleware: logging in is how a
// client obtains the token in the first place.
func (h *Handler) RegisterAuth(r chi.Router) {
	r.Post("/login", h.HandleLogin)
}

// HandleGet handles GET /settings.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, settings)
}

// HandleUpdate handles PUT /admin/settings.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[UpdateSettingsRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	settings, err := h.service.Update(ctx, req.ToModel())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "settings updated",
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, settings)
}

// HandleSetCredential handles PUT /admin/settings/credential.
func (h *Handler) HandleSetCredential(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[SetCredentialRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.SetAdminPassword(ctx, req.Password); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleLogin handles POST /admin/login. A correct password yields the API
// token the admin surface authenticates with.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	if err := h.service.VerifyAdminPassword(ctx, req.Password); err != nil {
		h.logger.WarnContext(ctx, "admin login rejected",
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "admin login accepted",
		"request_id", requestID,
	)
	httputil.WriteJSON(w, http.StatusOK, LoginResponse{Token: h.adminToken})
}

// UpdateSettingsRequest is the HTTP request body for PUT /admin/settings.
type UpdateSettingsRequest struct {
	models.Settings
}

// Validate implements httputil.Validatable.
func (r *UpdateSettingsRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.PlatformName = strings.TrimSpace(r.PlatformName)
	return r.Settings.Validate()
}

// ToModel returns the embedded settings record.
func (r *UpdateSettingsRequest) ToModel() *models.Settings {
	return &r.Settings
}

// LoginRequest is the HTTP request body for POST /admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Validate implements httputil.Validatable.
func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// LoginResponse carries the API token issued on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SetCredentialRequest is the HTTP request body for
// PUT /admin/settings/credential.
type SetCredentialRequest struct {
	Password string `json:"password"`
}

// Validate implements httputil.Validatable.
func (r *SetCredentialRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	if len(r.Password) < 8 {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	return nil
}
