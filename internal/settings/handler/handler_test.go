package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/platform/middleware"
	"ficlear/internal/settings/models"
	settingssvc "ficlear/internal/settings/service"
	settingsstore "ficlear/internal/settings/store"
	"ficlear/pkg/testutil"
)

const adminToken = "test-admin-token"

func newSettingsRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := settingssvc.New(settingsstore.NewInMemory(), logger, nil)
	h := New(svc, adminToken, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Route("/admin", func(ar chi.Router) {
		h.RegisterAuth(ar)
		ar.Group(func(gr chi.Router) {
			gr.Use(middleware.RequireAdminToken(adminToken, logger))
			h.RegisterAdmin(gr)
		})
	})
	return r
}

func TestGetSettingsServesDefaults(t *testing.T) {
	router := newSettingsRouter(t)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/settings"))
	require.Equal(t, http.StatusOK, rr.Code)

	var settings models.Settings
	testutil.DecodeResponse(t, rr, &settings)
	assert.Equal(t, "FiClear", settings.PlatformName)
}

func TestUpdateSettings(t *testing.T) {
	router := newSettingsRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin/settings", map[string]any{
		"platformName": "FiClear Pro",
		"supportEmail": "help@ficlear.com",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusOK, testutil.DoRequest(router, req).Code)

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/settings"))
	var settings models.Settings
	testutil.DecodeResponse(t, rr, &settings)
	assert.Equal(t, "FiClear Pro", settings.PlatformName)
}

func TestUpdateSettingsRequiresToken(t *testing.T) {
	router := newSettingsRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin/settings", map[string]any{
		"platformName": "Evil",
	})
	assert.Equal(t, http.StatusForbidden, testutil.DoRequest(router, req).Code)
}

func TestAdminLogin(t *testing.T) {
	router := newSettingsRouter(t)

	login := func(password string) int {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
			"password": password,
		})
		return testutil.DoRequest(router, req).Code
	}

	// No credential stored yet.
	assert.Equal(t, http.StatusUnauthorized, login("a-long-enough-password"))

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin/settings/credential", map[string]any{
		"password": "a-long-enough-password",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	require.Equal(t, http.StatusNoContent, testutil.DoRequest(router, req).Code)

	assert.Equal(t, http.StatusUnauthorized, login("not-the-password"))

	req = testutil.NewJSONRequest(t, http.MethodPost, "/admin/login", map[string]any{
		"password": "a-long-enough-password",
	})
	rr := testutil.DoRequest(router, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp LoginResponse
	testutil.DecodeResponse(t, rr, &resp)
	assert.Equal(t, adminToken, resp.Token)
}

func TestSetCredential(t *testing.T) {
	router := newSettingsRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodPut, "/admin/settings/credential", map[string]any{
		"password": "short",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	assert.Equal(t, http.StatusBadRequest, testutil.DoRequest(router, req).Code)

	req = testutil.NewJSONRequest(t, http.MethodPut, "/admin/settings/credential", map[string]any{
		"password": "a-long-enough-password",
	})
	req.Header.Set("X-Admin-Token", adminToken)
	assert.Equal(t, http.StatusNoContent, testutil.DoRequest(router, req).Code)
}
