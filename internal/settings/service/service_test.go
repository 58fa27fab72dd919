package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/settings/models"
	settingsstore "ficlear/internal/settings/store"
	dErrors "ficlear/pkg/domain-errors"
)

func newService() *Service {
	return New(settingsstore.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func TestGetReturnsDefaultsWhenUnset(t *testing.T) {
	svc := newService()

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FiClear", settings.PlatformName)
	assert.Equal(t, "support@ficlear.com", settings.SupportEmail)
}

func TestUpdateRoundTrips(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), &models.Settings{
		PlatformName: "FiClear Pro",
		SupportEmail: "help@ficlear.com",
	})
	require.NoError(t, err)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "FiClear Pro", settings.PlatformName)
	assert.False(t, settings.UpdatedAt.IsZero())
}

func TestUpdateValidates(t *testing.T) {
	svc := newService()

	_, err := svc.Update(context.Background(), &models.Settings{PlatformName: ""})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = svc.Update(context.Background(), &models.Settings{
		PlatformName: "X",
		SupportEmail: "not-an-email",
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestAdminPasswordLifecycle(t *testing.T) {
	svc := newService()

	// no password stored yet
	err := svc.VerifyAdminPassword(context.Background(), "whatever")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	require.NoError(t, svc.SetAdminPassword(context.Background(), "correct horse battery"))

	assert.NoError(t, svc.VerifyAdminPassword(context.Background(), "correct horse battery"))

	err = svc.VerifyAdminPassword(context.Background(), "wrong password")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
