package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/audit"
	"ficlear/internal/bank/models"
	bankstore "ficlear/internal/bank/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/requestcontext"
)

type recordingPublisher struct {
	events []audit.Event
}

func (p *recordingPublisher) Emit(_ context.Context, event audit.Event) {
	p.events = append(p.events, event)
}

func newService(pub audit.Publisher) *Service {
	return New(bankstore.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)), pub, nil)
}

func validBank(name string) *models.Bank {
	return &models.Bank{
		Name: name,
		ROI:  9.0,
		Criteria: models.Criteria{
			MinCibil:               700,
			MaxCibil:               900,
			MinSalary:              25000,
			CompanyCategoryAllowed: []string{"A", "B"},
			MaxObligationPercent:   50,
			MaxLTV:                 85,
		},
	}
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	svc := newService(nil)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	bank, err := svc.Create(ctx, validBank("Axis Bank"))
	require.NoError(t, err)
	assert.NotEmpty(t, bank.ID)
	assert.Equal(t, now, bank.CreatedAt)
	assert.Equal(t, now, bank.UpdatedAt)
}

func TestCreateKeepsExplicitID(t *testing.T) {
	svc := newService(nil)

	b := validBank("Kotak Bank")
	b.ID = "kotak"
	created, err := svc.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, "kotak", created.ID)

	_, err = svc.Create(context.Background(), b)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestCreateRejectsInvalidPolicy(t *testing.T) {
	svc := newService(nil)

	b := validBank("Broken Bank")
	b.Criteria.MinCibil = 950
	_, err := svc.Create(context.Background(), b)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc := newService(nil)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), created)

	bank, err := svc.Create(ctx, validBank("Yes Bank"))
	require.NoError(t, err)

	later := created.Add(48 * time.Hour)
	updated, err := svc.Update(requestcontext.WithTime(context.Background(), later), bank.ID, validBank("Yes Bank Ltd"))
	require.NoError(t, err)
	assert.Equal(t, created, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)
	assert.Equal(t, "Yes Bank Ltd", updated.Name)
}

func TestDeleteUnknownBank(t *testing.T) {
	svc := newService(nil)
	err := svc.Delete(context.Background(), "ghost")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestMutationsEmitAuditEvents(t *testing.T) {
	pub := &recordingPublisher{}
	svc := newService(pub)

	bank, err := svc.Create(context.Background(), validBank("IDFC First"))
	require.NoError(t, err)
	_, err = svc.Update(context.Background(), bank.ID, validBank("IDFC First Bank"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), bank.ID))

	require.Len(t, pub.events, 3)
	assert.Equal(t, audit.ActionCreated, pub.events[0].Action)
	assert.Equal(t, audit.ActionUpdated, pub.events[1].Action)
	assert.Equal(t, audit.ActionDeleted, pub.events[2].Action)
	for _, e := range pub.events {
		assert.Equal(t, "bank", e.Entity)
	}
}

func TestBulkImportSkipsInvalidRecords(t *testing.T) {
	svc := newService(nil)

	bad := validBank("Bad Bank")
	bad.ROI = 0 // invalid
	result, err := svc.BulkImport(context.Background(), []*models.Bank{
		validBank("Bank One"),
		bad,
		validBank("Bank Two"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "record 1")

	banks, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, banks, 2)
}

func TestBulkImportUpsertsExisting(t *testing.T) {
	svc := newService(nil)

	b := validBank("Canara Bank")
	b.ID = "canara"
	_, err := svc.Create(context.Background(), b)
	require.NoError(t, err)

	replacement := validBank("Canara Bank")
	replacement.ID = "canara"
	replacement.ROI = 8.75
	result, err := svc.BulkImport(context.Background(), []*models.Bank{replacement})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)

	got, err := svc.Get(context.Background(), "canara")
	require.NoError(t, err)
	assert.Equal(t, 8.75, got.ROI)
}
