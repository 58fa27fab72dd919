package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/offer/models"
	offerstore "ficlear/internal/offer/store"
	dErrors "ficlear/pkg/domain-errors"
	"ficlear/pkg/requestcontext"
)

func newService() *Service {
	return New(offerstore.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func validOffer(bank string) *models.Offer {
	return &models.Offer{
		BankName:     bank,
		LoanType:     "Home Loan",
		InterestRate: "8.5% onwards",
		MaxAmount:    "₹5 Cr",
		Tenure:       "Up to 30 years",
	}
}

func TestCreateAndGetOffer(t *testing.T) {
	svc := newService()

	offer, err := svc.Create(context.Background(), validOffer("SBI"))
	require.NoError(t, err)
	assert.NotEmpty(t, offer.ID)

	got, err := svc.Get(context.Background(), offer.ID)
	require.NoError(t, err)
	assert.Equal(t, "SBI", got.BankName)
}

func TestCreateRejectsIncompleteOffer(t *testing.T) {
	svc := newService()

	o := validOffer("SBI")
	o.LoanType = ""
	_, err := svc.Create(context.Background(), o)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))

	o = validOffer("SBI")
	o.ValidTill = "31-12-2026"
	_, err = svc.Create(context.Background(), o)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestListOrdersTrendingFirst(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), validOffer("Axis"))
	require.NoError(t, err)

	trending := validOffer("Zeta")
	trending.IsTrending = true
	_, err = svc.Create(context.Background(), trending)
	require.NoError(t, err)

	offers, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "Zeta", offers[0].BankName)
}

func TestListHidesExpiredOffers(t *testing.T) {
	svc := newService()

	expired := validOffer("Old Bank")
	expired.ValidTill = "2026-01-31"
	_, err := svc.Create(context.Background(), expired)
	require.NoError(t, err)

	current := validOffer("New Bank")
	current.ValidTill = "2026-12-31"
	_, err = svc.Create(context.Background(), current)
	require.NoError(t, err)

	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	public, err := svc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "New Bank", public[0].BankName)

	admin, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestOfferValidThroughItsLastDay(t *testing.T) {
	o := validOffer("SBI")
	o.ValidTill = "2026-06-15"

	lastDay := time.Date(2026, 6, 15, 23, 0, 0, 0, time.UTC)
	assert.False(t, o.Expired(lastDay))

	dayAfter := time.Date(2026, 6, 16, 1, 0, 0, 0, time.UTC)
	assert.True(t, o.Expired(dayAfter))
}

func TestUpdateAndDeleteOffer(t *testing.T) {
	svc := newService()

	offer, err := svc.Create(context.Background(), validOffer("SBI"))
	require.NoError(t, err)

	replacement := validOffer("SBI")
	replacement.InterestRate = "8.35% onwards"
	updated, err := svc.Update(context.Background(), offer.ID, replacement)
	require.NoError(t, err)
	assert.Equal(t, "8.35% onwards", updated.InterestRate)
	assert.Equal(t, offer.CreatedAt, updated.CreatedAt)

	require.NoError(t, svc.Delete(context.Background(), offer.ID))
	err = svc.Delete(context.Background(), offer.ID)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}
