package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/company/mca"
	"ficlear/internal/company/models"
	companystore "ficlear/internal/company/store"
	"ficlear/internal/platform/config"
	dErrors "ficlear/pkg/domain-errors"
)

func newService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(companystore.NewInMemory(), mca.New(config.MCAConfig{}, logger), logger, nil, nil)
}

func TestCreateAndSearch(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), &models.Company{Name: "Infosys Limited", Category: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &models.Company{Name: "Infiniti Retail", Category: "B"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &models.Company{Name: "Acme Corp", Category: "C"})
	require.NoError(t, err)

	matches, err := svc.SearchByName(context.Background(), "inf")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Infiniti Retail", matches[0].Name)

	_, err = svc.SearchByName(context.Background(), "i")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestCreateRejectsBadCategory(t *testing.T) {
	svc := newService()
	_, err := svc.Create(context.Background(), &models.Company{Name: "X", Category: "Z"})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestLookupCINNormalizesInput(t *testing.T) {
	svc := newService()

	reg, err := svc.LookupCIN(context.Background(), " l22210mh1995plc084781 ")
	require.NoError(t, err)
	assert.Equal(t, "Tata Consultancy Services Limited", reg.CompanyName)
}

func TestLookupCINRejectsBadFormat(t *testing.T) {
	svc := newService()
	_, err := svc.LookupCIN(context.Background(), "not-a-cin")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestLookupCINMiss(t *testing.T) {
	svc := newService()
	_, err := svc.LookupCIN(context.Background(), "L99999MH1995PLC000000")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestBulkImportCompanies(t *testing.T) {
	svc := newService()

	result, err := svc.BulkImport(context.Background(), []*models.Company{
		{ID: "tcs", Name: "TCS", Category: "A"},
		{Name: "No Category"},
		{Name: "Valid Co", Category: "D"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "record 1")

	got, err := svc.Get(context.Background(), "tcs")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Category)
}
