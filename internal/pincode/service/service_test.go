package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ficlear/internal/pincode/models"
	pinstore "ficlear/internal/pincode/store"
	dErrors "ficlear/pkg/domain-errors"
)

func newService() *Service {
	return New(pinstore.NewInMemory(), slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil)
}

func seedRecord(t *testing.T, svc *Service, pincode, office, district, status string) {
	t.Helper()
	_, err := svc.Upsert(context.Background(), &models.PostalRecord{
		Pincode:        pincode,
		OfficeName:     office,
		DistrictName:   district,
		DeliveryStatus: status,
	})
	require.NoError(t, err)
}

func TestSearchByPincodeClassifiesArea(t *testing.T) {
	svc := newService()
	seedRecord(t, svc, "400001", "Mumbai G.P.O.", "Mumbai", "Delivery")

	result, err := svc.SearchByPincode(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, models.AreaMetro, result.AreaType)
	assert.Len(t, result.Offices, 1)
}

func TestSearchByPincodeMissDefaultsNonMetro(t *testing.T) {
	svc := newService()

	result, err := svc.SearchByPincode(context.Background(), "999999")
	require.NoError(t, err)
	assert.Equal(t, models.AreaNonMetro, result.AreaType)
	assert.Empty(t, result.Offices)
}

func TestSearchByPincodeValidation(t *testing.T) {
	svc := newService()
	for _, bad := range []string{"", "12345", "1234567", "40000x"} {
		_, err := svc.SearchByPincode(context.Background(), bad)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation), "pincode %q", bad)
	}
}

func TestSearchByAreaRequiresQuery(t *testing.T) {
	svc := newService()
	_, err := svc.SearchByArea(context.Background(), "x")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestSearchByAreaCapsResults(t *testing.T) {
	svc := newService()
	for i := 0; i < 120; i++ {
		seedRecord(t, svc, fmt.Sprintf("4%05d", i), fmt.Sprintf("Office %03d", i), "Nagpur", "Delivery")
	}

	records, err := svc.SearchByArea(context.Background(), "nagpur")
	require.NoError(t, err)
	assert.Len(t, records, areaSearchLimit)
}

func TestDeleteByPincode(t *testing.T) {
	svc := newService()
	seedRecord(t, svc, "440001", "Nagpur G.P.O.", "Nagpur", "Delivery")
	seedRecord(t, svc, "440001", "Itwari S.O", "Nagpur", "Delivery")

	deleted, err := svc.DeleteByPincode(context.Background(), "440001")
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = svc.DeleteByPincode(context.Background(), "440001")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestBulkImportSkipsInvalidRecords(t *testing.T) {
	svc := newService()

	records := []models.PostalRecord{
		{Pincode: "400001", OfficeName: "Mumbai G.P.O."},
		{Pincode: "bad", OfficeName: "Broken"},
		{Pincode: "440001", OfficeName: "Nagpur G.P.O."},
	}
	result, err := svc.BulkImport(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, 3, result.Total)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "record 1")
}

func TestBulkImportLargeBatch(t *testing.T) {
	svc := newService()

	records := make([]models.PostalRecord, 0, 500)
	for i := 0; i < 500; i++ {
		records = append(records, models.PostalRecord{
			Pincode:    fmt.Sprintf("5%05d", i),
			OfficeName: fmt.Sprintf("Office %03d", i),
		})
	}
	result, err := svc.BulkImport(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 500, result.Count)

	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 500, n)
}

func TestImportCSV(t *testing.T) {
	svc := newService()

	csv := strings.Join([]string{
		"pincode,officename,officeType,Deliverystatus,Districtname,statename",
		"400001,Mumbai G.P.O.,H.O,Delivery,Mumbai,Maharashtra",
		"440001,Nagpur G.P.O.,H.O,Delivery,Nagpur,Maharashtra",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), csv)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Empty(t, result.Errors)

	lookup, err := svc.SearchByPincode(context.Background(), "400001")
	require.NoError(t, err)
	assert.Equal(t, models.AreaMetro, lookup.AreaType)
}

func TestImportCSVWithoutRequiredColumns(t *testing.T) {
	svc := newService()
	_, err := svc.ImportCSV(context.Background(), "foo,bar\n1,2")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
