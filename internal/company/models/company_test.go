package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCIN(t *testing.T) {
	t.Run("uppercases and trims", func(t *testing.T) {
		cin, err := NormalizeCIN("  l22210mh1995plc084781 ")
		require.NoError(t, err)
		assert.Equal(t, "L22210MH1995PLC084781", cin)
	})

	t.Run("accepts unlisted prefix", func(t *testing.T) {
		_, err := NormalizeCIN("U72900KA2003PTC031497")
		assert.NoError(t, err)
	})

	for _, bad := range []string{
		"",
		"X22210MH1995PLC084781",  // bad prefix
		"L2221MH1995PLC084781",   // short digit run
		"L22210MH1995PLC08478",   // 20 chars
		"L22210MH1995PLC0847811", // 22 chars
	} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, err := NormalizeCIN(bad)
			assert.Error(t, err)
		})
	}
}

func TestCompanyValidate(t *testing.T) {
	valid := Company{Name: "Acme Corp", Category: "B"}
	assert.NoError(t, valid.Validate())

	t.Run("normalizes embedded cin", func(t *testing.T) {
		c := Company{Name: "TCS", Category: "A", CIN: "l22210mh1995plc084781"}
		require.NoError(t, c.Validate())
		assert.Equal(t, "L22210MH1995PLC084781", c.CIN)
	})

	noName := Company{Category: "A"}
	assert.Error(t, noName.Validate())

	badCategory := Company{Name: "X", Category: "E"}
	assert.Error(t, badCategory.Validate())
}
