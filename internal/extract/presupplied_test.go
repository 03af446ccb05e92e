package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/internal/normalize"
)

func TestValidatePreSupplied(t *testing.T) {
	raw := []byte(`{
		"unitIdentifier": "100234567",
		"referencePeriod": {"Year": 2025, "Month": 5},
		"totalAmount": "245.17",
		"dueDate": "2025-05-20T00:00:00Z",
		"customerName": "MARIA DA SILVA"
	}`)

	fs, err := ValidatePreSupplied(raw)
	require.NoError(t, err)
	require.NotNil(t, fs.UnitIdentifier)
	assert.Equal(t, "100234567", *fs.UnitIdentifier)
	require.NotNil(t, fs.ReferencePeriod)
	assert.Equal(t, normalize.Period{Year: 2025, Month: time.May}, *fs.ReferencePeriod)
	requireDecimal(t, "245.17", fs.TotalAmount)
	require.NotNil(t, fs.DueDate)
	assert.Equal(t, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), *fs.DueDate)

	// defaults still apply on top of a sparse supplied set
	assert.Equal(t, constants.UnidentifiedSentinel, fs.CustomerAddress)
	assert.Equal(t, constants.DefaultDistributor, fs.DistributorName)
	requireDecimal(t, "0", fs.FlagSurchargeCharge)
}

func TestValidatePreSuppliedRejectsUnknownKeys(t *testing.T) {
	_, err := ValidatePreSupplied([]byte(`{"totalAmount": "10.00", "surprise": true}`))
	require.Error(t, err)
}

func TestValidatePreSuppliedRejectsMalformedValues(t *testing.T) {
	cases := map[string]string{
		"non-decimal amount": `{"totalAmount": "1.234,56"}`,
		"bad month":          `{"referencePeriod": {"Year": 2025, "Month": 13}}`,
		"bad date":           `{"dueDate": "20/05/2025"}`,
		"negative days":      `{"elapsedDays": -3}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ValidatePreSupplied([]byte(raw))
			assert.Error(t, err)
		})
	}
}
