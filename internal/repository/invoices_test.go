package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
)

func period(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func seedInvoiceUnit(t *testing.T, client *ent.Client) uuid.UUID {
	t.Helper()
	custID := seedCustomer(t, client, "11122233344")
	unit, err := NewUnitRepository(client, testLogger()).CreateUnit(context.Background(), &BillingUnit{
		CustomerID: custID,
		Code:       "100234567",
		Address:    "Rua das Flores 100",
		Kind:       constants.DefaultUnitKind,
	})
	require.NoError(t, err)
	return unit.ID
}

func TestInvoiceUniquePerUnitAndPeriod(t *testing.T) {
	client := newTestClient(t)
	unitID := seedInvoiceUnit(t, client)
	repo := NewInvoiceRepository(client, testLogger())
	ctx := context.Background()

	amount := decimal.RequireFromString("245.17")
	_, err := repo.Create(ctx, &Invoice{
		UnitID:          unitID,
		ReferencePeriod: period(2025, time.May),
		Amount:          &amount,
		DocumentRef:     "docs/mai.pdf",
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &Invoice{
		UnitID:          unitID,
		ReferencePeriod: period(2025, time.May),
		DocumentRef:     "docs/mai-bis.pdf",
	})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestInvoiceUpdateRefusesOccupiedPeriod(t *testing.T) {
	client := newTestClient(t)
	unitID := seedInvoiceUnit(t, client)
	repo := NewInvoiceRepository(client, testLogger())
	ctx := context.Background()

	may, err := repo.Create(ctx, &Invoice{
		UnitID: unitID, ReferencePeriod: period(2025, time.May), DocumentRef: "docs/mai.pdf",
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &Invoice{
		UnitID: unitID, ReferencePeriod: period(2025, time.June), DocumentRef: "docs/jun.pdf",
	})
	require.NoError(t, err)

	jun := period(2025, time.June)
	_, err = repo.Update(ctx, may.ID, &InvoiceUpdate{ReferencePeriod: &jun})
	assert.ErrorIs(t, err, ErrDuplicatePeriod)

	// moving to a free period works
	jul := period(2025, time.July)
	moved, err := repo.Update(ctx, may.ID, &InvoiceUpdate{ReferencePeriod: &jul})
	require.NoError(t, err)
	assert.Equal(t, jul, moved.ReferencePeriod)
}

func TestInvoiceListYearFilter(t *testing.T) {
	client := newTestClient(t)
	unitID := seedInvoiceUnit(t, client)
	repo := NewInvoiceRepository(client, testLogger())
	ctx := context.Background()

	for _, p := range []time.Time{
		period(2024, time.December),
		period(2025, time.January),
		period(2025, time.November),
	} {
		_, err := repo.Create(ctx, &Invoice{
			UnitID: unitID, ReferencePeriod: p, DocumentRef: "docs/x.pdf",
		})
		require.NoError(t, err)
	}

	year := 2025
	invs, err := repo.ListForUnit(ctx, unitID, &year)
	require.NoError(t, err)
	require.Len(t, invs, 2)
	// ordered oldest first
	assert.Equal(t, period(2025, time.January), invs[0].ReferencePeriod)
	assert.Equal(t, period(2025, time.November), invs[1].ReferencePeriod)

	all, err := repo.ListForUnit(ctx, unitID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestInvoiceAmountRoundTripsAsDecimal(t *testing.T) {
	client := newTestClient(t)
	unitID := seedInvoiceUnit(t, client)
	repo := NewInvoiceRepository(client, testLogger())
	ctx := context.Background()

	amount := decimal.RequireFromString("1234.56")
	created, err := repo.Create(ctx, &Invoice{
		UnitID: unitID, ReferencePeriod: period(2025, time.May),
		Amount: &amount, DocumentRef: "docs/mai.pdf",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Amount)
	assert.True(t, got.Amount.Equal(amount))
}
