package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/internal/utils"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func seedCustomer(t *testing.T, client *ent.Client, taxID string) uuid.UUID {
	t.Helper()
	c, err := client.Customer.Create().
		SetName("Lucas Veras").
		SetTaxID(taxID).
		SetAddress("Rua das Flores 100, São Luís - MA").
		Save(context.Background())
	require.NoError(t, err)
	return c.ID
}

func TestUnitActivityRule(t *testing.T) {
	client := newTestClient(t)
	custID := seedCustomer(t, client, "11122233344")
	repo := NewUnitRepository(client, testLogger())
	ctx := context.Background()

	unit, err := repo.CreateUnit(ctx, &BillingUnit{
		CustomerID: custID,
		Code:       "100234567",
		Address:    "Rua das Flores 100",
		Kind:       constants.DefaultUnitKind,
	})
	require.NoError(t, err)
	assert.True(t, utils.ToBillingUnit(unit).Active())

	retired, err := repo.Retire(ctx, unit.ID, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, utils.ToBillingUnit(retired).Active())

	back, err := repo.Reactivate(ctx, unit.ID)
	require.NoError(t, err)
	assert.True(t, utils.ToBillingUnit(back).Active())
	assert.Nil(t, back.RetiredAt)
}

func TestFindByCodeIgnoresRetiredUnits(t *testing.T) {
	client := newTestClient(t)
	custID := seedCustomer(t, client, "11122233344")
	repo := NewUnitRepository(client, testLogger())
	ctx := context.Background()

	unit, err := repo.CreateUnit(ctx, &BillingUnit{
		CustomerID: custID,
		Code:       "100234567",
		Address:    "Rua das Flores 100",
		Kind:       constants.DefaultUnitKind,
	})
	require.NoError(t, err)

	found, err := repo.FindByCode(ctx, "100234567")
	require.NoError(t, err)
	assert.Equal(t, unit.ID, found.ID)

	_, err = repo.Retire(ctx, unit.ID, time.Now().UTC())
	require.NoError(t, err)

	_, err = repo.FindByCode(ctx, "100234567")
	assert.True(t, ent.IsNotFound(err))
}

func TestCreateUnitRejectsActiveDuplicateCode(t *testing.T) {
	client := newTestClient(t)
	custID := seedCustomer(t, client, "11122233344")
	repo := NewUnitRepository(client, testLogger())
	ctx := context.Background()

	params := &BillingUnit{
		CustomerID: custID,
		Code:       "100234567",
		Address:    "Rua das Flores 100",
		Kind:       constants.DefaultUnitKind,
	}
	first, err := repo.CreateUnit(ctx, params)
	require.NoError(t, err)

	_, err = repo.CreateUnit(ctx, params)
	assert.ErrorIs(t, err, ErrUnitCodeTaken)

	// a retired unit no longer claims the code
	_, err = repo.Retire(ctx, first.ID, time.Now().UTC())
	require.NoError(t, err)
	_, err = repo.CreateUnit(ctx, params)
	assert.NoError(t, err)
}

func TestListForCustomerFiltersRetired(t *testing.T) {
	client := newTestClient(t)
	custID := seedCustomer(t, client, "11122233344")
	repo := NewUnitRepository(client, testLogger())
	ctx := context.Background()

	a, err := repo.CreateUnit(ctx, &BillingUnit{
		CustomerID: custID, Code: "100111111", Address: "Rua A", Kind: constants.DefaultUnitKind,
	})
	require.NoError(t, err)
	_, err = repo.CreateUnit(ctx, &BillingUnit{
		CustomerID: custID, Code: "100222222", Address: "Rua B", Kind: constants.DefaultUnitKind,
	})
	require.NoError(t, err)
	_, err = repo.Retire(ctx, a.ID, time.Now().UTC())
	require.NoError(t, err)

	active, err := repo.ListForCustomer(ctx, custID, false)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "100222222", active[0].Code)

	all, err := repo.ListForCustomer(ctx, custID, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
