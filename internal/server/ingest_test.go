package server

import (
	"context"
	"database/sql"
	"errors"
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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	_ "modernc.org/sqlite"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/reconcile"
	"github.com/lucasveras/faturahub/internal/repository"
	"github.com/lucasveras/faturahub/internal/textacq"
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

// noAcquirer fails every acquisition; the guards under test must reject
// the request before text acquisition runs.
type noAcquirer struct{}

func (noAcquirer) Acquire(context.Context, string) (textacq.Result, error) {
	return textacq.Result{}, errors.New("acquisition must not run")
}

func newIngestionTestServer(t *testing.T, client *ent.Client) *IngestionServer {
	t.Helper()
	log := testLogger()
	engine := extract.NewEngine(noAcquirer{}, log)
	units := repository.NewUnitRepository(client, log)
	tasks := repository.NewTaskRepository(client, log)
	workflow := reconcile.NewWorkflow(client, units, tasks, engine, time.Second, log)
	return NewIngestionServer(engine, workflow, repository.NewCustomerRepository(client, log), log)
}

func seedTestCustomer(t *testing.T, client *ent.Client, name string) uuid.UUID {
	t.Helper()
	cust, err := client.Customer.Create().
		SetName(name).
		SetTaxID(fmt.Sprintf("%011d", time.Now().UnixNano()%1e11)).
		SetAddress("Rua das Flores 100, São Luís - MA").
		Save(context.Background())
	require.NoError(t, err)
	return cust.ID
}

func seedTestUnit(t *testing.T, client *ent.Client, customerID uuid.UUID, code string) {
	t.Helper()
	_, err := client.BillingUnit.Create().
		SetCustomerID(customerID).
		SetCode(code).
		SetAddress("Rua das Flores 100, São Luís - MA").
		SetKind(constants.DefaultUnitKind).
		Save(context.Background())
	require.NoError(t, err)
}

func TestPreviewExtractionRejectsNonPDF(t *testing.T) {
	client := newTestClient(t)
	srv := newIngestionTestServer(t, client)

	_, err := srv.PreviewExtraction(context.Background(), &faturaspb.PreviewExtractionRequest{
		Path: "/tmp/fatura-mai-2025.png",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUploadInvoicesRejectsNonPDFDocument(t *testing.T) {
	client := newTestClient(t)
	custID := seedTestCustomer(t, client, "Lucas Veras")
	srv := newIngestionTestServer(t, client)

	resp, err := srv.UploadInvoices(context.Background(), &faturaspb.UploadInvoicesRequest{
		CustomerId: custID.String(),
		Documents: []*faturaspb.InvoiceDocument{
			{Path: "/tmp/fatura-mai-2025.jpg", Name: "fatura-mai-2025.jpg"},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, reconcile.ErrCodeInvalidRequest, resp.Errors[0].Code)
	assert.Equal(t, "fatura-mai-2025.jpg", resp.Errors[0].DocumentName)
}

func TestUploadInvoicesOwnershipConflictNamesOwner(t *testing.T) {
	client := newTestClient(t)
	ownerID := seedTestCustomer(t, client, "Lucas Veras")
	seedTestUnit(t, client, ownerID, "100234567")
	otherID := seedTestCustomer(t, client, "Maria Silva")
	srv := newIngestionTestServer(t, client)

	fields := `{"unitIdentifier":"100234567","referencePeriod":{"Year":2025,"Month":5},"totalAmount":"245.17"}`
	resp, err := srv.UploadInvoices(context.Background(), &faturaspb.UploadInvoicesRequest{
		CustomerId: otherID.String(),
		Documents: []*faturaspb.InvoiceDocument{
			{Name: "fatura-mai-2025.pdf", FieldsJson: fields},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)
	require.Len(t, resp.Conflicts, 1)

	c := resp.Conflicts[0]
	assert.Equal(t, reconcile.ConflictOwnership, c.Kind)
	assert.Equal(t, "100234567", c.UnitCode)
	assert.Equal(t, ownerID.String(), c.OwnerCustomerId)
	assert.Equal(t, "Lucas Veras", c.OwnerName)
}
