package reconcile

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/importtask"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/normalize"
	"github.com/lucasveras/faturahub/internal/repository"
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

func seedUnit(t *testing.T, client *ent.Client, code string) (customerID, unitID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	cust, err := client.Customer.Create().
		SetName("Lucas Veras").
		SetTaxID(fmt.Sprintf("%011d", time.Now().UnixNano()%1e11)).
		SetAddress("Rua das Flores 100, São Luís - MA").
		Save(ctx)
	require.NoError(t, err)

	unit, err := client.BillingUnit.Create().
		SetCustomerID(cust.ID).
		SetCode(code).
		SetAddress("Rua das Flores 100, São Luís - MA").
		SetKind(constants.DefaultUnitKind).
		Save(ctx)
	require.NoError(t, err)
	return cust.ID, unit.ID
}

func newTestWorkflow(client *ent.Client, engine Extractor) *Workflow {
	log := testLogger()
	units := repository.NewUnitRepository(client, log)
	tasks := repository.NewTaskRepository(client, log)
	return NewWorkflow(client, units, tasks, engine, 0, log)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func suppliedFields(unitCode string, p normalize.Period) *extract.FieldSet {
	due := time.Date(p.Year, p.Month, 20, 0, 0, 0, 0, time.UTC)
	return &extract.FieldSet{
		UnitIdentifier:  &unitCode,
		ReferencePeriod: &p,
		TotalAmount:     dec("245.17"),
		DueDate:         &due,
	}
}

func TestProcessCreatesInvoice(t *testing.T) {
	client := newTestClient(t)
	custID, unitID := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)
	ctx := context.Background()

	p := normalize.Period{Year: 2025, Month: time.May}
	out := w.Process(ctx, Input{
		CustomerID:   custID,
		DocumentName: "fatura-mai-2025.pdf",
		Fields:       suppliedFields("100234567", p),
	})

	require.NotNil(t, out.Invoice)
	assert.Nil(t, out.Conflict)
	assert.Nil(t, out.Error)
	assert.Equal(t, unitID, out.Invoice.UnitID)
	assert.Equal(t, p.FirstDay(), out.Invoice.ReferencePeriod)
	require.NotNil(t, out.Invoice.Amount)
	assert.True(t, out.Invoice.Amount.Equal(decimal.RequireFromString("245.17")))

	require.NotNil(t, out.TaskID)
	task, err := client.ImportTask.Get(ctx, *out.TaskID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.TaskSuccess), task.Status)
	assert.NotNil(t, task.CompletedAt)
}

func TestProcessDuplicateConflict(t *testing.T) {
	client := newTestClient(t)
	custID, unitID := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)
	ctx := context.Background()

	p := normalize.Period{Year: 2025, Month: time.May}
	in := Input{
		CustomerID:   custID,
		DocumentName: "fatura-mai-2025.pdf",
		Fields:       suppliedFields("100234567", p),
	}

	first := w.Process(ctx, in)
	require.NotNil(t, first.Invoice)

	second := w.Process(ctx, in)
	require.NotNil(t, second.Conflict)
	assert.Equal(t, ConflictDuplicate, second.Conflict.Kind)
	assert.Equal(t, "05/2025", second.Conflict.Period)
	assert.Nil(t, second.Invoice)

	n, err := client.Invoice.Query().Where(invoice.UnitID(unitID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// the refused attempt still leaves a ledger entry
	require.NotNil(t, second.TaskID)
	task, err := client.ImportTask.Get(ctx, *second.TaskID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.TaskFailure), task.Status)
	require.NotNil(t, task.ErrorMessage)
	assert.Contains(t, *task.ErrorMessage, "already exists")
}

func TestProcessForceReplaces(t *testing.T) {
	client := newTestClient(t)
	custID, unitID := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)
	ctx := context.Background()

	p := normalize.Period{Year: 2025, Month: time.May}
	first := w.Process(ctx, Input{
		CustomerID:   custID,
		DocumentName: "fatura-mai-2025.pdf",
		DocumentRef:  "docs/original.pdf",
		Fields:       suppliedFields("100234567", p),
	})
	require.NotNil(t, first.Invoice)

	fields := suppliedFields("100234567", p)
	fields.TotalAmount = dec("199.99")
	second := w.Process(ctx, Input{
		CustomerID:   custID,
		DocumentName: "fatura-mai-2025-corrigida.pdf",
		DocumentRef:  "docs/replacement.pdf",
		Fields:       fields,
		Force:        true,
	})
	require.NotNil(t, second.Invoice)
	assert.NotEqual(t, first.Invoice.ID, second.Invoice.ID)

	rows, err := client.Invoice.Query().Where(invoice.UnitID(unitID)).All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "docs/replacement.pdf", rows[0].DocumentRef)
	require.NotNil(t, rows[0].Amount)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("199.99")))
}

func TestProcessOwnershipConflict(t *testing.T) {
	client := newTestClient(t)
	ownerID, _ := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)
	ctx := context.Background()

	otherCustomer := uuid.New()
	p := normalize.Period{Year: 2025, Month: time.May}
	out := w.Process(ctx, Input{
		CustomerID:   otherCustomer,
		DocumentName: "fatura-mai-2025.pdf",
		Fields:       suppliedFields("100234567", p),
	})

	require.NotNil(t, out.Conflict)
	assert.Equal(t, ConflictOwnership, out.Conflict.Kind)
	assert.Equal(t, "100234567", out.Conflict.UnitCode)
	// the conflict names the actual owner
	assert.Equal(t, ownerID.String(), out.Conflict.OwnerCustomerID)
	assert.Equal(t, "Lucas Veras", out.Conflict.OwnerName)
	assert.Nil(t, out.Invoice)

	// nothing stored, no ledger entry for an unresolved document
	n, err := client.Invoice.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProcessUnknownUnit(t *testing.T) {
	client := newTestClient(t)
	custID, _ := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)

	p := normalize.Period{Year: 2025, Month: time.May}
	out := w.Process(context.Background(), Input{
		CustomerID:   custID,
		DocumentName: "fatura.pdf",
		Fields:       suppliedFields("999999999", p),
	})

	require.NotNil(t, out.Error)
	assert.Equal(t, ErrCodeUnknownUnit, out.Error.Code)
}

func TestProcessMissingUnitIdentifier(t *testing.T) {
	client := newTestClient(t)
	custID, _ := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)

	p := normalize.Period{Year: 2025, Month: time.May}
	fields := suppliedFields("", p)
	fields.UnitIdentifier = nil
	out := w.Process(context.Background(), Input{
		CustomerID:   custID,
		DocumentName: "fatura.pdf",
		Fields:       fields,
	})

	require.NotNil(t, out.Error)
	assert.Equal(t, ErrCodeMissingUnit, out.Error.Code)
}

func TestProcessUnresolvedPeriod(t *testing.T) {
	client := newTestClient(t)
	custID, _ := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)

	fields := suppliedFields("100234567", normalize.Period{Year: 2025, Month: time.May})
	fields.ReferencePeriod = nil
	out := w.Process(context.Background(), Input{
		CustomerID:   custID,
		DocumentName: "fatura.pdf",
		Fields:       fields,
	})

	require.NotNil(t, out.Error)
	assert.Equal(t, ErrCodePeriod, out.Error.Code)
}

func TestProcessPeriodOverride(t *testing.T) {
	client := newTestClient(t)
	custID, _ := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)

	// the override wins over the extracted period
	fields := suppliedFields("100234567", normalize.Period{Year: 2025, Month: time.May})
	out := w.Process(context.Background(), Input{
		CustomerID:   custID,
		DocumentName: "fatura.pdf",
		Period:       "07/2025",
		Fields:       fields,
	})

	require.NotNil(t, out.Invoice)
	assert.Equal(t, time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC), out.Invoice.ReferencePeriod)
}

// stubExtractor scripts per-document extraction results.
type stubExtractor struct {
	results map[string]extract.Result
}

func (s *stubExtractor) ExtractFile(_ context.Context, _ string, sourceName string) extract.Result {
	return s.results[sourceName]
}

func TestBatchIsolation(t *testing.T) {
	client := newTestClient(t)
	custID, _ := seedUnit(t, client, "100234567")

	good := func(p normalize.Period) extract.Result {
		return extract.Result{
			Status: constants.ExtractionSuccess,
			Fields: *suppliedFields("100234567", p),
		}
	}
	engine := &stubExtractor{results: map[string]extract.Result{
		"doc1.pdf": good(normalize.Period{Year: 2025, Month: time.January}),
		"doc2.pdf": {
			Status:      constants.ExtractionError,
			ErrorDetail: "no text could be extracted from the document",
		},
		"doc3.pdf": good(normalize.Period{Year: 2025, Month: time.March}),
	}}
	w := newTestWorkflow(client, engine)

	out := w.ProcessBatch(context.Background(), []Input{
		{CustomerID: custID, DocumentPath: "/tmp/doc1.pdf", DocumentName: "doc1.pdf"},
		{CustomerID: custID, DocumentPath: "/tmp/doc2.pdf", DocumentName: "doc2.pdf"},
		{CustomerID: custID, DocumentPath: "/tmp/doc3.pdf", DocumentName: "doc3.pdf"},
	})

	assert.Len(t, out.Created, 2)
	assert.Empty(t, out.Conflicts)
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "doc2.pdf", out.Errors[0].DocumentName)
	assert.Equal(t, ErrCodeExtraction, out.Errors[0].Code)
}

// blockingExtractor waits out the workflow's per-document deadline.
type blockingExtractor struct{}

func (blockingExtractor) ExtractFile(ctx context.Context, _ string, sourceName string) extract.Result {
	<-ctx.Done()
	return extract.Result{
		Status:      constants.ExtractionError,
		SourceName:  sourceName,
		ErrorDetail: ctx.Err().Error(),
	}
}

func TestProcessAcquisitionTimeout(t *testing.T) {
	client := newTestClient(t)
	custID, unitID := seedUnit(t, client, "100234567")

	log := testLogger()
	w := NewWorkflow(client,
		repository.NewUnitRepository(client, log),
		repository.NewTaskRepository(client, log),
		blockingExtractor{}, 5*time.Millisecond, log)

	out := w.Process(context.Background(), Input{
		CustomerID:   custID,
		DocumentPath: "/tmp/slow.pdf",
		DocumentName: "slow.pdf",
	})

	require.NotNil(t, out.Error)
	assert.Equal(t, ErrCodeTimeout, out.Error.Code)
	n, err := client.Invoice.Query().Where(invoice.UnitID(unitID)).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestConcurrentIngestSingleWinner(t *testing.T) {
	client := newTestClient(t)
	custID, unitID := seedUnit(t, client, "100234567")
	w := newTestWorkflow(client, nil)
	ctx := context.Background()

	p := normalize.Period{Year: 2025, Month: time.May}
	in := Input{
		CustomerID:   custID,
		DocumentName: "fatura-mai-2025.pdf",
		Fields:       suppliedFields("100234567", p),
	}

	var wg sync.WaitGroup
	outcomes := make([]Outcome, 2)
	for i := range outcomes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcomes[i] = w.Process(ctx, in)
		}(i)
	}
	wg.Wait()

	created := 0
	for _, o := range outcomes {
		if o.Invoice != nil {
			created++
			continue
		}
		// the loser must surface a duplicate conflict or a storage
		// error, never a silent second row
		if o.Conflict != nil {
			assert.Equal(t, ConflictDuplicate, o.Conflict.Kind)
		} else {
			require.NotNil(t, o.Error)
		}
	}
	assert.Equal(t, 1, created)

	n, err := client.Invoice.Query().Where(invoice.UnitID(unitID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLedgerStatusesAreForwardOnly(t *testing.T) {
	client := newTestClient(t)
	_, unitID := seedUnit(t, client, "100234567")
	log := testLogger()
	tasks := repository.NewTaskRepository(client, log)
	ctx := context.Background()

	task, err := tasks.Start(ctx, unitID, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	require.NoError(t, tasks.MarkInProgress(ctx, task.ID))
	require.NoError(t, tasks.Succeed(ctx, task.ID))

	// terminal statuses never change again
	err = tasks.Fail(ctx, task.ID, "late failure")
	require.Error(t, err)
	err = tasks.MarkInProgress(ctx, task.ID)
	require.Error(t, err)

	got, err := client.ImportTask.Query().Where(importtask.ID(task.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(constants.TaskSuccess), got.Status)
}
