package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
)

// ErrDuplicatePeriod is returned when a unit already has an invoice
// stored for the requested reference period.
var ErrDuplicatePeriod = errors.New("an invoice already exists for this unit and reference period")

// Invoice wraps parameters for storing a reconciled bill.
type Invoice struct {
	UnitID          uuid.UUID
	ReferencePeriod time.Time
	Amount          *decimal.Decimal
	DueDate         *time.Time
	DocumentRef     string
	RetrievedAt     *time.Time
}

// InvoiceUpdate carries the mutable fields of a stored invoice.
// Nil means leave unchanged.
type InvoiceUpdate struct {
	ReferencePeriod *time.Time
	Amount          *decimal.Decimal
	DueDate         *time.Time
	DocumentRef     *string
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Invoice, error)
	ListForUnit(ctx context.Context, unitID uuid.UUID, year *int) ([]*ent.Invoice, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, year *int) ([]*ent.Invoice, error)
	ExistsForPeriod(ctx context.Context, unitID uuid.UUID, period time.Time) (bool, error)
	Create(ctx context.Context, inv *Invoice) (*ent.Invoice, error)
	Update(ctx context.Context, id uuid.UUID, upd *InvoiceUpdate) (*ent.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Invoice, error) {
	return r.client.Invoice.
		Query().
		Where(invoice.ID(id)).
		Only(ctx)
}

func yearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func (r *invoiceRepository) ListForUnit(ctx context.Context, unitID uuid.UUID, year *int) ([]*ent.Invoice, error) {
	q := r.client.Invoice.Query().Where(invoice.UnitID(unitID))
	if year != nil {
		from, to := yearBounds(*year)
		q = q.Where(invoice.ReferencePeriodGTE(from), invoice.ReferencePeriodLT(to))
	}
	invs, err := q.Order(invoice.ByReferencePeriod()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "unit_id", unitID, "error", err)
		return nil, err
	}
	return invs, nil
}

func (r *invoiceRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID, year *int) ([]*ent.Invoice, error) {
	q := r.client.Invoice.Query().
		Where(invoice.HasUnitWith(billingunit.CustomerID(customerID)))
	if year != nil {
		from, to := yearBounds(*year)
		q = q.Where(invoice.ReferencePeriodGTE(from), invoice.ReferencePeriodLT(to))
	}
	invs, err := q.Order(invoice.ByReferencePeriod()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "customer_id", customerID, "error", err)
		return nil, err
	}
	return invs, nil
}

func (r *invoiceRepository) ExistsForPeriod(ctx context.Context, unitID uuid.UUID, period time.Time) (bool, error) {
	return r.client.Invoice.Query().
		Where(invoice.UnitID(unitID), invoice.ReferencePeriod(period)).
		Exist(ctx)
}

func (r *invoiceRepository) Create(ctx context.Context, inv *Invoice) (*ent.Invoice, error) {
	created, err := r.client.Invoice.Create().
		SetUnitID(inv.UnitID).
		SetReferencePeriod(inv.ReferencePeriod).
		SetNillableAmount(inv.Amount).
		SetNillableDueDate(inv.DueDate).
		SetDocumentRef(inv.DocumentRef).
		SetNillableRetrievedAt(inv.RetrievedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "unit_id", inv.UnitID, "period", inv.ReferencePeriod, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *invoiceRepository) Update(ctx context.Context, id uuid.UUID, upd *InvoiceUpdate) (*ent.Invoice, error) {
	cur, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Moving an invoice to another period must not collide with an
	// existing invoice on that period. The unique index backs this up.
	if upd.ReferencePeriod != nil && !upd.ReferencePeriod.Equal(cur.ReferencePeriod) {
		taken, err := r.ExistsForPeriod(ctx, cur.UnitID, *upd.ReferencePeriod)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrDuplicatePeriod
		}
	}

	builder := r.client.Invoice.UpdateOneID(id).
		SetNillableReferencePeriod(upd.ReferencePeriod).
		SetNillableAmount(upd.Amount).
		SetNillableDueDate(upd.DueDate).
		SetNillableDocumentRef(upd.DocumentRef)

	saved, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return saved, nil
}
