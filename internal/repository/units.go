package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/billingunit"
)

// ErrUnitCodeTaken is returned when an active unit already claims the code.
var ErrUnitCodeTaken = errors.New("an active unit with this code already exists for the customer")

// BillingUnit wraps parameters for registering a consumption point.
type BillingUnit struct {
	CustomerID uuid.UUID
	Code       string
	Address    string
	Kind       string
	StartedAt  time.Time
}

type UnitRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.BillingUnit, error)
	// FindByCode resolves a unit code globally, across all customers.
	// Ownership checks happen in the caller.
	FindByCode(ctx context.Context, code string) (*ent.BillingUnit, error)
	CreateUnit(ctx context.Context, u *BillingUnit) (*ent.BillingUnit, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID, includeRetired bool) ([]*ent.BillingUnit, error)
	Retire(ctx context.Context, id uuid.UUID, at time.Time) (*ent.BillingUnit, error)
	Reactivate(ctx context.Context, id uuid.UUID) (*ent.BillingUnit, error)
}

type unitRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUnitRepository(client *ent.Client, logger *slog.Logger) UnitRepository {
	return &unitRepository{
		client: client,
		logger: logger,
	}
}

func (r *unitRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.BillingUnit, error) {
	return r.client.BillingUnit.
		Query().
		Where(billingunit.ID(id)).
		Only(ctx)
}

func (r *unitRepository) FindByCode(ctx context.Context, code string) (*ent.BillingUnit, error) {
	return r.client.BillingUnit.
		Query().
		Where(billingunit.Code(code), billingunit.RetiredAtIsNil()).
		Only(ctx)
}

func (r *unitRepository) CreateUnit(ctx context.Context, u *BillingUnit) (*ent.BillingUnit, error) {
	// One active unit per (customer, code). Retired units with the same
	// code may exist; they no longer claim the code.
	taken, err := r.client.BillingUnit.Query().
		Where(
			billingunit.CustomerID(u.CustomerID),
			billingunit.Code(u.Code),
			billingunit.RetiredAtIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUnitCodeTaken
	}

	builder := r.client.BillingUnit.Create().
		SetCustomerID(u.CustomerID).
		SetCode(u.Code).
		SetAddress(u.Address).
		SetKind(u.Kind)
	if !u.StartedAt.IsZero() {
		builder = builder.SetStartedAt(u.StartedAt)
	}

	unit, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create billing unit", "customer_id", u.CustomerID, "code", u.Code, "error", err)
		return nil, err
	}
	return unit, nil
}

func (r *unitRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID, includeRetired bool) ([]*ent.BillingUnit, error) {
	q := r.client.BillingUnit.Query().Where(billingunit.CustomerID(customerID))
	if !includeRetired {
		q = q.Where(billingunit.RetiredAtIsNil())
	}
	units, err := q.Order(billingunit.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list billing units", "customer_id", customerID, "error", err)
		return nil, err
	}
	return units, nil
}

func (r *unitRepository) Retire(ctx context.Context, id uuid.UUID, at time.Time) (*ent.BillingUnit, error) {
	unit, err := r.client.BillingUnit.
		UpdateOneID(id).
		SetRetiredAt(at).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to retire billing unit", "unit_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("billing unit retired", "unit_id", id, "retired_at", at)
	return unit, nil
}

func (r *unitRepository) Reactivate(ctx context.Context, id uuid.UUID) (*ent.BillingUnit, error) {
	unit, err := r.client.BillingUnit.
		UpdateOneID(id).
		ClearRetiredAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reactivate billing unit", "unit_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("billing unit reactivated", "unit_id", id)
	return unit, nil
}
