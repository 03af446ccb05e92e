package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/customer"
)

// Customer wraps parameters for creating a customer.
type Customer struct {
	Name        string
	TaxID       string
	HolderTaxID *string
	BirthDate   *time.Time
	Address     string
	Phone       *string
	Email       *string
}

type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Customer, error)
	CreateCustomer(ctx context.Context, c *Customer) (*ent.Customer, error)
	ListCustomers(ctx context.Context) ([]*ent.Customer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Customer, error) {
	return r.client.Customer.
		Query().
		Where(customer.ID(id)).
		Only(ctx)
}

func (r *customerRepository) CreateCustomer(ctx context.Context, c *Customer) (*ent.Customer, error) {
	created, err := r.client.Customer.Create().
		SetName(c.Name).
		SetTaxID(c.TaxID).
		SetNillableHolderTaxID(c.HolderTaxID).
		SetNillableBirthDate(c.BirthDate).
		SetAddress(c.Address).
		SetNillablePhone(c.Phone).
		SetNillableEmail(c.Email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "name", c.Name, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *customerRepository) ListCustomers(ctx context.Context) ([]*ent.Customer, error) {
	clist, err := r.client.Customer.Query().Order(customer.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list customers", "error", err)
		return nil, err
	}
	return clist, nil
}

func (r *customerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Customer.Query().Where(customer.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check customer existence", "customer_id", id, "error", err)
		return false, err
	}
	return exists, nil
}
