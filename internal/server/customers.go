package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/repository"
	"github.com/lucasveras/faturahub/internal/utils"
)

type CustomersServer struct {
	faturaspb.UnimplementedCustomersServiceServer
	customers repository.CustomerRepository
	units     repository.UnitRepository
	logger    *slog.Logger
}

func NewCustomersServer(customers repository.CustomerRepository, units repository.UnitRepository, logger *slog.Logger) *CustomersServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &CustomersServer{customers: customers, units: units, logger: logger}
}

// CreateCustomer registers a new account holder.
func (s *CustomersServer) CreateCustomer(ctx context.Context, req *faturaspb.CreateCustomerRequest) (*faturaspb.CreateCustomerResponse, error) {
	v := common.NewValidator().
		Field("name", req.GetName(), common.Required).
		Field("tax_id", req.GetTaxId(), common.Required, common.TaxID).
		Field("address", req.GetAddress(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	params := &repository.Customer{
		Name:    strings.TrimSpace(req.GetName()),
		TaxID:   req.GetTaxId(),
		Address: strings.TrimSpace(req.GetAddress()),
	}
	if h := req.GetHolderTaxId(); h != "" {
		if verr := common.TaxID("holder_tax_id", h); verr != nil {
			return nil, common.InvalidArgumentError(verr.Error())
		}
		params.HolderTaxID = &h
	}
	if b := req.GetBirthDate(); b != "" {
		t, err := utils.ParseYMD(b)
		if err != nil {
			return nil, common.InvalidArgumentError("birth_date must be YYYY-MM-DD")
		}
		params.BirthDate = &t
	}
	if p := req.GetPhone(); p != "" {
		params.Phone = &p
	}
	if e := req.GetEmail(); e != "" {
		params.Email = &e
	}

	created, err := s.customers.CreateCustomer(ctx, params)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, common.AlreadyExistsError("a customer with this tax_id already exists")
		}
		return nil, common.InternalError("create customer failed")
	}
	return &faturaspb.CreateCustomerResponse{Customer: utils.ToPBCustomer(utils.ToCustomer(created))}, nil
}

// ListCustomers lists every registered customer.
func (s *CustomersServer) ListCustomers(ctx context.Context, _ *faturaspb.ListCustomersRequest) (*faturaspb.ListCustomersResponse, error) {
	clist, err := s.customers.ListCustomers(ctx)
	if err != nil {
		return nil, common.InternalError("list customers failed")
	}
	out := make([]*faturaspb.Customer, 0, len(clist))
	for _, c := range clist {
		out = append(out, utils.ToPBCustomer(utils.ToCustomer(c)))
	}
	return &faturaspb.ListCustomersResponse{Customers: out}, nil
}

// RegisterUnit attaches a consumption point to a customer.
func (s *CustomersServer) RegisterUnit(ctx context.Context, req *faturaspb.RegisterUnitRequest) (*faturaspb.RegisterUnitResponse, error) {
	customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
	if err != nil {
		return nil, err
	}
	v := common.NewValidator().
		Field("code", req.GetCode(), common.Required).
		Field("address", req.GetAddress(), common.Required)
	if err := common.ValidateAndReturnError(v); err != nil {
		return nil, err
	}

	if exists, _ := s.customers.Exists(ctx, customerID); !exists {
		return nil, common.NotFoundError("customer not found")
	}

	kind := req.GetKind()
	if kind == "" {
		kind = constants.DefaultUnitKind
	}

	params := &repository.BillingUnit{
		CustomerID: customerID,
		Code:       strings.TrimSpace(req.GetCode()),
		Address:    strings.TrimSpace(req.GetAddress()),
		Kind:       kind,
	}
	if sa := req.GetStartedAt(); sa != "" {
		t, err := utils.ParseYMD(sa)
		if err != nil {
			return nil, common.InvalidArgumentError("started_at must be YYYY-MM-DD")
		}
		params.StartedAt = t
	}

	unit, err := s.units.CreateUnit(ctx, params)
	if err != nil {
		if err == repository.ErrUnitCodeTaken {
			return nil, common.AlreadyExistsError(err.Error())
		}
		s.logger.Error("register unit failed", "customer_id", customerID, "code", params.Code, "error", err)
		return nil, common.InternalError("register unit failed")
	}
	return &faturaspb.RegisterUnitResponse{Unit: utils.ToPBBillingUnit(utils.ToBillingUnit(unit))}, nil
}

// ListUnits lists a customer's units, active ones by default.
func (s *CustomersServer) ListUnits(ctx context.Context, req *faturaspb.ListUnitsRequest) (*faturaspb.ListUnitsResponse, error) {
	customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
	if err != nil {
		return nil, err
	}
	units, err := s.units.ListForCustomer(ctx, customerID, req.GetIncludeRetired())
	if err != nil {
		return nil, common.InternalError("list units failed")
	}
	out := make([]*faturaspb.BillingUnit, 0, len(units))
	for _, u := range units {
		out = append(out, utils.ToPBBillingUnit(utils.ToBillingUnit(u)))
	}
	return &faturaspb.ListUnitsResponse{Units: out}, nil
}

// SetUnitStatus retires or reactivates a unit. Activity is derived from
// the retirement timestamp alone.
func (s *CustomersServer) SetUnitStatus(ctx context.Context, req *faturaspb.SetUnitStatusRequest) (*faturaspb.SetUnitStatusResponse, error) {
	unitID, err := parseUUID(req.GetUnitId(), "unit_id")
	if err != nil {
		return nil, err
	}
	cur, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.NotFoundError("unit not found")
		}
		return nil, common.InternalError("get unit failed")
	}

	var updated *ent.BillingUnit
	if req.GetActive() {
		// reactivation must not leave two active units claiming the code
		if other, err := s.units.FindByCode(ctx, cur.Code); err == nil && other.ID != cur.ID {
			return nil, common.FailedPreconditionError("another active unit already claims this code")
		}
		updated, err = s.units.Reactivate(ctx, unitID)
	} else {
		updated, err = s.units.Retire(ctx, unitID, time.Now().UTC())
	}
	if err != nil {
		return nil, common.InternalError("update unit status failed")
	}
	return &faturaspb.SetUnitStatusResponse{Unit: utils.ToPBBillingUnit(utils.ToBillingUnit(updated))}, nil
}

func parseUUID(s, field string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, common.InvalidArgumentErrorf("%s is required", field)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}
