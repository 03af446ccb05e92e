package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/lucasveras/faturahub/gen/ent"
	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/normalize"
	"github.com/lucasveras/faturahub/internal/repository"
	"github.com/lucasveras/faturahub/internal/utils"
)

const defaultTaskListLimit = 20

type InvoicesServer struct {
	faturaspb.UnimplementedInvoicesServiceServer
	invoices repository.InvoiceRepository
	units    repository.UnitRepository
	tasks    repository.TaskRepository
	logger   *slog.Logger
}

func NewInvoicesServer(invoices repository.InvoiceRepository, units repository.UnitRepository, tasks repository.TaskRepository, logger *slog.Logger) *InvoicesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesServer{invoices: invoices, units: units, tasks: tasks, logger: logger}
}

// ListInvoices returns a customer's invoices ordered by period, with
// optional unit and year filters.
func (s *InvoicesServer) ListInvoices(ctx context.Context, req *faturaspb.ListInvoicesRequest) (*faturaspb.ListInvoicesResponse, error) {
	customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
	if err != nil {
		return nil, err
	}

	var year *int
	if y := int(req.GetYear()); y > 0 {
		year = &y
	}

	var invs []*ent.Invoice
	if uid := req.GetUnitId(); uid != "" {
		unitID, err := parseUUID(uid, "unit_id")
		if err != nil {
			return nil, err
		}
		unit, err := s.units.GetByID(ctx, unitID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, common.NotFoundError("unit not found")
			}
			return nil, common.InternalError("get unit failed")
		}
		if unit.CustomerID != customerID {
			return nil, common.NotFoundError("unit not found")
		}
		invs, err = s.invoices.ListForUnit(ctx, unitID, year)
		if err != nil {
			return nil, common.InternalError("list invoices failed")
		}
	} else {
		invs, err = s.invoices.ListForCustomer(ctx, customerID, year)
		if err != nil {
			return nil, common.InternalError("list invoices failed")
		}
	}

	out := make([]*faturaspb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, utils.ToPBInvoice(utils.ToInvoice(inv)))
	}
	return &faturaspb.ListInvoicesResponse{Invoices: out}, nil
}

// UpdateInvoice edits a stored invoice. Moving it to a period that
// already holds an invoice for the same unit is refused.
func (s *InvoicesServer) UpdateInvoice(ctx context.Context, req *faturaspb.UpdateInvoiceRequest) (*faturaspb.UpdateInvoiceResponse, error) {
	invoiceID, err := parseUUID(req.GetInvoiceId(), "invoice_id")
	if err != nil {
		return nil, err
	}

	upd := &repository.InvoiceUpdate{}
	if p := req.GetReferencePeriod(); p != "" {
		period := normalize.PeriodFromNumeric(p)
		if period == nil {
			return nil, common.InvalidArgumentError("reference_period must be MM/YYYY")
		}
		day := period.FirstDay()
		upd.ReferencePeriod = &day
	}
	if a := req.GetAmount(); a != "" {
		d, err := decimal.NewFromString(a)
		if err != nil {
			return nil, common.InvalidArgumentError("amount must be a decimal string")
		}
		upd.Amount = &d
	}
	if dd := req.GetDueDate(); dd != "" {
		t, err := utils.ParseYMD(dd)
		if err != nil {
			return nil, common.InvalidArgumentError("due_date must be YYYY-MM-DD")
		}
		upd.DueDate = &t
	}
	if ref := req.GetDocumentRef(); ref != "" {
		upd.DocumentRef = &ref
	}

	saved, err := s.invoices.Update(ctx, invoiceID, upd)
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return nil, common.NotFoundError("invoice not found")
		case errors.Is(err, repository.ErrDuplicatePeriod):
			return nil, common.AlreadyExistsError(err.Error())
		case ent.IsConstraintError(err):
			return nil, common.AlreadyExistsError(repository.ErrDuplicatePeriod.Error())
		}
		return nil, common.InternalError("update invoice failed")
	}
	return &faturaspb.UpdateInvoiceResponse{Invoice: utils.ToPBInvoice(utils.ToInvoice(saved))}, nil
}

// ListImportTasks returns recent ingestion attempts, newest first.
func (s *InvoicesServer) ListImportTasks(ctx context.Context, req *faturaspb.ListImportTasksRequest) (*faturaspb.ListImportTasksResponse, error) {
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = defaultTaskListLimit
	}

	var tasks []*ent.ImportTask
	if uid := req.GetUnitId(); uid != "" {
		unitID, err := parseUUID(uid, "unit_id")
		if err != nil {
			return nil, err
		}
		tasks, err = s.tasks.ListForUnit(ctx, unitID, limit)
		if err != nil {
			return nil, common.InternalError("list import tasks failed")
		}
	} else {
		customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
		if err != nil {
			return nil, err
		}
		tasks, err = s.tasks.ListForCustomer(ctx, customerID, limit)
		if err != nil {
			return nil, common.InternalError("list import tasks failed")
		}
	}

	out := make([]*faturaspb.ImportTask, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, utils.ToPBImportTask(utils.ToImportTask(t)))
	}
	return &faturaspb.ListImportTasksResponse{Tasks: out}, nil
}
