// Package reconcile implements the ingestion workflow: extracted fields
// are resolved against registered customers and billing units, then
// stored as invoices under a per-unit-per-month uniqueness rule. Failed
// or conflicting documents never block the rest of a batch.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/gen/ent/invoice"
	"github.com/lucasveras/faturahub/internal/entity"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/normalize"
	"github.com/lucasveras/faturahub/internal/repository"
	"github.com/lucasveras/faturahub/internal/utils"
)

// Conflict kinds. Conflicts are data, not errors: the document was read
// fine, the stored state just disagrees with it.
const (
	ConflictOwnership = "OWNERSHIP_CONFLICT"
	ConflictDuplicate = "DUPLICATE_INVOICE"
)

// Per-document error codes.
const (
	ErrCodeExtraction     = "EXTRACTION_FAILED"
	ErrCodeTimeout        = "ACQUISITION_TIMEOUT"
	ErrCodeMissingUnit    = "MISSING_UNIT_IDENTIFIER"
	ErrCodeUnknownUnit    = "UNKNOWN_UNIT"
	ErrCodePeriod         = "UNRESOLVED_PERIOD"
	ErrCodeStorage        = "STORAGE_FAILED"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
)

// Extractor is the upstream extraction stage.
type Extractor interface {
	ExtractFile(ctx context.Context, path, sourceName string) extract.Result
}

// Input describes one document to ingest for a customer.
type Input struct {
	CustomerID   uuid.UUID
	DocumentPath string
	DocumentName string
	// DocumentRef is the opaque stored-document handle. Defaults to
	// DocumentName when empty.
	DocumentRef string
	// UnitCode overrides the unit identifier extracted from the document.
	UnitCode string
	// Period overrides the reference period, in MM/YYYY form.
	Period string
	// Fields skips acquisition and extraction entirely when set.
	Fields *extract.FieldSet
	// Force replaces an existing invoice for the same unit and period.
	Force bool
}

// Conflict reports stored state disagreeing with a document. Ownership
// conflicts name the actual owner so the caller can see who holds the
// unit.
type Conflict struct {
	Kind            string `json:"kind"`
	DocumentName    string `json:"documentName"`
	UnitCode        string `json:"unitCode,omitempty"`
	Period          string `json:"period,omitempty"`
	OwnerCustomerID string `json:"ownerCustomerId,omitempty"`
	OwnerName       string `json:"ownerName,omitempty"`
	Message         string `json:"message"`
}

// DocumentError reports a document that could not be processed at all.
type DocumentError struct {
	DocumentName string `json:"documentName"`
	Code         string `json:"code"`
	Message      string `json:"message"`
}

// Outcome is the result for a single document. Exactly one of Invoice,
// Conflict, and Error is set.
type Outcome struct {
	Invoice     *entity.Invoice
	Conflict    *Conflict
	Error       *DocumentError
	Diagnostics []extract.Diagnostic
	TaskID      *uuid.UUID
}

// BatchOutcome partitions a batch into created invoices, conflicts, and
// errors. A batch never fails as a whole.
type BatchOutcome struct {
	Created   []*entity.Invoice `json:"created"`
	Conflicts []Conflict        `json:"conflicts"`
	Errors    []DocumentError   `json:"errors"`
}

type Workflow struct {
	client  *ent.Client
	units   repository.UnitRepository
	tasks   repository.TaskRepository
	engine  Extractor
	logger  *slog.Logger
	timeout time.Duration
}

func NewWorkflow(client *ent.Client, units repository.UnitRepository, tasks repository.TaskRepository, engine Extractor, timeout time.Duration, logger *slog.Logger) *Workflow {
	if logger == nil {
		logger = slog.Default()
	}
	return &Workflow{
		client:  client,
		units:   units,
		tasks:   tasks,
		engine:  engine,
		logger:  logger,
		timeout: timeout,
	}
}

// ProcessBatch ingests each document independently. A corrupt or
// conflicting document affects only its own outcome.
func (w *Workflow) ProcessBatch(ctx context.Context, inputs []Input) *BatchOutcome {
	out := &BatchOutcome{}
	for _, in := range inputs {
		o := w.Process(ctx, in)
		switch {
		case o.Invoice != nil:
			out.Created = append(out.Created, o.Invoice)
		case o.Conflict != nil:
			out.Conflicts = append(out.Conflicts, *o.Conflict)
		case o.Error != nil:
			out.Errors = append(out.Errors, *o.Error)
		}
	}
	w.logger.Info("batch processed",
		"total", len(inputs),
		"created", len(out.Created),
		"conflicts", len(out.Conflicts),
		"errors", len(out.Errors))
	return out
}

// Process runs the full workflow for one document: extraction (unless
// fields were supplied), unit resolution, period resolution, and atomic
// storage. All failure modes are captured in the Outcome.
func (w *Workflow) Process(ctx context.Context, in Input) Outcome {
	docName := in.DocumentName
	if docName == "" {
		docName = in.DocumentPath
	}

	fields, diags, derr := w.resolveFields(ctx, in, docName)
	if derr != nil {
		return Outcome{Error: derr, Diagnostics: diags}
	}

	// Unit identifier: explicit override wins over the extracted value.
	code := in.UnitCode
	if code == "" && fields.UnitIdentifier != nil {
		code = *fields.UnitIdentifier
	}
	if code == "" {
		return Outcome{
			Error: &DocumentError{
				DocumentName: docName,
				Code:         ErrCodeMissingUnit,
				Message:      "no unit identifier in the document and none supplied",
			},
			Diagnostics: diags,
		}
	}

	unit, err := w.units.FindByCode(ctx, code)
	if err != nil {
		if ent.IsNotFound(err) {
			return Outcome{
				Error: &DocumentError{
					DocumentName: docName,
					Code:         ErrCodeUnknownUnit,
					Message:      fmt.Sprintf("no registered unit with code %q", code),
				},
				Diagnostics: diags,
			}
		}
		return Outcome{Error: storageError(docName, err), Diagnostics: diags}
	}
	if unit.CustomerID != in.CustomerID {
		// The code exists but belongs to someone else. Reported as a
		// conflict naming the owner, never silently stored.
		ownerName := ""
		if owner, oerr := w.client.Customer.Get(ctx, unit.CustomerID); oerr == nil {
			ownerName = owner.Name
		}
		return Outcome{
			Conflict: &Conflict{
				Kind:            ConflictOwnership,
				DocumentName:    docName,
				UnitCode:        code,
				OwnerCustomerID: unit.CustomerID.String(),
				OwnerName:       ownerName,
				Message:         fmt.Sprintf("unit is registered to customer %s", unit.CustomerID),
			},
			Diagnostics: diags,
		}
	}

	period, perr := w.resolvePeriod(in, fields)
	if perr != nil {
		return Outcome{
			Error: &DocumentError{
				DocumentName: docName,
				Code:         ErrCodePeriod,
				Message:      perr.Error(),
			},
			Diagnostics: diags,
		}
	}

	task, err := w.tasks.Start(ctx, unit.ID, period.FirstDay())
	if err != nil {
		return Outcome{Error: storageError(docName, err), Diagnostics: diags}
	}
	taskID := task.ID
	if err := w.tasks.MarkInProgress(ctx, taskID); err != nil {
		return Outcome{Error: storageError(docName, err), TaskID: &taskID, Diagnostics: diags}
	}

	inv, conflict, err := w.storeInvoice(ctx, unit.ID, period, in, fields, docName)
	switch {
	case err != nil:
		_ = w.tasks.Fail(ctx, taskID, err.Error())
		return Outcome{Error: storageError(docName, err), TaskID: &taskID, Diagnostics: diags}
	case conflict != nil:
		_ = w.tasks.Fail(ctx, taskID, conflict.Message)
		return Outcome{Conflict: conflict, TaskID: &taskID, Diagnostics: diags}
	}

	if err := w.tasks.Succeed(ctx, taskID); err != nil {
		w.logger.Error("failed to finish import task", "task_id", taskID, "error", err)
	}
	w.logger.Info("invoice stored",
		"unit_id", unit.ID, "unit_code", code, "period", period.String(), "force", in.Force)
	return Outcome{Invoice: inv, TaskID: &taskID, Diagnostics: diags}
}

// resolveFields either accepts the pre-supplied field set or runs
// acquisition and extraction under the per-document timeout.
func (w *Workflow) resolveFields(ctx context.Context, in Input, docName string) (*extract.FieldSet, []extract.Diagnostic, *DocumentError) {
	if in.Fields != nil {
		return in.Fields, nil, nil
	}
	if in.DocumentPath == "" {
		return nil, nil, &DocumentError{
			DocumentName: docName,
			Code:         ErrCodeInvalidRequest,
			Message:      "neither a document path nor a field set was supplied",
		}
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}
	res := w.engine.ExtractFile(ctx, in.DocumentPath, docName)
	if res.Status != constants.ExtractionSuccess {
		code := ErrCodeExtraction
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			code = ErrCodeTimeout
		}
		return nil, res.Diagnostics, &DocumentError{
			DocumentName: docName,
			Code:         code,
			Message:      res.ErrorDetail,
		}
	}
	return &res.Fields, res.Diagnostics, nil
}

// resolvePeriod picks the billing month: explicit override first, then
// the extracted reference period.
func (w *Workflow) resolvePeriod(in Input, fields *extract.FieldSet) (normalize.Period, error) {
	if in.Period != "" {
		p := normalize.PeriodFromNumeric(in.Period)
		if p == nil {
			return normalize.Period{}, fmt.Errorf("supplied period %q is not in MM/YYYY form", in.Period)
		}
		return *p, nil
	}
	if fields.ReferencePeriod != nil {
		return *fields.ReferencePeriod, nil
	}
	return normalize.Period{}, fmt.Errorf("no reference period in the document and none supplied")
}

// storeInvoice performs the duplicate check and the write in one
// transaction. With force set, the existing invoice for the period is
// deleted and the replacement created in the same transaction; a
// partial replace is never visible.
func (w *Workflow) storeInvoice(ctx context.Context, unitID uuid.UUID, period normalize.Period, in Input, fields *extract.FieldSet, docName string) (*entity.Invoice, *Conflict, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, nil, err
	}
	rollback := func(e error) error {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w: rolling back: %v", e, rerr)
		}
		return e
	}

	day := period.FirstDay()
	exists, err := tx.Invoice.Query().
		Where(invoice.UnitID(unitID), invoice.ReferencePeriod(day)).
		Exist(ctx)
	if err != nil {
		return nil, nil, rollback(err)
	}
	if exists && !in.Force {
		if err := tx.Rollback(); err != nil {
			return nil, nil, err
		}
		return nil, &Conflict{
			Kind:         ConflictDuplicate,
			DocumentName: docName,
			Period:       period.String(),
			Message:      fmt.Sprintf("an invoice for %s already exists for this unit", period.String()),
		}, nil
	}
	if exists {
		if _, err := tx.Invoice.Delete().
			Where(invoice.UnitID(unitID), invoice.ReferencePeriod(day)).
			Exec(ctx); err != nil {
			return nil, nil, rollback(err)
		}
	}

	docRef := in.DocumentRef
	if docRef == "" {
		docRef = docName
	}
	now := time.Now()
	created, err := tx.Invoice.Create().
		SetUnitID(unitID).
		SetReferencePeriod(day).
		SetNillableAmount(fields.TotalAmount).
		SetNillableDueDate(fields.DueDate).
		SetDocumentRef(docRef).
		SetRetrievedAt(now).
		Save(ctx)
	if err != nil {
		// A concurrent writer won the unique index race. Same answer as
		// finding the row up front: the period is taken.
		if ent.IsConstraintError(err) {
			if rerr := tx.Rollback(); rerr != nil {
				return nil, nil, rerr
			}
			return nil, &Conflict{
				Kind:         ConflictDuplicate,
				DocumentName: docName,
				Period:       period.String(),
				Message:      fmt.Sprintf("an invoice for %s already exists for this unit", period.String()),
			}, nil
		}
		return nil, nil, rollback(err)
	}
	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}
	return utils.ToInvoice(created), nil, nil
}

func storageError(docName string, err error) *DocumentError {
	return &DocumentError{
		DocumentName: docName,
		Code:         ErrCodeStorage,
		Message:      err.Error(),
	}
}
