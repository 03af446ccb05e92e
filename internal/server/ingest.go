package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lucasveras/faturahub/constants"
	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/extract"
	"github.com/lucasveras/faturahub/internal/reconcile"
	"github.com/lucasveras/faturahub/internal/repository"
	"github.com/lucasveras/faturahub/internal/utils"
)

type IngestionServer struct {
	faturaspb.UnimplementedIngestionServiceServer
	engine    *extract.Engine
	workflow  *reconcile.Workflow
	customers repository.CustomerRepository
	logger    *slog.Logger
}

func NewIngestionServer(engine *extract.Engine, workflow *reconcile.Workflow, customers repository.CustomerRepository, logger *slog.Logger) *IngestionServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &IngestionServer{
		engine:    engine,
		workflow:  workflow,
		customers: customers,
		logger:    logger,
	}
}

// PreviewExtraction runs acquisition and extraction on one document and
// returns the untouched result for human review. Nothing is stored.
func (s *IngestionServer) PreviewExtraction(ctx context.Context, req *faturaspb.PreviewExtractionRequest) (*faturaspb.PreviewExtractionResponse, error) {
	path := strings.TrimSpace(req.GetPath())
	if path == "" {
		return nil, common.InvalidArgumentError("path is required")
	}
	if !constants.IsPDFExt(filepath.Ext(path)) {
		return nil, common.InvalidArgumentError("only PDF documents are accepted")
	}
	name := req.GetName()
	if name == "" {
		name = path
	}

	res := s.engine.ExtractFile(ctx, path, name)

	fieldsJSON := ""
	if res.Status == constants.ExtractionSuccess {
		b, err := json.Marshal(res.Fields)
		if err != nil {
			return nil, common.InternalError("encode fields failed")
		}
		fieldsJSON = string(b)
	}

	out := &faturaspb.PreviewExtractionResponse{
		Status:      string(res.Status),
		ErrorDetail: res.ErrorDetail,
		FieldsJson:  fieldsJSON,
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, &faturaspb.Diagnostic{
			Level:   d.Level,
			Field:   d.Field,
			Message: d.Message,
		})
	}
	return out, nil
}

// UploadInvoices ingests a batch of documents for one customer. The
// response partitions the batch; a failing document never fails the RPC.
func (s *IngestionServer) UploadInvoices(ctx context.Context, req *faturaspb.UploadInvoicesRequest) (*faturaspb.UploadInvoicesResponse, error) {
	customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
	if err != nil {
		return nil, err
	}
	if len(req.GetDocuments()) == 0 {
		return nil, common.InvalidArgumentError("at least one document is required")
	}
	if exists, _ := s.customers.Exists(ctx, customerID); !exists {
		return nil, common.NotFoundError("customer not found")
	}

	resp := &faturaspb.UploadInvoicesResponse{}
	inputs := make([]reconcile.Input, 0, len(req.GetDocuments()))
	for _, doc := range req.GetDocuments() {
		in := reconcile.Input{
			CustomerID:   customerID,
			DocumentPath: doc.GetPath(),
			DocumentName: doc.GetName(),
			DocumentRef:  doc.GetDocumentRef(),
			UnitCode:     strings.TrimSpace(doc.GetUnitCode()),
			Period:       strings.TrimSpace(doc.GetPeriod()),
			Force:        doc.GetForce(),
		}
		if in.DocumentPath != "" && !constants.IsPDFExt(filepath.Ext(in.DocumentPath)) {
			resp.Errors = append(resp.Errors, &faturaspb.DocumentError{
				DocumentName: in.DocumentName,
				Code:         reconcile.ErrCodeInvalidRequest,
				Message:      "only PDF documents are accepted",
			})
			continue
		}
		if in.Period != "" {
			if verr := common.ReferencePeriod("period", in.Period); verr != nil {
				resp.Errors = append(resp.Errors, &faturaspb.DocumentError{
					DocumentName: in.DocumentName,
					Code:         reconcile.ErrCodeInvalidRequest,
					Message:      verr.Error(),
				})
				continue
			}
		}
		if raw := doc.GetFieldsJson(); raw != "" {
			fields, err := extract.ValidatePreSupplied([]byte(raw))
			if err != nil {
				// a malformed field map fails only its own document
				resp.Errors = append(resp.Errors, &faturaspb.DocumentError{
					DocumentName: in.DocumentName,
					Code:         reconcile.ErrCodeInvalidRequest,
					Message:      err.Error(),
				})
				continue
			}
			in.Fields = fields
		}
		inputs = append(inputs, in)
	}

	out := s.workflow.ProcessBatch(ctx, inputs)
	for _, inv := range out.Created {
		resp.Created = append(resp.Created, utils.ToPBInvoice(inv))
	}
	for _, c := range out.Conflicts {
		resp.Conflicts = append(resp.Conflicts, &faturaspb.Conflict{
			Kind:            c.Kind,
			DocumentName:    c.DocumentName,
			UnitCode:        c.UnitCode,
			Period:          c.Period,
			OwnerCustomerId: c.OwnerCustomerID,
			OwnerName:       c.OwnerName,
			Message:         c.Message,
		})
	}
	for _, e := range out.Errors {
		resp.Errors = append(resp.Errors, &faturaspb.DocumentError{
			DocumentName: e.DocumentName,
			Code:         e.Code,
			Message:      e.Message,
		})
	}
	return resp, nil
}
