package server

import (
	"context"
	"log/slog"

	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/common"
	"github.com/lucasveras/faturahub/internal/export"
)

type ExportServer struct {
	faturaspb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *faturaspb.ExportInvoicesRequest) (*faturaspb.ExportInvoicesResponse, error) {
	customerID, err := parseUUID(req.GetCustomerId(), "customer_id")
	if err != nil {
		return nil, err
	}
	var year *int
	if y := int(req.GetYear()); y > 0 {
		year = &y
	}

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, customerID, year)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "customer_id", req.GetCustomerId(), "err", err)
		return nil, common.InternalError("export failed")
	}
	return &faturaspb.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
