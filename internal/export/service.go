package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/lucasveras/faturahub/internal/normalize"
	"github.com/lucasveras/faturahub/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	unitsRepo    repository.UnitRepository
	logger       *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, units repository.UnitRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoices, unitsRepo: units, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) with the
// customer's invoices, one row per invoice, oldest first. A nil year
// exports everything.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, customerID uuid.UUID, year *int) ([]byte, error) {
	start := time.Now()

	invs, err := s.invoicesRepo.ListForCustomer(ctx, customerID, year)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Faturas"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Reference Period",
		"Unit Code",
		"Amount",
		"Due Date",
		"Document",
		"Retrieved At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	// unit codes resolved once per unit, not per row
	codes := make(map[uuid.UUID]string)
	unitCode := func(id uuid.UUID) string {
		if c, ok := codes[id]; ok {
			return c
		}
		c := ""
		if u, err := s.unitsRepo.GetByID(ctx, id); err == nil {
			c = u.Code
		}
		codes[id] = c
		return c
	}

	row := 2
	for _, inv := range invs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, normalize.PeriodFromDate(inv.ReferencePeriod).String())
		write(2, unitCode(inv.UnitID))
		if inv.Amount != nil {
			write(3, inv.Amount.StringFixed(2))
		} else {
			write(3, "")
		}
		if inv.DueDate != nil {
			write(4, inv.DueDate.Format("2006-01-02"))
		} else {
			write(4, "")
		}
		write(5, inv.DocumentRef)
		if inv.RetrievedAt != nil {
			write(6, inv.RetrievedAt.UTC().Format(time.RFC3339))
		} else {
			write(6, "")
		}

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // period
	_ = f.SetColWidth(sheet, "B", "B", 16) // unit code
	_ = f.SetColWidth(sheet, "C", "C", 14) // amount
	_ = f.SetColWidth(sheet, "D", "D", 14) // due date
	_ = f.SetColWidth(sheet, "E", "E", 48) // document
	_ = f.SetColWidth(sheet, "F", "F", 22) // retrieved at

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"customer_id", customerID.String(),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
