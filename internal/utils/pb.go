package utils

import (
	"time"

	faturaspb "github.com/lucasveras/faturahub/gen/proto/faturas/v1"
	"github.com/lucasveras/faturahub/internal/entity"
	"github.com/lucasveras/faturahub/internal/normalize"
)

func ymdOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func rfc3339OrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToPBCustomer(c *entity.Customer) *faturaspb.Customer {
	return &faturaspb.Customer{
		Id:          c.ID.String(),
		Name:        c.Name,
		TaxId:       c.TaxID,
		HolderTaxId: strOrEmpty(c.HolderTaxID),
		BirthDate:   ymdOrEmpty(c.BirthDate),
		Address:     c.Address,
		Phone:       strOrEmpty(c.Phone),
		Email:       strOrEmpty(c.Email),
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBBillingUnit(u *entity.BillingUnit) *faturaspb.BillingUnit {
	return &faturaspb.BillingUnit{
		Id:         u.ID.String(),
		CustomerId: u.CustomerID.String(),
		Code:       u.Code,
		Address:    u.Address,
		Kind:       u.Kind,
		StartedAt:  u.StartedAt.Format("2006-01-02"),
		RetiredAt:  ymdOrEmpty(u.RetiredAt),
		Active:     u.Active(),
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(i *entity.Invoice) *faturaspb.Invoice {
	amount := ""
	if i.Amount != nil {
		amount = i.Amount.StringFixed(2)
	}
	return &faturaspb.Invoice{
		Id:              i.ID.String(),
		UnitId:          i.UnitID.String(),
		ReferencePeriod: normalize.PeriodFromDate(i.ReferencePeriod).String(),
		Amount:          amount,
		DueDate:         ymdOrEmpty(i.DueDate),
		DocumentRef:     i.DocumentRef,
		RetrievedAt:     rfc3339OrEmpty(i.RetrievedAt),
		CreatedAt:       i.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       i.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBImportTask(t *entity.ImportTask) *faturaspb.ImportTask {
	return &faturaspb.ImportTask{
		Id:              t.ID.String(),
		UnitId:          t.UnitID.String(),
		ReferencePeriod: normalize.PeriodFromDate(t.ReferencePeriod).String(),
		Status:          string(t.Status),
		ErrorMessage:    strOrEmpty(t.ErrorMessage),
		CompletedAt:     rfc3339OrEmpty(t.CompletedAt),
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
