package utils

import (
	"time"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/gen/ent"
	"github.com/lucasveras/faturahub/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:          e.ID,
		Name:        e.Name,
		TaxID:       e.TaxID,
		HolderTaxID: e.HolderTaxID,
		BirthDate:   e.BirthDate,
		Address:     e.Address,
		Phone:       e.Phone,
		Email:       e.Email,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToBillingUnit(e *ent.BillingUnit) *entity.BillingUnit {
	return &entity.BillingUnit{
		ID:         e.ID,
		CustomerID: e.CustomerID,
		Code:       e.Code,
		Address:    e.Address,
		Kind:       e.Kind,
		StartedAt:  e.StartedAt,
		RetiredAt:  e.RetiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:              e.ID,
		UnitID:          e.UnitID,
		ReferencePeriod: e.ReferencePeriod,
		Amount:          e.Amount,
		DueDate:         e.DueDate,
		DocumentRef:     e.DocumentRef,
		RetrievedAt:     e.RetrievedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func ToImportTask(e *ent.ImportTask) *entity.ImportTask {
	return &entity.ImportTask{
		ID:              e.ID,
		UnitID:          e.UnitID,
		ReferencePeriod: e.ReferencePeriod,
		Status:          constants.TaskStatus(e.Status),
		ErrorMessage:    e.ErrorMessage,
		CompletedAt:     e.CompletedAt,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}
