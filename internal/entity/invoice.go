package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Invoice is one stored bill, identified by (unit, reference period).
type Invoice struct {
	ID              uuid.UUID        `json:"id"`
	UnitID          uuid.UUID        `json:"unit_id"`
	ReferencePeriod time.Time        `json:"reference_period"` // first day of the billed month
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	DueDate         *time.Time       `json:"due_date,omitempty"`
	DocumentRef     string           `json:"document_ref"`
	RetrievedAt     *time.Time       `json:"retrieved_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
