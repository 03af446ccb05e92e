package entity

import (
	"time"

	"github.com/google/uuid"
)

// BillingUnit represents a consumption point for data transfer between
// layers. Exactly one customer owns a unit at any instant.
type BillingUnit struct {
	ID         uuid.UUID  `json:"id"`
	CustomerID uuid.UUID  `json:"customer_id"`
	Code       string     `json:"code"`
	Address    string     `json:"address"`
	Kind       string     `json:"kind"`
	StartedAt  time.Time  `json:"started_at"`
	RetiredAt  *time.Time `json:"retired_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Active is the canonical activity rule: a unit with no retirement
// timestamp is active. All callers go through this method.
func (u *BillingUnit) Active() bool {
	return u.RetiredAt == nil
}
