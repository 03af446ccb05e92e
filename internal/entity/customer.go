package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents an account holder for data transfer between layers.
type Customer struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	TaxID       string     `json:"tax_id"`
	HolderTaxID *string    `json:"holder_tax_id,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Address     string     `json:"address"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
