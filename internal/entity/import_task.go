package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucasveras/faturahub/constants"
)

// ImportTask is one ingestion attempt, polled by external callers.
type ImportTask struct {
	ID              uuid.UUID            `json:"id"`
	UnitID          uuid.UUID            `json:"unit_id"`
	ReferencePeriod time.Time            `json:"reference_period"`
	Status          constants.TaskStatus `json:"status"`
	ErrorMessage    *string              `json:"error_message,omitempty"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
