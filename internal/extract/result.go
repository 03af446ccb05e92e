// Package extract implements the field extraction engine: an ordered
// table of independent pattern rules applied to the acquired text of a
// bill. A rule that fails leaves its field null and never disturbs the
// others; partial extraction is the expected common case.
package extract

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/internal/normalize"
)

// FieldSet is the closed set of fields the engine produces. Every field
// is always present; consumers branch on nil-ness, never on key presence.
type FieldSet struct {
	AccountHolderTaxID                *string            `json:"accountHolderTaxId"`
	ConsumptionQuantity               *decimal.Decimal   `json:"consumptionQuantity"`
	TotalAmount                       *decimal.Decimal   `json:"totalAmount"`
	RemainingBalanceQuantity          *decimal.Decimal   `json:"remainingBalanceQuantity"`
	CustomerName                      string             `json:"customerName"`
	CustomerAddress                   string             `json:"customerAddress"`
	UnitIdentifier                    *string            `json:"unitIdentifier"`
	PreviousReadingDate               *time.Time         `json:"previousReadingDate"`
	CurrentReadingDate                *time.Time         `json:"currentReadingDate"`
	ElapsedDays                       *int               `json:"elapsedDays"`
	ReferencePeriod                   *normalize.Period  `json:"referencePeriod"`
	DueDate                           *time.Time         `json:"dueDate"`
	PublicLightingContribution        *decimal.Decimal   `json:"publicLightingContribution"`
	InjectedEnergyQuantity            *decimal.Decimal   `json:"injectedEnergyQuantity"`
	InjectedEnergyUnitPrice           *decimal.Decimal   `json:"injectedEnergyUnitPrice"`
	CompensatedConsumptionQuantity    *decimal.Decimal   `json:"compensatedConsumptionQuantity"`
	CompensatedConsumptionUnitPrice   *decimal.Decimal   `json:"compensatedConsumptionUnitPrice"`
	WireUsageCharge                   *decimal.Decimal   `json:"wireUsageCharge"`
	NonCompensatedConsumptionQuantity *decimal.Decimal   `json:"nonCompensatedConsumptionQuantity"`
	NonCompensatedConsumptionUnitPrice *decimal.Decimal  `json:"nonCompensatedConsumptionUnitPrice"`
	FlagSurchargeCharge               *decimal.Decimal   `json:"flagSurchargeCharge"`
	GenerationCycle                   *normalize.Period  `json:"generationCycle"`
	GeneratingUnitIdentifier          *string            `json:"generatingUnitIdentifier"`
	LastCycleGeneration               *decimal.Decimal   `json:"lastCycleGeneration"`
	DistributorName                   string             `json:"distributorName"`
}

// Diagnostic is a structured event recorded while extracting, in place of
// interleaved console output.
type Diagnostic struct {
	Level   string `json:"level"` // "warn" | "info"
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the immutable output of acquisition + extraction for one
// document.
type Result struct {
	Status      constants.ExtractionStatus `json:"status"`
	SourceName  string                     `json:"sourceName"`
	ErrorDetail string                     `json:"errorDetail,omitempty"`
	Fields      FieldSet                   `json:"fields"`
	Diagnostics []Diagnostic               `json:"diagnostics,omitempty"`
}

// applyDefaults fills the "zero means confirmed absent" and sentinel
// fields after the rule pass. Solar line items and their charges default
// to zero because downstream treats null as "don't know" and zero as
// "confirmed absent"; textual identity fields get an explicit sentinel
// for human review.
func (f *FieldSet) applyDefaults() {
	if f.RemainingBalanceQuantity == nil {
		f.RemainingBalanceQuantity = normalize.Zero()
	}
	if f.InjectedEnergyQuantity == nil {
		f.InjectedEnergyQuantity = normalize.Zero()
	}
	if f.CompensatedConsumptionQuantity == nil {
		f.CompensatedConsumptionQuantity = normalize.Zero()
	}
	if f.PublicLightingContribution == nil {
		f.PublicLightingContribution = normalize.Zero()
	}
	if f.NonCompensatedConsumptionQuantity == nil {
		f.NonCompensatedConsumptionQuantity = normalize.Zero()
	}
	if f.NonCompensatedConsumptionUnitPrice == nil {
		f.NonCompensatedConsumptionUnitPrice = normalize.Zero()
	}
	if f.FlagSurchargeCharge == nil {
		f.FlagSurchargeCharge = normalize.Zero()
	}
	if f.CustomerName == "" {
		f.CustomerName = constants.UnidentifiedSentinel
	}
	if f.CustomerAddress == "" {
		f.CustomerAddress = constants.UnidentifiedSentinel
	}
	if f.DistributorName == "" {
		f.DistributorName = constants.DefaultDistributor
	}
}
