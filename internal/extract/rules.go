package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasveras/faturahub/internal/normalize"
)

// rule binds one semantic field to the pattern that locates it and the
// normalizer that canonicalizes the captured substrings. Rules are
// evaluated independently and in order; a rule that matches nothing, or
// whose capture fails normalization, leaves its field untouched.
type rule struct {
	field string
	re    *regexp.Regexp
	apply func(m []string, f *FieldSet) bool // false = capture failed normalization
}

// The patterns mirror the layout of Equatorial Energia bills.
var rules = []rule{
	{
		field: "accountHolderTaxId",
		re:    regexp.MustCompile(`CNPJ/CPF: (\d{3}\.\d{3}\.\d{3}-\d{2})`),
		apply: func(m []string, f *FieldSet) bool {
			f.AccountHolderTaxID = &m[1]
			return true
		},
	},
	{
		field: "consumptionQuantity",
		re:    regexp.MustCompile(`CONSUMO.*?(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.ConsumptionQuantity = normalize.Quantity(m[1])
			return f.ConsumptionQuantity != nil
		},
	},
	{
		field: "totalAmount",
		re:    regexp.MustCompile(`R\$\*+([\d.,]+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.TotalAmount = normalize.Currency(m[1])
			return f.TotalAmount != nil
		},
	},
	{
		field: "remainingBalanceQuantity",
		re:    regexp.MustCompile(`SALDO KWH:\s*([\d.,]+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.RemainingBalanceQuantity = normalize.Quantity(m[1])
			return f.RemainingBalanceQuantity != nil
		},
	},
	{
		field: "customerName",
		re:    regexp.MustCompile(`Tensão Nominal Disp: .*?\n(.*?)\n`),
		apply: func(m []string, f *FieldSet) bool {
			f.CustomerName = strings.TrimSpace(m[1])
			return f.CustomerName != ""
		},
	},
	{
		field: "customerAddress",
		re:    regexp.MustCompile(`(?s)(RUA .*?\n.*?CEP: .*?BRASIL)`),
		apply: func(m []string, f *FieldSet) bool {
			f.CustomerAddress = strings.ReplaceAll(m[1], "\n", " ")
			return true
		},
	},
	{
		field: "unitIdentifier",
		re:    regexp.MustCompile(`Consulte pela Chave de Acesso em:\s*(\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.UnitIdentifier = &m[1]
			return true
		},
	},
	{
		// previous reading, current reading, elapsed days on one line
		field: "readings",
		re:    regexp.MustCompile(`(\d{2}/\d{2}/\d{4})\s+(\d{2}/\d{2}/\d{4})\s+(\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			prev, cur := normalize.Date(m[1]), normalize.Date(m[2])
			days, err := strconv.Atoi(m[3])
			if prev == nil || cur == nil || err != nil {
				return false
			}
			f.PreviousReadingDate = prev
			f.CurrentReadingDate = cur
			f.ElapsedDays = &days
			return true
		},
	},
	{
		// reference period and due date follow the CFOP line
		field: "referencePeriod",
		re:    regexp.MustCompile(`CFOP \d{4}:.*?\n(\w{3}/\d{4})\s+(\d{2}/\d{2}/\d{4})`),
		apply: func(m []string, f *FieldSet) bool {
			period := normalize.PeriodFromLabel(m[1])
			due := normalize.Date(m[2])
			if period == nil {
				return false
			}
			f.ReferencePeriod = period
			f.DueDate = due
			return true
		},
	},
	{
		field: "publicLightingContribution",
		re:    regexp.MustCompile(`CONTRIB\.\s+ILUM\.\s+PÚBLICA\s+-\s+MUNICIPAL\s+(\d{1,3}(?:\.\d{3})*,\d{2})`),
		apply: func(m []string, f *FieldSet) bool {
			f.PublicLightingContribution = normalize.Currency(m[1])
			return f.PublicLightingContribution != nil
		},
	},
	{
		field: "injectedEnergy",
		re:    regexp.MustCompile(`INJEÇÃO SCEE.*?\s(\d+,\d+).*?\s(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			qty, price := normalize.Quantity(m[1]), normalize.Currency(m[2])
			if qty == nil || price == nil {
				return false
			}
			f.InjectedEnergyQuantity = qty
			f.InjectedEnergyUnitPrice = price
			return true
		},
	},
	{
		field: "compensatedConsumption",
		re:    regexp.MustCompile(`CONSUMO SCEE.*?\s(\d+,\d+).*?\s(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			qty, price := normalize.Quantity(m[1]), normalize.Currency(m[2])
			if qty == nil || price == nil {
				return false
			}
			f.CompensatedConsumptionQuantity = qty
			f.CompensatedConsumptionUnitPrice = price
			return true
		},
	},
	{
		field: "wireUsageCharge",
		re:    regexp.MustCompile(`PARC INJET S/DESC.*?\d+,\d+.*?\d+,\d+.*?\s(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.WireUsageCharge = normalize.Currency(m[1])
			return f.WireUsageCharge != nil
		},
	},
	{
		field: "nonCompensatedConsumptionQuantity",
		re:    regexp.MustCompile(`CONSUMO NÃO COMPENSADO.*?(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.NonCompensatedConsumptionQuantity = normalize.Quantity(m[1])
			return f.NonCompensatedConsumptionQuantity != nil
		},
	},
	{
		field: "nonCompensatedConsumptionUnitPrice",
		re:    regexp.MustCompile(`CONSUMO NÃO COMPENSADO.*?\d+,\d+.*?\s(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.NonCompensatedConsumptionUnitPrice = normalize.Currency(m[1])
			return f.NonCompensatedConsumptionUnitPrice != nil
		},
	},
	{
		field: "flagSurchargeCharge",
		re:    regexp.MustCompile(`ADC BANDEIRA.*?\d+,\d+.*?\s(\d+,\d+)`),
		apply: func(m []string, f *FieldSet) bool {
			f.FlagSurchargeCharge = normalize.Currency(m[1])
			return f.FlagSurchargeCharge != nil
		},
	},
	{
		field: "generationCycle",
		re:    regexp.MustCompile(`GERAÇÃO CICLO \((\d{2}/\d{4})\) KWH: UC (\d+) : ([\d.,]+)`),
		apply: func(m []string, f *FieldSet) bool {
			cycle := normalize.PeriodFromNumeric(m[1])
			gen := normalize.Quantity(m[3])
			if cycle == nil || gen == nil {
				return false
			}
			f.GenerationCycle = cycle
			f.GeneratingUnitIdentifier = &m[2]
			f.LastCycleGeneration = gen
			return true
		},
	},
}
