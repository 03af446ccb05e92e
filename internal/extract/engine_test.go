package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasveras/faturahub/constants"
	"github.com/lucasveras/faturahub/internal/normalize"
	"github.com/lucasveras/faturahub/internal/textacq"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sampleBill mirrors the layout of an Equatorial Energia residential
// bill with solar compensation line items.
const sampleBill = `EQUATORIAL MARANHÃO DISTRIBUIDORA DE ENERGIA S.A.
CNPJ/CPF: 123.456.789-01
Classificação: Residencial
CONSUMO KWH 250,00
TOTAL A PAGAR R$***245,17
SALDO KWH: 1.234,56
Tensão Nominal Disp: 220 V
MARIA DA SILVA
RUA DAS FLORES, 100
CENTRO CEP: 65000-000 SÃO LUÍS - MA BRASIL
Consulte pela Chave de Acesso em: 100234567
Leitura Anterior Leitura Atual Dias
05/04/2025   06/05/2025   31
CFOP 5258: Venda de energia elétrica
MAI/2025   20/05/2025
CONTRIB. ILUM. PÚBLICA - MUNICIPAL 35,90
INJEÇÃO SCEE GD II kWh 120,00 0,95
CONSUMO SCEE kWh 110,00 0,89
PARC INJET S/DESC kWh 120,00 0,95 45,60
CONSUMO NÃO COMPENSADO kWh 140,00 0,99
ADC BANDEIRA AMARELA 10,00 3,50
GERAÇÃO CICLO (04/2025) KWH: UC 100998877 : 130,00
`

func requireDecimal(t *testing.T, want string, got *decimal.Decimal) {
	t.Helper()
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestExtractTextFullBill(t *testing.T) {
	e := NewEngine(nil, testLogger())
	res := e.ExtractText(sampleBill, "fatura-mai-2025.pdf")

	require.Equal(t, constants.ExtractionSuccess, res.Status)
	f := res.Fields

	require.NotNil(t, f.AccountHolderTaxID)
	assert.Equal(t, "123.456.789-01", *f.AccountHolderTaxID)
	requireDecimal(t, "250.00", f.ConsumptionQuantity)
	requireDecimal(t, "245.17", f.TotalAmount)
	requireDecimal(t, "1234.56", f.RemainingBalanceQuantity)
	assert.Equal(t, "MARIA DA SILVA", f.CustomerName)
	assert.Equal(t, "RUA DAS FLORES, 100 CENTRO CEP: 65000-000 SÃO LUÍS - MA BRASIL", f.CustomerAddress)
	require.NotNil(t, f.UnitIdentifier)
	assert.Equal(t, "100234567", *f.UnitIdentifier)

	require.NotNil(t, f.PreviousReadingDate)
	assert.Equal(t, time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC), *f.PreviousReadingDate)
	require.NotNil(t, f.CurrentReadingDate)
	assert.Equal(t, time.Date(2025, time.May, 6, 0, 0, 0, 0, time.UTC), *f.CurrentReadingDate)
	require.NotNil(t, f.ElapsedDays)
	assert.Equal(t, 31, *f.ElapsedDays)

	require.NotNil(t, f.ReferencePeriod)
	assert.Equal(t, normalize.Period{Year: 2025, Month: time.May}, *f.ReferencePeriod)
	require.NotNil(t, f.DueDate)
	assert.Equal(t, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), *f.DueDate)

	requireDecimal(t, "35.90", f.PublicLightingContribution)
	requireDecimal(t, "120.00", f.InjectedEnergyQuantity)
	requireDecimal(t, "0.95", f.InjectedEnergyUnitPrice)
	requireDecimal(t, "110.00", f.CompensatedConsumptionQuantity)
	requireDecimal(t, "0.89", f.CompensatedConsumptionUnitPrice)
	requireDecimal(t, "45.60", f.WireUsageCharge)
	requireDecimal(t, "140.00", f.NonCompensatedConsumptionQuantity)
	requireDecimal(t, "0.99", f.NonCompensatedConsumptionUnitPrice)
	requireDecimal(t, "3.50", f.FlagSurchargeCharge)

	require.NotNil(t, f.GenerationCycle)
	assert.Equal(t, normalize.Period{Year: 2025, Month: time.April}, *f.GenerationCycle)
	require.NotNil(t, f.GeneratingUnitIdentifier)
	assert.Equal(t, "100998877", *f.GeneratingUnitIdentifier)
	requireDecimal(t, "130.00", f.LastCycleGeneration)

	assert.Equal(t, constants.DefaultDistributor, f.DistributorName)
}

func TestExtractTextIdempotent(t *testing.T) {
	e := NewEngine(nil, testLogger())
	a := e.ExtractText(sampleBill, "fatura.pdf")
	b := e.ExtractText(sampleBill, "fatura.pdf")
	assert.Equal(t, a, b)
}

func TestExtractTextFaultIsolation(t *testing.T) {
	// the total line is garbled; every other field still extracts
	corrupted := "TOTAL A PAGAR R$***,\n" + sampleBill[len("EQUATORIAL MARANHÃO DISTRIBUIDORA DE ENERGIA S.A.\n"):]
	e := NewEngine(nil, testLogger())
	res := e.ExtractText(corrupted, "fatura.pdf")

	require.Equal(t, constants.ExtractionSuccess, res.Status)
	assert.Nil(t, res.Fields.TotalAmount)
	require.NotNil(t, res.Fields.ReferencePeriod)
	assert.Equal(t, normalize.Period{Year: 2025, Month: time.May}, *res.Fields.ReferencePeriod)
	requireDecimal(t, "250.00", res.Fields.ConsumptionQuantity)

	var found bool
	for _, d := range res.Diagnostics {
		if d.Field == "totalAmount" && d.Level == "warn" {
			found = true
		}
	}
	assert.True(t, found, "expected a warn diagnostic for the garbled total")
}

func TestExtractTextDefaults(t *testing.T) {
	e := NewEngine(nil, testLogger())
	res := e.ExtractText("nothing that resembles a bill", "scan.pdf")

	require.Equal(t, constants.ExtractionSuccess, res.Status)
	f := res.Fields
	assert.Equal(t, constants.UnidentifiedSentinel, f.CustomerName)
	assert.Equal(t, constants.UnidentifiedSentinel, f.CustomerAddress)
	assert.Equal(t, constants.DefaultDistributor, f.DistributorName)
	// absent solar line items are confirmed zero, not unknown
	requireDecimal(t, "0", f.RemainingBalanceQuantity)
	requireDecimal(t, "0", f.InjectedEnergyQuantity)
	requireDecimal(t, "0", f.CompensatedConsumptionQuantity)
	requireDecimal(t, "0", f.PublicLightingContribution)
	requireDecimal(t, "0", f.NonCompensatedConsumptionQuantity)
	requireDecimal(t, "0", f.NonCompensatedConsumptionUnitPrice)
	requireDecimal(t, "0", f.FlagSurchargeCharge)
	// and fields with no default stay null
	assert.Nil(t, f.TotalAmount)
	assert.Nil(t, f.ReferencePeriod)
}

func TestExtractTextEmpty(t *testing.T) {
	e := NewEngine(nil, testLogger())
	res := e.ExtractText("   \n\t ", "blank.pdf")
	assert.Equal(t, constants.ExtractionError, res.Status)
	assert.NotEmpty(t, res.ErrorDetail)
}

type fakeAcquirer struct {
	res textacq.Result
	err error
}

func (f *fakeAcquirer) Acquire(context.Context, string) (textacq.Result, error) {
	return f.res, f.err
}

func TestExtractFileAcquisitionError(t *testing.T) {
	e := NewEngine(&fakeAcquirer{err: errors.New("pdfinfo: not a PDF")}, testLogger())
	res := e.ExtractFile(context.Background(), "/tmp/broken.pdf", "broken.pdf")
	assert.Equal(t, constants.ExtractionError, res.Status)
	assert.Contains(t, res.ErrorDetail, "not a PDF")
}

func TestExtractFileCarriesAcquisitionWarnings(t *testing.T) {
	e := NewEngine(&fakeAcquirer{res: textacq.Result{
		Text:     sampleBill,
		Pages:    3,
		Warnings: []string{"page 2: no text recovered"},
	}}, testLogger())
	res := e.ExtractFile(context.Background(), "/tmp/fatura.pdf", "fatura.pdf")

	require.Equal(t, constants.ExtractionSuccess, res.Status)
	var found bool
	for _, d := range res.Diagnostics {
		if d.Field == "acquisition" && d.Message == "page 2: no text recovered" {
			found = true
		}
	}
	assert.True(t, found)
}
