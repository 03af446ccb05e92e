package normalize

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"},
		{"R$**123,45", "123.45"},
		{"R$*******156,11", "156.11"},
		{"0,00", "0"},
		{"156", "156"},
		{"-12,50", "-12.5"},
		{"  5.000,50  ", "5000.5"},
	}
	for _, tt := range tests {
		got := Currency(tt.in)
		require.NotNil(t, got, "Currency(%q)", tt.in)
		want, _ := decimal.NewFromString(tt.want)
		assert.True(t, got.Equal(want), "Currency(%q) = %s, want %s", tt.in, got, want)
	}
}

func TestCurrencyMalformed(t *testing.T) {
	for _, in := range []string{"abc", "", "R$", ",", "--", "1,2,3,4--"} {
		assert.Nil(t, Currency(in), "Currency(%q)", in)
	}
}

func TestQuantityTrailingComma(t *testing.T) {
	got := Quantity("1.543,")
	require.NotNil(t, got)
	assert.True(t, got.Equal(decimal.NewFromInt(1543)))
}

func TestDate(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		in   string
		want time.Time
	}{
		{"31/01/2025", day(2025, time.January, 31)},
		{"31/01/25", day(2025, time.January, 31)},
		{"31/01/75", day(1975, time.January, 31)},
		{"2025-01-31", day(2025, time.January, 31)},
		{"20250131", day(2025, time.January, 31)},
	}
	for _, tt := range tests {
		got := Date(tt.in)
		require.NotNil(t, got, "Date(%q)", tt.in)
		assert.True(t, got.Equal(tt.want), "Date(%q) = %s", tt.in, got)
	}
}

func TestDateRejected(t *testing.T) {
	for _, in := range []string{
		"2025-13-40", // month and day out of range
		"31/02/2025", // no Feb 31
		"00/01/2025",
		"1/1/2025",
		"not a date",
		"",
	} {
		assert.Nil(t, Date(in), "Date(%q)", in)
	}
}

func TestPeriodFromLabel(t *testing.T) {
	p := PeriodFromLabel("MAI/2025")
	require.NotNil(t, p)
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.May, p.Month)
	assert.Equal(t, "05/2025", p.String())
	assert.Equal(t, "MAI/2025", p.Label())
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), p.FirstDay())

	p = PeriodFromLabel("jan/99")
	require.NotNil(t, p)
	assert.Equal(t, 1999, p.Year)
	assert.Equal(t, time.January, p.Month)

	p = PeriodFromLabel("DEZ/07")
	require.NotNil(t, p)
	assert.Equal(t, 2007, p.Year)
}

func TestPeriodFromLabelRejected(t *testing.T) {
	for _, in := range []string{"XYZ/2025", "MAI/20255", "MAI-2025", "MAI/", ""} {
		assert.Nil(t, PeriodFromLabel(in), "PeriodFromLabel(%q)", in)
	}
}

func TestPeriodFromNumeric(t *testing.T) {
	p := PeriodFromNumeric("05/2025")
	require.NotNil(t, p)
	assert.Equal(t, Period{Year: 2025, Month: time.May}, *p)

	for _, in := range []string{"13/2025", "0/2025", "05/25", "2025/05", ""} {
		assert.Nil(t, PeriodFromNumeric(in), "PeriodFromNumeric(%q)", in)
	}
}
