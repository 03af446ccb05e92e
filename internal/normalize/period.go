package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/lucasveras/faturahub/constants"
)

// Period is a canonical reference period: the calendar month a bill
// charges for, represented as "first day of that month".
type Period struct {
	Year  int
	Month time.Month
}

// FirstDay returns the period as a DATE value, midnight UTC.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// String renders the MM/YYYY form used on the wire.
func (p Period) String() string {
	return fmt.Sprintf("%02d/%04d", int(p.Month), p.Year)
}

// Label renders the distributor's own form, e.g. "MAI/2025".
func (p Period) Label() string {
	return fmt.Sprintf("%s/%04d", constants.MonthAbbrev(p.Month), p.Year)
}

// PeriodFromDate recovers a Period from a stored reference_period DATE.
func PeriodFromDate(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

var (
	rePeriodAbbrev  = regexp.MustCompile(`^([A-Za-zÀ-Ü]{3})/(\d{2}|\d{4})$`)
	rePeriodNumeric = regexp.MustCompile(`^(\d{1,2})/(\d{4})$`)
)

// PeriodFromLabel parses the bill form "MAI/2025" (or "MAI/25", same century rule
// as dates). Unknown abbreviation or malformed year yields nil.
func PeriodFromLabel(s string) *Period {
	m := rePeriodAbbrev.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	month, ok := constants.MonthPT(m[1])
	if !ok {
		return nil
	}
	yy := m[2]
	if len(yy) == 2 {
		yy = expandYear(yy)
	}
	year, err := strconv.Atoi(yy)
	if err != nil {
		return nil
	}
	return &Period{Year: year, Month: month}
}

// PeriodFromNumeric parses the caller-supplied "MM/YYYY" form.
func PeriodFromNumeric(s string) *Period {
	m := rePeriodNumeric.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return nil
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return nil
	}
	return &Period{Year: year, Month: time.Month(month)}
}
