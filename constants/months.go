package constants

import (
	"strings"
	"time"
)

// MonthAbbrevPT maps the three-letter Portuguese month abbreviations that
// appear on distributor bills ("MAI/2025") to calendar months.
var MonthAbbrevPT = map[string]time.Month{
	"JAN": time.January,
	"FEV": time.February,
	"MAR": time.March,
	"ABR": time.April,
	"MAI": time.May,
	"JUN": time.June,
	"JUL": time.July,
	"AGO": time.August,
	"SET": time.September,
	"OUT": time.October,
	"NOV": time.November,
	"DEZ": time.December,
}

var monthAbbrevByNumber = [13]string{
	"", "JAN", "FEV", "MAR", "ABR", "MAI", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

// MonthPT resolves a Portuguese abbreviation, case-insensitively.
func MonthPT(abbrev string) (time.Month, bool) {
	m, ok := MonthAbbrevPT[strings.ToUpper(strings.TrimSpace(abbrev))]
	return m, ok
}

// MonthAbbrev returns the Portuguese abbreviation for m ("" if invalid).
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbrevByNumber[m]
}
