package normalize

import (
	"regexp"
	"time"
)

var (
	reDateSlash   = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	reDateSlash2Y = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{2})$`)
	reDateISO     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	reDateCompact = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})$`)
)

// Date converts DD/MM/YYYY, DD/MM/YY, YYYY-MM-DD or compact YYYYMMDD into
// a calendar date (midnight UTC, matching DATE column semantics).
// Two-digit years below 50 map to 20xx, the rest to 19xx. Out-of-range
// day/month or any other input yields nil.
func Date(s string) *time.Time {
	var layout, v string
	switch {
	case reDateSlash.MatchString(s):
		layout, v = "02/01/2006", s
	case reDateSlash2Y.MatchString(s):
		m := reDateSlash2Y.FindStringSubmatch(s)
		layout, v = "02/01/2006", m[1]+"/"+m[2]+"/"+expandYear(m[3])
	case reDateISO.MatchString(s):
		layout, v = "2006-01-02", s
	case reDateCompact.MatchString(s):
		layout, v = "20060102", s
	default:
		return nil
	}
	t, err := time.ParseInLocation(layout, v, time.UTC)
	if err != nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// expandYear applies the shared two-digit century rule: <50 => 20xx.
func expandYear(yy string) string {
	if yy < "50" {
		return "20" + yy
	}
	return "19" + yy
}
