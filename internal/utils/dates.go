package utils

import (
	"fmt"
	"time"
)

// Dates arrive from clients as plain "YYYY-MM-DD" strings and mean a day
// in Korea. Parsing them in KST (rather than server-local or UTC) keeps a
// date entered as 2024-01-01 from rendering as 2023-12-31 once stored.

const dateLayout = "2006-01-02"

var kst = time.FixedZone("KST", 9*60*60)

// ParseKSTDate parses a YYYY-MM-DD string as midnight in Korea Standard Time.
func ParseKSTDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, kst)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// FormatKSTDate renders a stored timestamp back as the KST calendar day
// it was entered for. Zero times render as "".
func FormatKSTDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kst).Format(dateLayout)
}

// MonthRange returns the KST instants [start, end) covering a
// "YYYY-MM" month, for calendar-style schedule filtering.
func MonthRange(month string) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("2006-01", month, kst)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
	}
	return start, start.AddDate(0, 1, 0), nil
}
