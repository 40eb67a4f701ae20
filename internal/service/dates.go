package service

import (
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var polishMonths = [...]string{
	"stycznia", "lutego", "marca", "kwietnia", "maja", "czerwca",
	"lipca", "sierpnia", "września", "października", "listopada", "grudnia",
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("nierozpoznany format daty: %q", value)
}

// formatDatePL daje krótki polski zapis dd.mm.rrrr, fallback podaje caller.
func formatDatePL(value, fallback string) string {
	t, err := parseDate(value)
	if err != nil {
		return fallback
	}
	return t.Format("02.01.2006")
}

// formatDateLongPL daje długi polski zapis, np. "2 stycznia 2026".
func formatDateLongPL(value, fallback string) string {
	t, err := parseDate(value)
	if err != nil {
		return fallback
	}
	return fmt.Sprintf("%d %s %d", t.Day(), polishMonths[t.Month()-1], t.Year())
}

// FormatDateForAPI formatuje datę do postaci YYYY-MM-DD oczekiwanej
// przez filtry backendu.
func FormatDateForAPI(t time.Time) string {
	return t.Format("2006-01-02")
}

func DateDaysAgo(days int) string {
	return FormatDateForAPI(time.Now().AddDate(0, 0, -days))
}

func DateDaysFromNow(days int) string {
	return FormatDateForAPI(time.Now().AddDate(0, 0, days))
}
