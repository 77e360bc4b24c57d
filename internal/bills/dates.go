package bills

import (
	"strings"
	"time"
)

// Fixed fallbacks used when no source, not even a session year, yields a date.
var (
	FallbackStart = time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	FallbackEnd   = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
)

// dateLayouts are tried in order. Input files mix ISO dates with US-style
// and timestamped forms depending on which scraper produced them.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ParseDate parses a date string leniently. Malformed or empty input
// reports ok=false rather than an error so callers can cascade to the next
// fallback tier. The result is normalized to midnight UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// yearStart returns January 1 of the given year.
func yearStart(year int) time.Time {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// yearEnd returns December 31 of the given year.
func yearEnd(year int) time.Time {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
}
