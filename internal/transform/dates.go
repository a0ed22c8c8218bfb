package transform

import "time"

// flexibleDateLayouts are tried in order; the first successful parse wins.
// ISO comes first so "2023-04-05" is never misread day-first.
var flexibleDateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
}

const isoDateLayout = "2006-01-02"

// parseFlexibleDate parses a raw date that may arrive in either of the
// source's two formats. Returns false for absent or unparseable values.
func parseFlexibleDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range flexibleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseISODate parses a strict YYYY-MM-DD date, silently coercing absent or
// malformed values to nil.
func parseISODate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(isoDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
