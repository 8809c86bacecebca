package utils

import "time"

const ISODateLayout = "2006-01-02"

// IsISODate reports whether value is a calendar date in YYYY-MM-DD form.
func IsISODate(value string) bool {
	_, err := time.Parse(ISODateLayout, value)
	return err == nil
}

// StartOfMonth returns midnight on the first day of t's month, in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
