package utils

import (
	"fmt"
	"time"
)

// ISODateLayout is the wire format for all date-only fields.
const ISODateLayout = "2006-01-02"

// ValidateISODate rejects anything that is not a calendar date in
// YYYY-MM-DD form. Empty strings pass; absent bounds are open-ended.
func ValidateISODate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(ISODateLayout, s); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return nil
}

// TodayISO returns the current date in wire format.
func TodayISO() string {
	return time.Now().Format(ISODateLayout)
}
