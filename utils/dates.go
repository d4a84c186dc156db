package utils

import (
	"fmt"
	"time"
)

var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// ParseDate accepts the date spellings batch files show up with.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// FormatDateDDMMYYYY renders a date as day-month-year text.
func FormatDateDDMMYYYY(t time.Time) string {
	return t.Format("02-01-2006")
}

// FormatDatePtr is FormatDateDDMMYYYY for nullable dates.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("02-01-2006")
	return &s
}
