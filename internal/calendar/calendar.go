package calendar

import "time"

// Calendar interface for public holiday lookups
type Calendar interface {
	// IsHoliday checks if the given date is a public holiday
	IsHoliday(date time.Time) (bool, error)
}
