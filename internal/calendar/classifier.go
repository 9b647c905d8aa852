package calendar

import (
	"fmt"
	"time"

	"github.com/username/checkin-tracker/pkg/dateutil"
)

// Classifier decides whether a date is a business day:
// a weekday (Monday-Friday) that is not a public holiday.
type Classifier struct {
	calendar Calendar
}

// NewClassifier creates a new Classifier backed by the given holiday calendar
func NewClassifier(cal Calendar) *Classifier {
	return &Classifier{calendar: cal}
}

// IsBusinessDay checks if the given date is a business day.
// Weekends are never business days regardless of the holiday calendar,
// so the holiday lookup is skipped for them.
func (c *Classifier) IsBusinessDay(date time.Time) (bool, error) {
	if dateutil.IsWeekend(date) {
		return false, nil
	}

	holiday, err := c.calendar.IsHoliday(date)
	if err != nil {
		return false, fmt.Errorf("holiday lookup failed for %s: %w",
			date.Format("2006-01-02"), err)
	}

	return !holiday, nil
}
