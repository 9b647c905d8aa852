package attendance

import (
	"fmt"
	"time"

	"github.com/username/checkin-tracker/pkg/dateutil"
)

// DayClassifier reports whether a date is a business day
type DayClassifier interface {
	IsBusinessDay(date time.Time) (bool, error)
}

// Record is one day's attendance
type Record struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Status Status `json:"status"`
}

// MonthAttendance holds one record per calendar day of a month,
// in ascending date order with no gaps or duplicates
type MonthAttendance []Record

// GenerateMonth builds default attendance for every day of the month:
// business days start as full, all other days as absent
func GenerateMonth(year int, month time.Month, classifier DayClassifier) (MonthAttendance, error) {
	days := dateutil.DaysInMonth(year, month)
	records := make(MonthAttendance, 0, days)

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		businessDay, err := classifier.IsBusinessDay(date)
		if err != nil {
			return nil, fmt.Errorf("failed to classify %s: %w", date.Format("2006-01-02"), err)
		}

		records = append(records, Record{
			Date:   date.Format("2006-01-02"),
			Status: DefaultStatus(businessDay),
		})
	}

	return records, nil
}

// Validate checks the month invariants: exact day count, ascending gapless
// dates and known statuses
func (ma MonthAttendance) Validate(year int, month time.Month) error {
	days := dateutil.DaysInMonth(year, month)
	if len(ma) != days {
		return fmt.Errorf("expected %d records for %d-%02d, got %d", days, year, month, len(ma))
	}

	for i, rec := range ma {
		expected := time.Date(year, month, i+1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		if rec.Date != expected {
			return fmt.Errorf("record %d has date %q, expected %q", i, rec.Date, expected)
		}
		if !rec.Status.Valid() {
			return fmt.Errorf("record %s has unknown status %q", rec.Date, rec.Status)
		}
	}

	return nil
}

// IndexOf returns the index of the record for the given date, or -1
func (ma MonthAttendance) IndexOf(date string) int {
	for i, rec := range ma {
		if rec.Date == date {
			return i
		}
	}
	return -1
}

// CountByStatus returns the number of days with the given status
func (ma MonthAttendance) CountByStatus(status Status) int {
	count := 0
	for _, rec := range ma {
		if rec.Status == status {
			count++
		}
	}
	return count
}

// WorkedDays returns the number of non-absent days
func (ma MonthAttendance) WorkedDays() int {
	return len(ma) - ma.CountByStatus(StatusAbsent)
}
