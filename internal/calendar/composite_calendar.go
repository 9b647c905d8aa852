package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: HolidayAPICalendar (network feed)
// Fallback: FileCalendar (local file)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsHoliday checks if the given date is a public holiday
func (cc *CompositeCalendar) IsHoliday(date time.Time) (bool, error) {
	holiday, err := cc.primary.IsHoliday(date)
	if err == nil {
		return holiday, nil
	}

	cc.logger.Warn("Primary holiday calendar failed, falling back to file",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.IsHoliday(date)
}

// LoadFallback loads the fallback calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadFallback() error {
	if fc, ok := cc.fallback.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load fallback calendar: %w", err)
		}
		cc.logger.Info("Fallback calendar loaded successfully")
	}
	return nil
}
