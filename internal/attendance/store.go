package attendance

import (
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Persistence is the external key-value collaborator for month blobs
type Persistence interface {
	// Get returns the stored value for key, or ok=false when absent
	Get(key string) (value string, ok bool, err error)
	// Set stores the value for key
	Set(key, value string) error
}

// MonthKey builds the storage key for a (year, month) pair.
// The month index is zero-based, matching the persisted data layout.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("attendance_%d_%d", year, int(month)-1)
}

// Store manages month attendance with write-through persistence:
// every mutation saves the complete month before returning
type Store struct {
	persistence Persistence
	classifier  DayClassifier
	logger      *zap.Logger
}

// NewStore creates a new attendance store
func NewStore(persistence Persistence, classifier DayClassifier, logger *zap.Logger) *Store {
	return &Store{
		persistence: persistence,
		classifier:  classifier,
		logger:      logger,
	}
}

// LoadOrInit returns the persisted attendance for the month, or generates
// default attendance and persists it before returning. Corrupt or invalid
// stored data is silently replaced by regenerated defaults.
func (s *Store) LoadOrInit(year int, month time.Month) (MonthAttendance, error) {
	key := MonthKey(year, month)

	raw, ok, err := s.persistence.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load month %s: %w", key, err)
	}

	if ok {
		var ma MonthAttendance
		if err := json.Unmarshal([]byte(raw), &ma); err != nil {
			s.logger.Warn("Stored month data is corrupt, regenerating defaults",
				zap.String("key", key),
				zap.Error(err))
		} else if err := ma.Validate(year, month); err != nil {
			s.logger.Warn("Stored month data is invalid, regenerating defaults",
				zap.String("key", key),
				zap.Error(err))
		} else {
			return ma, nil
		}
	}

	ma, err := GenerateMonth(year, month, s.classifier)
	if err != nil {
		return nil, err
	}

	if err := s.save(key, ma); err != nil {
		return nil, err
	}

	s.logger.Info("Generated default month attendance",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("days", len(ma)))

	return ma, nil
}

// ApplyToggle advances the status of a single date and persists the full
// updated month, keyed by the date's (year, month)
func (s *Store) ApplyToggle(ma MonthAttendance, date time.Time) (MonthAttendance, error) {
	dateStr := date.Format("2006-01-02")

	idx := ma.IndexOf(dateStr)
	if idx < 0 {
		return nil, fmt.Errorf("no attendance record for %s", dateStr)
	}

	businessDay, err := s.classifier.IsBusinessDay(date)
	if err != nil {
		return nil, err
	}

	updated := make(MonthAttendance, len(ma))
	copy(updated, ma)
	updated[idx].Status = NextStatus(updated[idx].Status, businessDay)

	key := MonthKey(date.Year(), date.Month())
	if err := s.save(key, updated); err != nil {
		return nil, err
	}

	s.logger.Info("Attendance toggled",
		zap.String("date", dateStr),
		zap.String("from", string(ma[idx].Status)),
		zap.String("to", string(updated[idx].Status)),
		zap.Bool("business_day", businessDay))

	return updated, nil
}

func (s *Store) save(key string, ma MonthAttendance) error {
	data, err := json.Marshal(ma)
	if err != nil {
		return fmt.Errorf("failed to marshal month %s: %w", key, err)
	}

	if err := s.persistence.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to persist month %s: %w", key, err)
	}

	return nil
}
