package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local text file of holidays.
// Line format: YYYY-MM-DD name
// Example: 2025-10-01 国庆节
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	holidays map[string]string // "YYYY-MM-DD" -> name
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		holidays: make(map[string]string),
	}
}

// Load loads holiday data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 2)
		dateStr := parts[0]
		name := ""
		if len(parts) == 2 {
			name = parts[1]
		}

		if _, err := time.Parse("2006-01-02", dateStr); err != nil {
			fc.logger.Warn("Failed to parse holiday date",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		fc.holidays[dateStr] = name
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fc.logger.Info("Holiday file loaded",
		zap.String("file", fc.filePath),
		zap.Int("holidays", len(fc.holidays)))

	return nil
}

// IsHoliday checks if the given date is a public holiday
func (fc *FileCalendar) IsHoliday(date time.Time) (bool, error) {
	_, ok := fc.holidays[date.Format("2006-01-02")]
	return ok, nil
}
