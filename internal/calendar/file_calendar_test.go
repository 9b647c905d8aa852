package calendar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestFileCalendar_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.txt")

	content := `# Chinese public holidays
2025-10-01 国庆节
2025-10-02 国庆节
2025-01-01 元旦

not-a-date something
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	fc := NewFileCalendar(path, zap.NewNop())
	if err := fc.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"listed holiday", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), true},
		{"second listed holiday", time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC), true},
		{"unlisted day", time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fc.IsHoliday(tt.date)
			if err != nil {
				t.Fatalf("IsHoliday() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsHoliday(%v) = %v, want %v",
					tt.date.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}

func TestFileCalendar_LoadMissingFile(t *testing.T) {
	fc := NewFileCalendar(filepath.Join(t.TempDir(), "missing.txt"), zap.NewNop())

	if err := fc.Load(); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestCompositeCalendar_Fallback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "holidays.txt")
	if err := os.WriteFile(path, []byte("2025-10-01 国庆节\n"), 0644); err != nil {
		t.Fatal(err)
	}

	// Primary always fails; the composite must answer from the file
	primary := NewHolidayAPICalendar("http://example.invalid/{year}", "CN", time.Hour, zap.NewNop())
	fallback := NewFileCalendar(path, zap.NewNop())
	composite := NewCompositeCalendar(primary, fallback, zap.NewNop())

	if err := composite.LoadFallback(); err != nil {
		t.Fatalf("LoadFallback() error = %v", err)
	}

	holiday, err := composite.IsHoliday(time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("IsHoliday() error = %v", err)
	}
	if !holiday {
		t.Error("IsHoliday() = false, want true from fallback file")
	}
}
