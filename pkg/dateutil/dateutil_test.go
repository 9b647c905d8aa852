package dateutil

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	input := time.Date(2025, 10, 15, 14, 30, 45, 123456789, time.UTC)
	expected := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	result := StartOfDay(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfDay(%v) = %v, want %v", input, result, expected)
	}
}

func TestStartOfMonth(t *testing.T) {
	input := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)
	expected := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	result := StartOfMonth(input)

	if !result.Equal(expected) {
		t.Errorf("StartOfMonth(%v) = %v, want %v", input, result, expected)
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   time.Time
		wantDay int
	}{
		{
			name:    "October has 31 days",
			input:   time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			wantDay: 31,
		},
		{
			name:    "November has 30 days",
			input:   time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
			wantDay: 30,
		},
		{
			name:    "February in a leap year",
			input:   time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 29,
		},
		{
			name:    "February in a non-leap year",
			input:   time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
			wantDay: 28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EndOfMonth(tt.input)

			if result.Day() != tt.wantDay {
				t.Errorf("EndOfMonth(%v).Day() = %d, want %d",
					tt.input.Format("2006-01-02"), result.Day(), tt.wantDay)
			}
			if result.Month() != tt.input.Month() {
				t.Errorf("EndOfMonth(%v) landed in month %v", tt.input, result.Month())
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"October 2025", 2025, time.October, 31},
		{"November 2025", 2025, time.November, 30},
		{"February 2024 (leap)", 2024, time.February, 29},
		{"February 2025", 2025, time.February, 28},
		{"December 2025", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DaysInMonth(tt.year, tt.month)

			if got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestIsWeekdayAndWeekend(t *testing.T) {
	tests := []struct {
		name        string
		input       time.Time
		wantWeekday bool
	}{
		{
			name:        "Wednesday is a weekday",
			input:       time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), // Wednesday
			wantWeekday: true,
		},
		{
			name:        "Friday is a weekday",
			input:       time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC),
			wantWeekday: true,
		},
		{
			name:        "Saturday is a weekend",
			input:       time.Date(2025, 10, 4, 0, 0, 0, 0, time.UTC),
			wantWeekday: false,
		},
		{
			name:        "Sunday is a weekend",
			input:       time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC),
			wantWeekday: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekday(tt.input); got != tt.wantWeekday {
				t.Errorf("IsWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, tt.wantWeekday)
			}
			if got := IsWeekend(tt.input); got == tt.wantWeekday {
				t.Errorf("IsWeekend(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), got, !tt.wantWeekday)
			}
		})
	}
}

func TestIsSameDay(t *testing.T) {
	base := time.Date(2025, 10, 15, 8, 0, 0, 0, time.UTC)

	if !IsSameDay(base, time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)) {
		t.Error("IsSameDay() = false for same calendar day")
	}
	if IsSameDay(base, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC)) {
		t.Error("IsSameDay() = true for different days")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid ISO date", "2025-10-01", false},
		{"invalid format", "01.10.2025", true},
		{"empty string", "", true},
		{"not a date", "hello", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.Format("2006-01-02") != tt.input {
				t.Errorf("ParseDate(%q) = %v", tt.input, got)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2025-10")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if year != 2025 || month != time.October {
		t.Errorf("ParseMonth(\"2025-10\") = (%d, %v), want (2025, October)", year, month)
	}

	if _, _, err := ParseMonth("2025/10"); err == nil {
		t.Error("ParseMonth(\"2025/10\") expected error, got nil")
	}
}
