package attendance

import (
	"testing"
	"time"

	"github.com/username/checkin-tracker/pkg/dateutil"
)

// weekendOnlyClassifier treats every weekday as a business day (no holidays)
type weekendOnlyClassifier struct{}

func (weekendOnlyClassifier) IsBusinessDay(date time.Time) (bool, error) {
	return dateutil.IsWeekday(date), nil
}

func TestGenerateMonth_Lengths(t *testing.T) {
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
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ma, err := GenerateMonth(tt.year, tt.month, weekendOnlyClassifier{})
			if err != nil {
				t.Fatalf("GenerateMonth() error = %v", err)
			}

			if len(ma) != tt.want {
				t.Errorf("GenerateMonth() returned %d records, want %d", len(ma), tt.want)
			}
			if err := ma.Validate(tt.year, tt.month); err != nil {
				t.Errorf("generated month fails validation: %v", err)
			}
		})
	}
}

func TestGenerateMonth_October2025Defaults(t *testing.T) {
	// October 2025 with no holidays: 23 weekdays full, 8 weekend days absent
	ma, err := GenerateMonth(2025, time.October, weekendOnlyClassifier{})
	if err != nil {
		t.Fatalf("GenerateMonth() error = %v", err)
	}

	if got := ma.CountByStatus(StatusFull); got != 23 {
		t.Errorf("full days = %d, want 23", got)
	}
	if got := ma.CountByStatus(StatusAbsent); got != 8 {
		t.Errorf("absent days = %d, want 8", got)
	}
	if got := ma.WorkedDays(); got != 23 {
		t.Errorf("WorkedDays() = %d, want 23", got)
	}

	// Spot-check: Oct 1 is a Wednesday (full), Oct 4 a Saturday (absent)
	if ma[0].Date != "2025-10-01" || ma[0].Status != StatusFull {
		t.Errorf("first record = %+v, want 2025-10-01 full", ma[0])
	}
	if ma[3].Date != "2025-10-04" || ma[3].Status != StatusAbsent {
		t.Errorf("fourth record = %+v, want 2025-10-04 absent", ma[3])
	}
}

func TestMonthAttendance_Validate(t *testing.T) {
	valid, err := GenerateMonth(2025, time.October, weekendOnlyClassifier{})
	if err != nil {
		t.Fatalf("GenerateMonth() error = %v", err)
	}

	tests := []struct {
		name    string
		mutate  func(MonthAttendance) MonthAttendance
		wantErr bool
	}{
		{
			name:   "valid month",
			mutate: func(ma MonthAttendance) MonthAttendance { return ma },
		},
		{
			name: "truncated month",
			mutate: func(ma MonthAttendance) MonthAttendance {
				return ma[:len(ma)-1]
			},
			wantErr: true,
		},
		{
			name: "duplicate date",
			mutate: func(ma MonthAttendance) MonthAttendance {
				out := make(MonthAttendance, len(ma))
				copy(out, ma)
				out[5] = out[4]
				return out
			},
			wantErr: true,
		},
		{
			name: "out-of-order dates",
			mutate: func(ma MonthAttendance) MonthAttendance {
				out := make(MonthAttendance, len(ma))
				copy(out, ma)
				out[0], out[1] = out[1], out[0]
				return out
			},
			wantErr: true,
		},
		{
			name: "unknown status",
			mutate: func(ma MonthAttendance) MonthAttendance {
				out := make(MonthAttendance, len(ma))
				copy(out, ma)
				out[10].Status = Status("vacation")
				return out
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate(2025, time.October)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMonthAttendance_IndexOf(t *testing.T) {
	ma, err := GenerateMonth(2025, time.October, weekendOnlyClassifier{})
	if err != nil {
		t.Fatalf("GenerateMonth() error = %v", err)
	}

	if got := ma.IndexOf("2025-10-15"); got != 14 {
		t.Errorf("IndexOf(2025-10-15) = %d, want 14", got)
	}
	if got := ma.IndexOf("2025-11-01"); got != -1 {
		t.Errorf("IndexOf(2025-11-01) = %d, want -1", got)
	}
}
