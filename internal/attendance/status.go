package attendance

// Status is the attendance state of a single day
type Status string

const (
	StatusFull     Status = "full"
	StatusHalf     Status = "half"
	StatusOvertime Status = "overtime"
	StatusAbsent   Status = "absent"
)

// Valid reports whether s is one of the four known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusFull, StatusHalf, StatusOvertime, StatusAbsent:
		return true
	}
	return false
}

// Text returns the display label for the status
func (s Status) Text() string {
	switch s {
	case StatusFull:
		return "全勤"
	case StatusHalf:
		return "半天"
	case StatusOvertime:
		return "加班"
	case StatusAbsent:
		return "缺勤"
	default:
		return "未设置"
	}
}

// DefaultStatus returns the status a never-set date starts with:
// full attendance on business days, absent otherwise
func DefaultStatus(businessDay bool) Status {
	if businessDay {
		return StatusFull
	}
	return StatusAbsent
}

// NextStatus advances the status cycle for a date.
// Business days cycle full → half → absent → full.
// Non-business days cycle absent → overtime → absent; any other current
// status is treated as absent before cycling.
func NextStatus(current Status, businessDay bool) Status {
	if businessDay {
		switch current {
		case StatusFull:
			return StatusHalf
		case StatusHalf:
			return StatusAbsent
		default:
			return StatusFull
		}
	}

	switch current {
	case StatusOvertime:
		return StatusAbsent
	default:
		return StatusOvertime
	}
}
