package attendance

import (
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusHalfDay Status = "Half Day"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
	StatusWeekend Status = "Weekend"
)

var Statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusHalfDay),
	string(StatusLeave),
	string(StatusHoliday),
	string(StatusWeekend),
}

// Attendance is unique per (EmployeeID, AttendanceDate).
type Attendance struct {
	record.Base
	EmployeeID     int64    `json:"employee_id"`
	EmployeeName   string   `json:"employee_name"`
	AttendanceDate string   `json:"attendance_date"` // YYYY-MM-DD
	Status         Status   `json:"status"`
	PunchInTime    *string  `json:"punch_in_time,omitempty"`  // HH:MM[:SS]
	PunchOutTime   *string  `json:"punch_out_time,omitempty"` // HH:MM[:SS]
	TotalHours     *float64 `json:"total_hours,omitempty"`
	Remarks        string   `json:"remarks,omitempty"`
}

// Clone implements database.Cloner.
func (a Attendance) Clone() Attendance {
	a.PunchInTime = record.ClonePtr(a.PunchInTime)
	a.PunchOutTime = record.ClonePtr(a.PunchOutTime)
	a.TotalHours = record.ClonePtr(a.TotalHours)
	return a
}

// Recompute refreshes the derived fields from the punch times.
func (a *Attendance) Recompute() {
	a.TotalHours = TotalHours(a.PunchInTime, a.PunchOutTime)
}

// TotalHours returns round(minutes(out-in)/60, 2), or nil unless both
// punches are present and parseable. A punch-out before punch-in yields a
// negative value; it is not rejected.
func TotalHours(punchIn, punchOut *string) *float64 {
	in, ok := parseClock(punchIn)
	if !ok {
		return nil
	}
	out, ok := parseClock(punchOut)
	if !ok {
		return nil
	}
	minutes := out.Sub(in).Minutes()
	hours := math.Round(minutes/60*100) / 100
	return &hours
}

func parseClock(s *string) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MarkOutcome tells callers which branch of MarkAttendance ran.
type MarkOutcome string

const (
	OutcomeCreated MarkOutcome = "Created"
	OutcomeUpdated MarkOutcome = "Updated"
)
