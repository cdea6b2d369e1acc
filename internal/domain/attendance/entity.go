package attendance

import (
	"time"
)

// Status of a day's attendance log. Check-in decides PRESENT or LATE;
// check-out may upgrade to EARLY_LEAVE.
type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusLate       Status = "LATE"
	StatusEarlyLeave Status = "EARLY_LEAVE"
)

// EventType classifies what a verified-identity event turned out to be.
type EventType string

const (
	EventCheckIn  EventType = "CHECK_IN"
	EventCheckOut EventType = "CHECK_OUT"
)

// Verification method labels as carried on the log and the event result.
const (
	MethodFace        = "FACE"
	MethodGeoPresence = "GEO_PRESENCE"
	MethodKiosk       = "KIOSK"
)

// Log is one attendance record per (employee, business-local day).
// Clock values are wall-clock "HH:MM" strings in the restaurant's timezone;
// Date is the business-local calendar day truncated to midnight.
//
// Lifecycle: created once by the day's first verified event (check-in),
// updated exactly once more by the same day's check-out. At most one open
// record exists per employee per day.
type Log struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	CheckIn      string  // "HH:MM"
	CheckOut     *string // nil while the record is open
	TotalHours   float64
	Status       Status
	LateMinutes  int
	Method       string
	ShiftCode    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the record is checked in but not yet checked out.
func (l *Log) Open() bool {
	return l.CheckOut == nil
}

// EventResult is the display summary produced by one reconciliation.
type EventResult struct {
	EmployeeName string    `json:"employee_name"`
	Type         EventType `json:"type"`
	Time         string    `json:"time"`
	TotalHours   *float64  `json:"total_hours,omitempty"`
	ShiftCode    string    `json:"shift_code,omitempty"`
}
