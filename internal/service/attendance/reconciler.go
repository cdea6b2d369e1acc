package attendance

import (
	"fmt"
	"math"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/employee"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
)

// DefaultGraceMinutes applies when no grace window is configured. Zero is a
// valid zero-tolerance policy, not "unset"; unset is a negative value.
const DefaultGraceMinutes = 15

// earlyLeaveThresholdMinutes: checking out more than this many minutes before
// the scheduled shift end marks the day EARLY_LEAVE.
const earlyLeaveThresholdMinutes = 15

// Snapshot is the immutable configuration a single reconciliation runs
// against. It is captured once per event; the engine never reads ambient
// state.
type Snapshot struct {
	Catalog []shift.Definition
	// GraceMinutes is the late-tolerance window. Zero means zero tolerance;
	// a negative value means unconfigured and falls back to the default.
	GraceMinutes int
}

// Action tells the storage collaborator which mutation to commit.
type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
)

// Decision is the outcome of one reconciliation: exactly one log mutation
// plus the display summary. The reconciler performs no I/O itself.
type Decision struct {
	Action Action
	Log    attendance.Log
	Result attendance.EventResult
}

// Reconcile decides whether a verified-identity event is a check-in or a
// check-out for the given employee and business-local moment, and computes
// the resulting log value.
//
// State machine per (employee, day): no record -> check-in creates an open
// log; open record -> check-out closes it; closed record -> the event is
// rejected with ErrDuplicateClose.
func Reconcile(snap Snapshot, emp employee.Employee, now time.Time, method string, existing *attendance.Log) (Decision, error) {
	cur := now.Hour()*60 + now.Minute()
	clock := now.Format("15:04")

	if existing == nil {
		return checkIn(snap, emp, now, cur, clock, method), nil
	}

	if !existing.Open() {
		return Decision{}, attendance.ErrDuplicateClose
	}

	return checkOut(snap, *existing, cur, clock)
}

func checkIn(snap Snapshot, emp employee.Employee, now time.Time, cur int, clock, method string) Decision {
	matched := shift.MatchClosest(cur, snap.Catalog)

	grace := snap.GraceMinutes
	if grace < 0 {
		grace = DefaultGraceMinutes
	}

	lateMinutes := cur - matched.StartMinutes() - grace
	if lateMinutes < 0 {
		lateMinutes = 0
	}

	status := attendance.StatusPresent
	if lateMinutes > 0 {
		status = attendance.StatusLate
	}

	log := attendance.Log{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Date:         time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		CheckIn:      clock,
		CheckOut:     nil,
		TotalHours:   0,
		Status:       status,
		LateMinutes:  lateMinutes,
		Method:       method,
		ShiftCode:    matched.Code,
	}

	return Decision{
		Action: ActionCreate,
		Log:    log,
		Result: attendance.EventResult{
			EmployeeName: emp.FullName,
			Type:         attendance.EventCheckIn,
			Time:         clock,
			ShiftCode:    matched.Code,
		},
	}
}

func checkOut(snap Snapshot, log attendance.Log, cur int, clock string) (Decision, error) {
	closed, err := CheckOutAt(log, cur, snap.Catalog)
	if err != nil {
		return Decision{}, err
	}
	closedClock := clock
	closed.CheckOut = &closedClock

	hours := closed.TotalHours
	return Decision{
		Action: ActionUpdate,
		Log:    closed,
		Result: attendance.EventResult{
			EmployeeName: closed.EmployeeName,
			Type:         attendance.EventCheckOut,
			Time:         clock,
			TotalHours:   &hours,
			ShiftCode:    closed.ShiftCode,
		},
	}, nil
}

// CheckOutAt computes the closed value of an open log as of the given minute
// of day, without setting the check-out clock string. The nightly auto-close
// job reuses it with the scheduled shift end.
//
// Spans that cross midnight are corrected by a day's worth of minutes rather
// than clamped to zero; the check-out step never re-matches, it reuses the
// shift code the log already carries.
func CheckOutAt(log attendance.Log, cur int, catalog []shift.Definition) (attendance.Log, error) {
	in, err := shift.MinutesOfClock(log.CheckIn)
	if err != nil {
		return attendance.Log{}, fmt.Errorf("stored check-in is unreadable: %w", err)
	}

	raw := cur - in
	if raw < 0 {
		// Overnight span: the check-out landed on the next calendar day.
		raw += 24 * 60
	}

	deduction := 0
	def, known := shift.Lookup(log.ShiftCode, catalog)
	if known {
		if bs, be, ok := def.BreakWindow(); ok && in < bs && cur > be {
			// The work span strictly contains the whole break window.
			deduction = be - bs
		}
	}

	hours := float64(raw-deduction) / 60.0
	if hours < 0 {
		hours = 0
	}
	log.TotalHours = math.Round(hours*100) / 100

	if known && def.EndMinutes()-cur > earlyLeaveThresholdMinutes {
		log.Status = attendance.StatusEarlyLeave
	}

	return log, nil
}
