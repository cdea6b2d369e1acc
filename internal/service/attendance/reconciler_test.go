package attendance

import (
	"testing"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/employee"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testCatalog() []shift.Definition {
	return []shift.Definition{
		{
			Code:         "MORNING",
			Name:         "Morning",
			StartTime:    "08:00",
			EndTime:      "17:00",
			IsSplitShift: true,
			BreakStart:   strPtr("12:00"),
			BreakEnd:     strPtr("13:00"),
		},
		{
			Code:      "EVENING",
			Name:      "Evening",
			StartTime: "14:00",
			EndTime:   "22:00",
		},
	}
}

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:       "emp-1",
		FullName: "Ana Wijaya",
		IsActive: true,
	}
}

func testSnapshot() Snapshot {
	return Snapshot{Catalog: testCatalog(), GraceMinutes: 15}
}

func at(clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return time.Date(2026, 3, 9, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func openLog(checkIn, shiftCode string) *attendance.Log {
	return &attendance.Log{
		ID:           "log-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Ana Wijaya",
		Date:         time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		CheckIn:      checkIn,
		Status:       attendance.StatusPresent,
		Method:       attendance.MethodKiosk,
		ShiftCode:    shiftCode,
	}
}

func TestReconcileCheckInCreatesOpenLog(t *testing.T) {
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("07:55"), attendance.MethodKiosk, nil)
	require.NoError(t, err)

	assert.Equal(t, ActionCreate, decision.Action)
	assert.Equal(t, "07:55", decision.Log.CheckIn)
	assert.Nil(t, decision.Log.CheckOut)
	assert.Equal(t, "MORNING", decision.Log.ShiftCode)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)
	assert.Equal(t, 0, decision.Log.LateMinutes)
	assert.Equal(t, float64(0), decision.Log.TotalHours)

	assert.Equal(t, attendance.EventCheckIn, decision.Result.Type)
	assert.Equal(t, "Ana Wijaya", decision.Result.EmployeeName)
	assert.Equal(t, "07:55", decision.Result.Time)
	assert.Nil(t, decision.Result.TotalHours)
}

func TestReconcileCheckInGraceBoundary(t *testing.T) {
	// Arriving exactly at the edge of the grace window is still on time.
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("08:15"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)
	assert.Equal(t, 0, decision.Log.LateMinutes)

	// One minute past it is late by exactly one minute.
	decision, err = Reconcile(testSnapshot(), testEmployee(), at("08:16"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, decision.Log.Status)
	assert.Equal(t, 1, decision.Log.LateMinutes)
}

func TestReconcileCheckInMatchesClosestShift(t *testing.T) {
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("13:30"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, "EVENING", decision.Log.ShiftCode)

	decision, err = Reconcile(testSnapshot(), testEmployee(), at("10:00"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, "MORNING", decision.Log.ShiftCode)
}

func TestReconcileCheckInEmptyCatalogUsesSentinel(t *testing.T) {
	snap := Snapshot{Catalog: nil, GraceMinutes: 15}
	decision, err := Reconcile(snap, testEmployee(), at("09:00"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, shift.SentinelCode, decision.Log.ShiftCode)
}

func TestReconcileCheckInZeroGraceMeansZeroTolerance(t *testing.T) {
	// An explicit zero grace window is a policy, not an absent value: one
	// minute past the shift start is already late.
	snap := Snapshot{Catalog: testCatalog(), GraceMinutes: 0}

	decision, err := Reconcile(snap, testEmployee(), at("08:01"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, decision.Log.Status)
	assert.Equal(t, 1, decision.Log.LateMinutes)

	decision, err = Reconcile(snap, testEmployee(), at("08:00"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)
	assert.Equal(t, 0, decision.Log.LateMinutes)
}

func TestReconcileCheckInUnsetGraceFallsBackToDefault(t *testing.T) {
	snap := Snapshot{Catalog: testCatalog(), GraceMinutes: -1}
	decision, err := Reconcile(snap, testEmployee(), at("08:10"), attendance.MethodKiosk, nil)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)
	assert.Equal(t, 0, decision.Log.LateMinutes)
}

func TestReconcileCheckOutFullDayDeductsBreak(t *testing.T) {
	// 08:00 to 17:00 on a split shift with a 12:00-13:00 break: nine raw hours
	// minus the one hour break.
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("17:00"), attendance.MethodKiosk, openLog("08:00", "MORNING"))
	require.NoError(t, err)

	assert.Equal(t, ActionUpdate, decision.Action)
	require.NotNil(t, decision.Log.CheckOut)
	assert.Equal(t, "17:00", *decision.Log.CheckOut)
	assert.Equal(t, 8.0, decision.Log.TotalHours)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)

	assert.Equal(t, attendance.EventCheckOut, decision.Result.Type)
	require.NotNil(t, decision.Result.TotalHours)
	assert.Equal(t, 8.0, *decision.Result.TotalHours)
}

func TestReconcileCheckOutNoDeductionWithoutStrictContainment(t *testing.T) {
	// Working 12:30 to 14:00 overlaps the break but does not strictly contain
	// it, so nothing is deducted.
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("14:00"), attendance.MethodKiosk, openLog("12:30", "MORNING"))
	require.NoError(t, err)
	assert.Equal(t, 1.5, decision.Log.TotalHours)
}

func TestReconcileCheckOutEarlyLeaveThreshold(t *testing.T) {
	// 16 minutes before the scheduled end is an early leave.
	decision, err := Reconcile(testSnapshot(), testEmployee(), at("16:44"), attendance.MethodKiosk, openLog("08:00", "MORNING"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusEarlyLeave, decision.Log.Status)

	// 15 minutes before is within tolerance; the check-in status stands.
	decision, err = Reconcile(testSnapshot(), testEmployee(), at("16:45"), attendance.MethodKiosk, openLog("08:00", "MORNING"))
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, decision.Log.Status)
}

func TestReconcileCheckOutPreservesLateStatus(t *testing.T) {
	log := openLog("09:00", "MORNING")
	log.Status = attendance.StatusLate
	log.LateMinutes = 45

	decision, err := Reconcile(testSnapshot(), testEmployee(), at("17:00"), attendance.MethodKiosk, log)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, decision.Log.Status)
	assert.Equal(t, 45, decision.Log.LateMinutes)
}

func TestReconcileDuplicateCloseRejected(t *testing.T) {
	closed := openLog("08:00", "MORNING")
	closed.CheckOut = strPtr("17:00")

	_, err := Reconcile(testSnapshot(), testEmployee(), at("18:00"), attendance.MethodKiosk, closed)
	assert.ErrorIs(t, err, attendance.ErrDuplicateClose)
}

func TestCheckOutAtOvernightSpan(t *testing.T) {
	// Checked in at 22:00, closed at 06:00 next day: eight hours, not zero.
	log := openLog("22:00", shift.SentinelCode)

	cur, err := shift.MinutesOfClock("06:00")
	require.NoError(t, err)

	closed, err := CheckOutAt(*log, cur, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 8.0, closed.TotalHours)
}

func TestCheckOutAtUnknownShiftCode(t *testing.T) {
	// A code absent from the catalog gets no break deduction and no early
	// leave judgment.
	log := openLog("08:00", "GHOST")

	cur, err := shift.MinutesOfClock("13:30")
	require.NoError(t, err)

	closed, err := CheckOutAt(*log, cur, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 5.5, closed.TotalHours)
	assert.Equal(t, attendance.StatusPresent, closed.Status)
}

func TestCheckOutAtRoundsToTwoDecimals(t *testing.T) {
	// 50 minutes is 0.8333... hours.
	log := openLog("08:00", "GHOST")

	cur, err := shift.MinutesOfClock("08:50")
	require.NoError(t, err)

	closed, err := CheckOutAt(*log, cur, testCatalog())
	require.NoError(t, err)
	assert.Equal(t, 0.83, closed.TotalHours)
}

func TestCheckOutAtUnreadableCheckIn(t *testing.T) {
	log := openLog("not-a-clock", "MORNING")

	_, err := CheckOutAt(*log, 1020, testCatalog())
	assert.Error(t, err)
}
