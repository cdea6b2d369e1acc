package cron

import (
	"context"
	"testing"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
)

type stubAttendanceRepo struct {
	attendance.Repository
	stale   []attendance.Log
	updated []attendance.Log
}

func (s *stubAttendanceRepo) FindOpenBefore(ctx context.Context, day time.Time) ([]attendance.Log, error) {
	return s.stale, nil
}

func (s *stubAttendanceRepo) Update(ctx context.Context, log attendance.Log) error {
	s.updated = append(s.updated, log)
	return nil
}

type stubShiftRepo struct {
	shift.Repository
	catalog []shift.Definition
}

func (s *stubShiftRepo) List(ctx context.Context) ([]shift.Definition, error) {
	return s.catalog, nil
}

func clockPtr(v string) *string { return &v }

func jobCatalog() []shift.Definition {
	return []shift.Definition{
		{
			Code:         "MORNING",
			Name:         "Morning",
			StartTime:    "08:00",
			EndTime:      "17:00",
			IsSplitShift: true,
			BreakStart:   clockPtr("12:00"),
			BreakEnd:     clockPtr("13:00"),
		},
		{Code: "EVENING", Name: "Evening", StartTime: "14:00", EndTime: "22:00"},
	}
}

func staleLog(checkIn, shiftCode string) attendance.Log {
	return attendance.Log{
		ID:           "log-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Ana Wijaya",
		Date:         time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		CheckIn:      checkIn,
		Status:       attendance.StatusPresent,
		ShiftCode:    shiftCode,
	}
}

func midnightJobs(repo *stubAttendanceRepo, shifts *stubShiftRepo) *AttendanceJobs {
	jobs := NewAttendanceJobs(repo, shifts, time.UTC)
	jobs.now = func() time.Time {
		return time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC)
	}
	return jobs
}

func TestAutoCloseStaleLogsClosesAtShiftEnd(t *testing.T) {
	repo := &stubAttendanceRepo{stale: []attendance.Log{staleLog("08:00", "MORNING")}}
	jobs := midnightJobs(repo, &stubShiftRepo{catalog: jobCatalog()})

	if err := jobs.AutoCloseStaleLogs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one closed log, got %d", len(repo.updated))
	}

	closed := repo.updated[0]
	if closed.CheckOut == nil || *closed.CheckOut != "17:00" {
		t.Errorf("expected check-out at the scheduled end, got %v", closed.CheckOut)
	}
	if closed.TotalHours != 8.0 {
		t.Errorf("expected 8.0 hours after the break deduction, got %v", closed.TotalHours)
	}
}

func TestAutoCloseStaleLogsCheckInPastShiftEnd(t *testing.T) {
	// Checked in at 23:50 against a shift that ended at 22:00. Closing at the
	// scheduled end would look like an overnight span and credit ~22 hours;
	// the log must close at the check-in clock with zero hours instead.
	repo := &stubAttendanceRepo{stale: []attendance.Log{staleLog("23:50", "EVENING")}}
	jobs := midnightJobs(repo, &stubShiftRepo{catalog: jobCatalog()})

	if err := jobs.AutoCloseStaleLogs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one closed log, got %d", len(repo.updated))
	}

	closed := repo.updated[0]
	if closed.CheckOut == nil || *closed.CheckOut != "23:50" {
		t.Errorf("expected check-out at the check-in clock, got %v", closed.CheckOut)
	}
	if closed.TotalHours != 0 {
		t.Errorf("expected zero hours, got %v", closed.TotalHours)
	}
}

func TestAutoCloseStaleLogsUnknownShiftClosesAtCheckIn(t *testing.T) {
	repo := &stubAttendanceRepo{stale: []attendance.Log{staleLog("09:15", "GHOST")}}
	jobs := midnightJobs(repo, &stubShiftRepo{catalog: jobCatalog()})

	if err := jobs.AutoCloseStaleLogs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updated) != 1 {
		t.Fatalf("expected one closed log, got %d", len(repo.updated))
	}

	closed := repo.updated[0]
	if closed.CheckOut == nil || *closed.CheckOut != "09:15" {
		t.Errorf("expected check-out at the check-in clock, got %v", closed.CheckOut)
	}
	if closed.TotalHours != 0 {
		t.Errorf("expected zero hours, got %v", closed.TotalHours)
	}
}

func TestAutoCloseStaleLogsOnlyRunsAfterMidnight(t *testing.T) {
	repo := &stubAttendanceRepo{stale: []attendance.Log{staleLog("08:00", "MORNING")}}
	jobs := NewAttendanceJobs(repo, &stubShiftRepo{catalog: jobCatalog()}, time.UTC)
	jobs.now = func() time.Time {
		return time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	}

	if err := jobs.AutoCloseStaleLogs(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.updated) != 0 {
		t.Errorf("expected no mutation outside the first hour of the day, got %d", len(repo.updated))
	}
}

func TestRegisteredJobsRunViaScheduler(t *testing.T) {
	repo := &stubAttendanceRepo{stale: []attendance.Log{staleLog("08:00", "MORNING")}}
	jobs := midnightJobs(repo, &stubShiftRepo{catalog: jobCatalog()})

	s := NewScheduler()
	jobs.RegisterJobs(s)
	s.RunOnce(context.Background())

	if len(repo.updated) != 1 {
		t.Errorf("expected the registered job to close the stale log, got %d updates", len(repo.updated))
	}
}
