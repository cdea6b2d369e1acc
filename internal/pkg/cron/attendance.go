package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
	attendanceService "github.com/restolab/staffpoint-backend-go/internal/service/attendance"
)

// AttendanceJobs closes logs that were left open past their day: an employee
// who never checked out gets their log closed at the scheduled shift end.
type AttendanceJobs struct {
	attendanceRepo attendance.Repository
	shiftRepo      shift.Repository
	location       *time.Location
	now            func() time.Time
}

func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	shiftRepo shift.Repository,
	location *time.Location,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		shiftRepo:      shiftRepo,
		location:       location,
		now:            time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_logs", 1*time.Hour, j.AutoCloseStaleLogs)
}

func (j *AttendanceJobs) AutoCloseStaleLogs(ctx context.Context) error {
	nowLocal := j.now().In(j.location)

	// Only run in the first hour of the business day
	if nowLocal.Hour() != 0 {
		return nil
	}

	today := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, j.location)

	stale, err := j.attendanceRepo.FindOpenBefore(ctx, today)
	if err != nil {
		return fmt.Errorf("failed to find stale open logs: %w", err)
	}

	if len(stale) == 0 {
		slog.Info("Cron: no stale open logs found")
		return nil
	}

	catalog, err := j.shiftRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to load shift catalog: %w", err)
	}

	closedCount := 0
	for _, log := range stale {
		// Close at the scheduled shift end. When the shift is unknown, or the
		// check-in already postdates the scheduled end, close at the check-in
		// clock with zero hours instead: feeding an end earlier than the
		// check-in into CheckOutAt would trip its overnight correction and
		// credit nearly a full day.
		endClock := log.CheckIn
		endMinutes, perr := shift.MinutesOfClock(log.CheckIn)
		if perr != nil {
			endMinutes = 0
		}
		if def, ok := shift.Lookup(log.ShiftCode, catalog); ok && perr == nil && endMinutes <= def.EndMinutes() {
			endClock = def.EndTime
			endMinutes = def.EndMinutes()
		}

		closed, err := attendanceService.CheckOutAt(log, endMinutes, catalog)
		if err != nil {
			slog.Error("Cron: failed to close stale log",
				"log_id", log.ID,
				"employee_id", log.EmployeeID,
				"error", err)
			continue
		}
		closed.CheckOut = &endClock

		if err := j.attendanceRepo.Update(ctx, closed); err != nil {
			slog.Error("Cron: failed to update stale log",
				"log_id", log.ID,
				"employee_id", log.EmployeeID,
				"error", err)
			continue
		}
		closedCount++
	}

	slog.Info("Cron: auto-closed stale logs", "count", closedCount)
	return nil
}
