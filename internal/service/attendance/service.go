package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/employee"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/keylock"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/sse"
	"github.com/restolab/staffpoint-backend-go/internal/repository/postgresql"
	"github.com/restolab/staffpoint-backend-go/internal/service/geofence"
)

// TopicAttendance is the SSE topic reconciliation summaries are published on.
const TopicAttendance = "attendance"

type ServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	shiftRepo      shift.Repository
	site           geofence.Site
	graceMinutes   int
	location       *time.Location
	locks          *keylock.KeyedMutex
	hub            *sse.Hub
	now            func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
	shiftRepo shift.Repository,
	site geofence.Site,
	graceMinutes int,
	location *time.Location,
	hub *sse.Hub,
) attendance.Service {
	return &ServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		shiftRepo:      shiftRepo,
		site:           site,
		graceMinutes:   graceMinutes,
		location:       location,
		locks:          keylock.New(),
		hub:            hub,
		now:            time.Now,
	}
}

// ProcessEvent implements attendance.Service.
func (s *ServiceImpl) ProcessEvent(ctx context.Context, req attendance.VerifiedEventRequest) (attendance.EventResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResult{}, err
	}

	if !req.Verified {
		return attendance.EventResult{}, attendance.ErrVerificationRejected
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.EventResult{}, employee.ErrEmployeeNotFound
		}
		return attendance.EventResult{}, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if !emp.IsActive {
		return attendance.EventResult{}, employee.ErrEmployeeInactive
	}

	if req.Method == attendance.MethodGeoPresence {
		if req.Latitude == nil || req.Longitude == nil {
			return attendance.EventResult{}, attendance.ErrGeofenceUnavailable
		}
		if geofence.Validate(*req.Latitude, *req.Longitude, s.site) != geofence.StatusValid {
			return attendance.EventResult{}, attendance.ErrOutsideAllowedRadius
		}
	}

	catalog, err := s.shiftRepo.List(ctx)
	if err != nil {
		return attendance.EventResult{}, fmt.Errorf("failed to load shift catalog: %w", err)
	}

	nowLocal := s.now().In(s.location)
	day := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.location)

	// The read-then-write sequence below must be atomic per (employee, day);
	// a duplicate submission racing this one would otherwise observe the same
	// record state and produce a second conflicting mutation.
	unlock := s.locks.Lock(emp.ID + "@" + day.Format("2006-01-02"))
	defer unlock()

	var decision Decision
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		existing, err := s.attendanceRepo.FindByEmployeeAndDate(txCtx, emp.ID, day)
		if err != nil {
			return fmt.Errorf("failed to read today's log: %w", err)
		}

		snap := Snapshot{Catalog: catalog, GraceMinutes: s.graceMinutes}
		decision, err = Reconcile(snap, emp, nowLocal, req.Method, existing)
		if err != nil {
			return err
		}

		switch decision.Action {
		case ActionCreate:
			if _, err := s.attendanceRepo.Create(txCtx, decision.Log); err != nil {
				return fmt.Errorf("failed to create attendance log: %w", err)
			}
		case ActionUpdate:
			if err := s.attendanceRepo.Update(txCtx, decision.Log); err != nil {
				return fmt.Errorf("failed to update attendance log: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return attendance.EventResult{}, err
	}

	if s.hub != nil {
		s.hub.Publish(TopicAttendance, sse.Event{
			Topic: TopicAttendance,
			Event: "attendance_result",
			Data:  decision.Result,
		})
	}

	return decision.Result, nil
}

// ListLogs implements attendance.Service.
func (s *ServiceImpl) ListLogs(ctx context.Context, filter attendance.ListFilter) (attendance.ListLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListLogResponse{}, err
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	logs, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListLogResponse{}, fmt.Errorf("failed to list attendance logs: %w", err)
	}

	responses := make([]attendance.LogResponse, 0, len(logs))
	for _, log := range logs {
		responses = append(responses, mapLogToResponse(log))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))

	return attendance.ListLogResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Logs:       responses,
	}, nil
}

// GetLog implements attendance.Service.
func (s *ServiceImpl) GetLog(ctx context.Context, id string) (attendance.LogResponse, error) {
	log, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrLogNotFound) {
			return attendance.LogResponse{}, attendance.ErrLogNotFound
		}
		return attendance.LogResponse{}, fmt.Errorf("failed to get attendance log: %w", err)
	}

	return mapLogToResponse(log), nil
}

func mapLogToResponse(log attendance.Log) attendance.LogResponse {
	return attendance.LogResponse{
		ID:           log.ID,
		EmployeeID:   log.EmployeeID,
		EmployeeName: log.EmployeeName,
		Date:         log.Date.Format("2006-01-02"),
		CheckIn:      log.CheckIn,
		CheckOut:     log.CheckOut,
		TotalHours:   log.TotalHours,
		Status:       string(log.Status),
		LateMinutes:  log.LateMinutes,
		Method:       log.Method,
		ShiftCode:    log.ShiftCode,
	}
}
