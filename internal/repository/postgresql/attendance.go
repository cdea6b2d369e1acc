package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

const logColumns = `
	id, employee_id, employee_name, date, check_in, check_out,
	total_hours, status, late_minutes, method, shift_code,
	created_at, updated_at
`

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, newLog attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, employee_name, date, check_in, check_out,
			total_hours, status, late_minutes, method, shift_code
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	if newLog.ID == "" {
		newLog.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, query,
		newLog.ID,
		newLog.EmployeeID,
		newLog.EmployeeName,
		newLog.Date,
		newLog.CheckIn,
		newLog.CheckOut,
		newLog.TotalHours,
		newLog.Status,
		newLog.LateMinutes,
		newLog.Method,
		newLog.ShiftCode,
	).Scan(&newLog.ID, &newLog.CreatedAt, &newLog.UpdatedAt)

	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return newLog, nil
}

// Update implements attendance.Repository.
func (a *attendanceRepository) Update(ctx context.Context, log attendance.Log) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_logs
		SET check_out = $1, total_hours = $2, status = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query,
		log.CheckOut,
		log.TotalHours,
		log.Status,
		time.Now(),
		log.ID,
	).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrLogNotFound
		}
		return fmt.Errorf("failed to update attendance log: %w", err)
	}

	return nil
}

// FindByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var log attendance.Log
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&log.ID, &log.EmployeeID, &log.EmployeeName, &log.Date, &log.CheckIn, &log.CheckOut,
		&log.TotalHours, &log.Status, &log.LateMinutes, &log.Method, &log.ShiftCode,
		&log.CreatedAt, &log.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record yet today
		}
		return nil, fmt.Errorf("failed to get attendance log by employee and date: %w", err)
	}

	return &log, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE id = $1
	`

	var log attendance.Log
	err := q.QueryRow(ctx, query, id).Scan(
		&log.ID, &log.EmployeeID, &log.EmployeeName, &log.Date, &log.CheckIn, &log.CheckOut,
		&log.TotalHours, &log.Status, &log.LateMinutes, &log.Method, &log.ShiftCode,
		&log.CreatedAt, &log.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Log{}, attendance.ErrLogNotFound
		}
		return attendance.Log{}, fmt.Errorf("failed to get attendance log by ID: %w", err)
	}

	return log, nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Log, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM attendance_logs WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance logs: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance_logs
		WHERE %s
		ORDER BY date DESC, check_in DESC
		LIMIT $%d OFFSET $%d
	`, strings.TrimSpace(logColumns), baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var log attendance.Log
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.EmployeeName, &log.Date, &log.CheckIn, &log.CheckOut,
			&log.TotalHours, &log.Status, &log.LateMinutes, &log.Method, &log.ShiftCode,
			&log.CreatedAt, &log.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, total, nil
}

// FindOpenBefore implements attendance.Repository.
func (a *attendanceRepository) FindOpenBefore(ctx context.Context, day time.Time) ([]attendance.Log, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE check_out IS NULL
		  AND date < $1
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to query open attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var log attendance.Log
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.EmployeeName, &log.Date, &log.CheckIn, &log.CheckOut,
			&log.TotalHours, &log.Status, &log.LateMinutes, &log.Method, &log.ShiftCode,
			&log.CreatedAt, &log.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}
