package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance logs.
//
// The read-then-write sequence across one (employee, day) key is serialized
// by the attendance service; implementations only need the day's uniqueness
// constraint, not their own locking.
type Repository interface {
	// Create inserts the day's log. The (employee_id, date) pair is unique.
	Create(ctx context.Context, log Log) (Log, error)

	// Update writes the check-out mutation onto an existing log
	Update(ctx context.Context, log Log) error

	// FindByEmployeeAndDate returns the day's log, or nil when the employee
	// has no record yet for that business-local day
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Log, error)

	// GetByID retrieves a log by ID
	GetByID(ctx context.Context, id string) (Log, error)

	// List retrieves logs with filters and pagination
	List(ctx context.Context, filter ListFilter) ([]Log, int64, error)

	// FindOpenBefore returns logs still open on days before the given one,
	// used by the nightly auto-close job
	FindOpenBefore(ctx context.Context, day time.Time) ([]Log, error)
}
