package attendance

import (
	"context"
)

// Service defines business logic for attendance reconciliation.
type Service interface {
	// ProcessEvent reconciles one verified-identity event into a check-in or
	// check-out and returns the display summary
	ProcessEvent(ctx context.Context, req VerifiedEventRequest) (EventResult, error)

	// ListLogs retrieves attendance logs with filters (admin)
	ListLogs(ctx context.Context, filter ListFilter) (ListLogResponse, error)

	// GetLog retrieves a single attendance log by ID
	GetLog(ctx context.Context, id string) (LogResponse, error)
}
