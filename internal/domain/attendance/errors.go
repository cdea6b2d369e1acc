package attendance

import "errors"

// Attendance domain errors
var (
	// Reconciliation errors: pure decisions, no mutation produced
	ErrDuplicateClose       = errors.New("attendance for today is already closed")
	ErrVerificationRejected = errors.New("identity verification was rejected")

	// Geofence errors: an unavailable position is not the same as an
	// out-of-radius one and must never pass as valid
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrGeofenceUnavailable  = errors.New("current position is unavailable")

	// General errors
	ErrLogNotFound = errors.New("attendance record not found")
)
