package response

import (
	"errors"
	"net/http"

	"github.com/restolab/staffpoint-backend-go/internal/domain/attendance"
	"github.com/restolab/staffpoint-backend-go/internal/domain/auth"
	"github.com/restolab/staffpoint-backend-go/internal/domain/employee"
	"github.com/restolab/staffpoint-backend-go/internal/domain/shift"
	"github.com/restolab/staffpoint-backend-go/internal/domain/user"
	"github.com/restolab/staffpoint-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateClose):
		Error(w, http.StatusConflict, "DUPLICATE_CLOSE", "Attendance for today is already closed")
	case errors.Is(err, attendance.ErrVerificationRejected):
		Error(w, http.StatusForbidden, "VERIFICATION_REJECTED", "Identity verification was rejected")
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		Error(w, http.StatusForbidden, "GEOFENCE_INVALID", "Position is outside the allowed radius")
	case errors.Is(err, attendance.ErrGeofenceUnavailable):
		Error(w, http.StatusServiceUnavailable, "GEOFENCE_ERROR", "Location could not be determined")
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		Error(w, http.StatusNotFound, "EMPLOYEE_NOT_FOUND", "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is no longer active")

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftCodeExists):
		Conflict(w, "Shift code already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
