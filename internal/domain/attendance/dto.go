package attendance

import (
	"github.com/restolab/staffpoint-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// VerifiedEventRequest is an identity event from any channel. The upstream
// verification step attests its outcome in Verified; the kiosk reports
// rejections too, so they surface on the dashboard instead of vanishing at
// the device.
type VerifiedEventRequest struct {
	EmployeeID string   `json:"employee_id"`
	Method     string   `json:"method"`
	Verified   bool     `json:"verified"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

var allowedMethods = []string{MethodFace, MethodGeoPresence, MethodKiosk}

func (r *VerifiedEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsInSlice(r.Method, allowedMethods) {
		errs = append(errs, validator.ValidationError{
			Field:   "method",
			Message: "method must be one of FACE, GEO_PRESENCE, KIOSK",
		})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	EmployeeID *string
	StartDate  *string
	EndDate    *string
	Status     *string
	Page       int
	Limit      int
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil && *f.Status != "" {
		statuses := []string{string(StatusPresent), string(StatusLate), string(StatusEarlyLeave)}
		if !validator.IsInSlice(*f.Status, statuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of PRESENT, LATE, EARLY_LEAVE",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LogResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
	LateMinutes  int     `json:"late_minutes"`
	Method       string  `json:"method"`
	ShiftCode    string  `json:"shift_code"`
}

type ListLogResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
	Logs       []LogResponse `json:"logs"`
}
