package shift

import (
	"github.com/restolab/staffpoint-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT CATALOG DTOs
// ========================================

type UpsertShiftRequest struct {
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsSplitShift bool    `json:"is_split_shift"`
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
}

func (r *UpsertShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.IsSplitShift {
		switch {
		case r.BreakStart == nil || r.BreakEnd == nil:
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "split shift requires both break_start and break_end",
			})
		case !validator.IsValidClock(*r.BreakStart) || !validator.IsValidClock(*r.BreakEnd):
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break window must be in HH:MM format",
			})
		default:
			bs, _ := MinutesOfClock(*r.BreakStart)
			be, _ := MinutesOfClock(*r.BreakEnd)
			if bs >= be {
				errs = append(errs, validator.ValidationError{
					Field:   "break_end",
					Message: "break_end must be after break_start",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ShiftResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	IsSplitShift bool    `json:"is_split_shift"`
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
}

type ListShiftResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}
