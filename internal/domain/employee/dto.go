package employee

import (
	"github.com/restolab/staffpoint-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName string  `json:"full_name"`
	Position *string `json:"position,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"full_name,omitempty"`
	Position *string `json:"position,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	FullName string  `json:"full_name"`
	Position *string `json:"position,omitempty"`
	IsActive bool    `json:"is_active"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
