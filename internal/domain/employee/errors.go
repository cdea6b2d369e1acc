package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found in the roster")
	ErrEmployeeInactive = errors.New("employee is no longer active")
)
