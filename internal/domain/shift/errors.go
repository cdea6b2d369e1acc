package shift

import "errors"

// Shift catalog domain errors
var (
	ErrShiftNotFound   = errors.New("shift definition not found")
	ErrShiftCodeExists = errors.New("shift code already exists")
)
