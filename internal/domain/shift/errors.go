package shift

import "errors"

var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftCancelled     = errors.New("shift is cancelled")
	ErrReassignNotAllowed = errors.New("shift reassignment not allowed")
)
