package timesheet

import "errors"

var (
	ErrEntryNotFound = errors.New("timesheet entry not found")
)
