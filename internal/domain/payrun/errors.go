package payrun

import "errors"

var (
	ErrPayRunNotFound     = errors.New("pay run not found")
	ErrPayRunLineNotFound = errors.New("pay run line not found")
	ErrPayRunOverlaps     = errors.New("a pay run already exists for an overlapping period")
	ErrPayRunNotDraft     = errors.New("only draft pay runs can be deleted")
	ErrPayRunNotEditable  = errors.New("pay run is approved or finalised and can no longer be edited")
	ErrNoEligibleStaff    = errors.New("no staff with eligible hours in the period")
	ErrAuditWriteFailed   = errors.New("audit record could not be written")
)
