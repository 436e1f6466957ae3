package rate

import "errors"

var (
	ErrRateRecordNotFound  = errors.New("rate record not found")
	ErrRateRecordImmutable = errors.New("rate record is historical and cannot be deleted")
	ErrNegativeRate        = errors.New("hourly rate must be non-negative")
)
