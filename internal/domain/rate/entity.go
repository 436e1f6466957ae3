package rate

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one entry in a staff member's append-only wage rate history.
// The applicable rate for a date is the latest record effective on or
// before that date.
type Record struct {
	ID            string
	TenantID      string
	StaffID       string
	HourlyRate    decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
}
