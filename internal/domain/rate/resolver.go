package rate

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resolve returns the hourly rate effective on target, given a history
// sorted ascending by EffectiveDate. Callers guarantee the ordering; the
// resolver does not sort so batch callers can reuse one sorted slice across
// many dates.
//
// Returns nil when no record is effective on or before target. A nil rate
// means "rate unknown" and must never be defaulted to zero by callers.
func Resolve(history []Record, target time.Time) *decimal.Decimal {
	var resolved *decimal.Decimal
	for i := range history {
		if history[i].EffectiveDate.After(target) {
			// History is sorted, nothing later can apply.
			break
		}
		resolved = &history[i].HourlyRate
	}
	return resolved
}
