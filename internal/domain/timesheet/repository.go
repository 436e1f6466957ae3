package timesheet

import (
	"context"
	"time"
)

// TimesheetRepository defines data access methods for timesheet entries.
// All methods include tenantID to prevent cross-tenant data access.
type TimesheetRepository interface {
	// GetByStaffIDsInPeriod loads all entries (any status) for the staff set
	// with date inside [periodStart, periodEnd] inclusive, grouped per staff
	// and sorted ascending by date. The payroll aggregator decides which
	// statuses count.
	GetByStaffIDsInPeriod(ctx context.Context, tenantID string, staffIDs []string, periodStart, periodEnd time.Time) (map[string][]Entry, error)
}
