package shift

import "time"

type Shift struct {
	ID        string
	TenantID  string
	StaffID   string
	RoleID    *string
	StartTime time.Time
	EndTime   time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// AvailabilityWindow is one recurring slot in a staff member's availability
// calendar. DayOfWeek follows time.Weekday (0=Sunday). Minutes are measured
// from midnight local to the tenant.
type AvailabilityWindow struct {
	StaffID      string
	DayOfWeek    time.Weekday
	StartMinutes int
	EndMinutes   int
}
