package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access methods for shifts.
// All methods include tenantID to prevent cross-tenant data access.
type ShiftRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Shift, error)
	GetByTenantInWindow(ctx context.Context, tenantID string, from, to time.Time) ([]Shift, error)
	GetAvailabilityByTenant(ctx context.Context, tenantID string) ([]AvailabilityWindow, error)
	UpdateStaffAssignment(ctx context.Context, id string, tenantID string, staffID string) (Shift, error)
	RoleExists(ctx context.Context, roleID string, tenantID string) (bool, error)
}
