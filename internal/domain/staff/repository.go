package staff

import "context"

// StaffRepository defines data access methods for the staff roster.
// All methods include tenantID to prevent cross-tenant data access.
type StaffRepository interface {
	GetByID(ctx context.Context, id string, tenantID string) (Staff, error)
	GetActiveByTenantID(ctx context.Context, tenantID string) ([]Staff, error)
	GetRoleIDs(ctx context.Context, staffID string, tenantID string) ([]string, error)
}
