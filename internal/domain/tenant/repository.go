package tenant

import "context"

type TenantRepository interface {
	GetByID(ctx context.Context, id string) (Tenant, error)
	GetPayrollPolicy(ctx context.Context, tenantID string) (PayrollPolicy, error)
	UpsertPayrollPolicy(ctx context.Context, policy PayrollPolicy) (PayrollPolicy, error)
}
