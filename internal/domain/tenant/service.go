package tenant

import "context"

// TenantService exposes per-tenant payroll configuration. Tenant scope
// comes from JWT claims on the context.
type TenantService interface {
	GetPayrollPolicy(ctx context.Context) (PayrollPolicyResponse, error)
	UpdatePayrollPolicy(ctx context.Context, req UpdatePayrollPolicyRequest) (PayrollPolicyResponse, error)
}
