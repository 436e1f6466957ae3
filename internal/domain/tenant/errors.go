package tenant

import "errors"

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrPayrollPolicyNotFound = errors.New("payroll policy not found")
)
