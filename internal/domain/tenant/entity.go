package tenant

import (
	"time"

	"github.com/shopspring/decimal"
)

type Tenant struct {
	ID        string
	Name      string
	Username  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PayPeriodCadence describes how often a tenant runs payroll.
type PayPeriodCadence string

const (
	CadenceWeekly      PayPeriodCadence = "weekly"
	CadenceFortnightly PayPeriodCadence = "fortnightly"
	CadenceMonthly     PayPeriodCadence = "monthly"
)

// PayrollPolicy is tenant configuration consumed by payroll computation.
// The engine reads it, never writes it mid-calculation.
type PayrollPolicy struct {
	ID                     string
	TenantID               string
	OvertimeMultiplier     decimal.Decimal
	OvertimeThresholdHours decimal.Decimal
	OvertimeResetsWeekly   bool
	Cadence                PayPeriodCadence
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// DefaultPayrollPolicy builds the fallback policy applied when a tenant has
// not configured one. Multiplier and threshold come from deployment
// configuration; the fallback always resets overtime weekly. TenantID is
// filled in by the caller at the point of use.
func DefaultPayrollPolicy(multiplier, thresholdHours decimal.Decimal) PayrollPolicy {
	return PayrollPolicy{
		OvertimeMultiplier:     multiplier,
		OvertimeThresholdHours: thresholdHours,
		OvertimeResetsWeekly:   true,
		Cadence:                CadenceWeekly,
	}
}
