package tenant

import (
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdatePayrollPolicyRequest struct {
	OvertimeMultiplier     decimal.Decimal `json:"overtime_multiplier"`
	OvertimeThresholdHours decimal.Decimal `json:"overtime_threshold_hours"`
	OvertimeResetsWeekly   bool            `json:"overtime_resets_weekly"`
	Cadence                string          `json:"cadence"`
}

func (r *UpdatePayrollPolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OvertimeMultiplier.LessThan(decimal.NewFromInt(1)) {
		errs = append(errs, validator.ValidationError{Field: "overtime_multiplier", Message: "must be at least 1"})
	}
	if r.OvertimeThresholdHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_threshold_hours", Message: "must be non-negative"})
	}
	cadences := []string{string(CadenceWeekly), string(CadenceFortnightly), string(CadenceMonthly)}
	if !validator.IsInSlice(r.Cadence, cadences) {
		errs = append(errs, validator.ValidationError{Field: "cadence", Message: "must be 'weekly', 'fortnightly' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollPolicyResponse struct {
	TenantID               string          `json:"tenant_id"`
	OvertimeMultiplier     decimal.Decimal `json:"overtime_multiplier"`
	OvertimeThresholdHours decimal.Decimal `json:"overtime_threshold_hours"`
	OvertimeResetsWeekly   bool            `json:"overtime_resets_weekly"`
	Cadence                string          `json:"cadence"`
	// Default is true when the tenant has no stored policy and the
	// built-in fallback applies.
	Default bool `json:"default"`
}
