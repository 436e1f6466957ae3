package payrun

import (
	"github.com/rosterly/rosterly-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== PREVIEW / CREATE DTOs ==========

type PeriodRequest struct {
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`
}

func (r *PeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PayPeriodStart) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.PayPeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.PayPeriodEnd) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.PayPeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be an ISO date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return errs
	}

	if _, _, ok := validator.ParseDateRange(r.PayPeriodStart, r.PayPeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must not precede pay_period_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PreviewResponse struct {
	StaffCount      int             `json:"staff_count"`
	TotalHours      decimal.Decimal `json:"total_hours"`
	EstimatedGross  decimal.Decimal `json:"estimated_gross"`
	UnapprovedCount int             `json:"unapproved_count"`
	ExcludedCount   int             `json:"excluded_count"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
}

// ========== LINE EDIT DTOs ==========

type UpdateLineRequest struct {
	ID               string
	PayRunID         string
	Adjustments      *decimal.Decimal `json:"adjustments,omitempty"`
	AdjustmentReason *string          `json:"adjustment_reason,omitempty"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate,omitempty"`
	Status           *string          `json:"status,omitempty"`
	Reason           *string          `json:"reason,omitempty"`
}

func (r *UpdateLineRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.Status != nil && *r.Status != string(LineStatusIncluded) && *r.Status != string(LineStatusExcluded) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'included' or 'excluded'"})
	}
	if r.Adjustments == nil && r.AdjustmentReason == nil && r.HourlyRate == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{Field: "body", Message: "at least one field must be provided"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== RESPONSES ==========

type PayRunResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	PeriodStart   string          `json:"pay_period_start"`
	PeriodEnd     string          `json:"pay_period_end"`
	Status        string          `json:"status"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalGrossPay decimal.Decimal `json:"total_gross_pay"`
	StaffCount    int             `json:"staff_count"`
	ExcludedCount int             `json:"excluded_count"`
	CreatedBy     string          `json:"created_by"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
	ApprovedAt    *string         `json:"approved_at,omitempty"`
	FinalisedBy   *string         `json:"finalised_by,omitempty"`
	FinalisedAt   *string         `json:"finalised_at,omitempty"`
	Lines         []LineResponse  `json:"lines,omitempty"`
}

type LineResponse struct {
	ID               string           `json:"id"`
	StaffID          string           `json:"staff_id"`
	EmployeeNumber   string           `json:"employee_number"`
	StaffName        string           `json:"staff_name"`
	RegularHours     decimal.Decimal  `json:"regular_hours"`
	OvertimeHours    decimal.Decimal  `json:"overtime_hours"`
	TotalHours       decimal.Decimal  `json:"total_hours"`
	HourlyRate       *decimal.Decimal `json:"hourly_rate"`
	OvertimeRate     *decimal.Decimal `json:"overtime_rate"`
	RegularPay       decimal.Decimal  `json:"regular_pay"`
	OvertimePay      decimal.Decimal  `json:"overtime_pay"`
	Adjustments      decimal.Decimal  `json:"adjustments"`
	AdjustmentReason *string          `json:"adjustment_reason,omitempty"`
	GrossPay         decimal.Decimal  `json:"gross_pay"`
	Status           string           `json:"status"`
	TimesheetIDs     []string         `json:"timesheet_ids,omitempty"`
}

type ChangeResponse struct {
	ID           string  `json:"id"`
	PayRunID     string  `json:"pay_run_id"`
	PayRunLineID *string `json:"pay_run_line_id,omitempty"`
	FieldChanged string  `json:"field_changed"`
	OldValue     string  `json:"old_value"`
	NewValue     string  `json:"new_value"`
	Reason       *string `json:"reason,omitempty"`
	ChangedBy    string  `json:"changed_by"`
	CreatedAt    string  `json:"created_at"`
}

type Filter struct {
	Status *string
	Year   *int
	Page   int
	Limit  int
}

type ListPayRunResponse struct {
	Data       []PayRunResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
