package payrun

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayRun is a point-in-time snapshot computation of gross pay for one
// tenant over one contiguous pay period, moving through an approval
// lifecycle. Totals are frozen from included lines at approval.
type PayRun struct {
	ID            string
	TenantID      string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Status        Status
	TotalHours    decimal.Decimal
	TotalGrossPay decimal.Decimal
	StaffCount    int
	CreatedBy     string
	ApprovedBy    *string
	ApprovedAt    *time.Time
	FinalisedBy   *string
	FinalisedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LineStatus marks whether a line contributes to run totals. Excluded
// lines are kept for audit visibility but never counted.
type LineStatus string

const (
	LineStatusIncluded LineStatus = "included"
	LineStatusExcluded LineStatus = "excluded"
)

// Line is one staff member's computed pay within a run. HourlyRate and
// OvertimeRate are nil when no rate could be resolved for the period;
// such lines carry zero pay and are excluded rather than silently priced
// at zero.
type Line struct {
	ID               string
	PayRunID         string
	StaffID          string
	EmployeeNumber   string
	StaffName        string
	RegularHours     decimal.Decimal
	OvertimeHours    decimal.Decimal
	TotalHours       decimal.Decimal
	HourlyRate       *decimal.Decimal
	OvertimeRate     *decimal.Decimal
	RegularPay       decimal.Decimal
	OvertimePay      decimal.Decimal
	Adjustments      decimal.Decimal
	AdjustmentReason *string
	GrossPay         decimal.Decimal
	Status           LineStatus
	TimesheetIDs     []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Change is one immutable audit record. Every mutation to a run or line
// after creation appends exactly one Change per field changed; records are
// never updated or deleted.
type Change struct {
	ID           string
	PayRunID     string
	PayRunLineID *string
	FieldChanged string
	OldValue     string
	NewValue     string
	Reason       *string
	ChangedBy    string
	CreatedAt    time.Time
}
