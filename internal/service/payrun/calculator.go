package payrun

import (
	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/shopspring/decimal"
)

// ComputeLine combines a staff member's aggregated hours with their
// resolved rate into a pay run line. A nil rate means the rate could not
// be resolved for the period: the line is still produced, with zero pay
// and excluded status, so the gap is visible to operators instead of
// being priced as free labor.
func ComputeLine(st staff.Staff, hours HoursSummary, rate *decimal.Decimal, policy tenant.PayrollPolicy) payrun.Line {
	line := payrun.Line{
		StaffID:        st.ID,
		EmployeeNumber: st.EmployeeNumber,
		StaffName:      st.FullName,
		RegularHours:   hours.RegularHours,
		OvertimeHours:  hours.OvertimeHours,
		TotalHours:     hours.TotalHours,
		Adjustments:    decimal.Zero,
		TimesheetIDs:   hours.TimesheetIDs,
	}

	if rate == nil {
		line.RegularPay = decimal.Zero
		line.OvertimePay = decimal.Zero
		line.GrossPay = decimal.Zero
		line.Status = payrun.LineStatusExcluded
		return line
	}

	overtimeRate := rate.Mul(policy.OvertimeMultiplier)
	line.HourlyRate = rate
	line.OvertimeRate = &overtimeRate
	line.RegularPay = hours.RegularHours.Mul(*rate)
	line.OvertimePay = hours.OvertimeHours.Mul(overtimeRate)
	line.GrossPay = line.RegularPay.Add(line.OvertimePay).Add(line.Adjustments)
	line.Status = payrun.LineStatusIncluded
	return line
}

// RecomputeGross re-derives a line's gross pay after an edit. The
// gross_pay = regular_pay + overtime_pay + adjustments identity holds for
// every line, always.
func RecomputeGross(line *payrun.Line) {
	if line.HourlyRate != nil {
		line.RegularPay = line.RegularHours.Mul(*line.HourlyRate)
	}
	if line.OvertimeRate != nil {
		line.OvertimePay = line.OvertimeHours.Mul(*line.OvertimeRate)
	}
	line.GrossPay = line.RegularPay.Add(line.OvertimePay).Add(line.Adjustments)
}

// Totals is the frozen roll-up of a run's included lines.
type Totals struct {
	StaffCount    int
	TotalHours    decimal.Decimal
	TotalGrossPay decimal.Decimal
	ExcludedCount int
}

// TotalsFromLines sums included lines only. Excluded lines are retained
// for audit visibility but contribute to neither hours nor gross pay nor
// staff count; they are reported separately as ExcludedCount.
func TotalsFromLines(lines []payrun.Line) Totals {
	totals := Totals{
		TotalHours:    decimal.Zero,
		TotalGrossPay: decimal.Zero,
	}
	for _, line := range lines {
		if line.Status != payrun.LineStatusIncluded {
			totals.ExcludedCount++
			continue
		}
		totals.StaffCount++
		totals.TotalHours = totals.TotalHours.Add(line.TotalHours)
		totals.TotalGrossPay = totals.TotalGrossPay.Add(line.GrossPay)
	}
	return totals
}
