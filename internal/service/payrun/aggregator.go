package payrun

import (
	"fmt"

	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// HoursSummary is the reduction of one staff member's time records for a
// pay period, split into regular and overtime buckets.
type HoursSummary struct {
	RegularHours    decimal.Decimal
	OvertimeHours   decimal.Decimal
	TotalHours      decimal.Decimal
	TimesheetIDs    []string
	UnapprovedCount int
}

// Aggregate reduces timesheet entries to payable hours. Only approved
// entries are summed; draft and submitted entries are counted into
// UnapprovedCount so callers can surface that the numbers may be
// incomplete. The caller guarantees entries fall within the pay period and
// are sorted ascending by date.
//
// Hours past the policy threshold are overtime. With OvertimeResetsWeekly
// the threshold applies per ISO week, otherwise once across the whole
// period.
func Aggregate(entries []timesheet.Entry, policy tenant.PayrollPolicy) HoursSummary {
	summary := HoursSummary{
		RegularHours:  decimal.Zero,
		OvertimeHours: decimal.Zero,
		TotalHours:    decimal.Zero,
	}

	// Running total per overtime bucket. A single "" bucket covers the
	// whole-period policy.
	buckets := make(map[string]decimal.Decimal)

	for _, e := range entries {
		if e.Status != timesheet.StatusApproved {
			summary.UnapprovedCount++
			continue
		}

		bucket := ""
		if policy.OvertimeResetsWeekly {
			year, week := e.Date.ISOWeek()
			bucket = fmt.Sprintf("%d-W%02d", year, week)
		}

		before := buckets[bucket]
		after := before.Add(e.Hours)
		buckets[bucket] = after

		regular, overtime := splitAgainstThreshold(before, e.Hours, policy.OvertimeThresholdHours)
		summary.RegularHours = summary.RegularHours.Add(regular)
		summary.OvertimeHours = summary.OvertimeHours.Add(overtime)
		summary.TotalHours = summary.TotalHours.Add(e.Hours)
		summary.TimesheetIDs = append(summary.TimesheetIDs, e.ID)
	}

	return summary
}

// splitAgainstThreshold splits one entry's hours given the bucket total
// already accumulated before it.
func splitAgainstThreshold(accumulated, hours, threshold decimal.Decimal) (regular, overtime decimal.Decimal) {
	if accumulated.GreaterThanOrEqual(threshold) {
		return decimal.Zero, hours
	}
	headroom := threshold.Sub(accumulated)
	if hours.LessThanOrEqual(headroom) {
		return hours, decimal.Zero
	}
	return headroom, hours.Sub(headroom)
}
