package payrun

import (
	"testing"
	"time"

	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func entry(id string, day time.Time, hoursStr string, status timesheet.Status) timesheet.Entry {
	return timesheet.Entry{
		ID:      id,
		StaffID: "s1",
		Date:    day,
		Hours:   dec(hoursStr),
		Status:  status,
	}
}

func weeklyPolicy(thresholdStr string) tenant.PayrollPolicy {
	return tenant.PayrollPolicy{
		OvertimeMultiplier:     dec("1.5"),
		OvertimeThresholdHours: dec(thresholdStr),
		OvertimeResetsWeekly:   true,
	}
}

func TestAggregate_OnlyApprovedEntriesCount(t *testing.T) {
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	entries := []timesheet.Entry{
		entry("t1", monday, "8", timesheet.StatusApproved),
		entry("t2", monday.AddDate(0, 0, 1), "8", timesheet.StatusSubmitted),
		entry("t3", monday.AddDate(0, 0, 2), "8", timesheet.StatusDraft),
	}

	got := Aggregate(entries, weeklyPolicy("40"))

	assert.True(t, got.TotalHours.Equal(dec("8")), "total = %s", got.TotalHours)
	assert.True(t, got.RegularHours.Equal(dec("8")))
	assert.True(t, got.OvertimeHours.IsZero())
	assert.Equal(t, 2, got.UnapprovedCount)
	assert.Equal(t, []string{"t1"}, got.TimesheetIDs)
}

func TestAggregate_OvertimeSplitWholePeriod(t *testing.T) {
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	policy := tenant.PayrollPolicy{
		OvertimeMultiplier:     dec("1.5"),
		OvertimeThresholdHours: dec("40"),
		OvertimeResetsWeekly:   false,
	}

	var entries []timesheet.Entry
	for i := 0; i < 6; i++ {
		entries = append(entries, entry("t"+string(rune('a'+i)), monday.AddDate(0, 0, i), "8", timesheet.StatusApproved))
	}

	got := Aggregate(entries, policy)

	assert.True(t, got.TotalHours.Equal(dec("48")))
	assert.True(t, got.RegularHours.Equal(dec("40")))
	assert.True(t, got.OvertimeHours.Equal(dec("8")))
}

func TestAggregate_OvertimeSplitsMidEntry(t *testing.T) {
	monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	entries := []timesheet.Entry{
		entry("t1", monday, "38", timesheet.StatusApproved),
		entry("t2", monday.AddDate(0, 0, 1), "5", timesheet.StatusApproved),
	}

	got := Aggregate(entries, weeklyPolicy("40"))

	assert.True(t, got.RegularHours.Equal(dec("40")), "regular = %s", got.RegularHours)
	assert.True(t, got.OvertimeHours.Equal(dec("3")), "overtime = %s", got.OvertimeHours)
}

func TestAggregate_WeeklyResetStartsNewBucket(t *testing.T) {
	// Two ISO weeks, 45h each: weekly reset gives 5h overtime per week;
	// a whole-period threshold would give 50h overtime total.
	week1Monday := time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC)
	week2Monday := week1Monday.AddDate(0, 0, 7)

	var entries []timesheet.Entry
	for i, monday := range []time.Time{week1Monday, week2Monday} {
		for d := 0; d < 5; d++ {
			id := string(rune('a'+i)) + string(rune('0'+d))
			entries = append(entries, entry(id, monday.AddDate(0, 0, d), "9", timesheet.StatusApproved))
		}
	}

	weekly := Aggregate(entries, weeklyPolicy("40"))
	assert.True(t, weekly.TotalHours.Equal(dec("90")))
	assert.True(t, weekly.RegularHours.Equal(dec("80")), "regular = %s", weekly.RegularHours)
	assert.True(t, weekly.OvertimeHours.Equal(dec("10")), "overtime = %s", weekly.OvertimeHours)

	period := tenant.PayrollPolicy{
		OvertimeMultiplier:     dec("1.5"),
		OvertimeThresholdHours: dec("40"),
		OvertimeResetsWeekly:   false,
	}
	whole := Aggregate(entries, period)
	assert.True(t, whole.OvertimeHours.Equal(dec("50")), "overtime = %s", whole.OvertimeHours)
}

func TestAggregate_EmptyInput(t *testing.T) {
	got := Aggregate(nil, weeklyPolicy("40"))
	assert.True(t, got.TotalHours.IsZero())
	assert.True(t, got.RegularHours.IsZero())
	assert.True(t, got.OvertimeHours.IsZero())
	assert.Empty(t, got.TimesheetIDs)
	assert.Zero(t, got.UnapprovedCount)
}
