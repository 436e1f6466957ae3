package rate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func record(staffID string, rateStr string, effective time.Time) Record {
	return Record{
		StaffID:       staffID,
		HourlyRate:    decimal.RequireFromString(rateStr),
		EffectiveDate: effective,
	}
}

func TestResolve_PicksLatestEffectiveOnOrBeforeTarget(t *testing.T) {
	history := []Record{
		record("s1", "15.00", date(2024, time.January, 1)),
		record("s1", "16.50", date(2024, time.June, 1)),
		record("s1", "18.00", date(2025, time.January, 1)),
	}

	cases := []struct {
		name   string
		target time.Time
		want   string
	}{
		{"between first and second", date(2024, time.March, 10), "15.00"},
		{"exactly on second", date(2024, time.June, 1), "16.50"},
		{"after second before third", date(2024, time.December, 31), "16.50"},
		{"after all", date(2026, time.July, 4), "18.00"},
		{"exactly on first", date(2024, time.January, 1), "15.00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Resolve(history, c.target)
			require.NotNil(t, got)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"Resolve(%s) = %s, want %s", c.target.Format("2006-01-02"), got, c.want)
		})
	}
}

func TestResolve_NoApplicableRecordReturnsNil(t *testing.T) {
	history := []Record{
		record("s1", "15.00", date(2024, time.June, 1)),
	}

	assert.Nil(t, Resolve(history, date(2024, time.May, 31)))
	assert.Nil(t, Resolve(nil, date(2024, time.May, 31)))
	assert.Nil(t, Resolve([]Record{}, date(2024, time.May, 31)))
}

func TestResolve_DeterministicAcrossCalls(t *testing.T) {
	history := []Record{
		record("s1", "15.00", date(2024, time.January, 1)),
		record("s1", "20.00", date(2024, time.July, 1)),
	}
	target := date(2024, time.August, 15)

	first := Resolve(history, target)
	second := Resolve(history, target)
	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.True(t, first.Equal(*second))
}
