package payrun

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportLine(empNo, name string, rateStr, grossStr string) payrun.Line {
	rate := dec(rateStr)
	overtime := rate.Mul(dec("1.5"))
	return payrun.Line{
		StaffID:        "staff-" + empNo,
		EmployeeNumber: empNo,
		StaffName:      name,
		RegularHours:   dec("40"),
		OvertimeHours:  decimal.Zero,
		TotalHours:     dec("40"),
		HourlyRate:     &rate,
		OvertimeRate:   &overtime,
		RegularPay:     dec(grossStr),
		OvertimePay:    decimal.Zero,
		Adjustments:    decimal.Zero,
		GrossPay:       dec(grossStr),
		Status:         payrun.LineStatusIncluded,
	}
}

func TestExportCSV_HeaderAndRows(t *testing.T) {
	lines := []payrun.Line{
		exportLine("2024-0001", "Ava Reyes", "20", "800"),
		exportLine("2024-0002", "Ben Okafor", "22.50", "900"),
	}

	out, err := ExportCSV(lines)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exportColumns, records[0])
	assert.Equal(t, "2024-0001", records[1][0])
	assert.Equal(t, "Ava Reyes", records[1][1])
	assert.Equal(t, "20.00", records[1][5])
	assert.Equal(t, "30.00", records[1][6])
	assert.Equal(t, "800.00", records[1][10])
}

func TestExportCSV_SkipsExcludedLines(t *testing.T) {
	excluded := payrun.Line{
		EmployeeNumber: "2024-0003",
		StaffName:      "No Rate",
		TotalHours:     dec("12"),
		Status:         payrun.LineStatusExcluded,
	}
	lines := []payrun.Line{exportLine("2024-0001", "Ava Reyes", "20", "800"), excluded}

	out, err := ExportCSV(lines)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2, "excluded line must not be exported")
}

// Re-parsing an export reproduces the run's included line count and total
// gross pay.
func TestExportCSV_RoundTripReproducesTotals(t *testing.T) {
	lines := []payrun.Line{
		exportLine("2024-0001", "Ava Reyes", "20", "800"),
		exportLine("2024-0002", "Ben Okafor", "22.50", "900"),
		exportLine("2024-0003", "Cato Lindqvist", "19.75", "790"),
		{EmployeeNumber: "2024-0004", Status: payrun.LineStatusExcluded, TotalHours: dec("6")},
	}
	want := TotalsFromLines(lines)

	out, err := ExportCSV(lines)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	parsedGross := decimal.Zero
	for _, row := range records[1:] {
		parsedGross = parsedGross.Add(dec(row[10]))
	}

	assert.Equal(t, want.StaffCount, len(records)-1)
	assert.True(t, parsedGross.Equal(want.TotalGrossPay), "parsed = %s, want = %s", parsedGross, want.TotalGrossPay)
}

func TestExportCSV_EmptyRun(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header only")
}
