package payrun

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/shopspring/decimal"
)

// exportColumns is the fixed column order external accounting systems
// depend on. Never reorder.
var exportColumns = []string{
	"Employee Number",
	"Staff Name",
	"Regular Hours",
	"Overtime Hours",
	"Total Hours",
	"Hourly Rate",
	"Overtime Rate",
	"Regular Pay",
	"Overtime Pay",
	"Adjustments",
	"Gross Pay",
}

// ExportCSV renders a run's included lines as CSV. Works in any lifecycle
// state and mutates nothing. Monetary values are fixed to two decimal
// places, hours to two.
func ExportCSV(lines []payrun.Line) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, line := range lines {
		if line.Status != payrun.LineStatusIncluded {
			continue
		}
		record := []string{
			line.EmployeeNumber,
			line.StaffName,
			line.RegularHours.StringFixed(2),
			line.OvertimeHours.StringFixed(2),
			line.TotalHours.StringFixed(2),
			fixedOrEmpty(line.HourlyRate),
			fixedOrEmpty(line.OvertimeRate),
			line.RegularPay.StringFixed(2),
			line.OvertimePay.StringFixed(2),
			line.Adjustments.StringFixed(2),
			line.GrossPay.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func fixedOrEmpty(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
