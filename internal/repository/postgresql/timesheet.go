package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/rosterly/rosterly-backend-go/internal/domain/timesheet"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type timesheetRepository struct {
	db *database.DB
}

func NewTimesheetRepository(db *database.DB) timesheet.TimesheetRepository {
	return &timesheetRepository{db: db}
}

func (r *timesheetRepository) GetByStaffIDsInPeriod(ctx context.Context, tenantID string, staffIDs []string, periodStart, periodEnd time.Time) (map[string][]timesheet.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, date, hours, status, created_at, updated_at
		FROM timesheet_entries
		WHERE tenant_id = $1 AND staff_id = ANY($2) AND date BETWEEN $3 AND $4
		ORDER BY staff_id, date ASC
	`

	rows, err := q.Query(ctx, query, tenantID, staffIDs, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get timesheet entries: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]timesheet.Entry)
	for rows.Next() {
		var e timesheet.Entry
		if err := rows.Scan(
			&e.ID, &e.TenantID, &e.StaffID, &e.Date, &e.Hours, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan timesheet entry: %w", err)
		}
		grouped[e.StaffID] = append(grouped[e.StaffID], e)
	}

	return grouped, nil
}
