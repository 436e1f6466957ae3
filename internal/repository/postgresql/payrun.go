package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/payrun"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type payRunRepository struct {
	db *database.DB
}

func NewPayRunRepository(db *database.DB) payrun.PayRunRepository {
	return &payRunRepository{db: db}
}

const payRunColumns = `id, tenant_id, period_start, period_end, status,
	total_hours, total_gross_pay, staff_count, created_by,
	approved_by, approved_at, finalised_by, finalised_at, created_at, updated_at`

// ========== RUNS ==========

func (r *payRunRepository) Create(ctx context.Context, run payrun.PayRun, lines []payrun.Line, changes []payrun.Change) (payrun.PayRun, error) {
	var created payrun.PayRun

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO pay_runs (tenant_id, period_start, period_end, status,
				total_hours, total_gross_pay, staff_count, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + payRunColumns

		if err := scanPayRun(tx.QueryRow(ctx, query,
			run.TenantID, run.PeriodStart, run.PeriodEnd, run.Status,
			run.TotalHours, run.TotalGrossPay, run.StaffCount, run.CreatedBy,
		), &created); err != nil {
			if strings.Contains(err.Error(), "ex_pay_runs_period") {
				return payrun.ErrPayRunOverlaps
			}
			return fmt.Errorf("failed to create pay run: %w", err)
		}

		lineQuery := `
			INSERT INTO pay_run_lines (pay_run_id, staff_id, employee_number, staff_name,
				regular_hours, overtime_hours, total_hours, hourly_rate, overtime_rate,
				regular_pay, overtime_pay, adjustments, adjustment_reason, gross_pay,
				status, timesheet_ids)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		`
		for _, line := range lines {
			if _, err := tx.Exec(ctx, lineQuery,
				created.ID, line.StaffID, line.EmployeeNumber, line.StaffName,
				line.RegularHours, line.OvertimeHours, line.TotalHours, line.HourlyRate, line.OvertimeRate,
				line.RegularPay, line.OvertimePay, line.Adjustments, line.AdjustmentReason, line.GrossPay,
				line.Status, line.TimesheetIDs,
			); err != nil {
				return fmt.Errorf("failed to create pay run line: %w", err)
			}
		}

		return insertChanges(ctx, tx, created.ID, changes)
	})
	if err != nil {
		return payrun.PayRun{}, err
	}

	return created, nil
}

func (r *payRunRepository) GetByID(ctx context.Context, id string, tenantID string) (payrun.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payRunColumns + ` FROM pay_runs WHERE id = $1 AND tenant_id = $2`

	var run payrun.PayRun
	if err := scanPayRun(q.QueryRow(ctx, query, id, tenantID), &run); err != nil {
		if err == pgx.ErrNoRows {
			return payrun.PayRun{}, payrun.ErrPayRunNotFound
		}
		return payrun.PayRun{}, fmt.Errorf("failed to get pay run: %w", err)
	}

	return run, nil
}

func (r *payRunRepository) List(ctx context.Context, tenantID string, filter payrun.Filter) ([]payrun.PayRun, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := ` FROM pay_runs WHERE tenant_id = $1`
	args := []interface{}{tenantID}
	argIdx := 2

	if filter.Status != nil {
		baseQuery += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND EXTRACT(YEAR FROM period_start) = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var totalCount int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*)"+baseQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count pay runs: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	selectQuery := fmt.Sprintf(
		"SELECT "+payRunColumns+baseQuery+" ORDER BY period_start DESC LIMIT $%d OFFSET $%d",
		argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list pay runs: %w", err)
	}
	defer rows.Close()

	var runs []payrun.PayRun
	for rows.Next() {
		var run payrun.PayRun
		if err := scanPayRun(rows, &run); err != nil {
			return nil, 0, fmt.Errorf("failed to scan pay run: %w", err)
		}
		runs = append(runs, run)
	}

	return runs, totalCount, nil
}

func (r *payRunRepository) ExistsOverlapping(ctx context.Context, tenantID string, periodStart, periodEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM pay_runs
			WHERE tenant_id = $1 AND period_start <= $3 AND period_end >= $2
		)`,
		tenantID, periodStart, periodEnd,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pay run overlap: %w", err)
	}

	return exists, nil
}

func (r *payRunRepository) UpdateStatus(ctx context.Context, run payrun.PayRun, changes []payrun.Change) (payrun.PayRun, error) {
	var updated payrun.PayRun

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE pay_runs
			SET status = $3, total_hours = $4, total_gross_pay = $5, staff_count = $6,
				approved_by = $7, approved_at = $8, finalised_by = $9, finalised_at = $10,
				updated_at = NOW()
			WHERE id = $1 AND tenant_id = $2
			RETURNING ` + payRunColumns

		if err := scanPayRun(tx.QueryRow(ctx, query,
			run.ID, run.TenantID, run.Status, run.TotalHours, run.TotalGrossPay, run.StaffCount,
			run.ApprovedBy, run.ApprovedAt, run.FinalisedBy, run.FinalisedAt,
		), &updated); err != nil {
			if err == pgx.ErrNoRows {
				return payrun.ErrPayRunNotFound
			}
			return fmt.Errorf("failed to update pay run status: %w", err)
		}

		return insertChanges(ctx, tx, updated.ID, changes)
	})
	if err != nil {
		return payrun.PayRun{}, err
	}

	return updated, nil
}

func (r *payRunRepository) Delete(ctx context.Context, id string, tenantID string) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM pay_run_changes WHERE pay_run_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete pay run changes: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM pay_run_lines WHERE pay_run_id = $1`, id,
		); err != nil {
			return fmt.Errorf("failed to delete pay run lines: %w", err)
		}

		var deletedID string
		err := tx.QueryRow(ctx,
			`DELETE FROM pay_runs WHERE id = $1 AND tenant_id = $2 RETURNING id`,
			id, tenantID,
		).Scan(&deletedID)
		if err != nil {
			if err == pgx.ErrNoRows {
				return payrun.ErrPayRunNotFound
			}
			return fmt.Errorf("failed to delete pay run: %w", err)
		}
		return nil
	})
}

// ========== LINES ==========

func (r *payRunRepository) GetLines(ctx context.Context, payRunID string, tenantID string) ([]payrun.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.pay_run_id, l.staff_id, l.employee_number, l.staff_name,
			   l.regular_hours, l.overtime_hours, l.total_hours, l.hourly_rate, l.overtime_rate,
			   l.regular_pay, l.overtime_pay, l.adjustments, l.adjustment_reason, l.gross_pay,
			   l.status, l.timesheet_ids, l.created_at, l.updated_at
		FROM pay_run_lines l
		JOIN pay_runs pr ON pr.id = l.pay_run_id
		WHERE l.pay_run_id = $1 AND pr.tenant_id = $2
		ORDER BY l.employee_number ASC
	`

	rows, err := q.Query(ctx, query, payRunID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay run lines: %w", err)
	}
	defer rows.Close()

	var lines []payrun.Line
	for rows.Next() {
		var line payrun.Line
		if err := scanLine(rows, &line); err != nil {
			return nil, fmt.Errorf("failed to scan pay run line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (r *payRunRepository) GetLineByID(ctx context.Context, id string, payRunID string, tenantID string) (payrun.Line, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.pay_run_id, l.staff_id, l.employee_number, l.staff_name,
			   l.regular_hours, l.overtime_hours, l.total_hours, l.hourly_rate, l.overtime_rate,
			   l.regular_pay, l.overtime_pay, l.adjustments, l.adjustment_reason, l.gross_pay,
			   l.status, l.timesheet_ids, l.created_at, l.updated_at
		FROM pay_run_lines l
		JOIN pay_runs pr ON pr.id = l.pay_run_id
		WHERE l.id = $1 AND l.pay_run_id = $2 AND pr.tenant_id = $3
	`

	var line payrun.Line
	if err := scanLine(q.QueryRow(ctx, query, id, payRunID, tenantID), &line); err != nil {
		if err == pgx.ErrNoRows {
			return payrun.Line{}, payrun.ErrPayRunLineNotFound
		}
		return payrun.Line{}, fmt.Errorf("failed to get pay run line: %w", err)
	}

	return line, nil
}

func (r *payRunRepository) UpdateLine(ctx context.Context, tenantID string, line payrun.Line, changes []payrun.Change) (payrun.Line, error) {
	var updated payrun.Line

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE pay_run_lines l
			SET hourly_rate = $4, overtime_rate = $5, regular_pay = $6, overtime_pay = $7,
				adjustments = $8, adjustment_reason = $9, gross_pay = $10, status = $11,
				updated_at = NOW()
			FROM pay_runs pr
			WHERE l.id = $1 AND l.pay_run_id = $2 AND l.pay_run_id = pr.id AND pr.tenant_id = $3
			RETURNING l.id, l.pay_run_id, l.staff_id, l.employee_number, l.staff_name,
				l.regular_hours, l.overtime_hours, l.total_hours, l.hourly_rate, l.overtime_rate,
				l.regular_pay, l.overtime_pay, l.adjustments, l.adjustment_reason, l.gross_pay,
				l.status, l.timesheet_ids, l.created_at, l.updated_at
		`

		if err := scanLine(tx.QueryRow(ctx, query,
			line.ID, line.PayRunID, tenantID,
			line.HourlyRate, line.OvertimeRate, line.RegularPay, line.OvertimePay,
			line.Adjustments, line.AdjustmentReason, line.GrossPay, line.Status,
		), &updated); err != nil {
			if err == pgx.ErrNoRows {
				return payrun.ErrPayRunLineNotFound
			}
			return fmt.Errorf("failed to update pay run line: %w", err)
		}

		return insertChanges(ctx, tx, updated.PayRunID, changes)
	})
	if err != nil {
		return payrun.Line{}, err
	}

	return updated, nil
}

// ========== CHANGES ==========

func (r *payRunRepository) GetChanges(ctx context.Context, payRunID string, tenantID string) ([]payrun.Change, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.pay_run_id, c.pay_run_line_id, c.field_changed, c.old_value, c.new_value,
			   c.reason, c.changed_by, c.created_at
		FROM pay_run_changes c
		JOIN pay_runs pr ON pr.id = c.pay_run_id
		WHERE c.pay_run_id = $1 AND pr.tenant_id = $2
		ORDER BY c.created_at ASC
	`

	rows, err := q.Query(ctx, query, payRunID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pay run changes: %w", err)
	}
	defer rows.Close()

	var changes []payrun.Change
	for rows.Next() {
		var c payrun.Change
		if err := rows.Scan(
			&c.ID, &c.PayRunID, &c.PayRunLineID, &c.FieldChanged, &c.OldValue, &c.NewValue,
			&c.Reason, &c.ChangedBy, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pay run change: %w", err)
		}
		changes = append(changes, c)
	}

	return changes, nil
}

// insertChanges appends audit records inside the mutation's transaction. A
// change created before the run ID was known gets it backfilled here.
func insertChanges(ctx context.Context, tx pgx.Tx, payRunID string, changes []payrun.Change) error {
	query := `
		INSERT INTO pay_run_changes (id, pay_run_id, pay_run_line_id, field_changed,
			old_value, new_value, reason, changed_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, c := range changes {
		if c.PayRunID == "" {
			c.PayRunID = payRunID
		}
		if _, err := tx.Exec(ctx, query,
			c.ID, c.PayRunID, c.PayRunLineID, c.FieldChanged,
			c.OldValue, c.NewValue, c.Reason, c.ChangedBy,
		); err != nil {
			return fmt.Errorf("%w: %v", payrun.ErrAuditWriteFailed, err)
		}
	}
	return nil
}

// ========== SCAN HELPERS ==========

func scanPayRun(row pgx.Row, run *payrun.PayRun) error {
	return row.Scan(
		&run.ID, &run.TenantID, &run.PeriodStart, &run.PeriodEnd, &run.Status,
		&run.TotalHours, &run.TotalGrossPay, &run.StaffCount, &run.CreatedBy,
		&run.ApprovedBy, &run.ApprovedAt, &run.FinalisedBy, &run.FinalisedAt,
		&run.CreatedAt, &run.UpdatedAt,
	)
}

func scanLine(row pgx.Row, line *payrun.Line) error {
	return row.Scan(
		&line.ID, &line.PayRunID, &line.StaffID, &line.EmployeeNumber, &line.StaffName,
		&line.RegularHours, &line.OvertimeHours, &line.TotalHours, &line.HourlyRate, &line.OvertimeRate,
		&line.RegularPay, &line.OvertimePay, &line.Adjustments, &line.AdjustmentReason, &line.GrossPay,
		&line.Status, &line.TimesheetIDs, &line.CreatedAt, &line.UpdatedAt,
	)
}
