package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/shift"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) GetByID(ctx context.Context, id string, tenantID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, role_id, start_time, end_time, status, created_at, updated_at
		FROM shifts
		WHERE id = $1 AND tenant_id = $2
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&s.ID, &s.TenantID, &s.StaffID, &s.RoleID, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) GetByTenantInWindow(ctx context.Context, tenantID string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, role_id, start_time, end_time, status, created_at, updated_at
		FROM shifts
		WHERE tenant_id = $1 AND start_time < $3 AND end_time > $2
		ORDER BY start_time ASC
	`

	rows, err := q.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		if err := rows.Scan(
			&s.ID, &s.TenantID, &s.StaffID, &s.RoleID, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, nil
}

func (r *shiftRepository) GetAvailabilityByTenant(ctx context.Context, tenantID string) ([]shift.AvailabilityWindow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT aw.staff_id, aw.day_of_week, aw.start_minutes, aw.end_minutes
		FROM availability_windows aw
		JOIN staff s ON s.id = aw.staff_id
		WHERE s.tenant_id = $1
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability windows: %w", err)
	}
	defer rows.Close()

	var windows []shift.AvailabilityWindow
	for rows.Next() {
		var w shift.AvailabilityWindow
		if err := rows.Scan(&w.StaffID, &w.DayOfWeek, &w.StartMinutes, &w.EndMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan availability window: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func (r *shiftRepository) UpdateStaffAssignment(ctx context.Context, id string, tenantID string, staffID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET staff_id = $3, updated_at = NOW()
		WHERE id = $1 AND tenant_id = $2
		RETURNING id, tenant_id, staff_id, role_id, start_time, end_time, status, created_at, updated_at
	`

	var s shift.Shift
	err := q.QueryRow(ctx, query, id, tenantID, staffID).Scan(
		&s.ID, &s.TenantID, &s.StaffID, &s.RoleID, &s.StartTime, &s.EndTime, &s.Status, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to reassign shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) RoleExists(ctx context.Context, roleID string, tenantID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM roles WHERE id = $1 AND tenant_id = $2 AND deleted_at IS NULL)`,
		roleID, tenantID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check role existence: %w", err)
	}

	return exists, nil
}
