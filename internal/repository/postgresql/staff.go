package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/staff"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type staffRepository struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByID(ctx context.Context, id string, tenantID string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.tenant_id, s.employee_number, s.full_name, s.status, s.hire_date,
			   s.created_at, s.updated_at, s.deleted_at,
			   COALESCE(ARRAY_AGG(sr.role_id) FILTER (WHERE sr.role_id IS NOT NULL), '{}') AS role_ids
		FROM staff s
		LEFT JOIN staff_roles sr ON sr.staff_id = s.id
		WHERE s.id = $1 AND s.tenant_id = $2 AND s.deleted_at IS NULL
		GROUP BY s.id
	`

	var st staff.Staff
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&st.ID, &st.TenantID, &st.EmployeeNumber, &st.FullName, &st.Status, &st.HireDate,
		&st.CreatedAt, &st.UpdatedAt, &st.DeletedAt, &st.RoleIDs,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}

	return st, nil
}

func (r *staffRepository) GetActiveByTenantID(ctx context.Context, tenantID string) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.tenant_id, s.employee_number, s.full_name, s.status, s.hire_date,
			   s.created_at, s.updated_at, s.deleted_at,
			   COALESCE(ARRAY_AGG(sr.role_id) FILTER (WHERE sr.role_id IS NOT NULL), '{}') AS role_ids
		FROM staff s
		LEFT JOIN staff_roles sr ON sr.staff_id = s.id
		WHERE s.tenant_id = $1 AND s.status = 'active' AND s.deleted_at IS NULL
		GROUP BY s.id
		ORDER BY s.employee_number
	`

	rows, err := q.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active staff: %w", err)
	}
	defer rows.Close()

	var roster []staff.Staff
	for rows.Next() {
		var st staff.Staff
		if err := rows.Scan(
			&st.ID, &st.TenantID, &st.EmployeeNumber, &st.FullName, &st.Status, &st.HireDate,
			&st.CreatedAt, &st.UpdatedAt, &st.DeletedAt, &st.RoleIDs,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		roster = append(roster, st)
	}

	return roster, nil
}

func (r *staffRepository) GetRoleIDs(ctx context.Context, staffID string, tenantID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT sr.role_id
		FROM staff_roles sr
		JOIN staff s ON s.id = sr.staff_id
		WHERE sr.staff_id = $1 AND s.tenant_id = $2
	`

	rows, err := q.Query(ctx, query, staffID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff roles: %w", err)
	}
	defer rows.Close()

	var roleIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan role id: %w", err)
		}
		roleIDs = append(roleIDs, id)
	}

	return roleIDs, nil
}
