package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/tenant"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type tenantRepository struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) GetByID(ctx context.Context, id string) (tenant.Tenant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`

	var t tenant.Tenant
	err := q.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Username, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.Tenant{}, tenant.ErrTenantNotFound
		}
		return tenant.Tenant{}, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

func (r *tenantRepository) GetPayrollPolicy(ctx context.Context, tenantID string) (tenant.PayrollPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, overtime_multiplier, overtime_threshold_hours,
			   overtime_resets_weekly, cadence, created_at, updated_at
		FROM payroll_policies
		WHERE tenant_id = $1
	`

	var p tenant.PayrollPolicy
	err := q.QueryRow(ctx, query, tenantID).Scan(
		&p.ID, &p.TenantID, &p.OvertimeMultiplier, &p.OvertimeThresholdHours,
		&p.OvertimeResetsWeekly, &p.Cadence, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tenant.PayrollPolicy{}, tenant.ErrPayrollPolicyNotFound
		}
		return tenant.PayrollPolicy{}, fmt.Errorf("failed to get payroll policy: %w", err)
	}

	return p, nil
}

func (r *tenantRepository) UpsertPayrollPolicy(ctx context.Context, policy tenant.PayrollPolicy) (tenant.PayrollPolicy, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_policies (tenant_id, overtime_multiplier, overtime_threshold_hours, overtime_resets_weekly, cadence)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id) DO UPDATE SET
			overtime_multiplier = EXCLUDED.overtime_multiplier,
			overtime_threshold_hours = EXCLUDED.overtime_threshold_hours,
			overtime_resets_weekly = EXCLUDED.overtime_resets_weekly,
			cadence = EXCLUDED.cadence,
			updated_at = NOW()
		RETURNING id, tenant_id, overtime_multiplier, overtime_threshold_hours,
			overtime_resets_weekly, cadence, created_at, updated_at
	`

	var p tenant.PayrollPolicy
	err := q.QueryRow(ctx, query,
		policy.TenantID, policy.OvertimeMultiplier, policy.OvertimeThresholdHours,
		policy.OvertimeResetsWeekly, policy.Cadence,
	).Scan(
		&p.ID, &p.TenantID, &p.OvertimeMultiplier, &p.OvertimeThresholdHours,
		&p.OvertimeResetsWeekly, &p.Cadence, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return tenant.PayrollPolicy{}, fmt.Errorf("failed to upsert payroll policy: %w", err)
	}

	return p, nil
}
