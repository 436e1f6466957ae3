package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rosterly/rosterly-backend-go/internal/domain/rate"
	"github.com/rosterly/rosterly-backend-go/internal/pkg/database"
)

type rateRepository struct {
	db *database.DB
}

func NewRateRepository(db *database.DB) rate.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(ctx context.Context, record rate.Record) (rate.Record, error) {
	q := GetQuerier(ctx, r.db)

	// Same staff and effective date replaces the earlier entry; history stays
	// one record per effective date.
	query := `
		INSERT INTO rate_records (id, tenant_id, staff_id, hourly_rate, effective_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (tenant_id, staff_id, effective_date) DO UPDATE SET
			hourly_rate = EXCLUDED.hourly_rate
		RETURNING id, tenant_id, staff_id, hourly_rate, effective_date, created_at
	`

	var rec rate.Record
	err := q.QueryRow(ctx, query,
		record.ID, record.TenantID, record.StaffID, record.HourlyRate, record.EffectiveDate,
	).Scan(&rec.ID, &rec.TenantID, &rec.StaffID, &rec.HourlyRate, &rec.EffectiveDate, &rec.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "ck_rate_non_negative") {
			return rate.Record{}, rate.ErrNegativeRate
		}
		return rate.Record{}, fmt.Errorf("failed to create rate record: %w", err)
	}

	return rec, nil
}

func (r *rateRepository) GetByID(ctx context.Context, id string, tenantID string) (rate.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, hourly_rate, effective_date, created_at
		FROM rate_records
		WHERE id = $1 AND tenant_id = $2
	`

	var rec rate.Record
	err := q.QueryRow(ctx, query, id, tenantID).Scan(
		&rec.ID, &rec.TenantID, &rec.StaffID, &rec.HourlyRate, &rec.EffectiveDate, &rec.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return rate.Record{}, rate.ErrRateRecordNotFound
		}
		return rate.Record{}, fmt.Errorf("failed to get rate record: %w", err)
	}

	return rec, nil
}

func (r *rateRepository) GetHistoryByStaffID(ctx context.Context, staffID string, tenantID string) ([]rate.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, hourly_rate, effective_date, created_at
		FROM rate_records
		WHERE staff_id = $1 AND tenant_id = $2
		ORDER BY effective_date ASC
	`

	rows, err := q.Query(ctx, query, staffID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate history: %w", err)
	}
	defer rows.Close()

	return scanRateRecords(rows)
}

func (r *rateRepository) GetHistoryByStaffIDs(ctx context.Context, tenantID string, staffIDs []string, maxDate time.Time) (map[string][]rate.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, tenant_id, staff_id, hourly_rate, effective_date, created_at
		FROM rate_records
		WHERE tenant_id = $1 AND staff_id = ANY($2) AND effective_date <= $3
		ORDER BY staff_id, effective_date ASC
	`

	rows, err := q.Query(ctx, query, tenantID, staffIDs, maxDate)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate histories: %w", err)
	}
	defer rows.Close()

	records, err := scanRateRecords(rows)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]rate.Record)
	for _, rec := range records {
		grouped[rec.StaffID] = append(grouped[rec.StaffID], rec)
	}
	return grouped, nil
}

func (r *rateRepository) Delete(ctx context.Context, id string, tenantID string) error {
	q := GetQuerier(ctx, r.db)

	// Only future-dated records may be removed. History that has already
	// priced pay runs is immutable.
	query := `
		DELETE FROM rate_records
		WHERE id = $1 AND tenant_id = $2 AND effective_date > CURRENT_DATE
		RETURNING id
	`

	var deletedID string
	err := q.QueryRow(ctx, query, id, tenantID).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Distinguish missing from immutable.
			var exists bool
			if checkErr := q.QueryRow(ctx,
				`SELECT EXISTS(SELECT 1 FROM rate_records WHERE id = $1 AND tenant_id = $2)`,
				id, tenantID,
			).Scan(&exists); checkErr == nil && exists {
				return rate.ErrRateRecordImmutable
			}
			return rate.ErrRateRecordNotFound
		}
		return fmt.Errorf("failed to delete rate record: %w", err)
	}

	return nil
}

func scanRateRecords(rows pgx.Rows) ([]rate.Record, error) {
	var records []rate.Record
	for rows.Next() {
		var rec rate.Record
		if err := rows.Scan(
			&rec.ID, &rec.TenantID, &rec.StaffID, &rec.HourlyRate, &rec.EffectiveDate, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rate record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
