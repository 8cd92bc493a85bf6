package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/threshold"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type thresholdRepositoryImpl struct {
	db *database.DB
}

func NewThresholdRepository(db *database.DB) threshold.Repository {
	return &thresholdRepositoryImpl{db: db}
}

const thresholdColumns = `id, company_id, max_monthly_hours, max_request_hours, is_active, created_at, updated_at`

func scanThreshold(row pgx.Row) (threshold.Threshold, error) {
	var t threshold.Threshold
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.MaxMonthlyHours, &t.MaxRequestHours,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *thresholdRepositoryImpl) GetActiveByCompany(ctx context.Context, companyID string) (threshold.Threshold, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanThreshold(q.QueryRow(ctx, `
		SELECT `+thresholdColumns+`
		FROM approval_thresholds
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY updated_at DESC
		LIMIT 1
	`, companyID))
	if errors.Is(err, pgx.ErrNoRows) {
		return threshold.Threshold{}, threshold.ErrThresholdNotFound
	}
	if err != nil {
		return threshold.Threshold{}, fmt.Errorf("failed to get threshold: %w", err)
	}
	return t, nil
}

func (r *thresholdRepositoryImpl) Upsert(ctx context.Context, t threshold.Threshold) (threshold.Threshold, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.NewString()
	}

	saved, err := scanThreshold(q.QueryRow(ctx, `
		INSERT INTO approval_thresholds (id, company_id, max_monthly_hours, max_request_hours, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (company_id)
		DO UPDATE SET
			max_monthly_hours = EXCLUDED.max_monthly_hours,
			max_request_hours = EXCLUDED.max_request_hours,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING `+thresholdColumns,
		t.ID, t.CompanyID, t.MaxMonthlyHours, t.MaxRequestHours, t.IsActive,
	))
	if err != nil {
		return threshold.Threshold{}, fmt.Errorf("failed to upsert threshold: %w", err)
	}
	return saved, nil
}

func (r *thresholdRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]threshold.Threshold, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT `+thresholdColumns+`
		FROM approval_thresholds
		WHERE company_id = $1
		ORDER BY updated_at DESC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list thresholds: %w", err)
	}
	defer rows.Close()

	var thresholds []threshold.Threshold
	for rows.Next() {
		t, err := scanThreshold(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan threshold: %w", err)
		}
		thresholds = append(thresholds, t)
	}
	return thresholds, rows.Err()
}
