package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/position"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) position.Repository {
	return &positionRepositoryImpl{db: db}
}

func (r *positionRepositoryImpl) Create(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO positions (id, company_id, name, grade, ot_eligible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, company_id, name, grade, ot_eligible, created_at, updated_at
	`, p.ID, p.CompanyID, p.Name, p.Grade, p.OTEligible).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Grade, &p.OTEligible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to create position: %w", err)
	}
	return p, nil
}

func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	var p position.Position
	err := q.QueryRow(ctx, `
		SELECT id, company_id, name, grade, ot_eligible, created_at, updated_at
		FROM positions WHERE id = $1
	`, id).Scan(&p.ID, &p.CompanyID, &p.Name, &p.Grade, &p.OTEligible, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return position.Position{}, position.ErrPositionNotFound
	}
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to get position: %w", err)
	}
	return p, nil
}

func (r *positionRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]position.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, name, grade, ot_eligible, created_at, updated_at
		FROM positions WHERE company_id = $1 ORDER BY name ASC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []position.Position
	for rows.Next() {
		var p position.Position
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Grade, &p.OTEligible, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}
	return positions, rows.Err()
}

func (r *positionRepositoryImpl) Update(ctx context.Context, p position.Position) (position.Position, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE positions
		SET name = $2, grade = $3, ot_eligible = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, company_id, name, grade, ot_eligible, created_at, updated_at
	`, p.ID, p.Name, p.Grade, p.OTEligible).Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Grade, &p.OTEligible, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return position.Position{}, position.ErrPositionNotFound
	}
	if err != nil {
		return position.Position{}, fmt.Errorf("failed to update position: %w", err)
	}
	return p, nil
}

func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	if err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE position_id = $1 AND deleted_at IS NULL)
	`, id).Scan(&inUse); err != nil {
		return fmt.Errorf("failed to check position usage: %w", err)
	}
	if inUse {
		return position.ErrPositionInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return position.ErrPositionNotFound
	}
	return nil
}
