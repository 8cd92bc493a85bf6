package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/holiday"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

const holidayColumns = `id, company_id, date, name, state, source, is_active, created_at, updated_at`

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.CompanyID, &h.Date, &h.Name, &h.State,
		&h.Source, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	created, err := scanHoliday(q.QueryRow(ctx, `
		INSERT INTO holidays (id, company_id, date, name, state, source, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING `+holidayColumns,
		h.ID, h.CompanyID, h.Date, h.Name, h.State, h.Source, h.IsActive,
	))
	if isUniqueViolation(err) {
		return holiday.Holiday{}, holiday.ErrHolidayExists
	}
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return created, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	h, err := scanHoliday(q.QueryRow(ctx, `SELECT `+holidayColumns+` FROM holidays WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return h, nil
}

func (r *holidayRepositoryImpl) List(ctx context.Context, filter holiday.ListHolidaysFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	var args []interface{}

	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		conditions = append(conditions, fmt.Sprintf("(company_id IS NULL OR company_id = $%d)", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM date) = $%d", len(args)))
	}
	if filter.State != nil {
		args = append(args, *filter.State)
		conditions = append(conditions, fmt.Sprintf("(state = '' OR state = $%d)", len(args)))
	}

	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE ` +
		strings.Join(conditions, " AND ") + ` ORDER BY date ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	updated, err := scanHoliday(q.QueryRow(ctx, `
		UPDATE holidays
		SET name = $2, state = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+holidayColumns,
		h.ID, h.Name, h.State, h.IsActive,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("failed to update holiday: %w", err)
	}
	return updated, nil
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

// Upsert keys synced holidays by (date, state) so re-running the sync job
// refreshes names without duplicating rows or touching manual entries.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, h holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	if h.ID == "" {
		h.ID = uuid.NewString()
	}

	_, err := q.Exec(ctx, `
		INSERT INTO holidays (id, company_id, date, name, state, source, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (date, state) WHERE source = 'sync'
		DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`, h.ID, h.CompanyID, h.Date, h.Name, h.State, h.Source, h.IsActive)
	if err != nil {
		return fmt.Errorf("failed to upsert holiday: %w", err)
	}
	return nil
}
