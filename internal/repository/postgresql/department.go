package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/master/department"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	err := q.QueryRow(ctx, `
		INSERT INTO departments (id, company_id, name, code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, company_id, name, code, created_at, updated_at
	`, d.ID, d.CompanyID, d.Name, d.Code).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d department.Department
	err := q.QueryRow(ctx, `
		SELECT id, company_id, name, code, created_at, updated_at
		FROM departments WHERE id = $1
	`, id).Scan(&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) ListByCompany(ctx context.Context, companyID string) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, name, code, created_at, updated_at
		FROM departments WHERE company_id = $1 ORDER BY name ASC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		UPDATE departments
		SET name = $2, code = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, company_id, name, code, created_at, updated_at
	`, d.ID, d.Name, d.Code).Scan(
		&d.ID, &d.CompanyID, &d.Name, &d.Code, &d.CreatedAt, &d.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	return d, nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var inUse bool
	if err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM employees WHERE department_id = $1 AND deleted_at IS NULL)
	`, id).Scan(&inUse); err != nil {
		return fmt.Errorf("failed to check department usage: %w", err)
	}
	if inUse {
		return department.ErrDepartmentInUse
	}

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
