package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/employee"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT
		e.id, e.company_id, e.department_id, e.position_id, e.supervisor_id,
		e.employee_code, e.full_name, e.email, e.phone, e.monthly_salary,
		e.employment_type, e.status, e.hire_date, e.created_at, e.updated_at, e.deleted_at,
		c.name AS company_name,
		d.name AS department_name,
		p.name AS position_name,
		s.full_name AS supervisor_name
	FROM employees e
	JOIN companies c ON e.company_id = c.id
	LEFT JOIN departments d ON e.department_id = d.id
	LEFT JOIN positions p ON e.position_id = p.id
	LEFT JOIN employees s ON e.supervisor_id = s.id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.DepartmentID, &e.PositionID, &e.SupervisorID,
		&e.EmployeeCode, &e.FullName, &e.Email, &e.Phone, &e.MonthlySalary,
		&e.EmploymentType, &e.Status, &e.HireDate, &e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
		&e.CompanyName, &e.DepartmentName, &e.PositionName, &e.SupervisorName,
	)
	return e, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employees (
			id, company_id, department_id, position_id, supervisor_id,
			employee_code, full_name, email, phone, monthly_salary,
			employment_type, status, hire_date, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		e.ID, e.CompanyID, e.DepartmentID, e.PositionID, e.SupervisorID,
		e.EmployeeCode, e.FullName, e.Email, e.Phone, e.MonthlySalary,
		e.EmploymentType, e.Status, e.HireDate,
	).Scan(&id)
	if isUniqueViolation(err) {
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1 AND e.deleted_at IS NULL`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, companyID, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx,
		employeeSelect+` WHERE e.company_id = $1 AND LOWER(e.email) = LOWER($2) AND e.deleted_at IS NULL`,
		companyID, email,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"e.company_id = $1", "e.deleted_at IS NULL"}
	args := []interface{}{filter.CompanyID}

	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("e.status = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d)", len(args), len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM employees e` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := employeeSelect + where +
		fmt.Sprintf(" ORDER BY e.full_name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, total, rows.Err()
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees
		SET department_id = $2, position_id = $3, supervisor_id = $4,
			full_name = $5, phone = $6, monthly_salary = $7,
			employment_type = $8, status = $9, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, e.ID, e.DepartmentID, e.PositionID, e.SupervisorID,
		e.FullName, e.Phone, e.MonthlySalary, e.EmploymentType, e.Status,
	)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return r.GetByID(ctx, e.ID)
}

func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET deleted_at = NOW(), status = 'inactive', updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CodeExists(ctx context.Context, companyID, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM employees WHERE company_id = $1 AND employee_code = $2 AND deleted_at IS NULL
		)
	`, companyID, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee code: %w", err)
	}
	return exists, nil
}
