package postgresql

import (
	"context"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/report"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// MonthlyOvertimeRows returns one row per employee with approved or
// reviewed overtime in the month, across all companies. Grouping by
// company happens in the service layer so the same rows can also feed the
// CSV and PDF exports.
func (r *reportRepositoryImpl) MonthlyOvertimeRows(ctx context.Context, month, year int) ([]report.ReportRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id AS employee_id,
			e.full_name AS employee_name,
			e.employee_code,
			d.name AS department,
			p.name AS position,
			c.id AS company_id,
			c.name AS company_name,
			c.code AS company_code,
			SUM(o.total_hours) AS total_ot_hours,
			SUM(o.amount) AS amount,
			COUNT(o.id) AS request_count
		FROM overtime_requests o
		JOIN employees e ON o.employee_id = e.id
		LEFT JOIN departments d ON e.department_id = d.id
		LEFT JOIN positions p ON e.position_id = p.id
		LEFT JOIN companies c ON o.company_id = c.id
		WHERE o.status IN ('approved', 'reviewed')
			AND EXTRACT(MONTH FROM o.request_date) = $1
			AND EXTRACT(YEAR FROM o.request_date) = $2
		GROUP BY e.id, e.full_name, e.employee_code, d.name, p.name, c.id, c.name, c.code
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime report rows: %w", err)
	}
	defer rows.Close()

	var result []report.ReportRow
	for rows.Next() {
		var row report.ReportRow
		err := rows.Scan(
			&row.EmployeeID,
			&row.EmployeeName,
			&row.EmployeeCode,
			&row.Department,
			&row.Position,
			&row.CompanyID,
			&row.CompanyName,
			&row.CompanyCode,
			&row.TotalOTHours,
			&row.Amount,
			&row.RequestCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime report row: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
