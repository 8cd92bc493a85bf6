package report

import "context"

// Repository defines report data access
type Repository interface {
	// MonthlyOvertimeRows returns one row per employee with approved
	// overtime in the month, across all companies.
	MonthlyOvertimeRows(ctx context.Context, month, year int) ([]ReportRow, error)
}
