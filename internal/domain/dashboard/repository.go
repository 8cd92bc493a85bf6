package dashboard

import "context"

// Repository defines dashboard data access
type Repository interface {
	CompanySummary(ctx context.Context, companyID string) (CompanySummary, error)
	EmployeeSummary(ctx context.Context, employeeID string) (EmployeeSummary, error)
}
