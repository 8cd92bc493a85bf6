package dashboard

import "context"

// Service defines dashboard summaries per role
type Service interface {
	CompanySummary(ctx context.Context) (CompanySummary, error)
	EmployeeSummary(ctx context.Context) (EmployeeSummary, error)
}
