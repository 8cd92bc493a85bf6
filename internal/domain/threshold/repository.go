package threshold

import "context"

// Repository defines threshold data access
type Repository interface {
	GetActiveByCompany(ctx context.Context, companyID string) (Threshold, error)
	Upsert(ctx context.Context, t Threshold) (Threshold, error)
	ListByCompany(ctx context.Context, companyID string) ([]Threshold, error)
}
