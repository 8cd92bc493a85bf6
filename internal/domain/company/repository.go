package company

import "context"

// Repository defines company data access
type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c Company) (Company, error)
	Delete(ctx context.Context, id string) error
}
