package position

import "context"

// Repository defines position data access
type Repository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	ListByCompany(ctx context.Context, companyID string) ([]Position, error)
	Update(ctx context.Context, p Position) (Position, error)
	Delete(ctx context.Context, id string) error
}
