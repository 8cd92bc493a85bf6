package user

import "context"

// Repository defines user account data access
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (User, error)
	Activate(ctx context.Context, id string, passwordHash string) error
	ListByCompany(ctx context.Context, companyID string, roles []Role) ([]User, error)
}
