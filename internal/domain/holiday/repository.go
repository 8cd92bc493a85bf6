package holiday

import "context"

// Repository defines holiday calendar data access
type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context, filter ListHolidaysFilter) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error

	// Upsert inserts or refreshes a synced holiday, keyed by date and state
	Upsert(ctx context.Context, h Holiday) error
}
