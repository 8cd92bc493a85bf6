package holiday

import "context"

// Service defines holiday calendar operations
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, filter ListHolidaysFilter) ([]HolidayResponse, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error

	// SyncYear imports the year's public holidays from the external source
	SyncYear(ctx context.Context, year int) (int, error)
}
