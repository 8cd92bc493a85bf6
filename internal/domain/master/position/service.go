package position

import "context"

// Service defines position master-data management, scoped to the
// actor's company
type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	List(ctx context.Context) ([]PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}
