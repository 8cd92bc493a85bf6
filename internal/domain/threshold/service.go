package threshold

import "context"

// Service defines approval threshold management, scoped to the
// actor's company
type Service interface {
	Get(ctx context.Context) (ThresholdResponse, error)
	Upsert(ctx context.Context, req UpsertThresholdRequest) (ThresholdResponse, error)
	History(ctx context.Context) ([]ThresholdResponse, error)
}
