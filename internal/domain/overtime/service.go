package overtime

import "context"

// Service defines the overtime request workflow
type Service interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	GetByID(ctx context.Context, id string) (RequestResponse, error)
	List(ctx context.Context, filter ListRequestsFilter) ([]RequestResponse, int64, error)

	Verify(ctx context.Context, id string) (RequestResponse, error)
	Approve(ctx context.Context, id string) (RequestResponse, error)
	Reject(ctx context.Context, id string, req RejectRequestRequest) (RequestResponse, error)
	Review(ctx context.Context, id string) (RequestResponse, error)
	Cancel(ctx context.Context, id string) (RequestResponse, error)
}
