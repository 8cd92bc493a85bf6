package overtime

import (
	"context"
	"time"
)

// Repository defines overtime request data access. Status transitions are
// guarded in SQL: updates match on the expected current status and report
// ErrInvalidStatusTransition when no row qualifies.
type Repository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context, filter ListRequestsFilter) ([]Request, int64, error)

	// Transition updates, guarded on current status
	MarkVerified(ctx context.Context, id, verifierID string) (Request, error)
	MarkApproved(ctx context.Context, id, approverID string) (Request, error)
	MarkRejected(ctx context.Context, id, approverID, reason string) (Request, error)
	MarkReviewed(ctx context.Context, id, reviewerID string) (Request, error)
	MarkCancelled(ctx context.Context, id, employeeID string) (Request, error)

	// ClassifyDayType classifies a date against the company's holiday
	// calendar: weekday/saturday/sunday, overridden by public_holiday when a
	// matching active holiday row exists.
	ClassifyDayType(ctx context.Context, companyID string, date time.Time) (DayType, error)

	// ApprovedMonthlyHours sums approved hours for the employee in the
	// month containing date, used for threshold checks.
	ApprovedMonthlyHours(ctx context.Context, employeeID string, date time.Time) (float64, error)

	Overlaps(ctx context.Context, employeeID string, date time.Time, startTime, endTime string) (bool, error)
}
