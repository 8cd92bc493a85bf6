package overtime

import "time"

// Request lifecycle statuses. The database is the authoritative record;
// these constants mirror its status column values.
const (
	StatusPendingVerification = "pending_verification"
	StatusVerified            = "verified"
	StatusApproved            = "approved"
	StatusRejected            = "rejected"
	StatusReviewed            = "reviewed"
	StatusCancelled           = "cancelled"
)

// AllStatuses returns every request status
func AllStatuses() []string {
	return []string{
		StatusPendingVerification,
		StatusVerified,
		StatusApproved,
		StatusRejected,
		StatusReviewed,
		StatusCancelled,
	}
}

// Request represents one overtime request
type Request struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	RequestDate    time.Time
	StartTime      string
	EndTime        string
	TotalHours     float64
	DayType        DayType
	RateMultiplier float64
	Amount         float64
	Reason         string
	Status         string
	NeedsReview    bool

	VerifiedBy      *string
	VerifiedAt      *time.Time
	HRApprovedBy    *string
	HRApprovedAt    *time.Time
	ReviewedBy      *string
	ReviewedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined display fields
	EmployeeName *string
	EmployeeCode *string
	CompanyName  *string
}
