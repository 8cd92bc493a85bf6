package threshold

import "time"

// Threshold caps overtime per company. Requests beyond MaxRequestHours are
// rejected outright; employees whose approved monthly hours would exceed
// MaxMonthlyHours get flagged for management review instead of silent
// approval.
type Threshold struct {
	ID              string
	CompanyID       string
	MaxMonthlyHours float64
	MaxRequestHours float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
