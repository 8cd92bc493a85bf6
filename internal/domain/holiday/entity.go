package holiday

import "time"

// Holiday sources
const (
	SourceManual = "manual"
	SourceSync   = "sync"
)

// Holiday is one public-holiday calendar entry. State is the Malaysian
// state code the holiday applies to; empty means nationwide.
type Holiday struct {
	ID        string
	CompanyID *string
	Date      time.Time
	Name      string
	State     string
	Source    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
