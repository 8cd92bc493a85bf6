package company

import "time"

// Company represents one legal entity whose employees log overtime
type Company struct {
	ID        string
	Name      string
	Code      string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
