package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrHolidayExists   = errors.New("a holiday already exists for this date and state")
	ErrSyncFailed      = errors.New("holiday calendar sync failed")
)
