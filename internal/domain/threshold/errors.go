package threshold

import "errors"

var (
	ErrThresholdNotFound = errors.New("threshold not found")
)
