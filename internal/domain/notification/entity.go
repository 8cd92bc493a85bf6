package notification

import (
	"time"
)

// NotificationType represents the type of notification
type NotificationType string

const (
	TypeOvertimeSubmitted NotificationType = "overtime_submitted"
	TypeOvertimeVerified  NotificationType = "overtime_verified"
	TypeOvertimeApproved  NotificationType = "overtime_approved"
	TypeOvertimeRejected  NotificationType = "overtime_rejected"
	TypeOvertimeReviewed  NotificationType = "overtime_reviewed"
	TypeThresholdExceeded NotificationType = "threshold_exceeded"
	TypeHolidaySynced     NotificationType = "holiday_synced"
	TypeAccountActivated  NotificationType = "account_activated"
)

// AllNotificationTypes returns all available notification types
func AllNotificationTypes() []NotificationType {
	return []NotificationType{
		TypeOvertimeSubmitted,
		TypeOvertimeVerified,
		TypeOvertimeApproved,
		TypeOvertimeRejected,
		TypeOvertimeReviewed,
		TypeThresholdExceeded,
		TypeHolidaySynced,
		TypeAccountActivated,
	}
}

// Notification represents a notification entity
type Notification struct {
	ID          string
	CompanyID   string
	RecipientID string
	SenderID    *string
	Type        NotificationType
	Title       string
	Message     string
	Data        map[string]interface{}
	IsRead      bool
	ReadAt      *time.Time
	CreatedAt   time.Time
}
