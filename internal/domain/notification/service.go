package notification

import "context"

// Service defines notification delivery and querying
type Service interface {
	// Notify stores a notification and pushes it to the recipient's SSE stream
	Notify(ctx context.Context, n Notification) error
	// NotifyMany delivers the same notification to multiple recipients
	NotifyMany(ctx context.Context, recipientIDs []string, n Notification) error

	List(ctx context.Context, filter ListNotificationsFilter) ([]NotificationResponse, int64, error)
	UnreadCount(ctx context.Context, recipientID string) (int64, error)
	MarkRead(ctx context.Context, recipientID, id string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}
