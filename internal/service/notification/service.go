package notification

import (
	"context"
	"fmt"

	"github.com/developnetgeometry/ot-scribe-sub002/internal/domain/notification"
	"github.com/developnetgeometry/ot-scribe-sub002/internal/pkg/sse"
)

type NotificationServiceImpl struct {
	notificationRepository notification.Repository
	hub                    *sse.Hub
}

func NewNotificationService(notificationRepository notification.Repository, hub *sse.Hub) notification.Service {
	return &NotificationServiceImpl{
		notificationRepository: notificationRepository,
		hub:                    hub,
	}
}

// Notify implements notification.Service.
func (s *NotificationServiceImpl) Notify(ctx context.Context, n notification.Notification) error {
	created, err := s.notificationRepository.Create(ctx, n)
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	s.hub.Publish(created.RecipientID, sse.Event{
		UserID: created.RecipientID,
		Event:  "notification",
		Data:   notification.ToNotificationResponse(created),
	})
	return nil
}

// NotifyMany implements notification.Service.
func (s *NotificationServiceImpl) NotifyMany(ctx context.Context, recipientIDs []string, n notification.Notification) error {
	for _, recipientID := range recipientIDs {
		copied := n
		copied.ID = ""
		copied.RecipientID = recipientID
		if err := s.Notify(ctx, copied); err != nil {
			return err
		}
	}
	return nil
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context, filter notification.ListNotificationsFilter) ([]notification.NotificationResponse, int64, error) {
	notifications, total, err := s.notificationRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]notification.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notification.ToNotificationResponse(n))
	}
	return responses, total, nil
}

// UnreadCount implements notification.Service.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, recipientID string) (int64, error) {
	return s.notificationRepository.UnreadCount(ctx, recipientID)
}

// MarkRead implements notification.Service.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, recipientID, id string) error {
	n, err := s.notificationRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.RecipientID != recipientID {
		return notification.ErrNotRecipient
	}
	return s.notificationRepository.MarkRead(ctx, id)
}

// MarkAllRead implements notification.Service.
func (s *NotificationServiceImpl) MarkAllRead(ctx context.Context, recipientID string) error {
	return s.notificationRepository.MarkAllRead(ctx, recipientID)
}
